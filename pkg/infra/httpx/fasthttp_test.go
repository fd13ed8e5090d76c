package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastHTTPClient_Do(t *testing.T) {
	var gotBody, gotUA, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotUA = r.UserAgent()
		gotHeader = r.Header.Get("X-Risk-Level")
		w.Header().Set("X-Reply", "ok")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"received":true}`))
	}))
	defer srv.Close()

	client := NewFastHTTPClient(WithTimeout(2*time.Second), WithUserAgent("trustassess-test"))

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/hook", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	req.Header.Set("X-Risk-Level", "critical")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, `{"received":true}`, string(body))
	assert.Equal(t, "ok", resp.Header.Get("X-Reply"))
	assert.Equal(t, `{"a":1}`, gotBody)
	assert.Equal(t, "trustassess-test", gotUA)
	assert.Equal(t, "critical", gotHeader)
}

func TestFastHTTPClient_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewFastHTTPClient(WithTimeout(5 * time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	assert.Error(t, err)
}
