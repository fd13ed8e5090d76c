package httpx

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Execute(t *testing.T) {
	testError := errors.New("test error")

	tests := []struct {
		name    string
		fn      func() error
		wantErr string
	}{
		{name: "success", fn: func() error { return nil }},
		{name: "failure", fn: func() error { return testError }, wantErr: "test error"},
		{name: "string panic", fn: func() error { panic("boom") }, wantErr: "panic recovered: boom"},
		{name: "error panic", fn: func() error { panic(errors.New("bad")) }, wantErr: "panic recovered: bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker("exec-"+tt.name, 30*time.Second, 3, nil)

			err := breaker.Execute(tt.fn)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "exec-"+tt.name)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 3, nil)

	for i := 0; i < 3; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.True(t, IsOpen(err))
	assert.Equal(t, "open", breaker.State())
}

func TestCircuitBreaker_Recovers(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1, nil)

	assert.Error(t, breaker.Execute(func() error { return errors.New("trigger failure") }))
	assert.Equal(t, "open", breaker.State())

	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	breaker := NewCircuitBreaker("concurrent-test", 30*time.Second, 100, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = breaker.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "closed", breaker.State())
}
