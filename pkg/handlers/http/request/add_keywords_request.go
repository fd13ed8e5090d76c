package request

import (
	"fmt"
	"strings"
)

const maxKeywordsPerRequest = 500

type AddKeywordsRequest struct {
	Keywords []string `json:"keywords"`
}

func (r *AddKeywordsRequest) Validate() error {
	if len(r.Keywords) == 0 {
		return fmt.Errorf("keywords must not be empty")
	}
	if len(r.Keywords) > maxKeywordsPerRequest {
		return fmt.Errorf("at most %d keywords can be added at once", maxKeywordsPerRequest)
	}
	for i, k := range r.Keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("keywords[%d] is blank", i)
		}
	}
	return nil
}
