package shopify

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"
)

// APIError is a transport-level failure: the Admin API answered with a
// non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify api: %d %s", e.StatusCode, e.Message)
}

// GraphQLError is an application-level failure: the Admin API answered
// 200 but the response carried a top-level errors array.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("shopify graphql: %s", strings.Join(e.Messages, "; "))
}

// UserError is a mutation-level failure reported in a userErrors list.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// UserErrors wraps a non-empty userErrors list from a mutation payload.
type UserErrors []UserError

func (e UserErrors) Error() string {
	messages := make([]string, len(e))
	for i, ue := range e {
		if len(ue.Field) > 0 {
			messages[i] = fmt.Sprintf("%s: %s", strings.Join(ue.Field, "."), ue.Message)
		} else {
			messages[i] = ue.Message
		}
	}
	return fmt.Sprintf("shopify user errors: %s", strings.Join(messages, "; "))
}

func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var errResp struct {
		Errors any `json:"errors"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil || errResp.Errors == nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("%v", errResp.Errors),
	}
}
