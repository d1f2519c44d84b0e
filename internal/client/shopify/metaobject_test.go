package shopify

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	go_json "github.com/goccy/go-json"
	"github.com/tejaswadiwala/torcc/internal/xhttp"
	"golang.org/x/oauth2"
)

const testAccessToken = "shpat_test_token"

type capturedRequest struct {
	token     string
	query     string
	variables map[string]any
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, captured capturedRequest)) (*Client, *[]capturedRequest) {
	t.Helper()

	var captures []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		captured := capturedRequest{
			token:     r.Header.Get(xhttp.XShopifyAccessToken),
			query:     req.Query,
			variables: req.Variables,
		}
		captures = append(captures, captured)
		handler(w, captured)
	}))
	t.Cleanup(server.Close)

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: testAccessToken})
	client := New("torcc", "2024-10", tokenSource, WithEndpoint(server.URL))

	return client, &captures
}

func respondJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestGetField(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client, captures := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			respondJSON(w, `{"data": {"metaobject": {"field": {"value": "1000"}}}}`)
		})

		value, err := client.Metaobjects.GetField(t.Context(), "gid://shopify/Metaobject/1", "total_sales")
		if err != nil {
			t.Fatalf("GetField() error = %v", err)
		}
		if value != "1000" {
			t.Errorf("GetField() = %q, want %q", value, "1000")
		}

		if len(*captures) != 1 {
			t.Fatalf("captured %d requests, want 1", len(*captures))
		}
		captured := (*captures)[0]

		if captured.token != testAccessToken {
			t.Errorf("access token header = %q, want %q", captured.token, testAccessToken)
		}
		if !strings.Contains(captured.query, "metaobject(id: $id)") {
			t.Errorf("query does not select metaobject by id:\n%s", captured.query)
		}

		wantVariables := map[string]any{
			"id":  "gid://shopify/Metaobject/1",
			"key": "total_sales",
		}
		if diff := cmp.Diff(wantVariables, captured.variables); diff != "" {
			t.Errorf("variables mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("metaobject not found", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			respondJSON(w, `{"data": {"metaobject": null}}`)
		})

		if _, err := client.Metaobjects.GetField(t.Context(), "gid://shopify/Metaobject/404", "total_sales"); err == nil {
			t.Error("GetField() error = nil, want not-found error")
		}
	})

	t.Run("field not found", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			respondJSON(w, `{"data": {"metaobject": {"field": null}}}`)
		})

		if _, err := client.Metaobjects.GetField(t.Context(), "gid://shopify/Metaobject/1", "missing"); err == nil {
			t.Error("GetField() error = nil, want missing-field error")
		}
	})

	t.Run("graphql errors", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			respondJSON(w, `{"errors": [{"message": "Invalid global id"}]}`)
		})

		_, err := client.Metaobjects.GetField(t.Context(), "not-a-gid", "total_sales")
		var gqlErr *GraphQLError
		if !errors.As(err, &gqlErr) {
			t.Fatalf("GetField() error = %v, want *GraphQLError", err)
		}
		if len(gqlErr.Messages) != 1 || gqlErr.Messages[0] != "Invalid global id" {
			t.Errorf("GraphQLError.Messages = %v", gqlErr.Messages)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			w.WriteHeader(http.StatusUnauthorized)
			respondJSON(w, `{"errors": "[API] Invalid API key or access token"}`)
		})

		_, err := client.Metaobjects.GetField(t.Context(), "gid://shopify/Metaobject/1", "total_sales")
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("GetField() error = %v, want *APIError", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("APIError.StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
		}
	})
}

func TestUpdateField(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client, captures := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			respondJSON(w, `{"data": {"metaobjectUpdate": {"metaobject": {"id": "gid://shopify/Metaobject/1"}, "userErrors": []}}}`)
		})

		if err := client.Metaobjects.UpdateField(t.Context(), "gid://shopify/Metaobject/1", "total_sales", "1025"); err != nil {
			t.Fatalf("UpdateField() error = %v", err)
		}

		if len(*captures) != 1 {
			t.Fatalf("captured %d requests, want 1", len(*captures))
		}
		captured := (*captures)[0]

		if !strings.Contains(captured.query, "metaobjectUpdate") {
			t.Errorf("query is not a metaobjectUpdate mutation:\n%s", captured.query)
		}

		wantVariables := map[string]any{
			"id": "gid://shopify/Metaobject/1",
			"fields": []any{
				map[string]any{"key": "total_sales", "value": "1025"},
			},
		}
		if diff := cmp.Diff(wantVariables, captured.variables); diff != "" {
			t.Errorf("variables mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("user errors", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			respondJSON(w, `{"data": {"metaobjectUpdate": {"metaobject": null, "userErrors": [{"field": ["fields", "0", "value"], "message": "Value is invalid"}]}}}`)
		})

		err := client.Metaobjects.UpdateField(t.Context(), "gid://shopify/Metaobject/1", "total_sales", "not a number")
		var userErrs UserErrors
		if !errors.As(err, &userErrs) {
			t.Fatalf("UpdateField() error = %v, want UserErrors", err)
		}
		if !strings.Contains(userErrs.Error(), "Value is invalid") {
			t.Errorf("UserErrors.Error() = %q", userErrs.Error())
		}
	})
}
