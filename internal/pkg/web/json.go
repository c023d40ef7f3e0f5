package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)

// DecodeJSONResponse decodes the response body of a handler under test.
func DecodeJSONResponse[T any](t *testing.T, res *http.Response) T {
	t.Helper()

	var body T
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode json response: %v", err)
	}

	return body
}

// AssertContentType fails the test when the response is not JSON.
func AssertContentType(t *testing.T, res *http.Response) {
	t.Helper()

	gotContent := res.Header.Get(HeaderContentType)
	if !strings.HasPrefix(gotContent, MimeJSON) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", HeaderContentType, gotContent, MimeJSON)
	}
}
