// Package testutil provides fixtures and helpers shared by package tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/models"
)

// MustProfile completes a profile or fails the test.
func MustProfile(t *testing.T, role models.Role, budget int, focus ...models.Focus) models.CompleteProfile {
	t.Helper()
	p, err := models.DraftProfile{Role: role, Budget: budget, Focus: focus}.Complete()
	if err != nil {
		t.Fatalf("completing profile: %v", err)
	}
	return p
}

// MustCatalog builds a catalog from def or fails the test.
func MustCatalog(t *testing.T, def catalog.Definition) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(def)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return c
}

// ToolIDs returns the ids of a recommendation in order.
func ToolIDs(tools []models.ToolRecommendation) []string {
	ids := make([]string, 0, len(tools))
	for _, t := range tools {
		ids = append(ids, t.ID)
	}
	return ids
}

// AssertStatusCode checks if the response has the expected status code.
func AssertStatusCode(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rr.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, rr.Code, rr.Body.String())
	}
}

// NewTestRequest creates a new HTTP request with a JSON content type.
func NewTestRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewTestRequestWithJSON creates a new HTTP request with data encoded as the body.
func NewTestRequestWithJSON(t *testing.T, method, path string, data interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return NewTestRequest(method, path, strings.NewReader(string(body)))
}

// DecodeJSON parses a JSON body into a T.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("failed to parse JSON: %v (body %q)", err, body)
	}
	return v
}
