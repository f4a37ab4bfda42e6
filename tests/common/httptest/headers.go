//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, w.Code, "unexpected status, body: %s", w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"), "redirect target mismatch")
}
