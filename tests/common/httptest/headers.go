//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeadersPresent checks that each header is set, whatever its value.
func AssertHeadersPresent(t *testing.T, w *httptest.ResponseRecorder, names ...string) {
	t.Helper()
	for _, name := range names {
		assert.NotEmpty(t, w.Header().Get(name), "header %s missing", name)
	}
}
