package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"meraki_estimator/internal/usecase"
	"meraki_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// stubRegistry serves one engine for every valid profile id.
type stubRegistry struct {
	uc usecase.IEstimateUseCase
}

func (s stubRegistry) For(profileID string) (usecase.IEstimateUseCase, bool) {
	if profileID != "" && !usecase.ValidProfileID(profileID) {
		return nil, false
	}
	return s.uc, true
}

func serve(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body pkg.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
