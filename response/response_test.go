package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonResponse(t *testing.T) {
	responseObj := NewJsonResponse(http.StatusOK, map[string]int{"listeners": 3})

	assert.Equal(t, http.StatusOK, responseObj.GetHttpStatus())
	assert.Equal(t, "application/json", responseObj.GetHeaders().Get("Content-Type"))
	assert.JSONEq(t, `{"listeners": 3}`, responseObj.GetBodyBytes().String())

	assert.Equal(t, 0, NewJsonResponse(http.StatusNoContent, nil).GetBodyBytes().Len())
}

func TestJsonErrorResponse(t *testing.T) {
	responseObj := NewJsonErrorResponse(http.StatusNotFound, "registry not found")

	assert.Equal(t, http.StatusNotFound, responseObj.GetHttpStatus())
	assert.JSONEq(t, `{"error": "registry not found"}`, responseObj.GetBodyBytes().String())
}

func TestSend(t *testing.T) {
	recorder := httptest.NewRecorder()

	responseObj := NewJsonResponse(http.StatusAccepted, []string{"a"})
	responseObj.HeaderSet("X-Registries", "1")
	require.NoError(t, Send(recorder, responseObj))

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get("X-Registries"))
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a"]`, recorder.Body.String())
}

func TestJsonResponsePanicsOnUnsupportedBody(t *testing.T) {
	responseObj := NewJsonResponse(http.StatusOK, func() {})

	assert.Panics(t, func() {
		responseObj.GetBodyBytes()
	})
}
