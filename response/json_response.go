package response

import (
	"bytes"
	"encoding/json"
	"net/http"
)

type JsonResponse struct {
	basicResponse
	Body interface{}
}

func (r *JsonResponse) GetBodyBytes() *bytes.Buffer {
	if nil == r.Body {
		return new(bytes.Buffer)
	}

	resultBytes, err := json.Marshal(r.Body)
	if err != nil {
		panic(err)
	}

	return bytes.NewBuffer(resultBytes)
}

//--------------------

func NewJsonResponse(status int, body interface{}) *JsonResponse {
	r := &JsonResponse{
		basicResponse: basicResponse{
			httpStatus: status,
			headers:    make(http.Header),
		},
		Body: body,
	}
	r.HeaderSet("Content-Type", "application/json")

	return r
}

// NewJsonErrorResponse builds {"error": message} with the given status.
func NewJsonErrorResponse(status int, message string) *JsonResponse {
	return NewJsonResponse(status, map[string]string{"error": message})
}
