package response

import (
	"bytes"
	"net/http"
)

type Response interface {
	GetHttpStatus() int
	GetHeaders() http.Header
	GetBodyBytes() *bytes.Buffer
}

//--------------------

type basicResponse struct {
	httpStatus int
	headers    http.Header
}

func (r *basicResponse) HeaderSet(key, value string) {
	r.headers.Set(key, value)
}

func (r *basicResponse) GetHeaders() http.Header {
	return r.headers
}

func (r *basicResponse) GetHttpStatus() int {
	return r.httpStatus
}

func (r *basicResponse) SetHttpStatus(status int) {
	r.httpStatus = status
}

//--------------------

// Send writes headers, status and body of responseObj. Body bytes are taken before headers are sent,
// so that a panic while building the body does not leave a half sent response.
func Send(responseWriterObj http.ResponseWriter, responseObj Response) error {
	responseBody := responseObj.GetBodyBytes().Bytes()

	for headerName, headerValues := range responseObj.GetHeaders() {
		for _, value := range headerValues {
			responseWriterObj.Header().Add(headerName, value)
		}
	}
	responseWriterObj.WriteHeader(responseObj.GetHttpStatus())

	_, writeError := responseWriterObj.Write(responseBody)

	return writeError
}
