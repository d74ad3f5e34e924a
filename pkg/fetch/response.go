package fetch

import (
	"net/http"

	"github.com/wehubfusion/jsj/pkg/jsonmap"
	"github.com/wehubfusion/jsj/pkg/promise"
)

// Response wraps an *http.Response whose body has already been read. The
// embedded Data gives it Get, Then and Tee; JSON is the step that turns the
// body into dot-accessible data.
type Response struct {
	promise.Data[*http.Response]

	body      []byte
	requestID string
}

func newResponse(resp *http.Response, body []byte, requestID string) *Response {
	return &Response{
		Data:      promise.Of(resp),
		body:      body,
		requestID: requestID,
	}
}

// JSON decodes the body and wraps it: objects become jsonmap.Map and arrays
// jsonmap.List. encoding/json errors are returned unmodified.
func (r *Response) JSON() (promise.Data[any], error) {
	v, err := jsonmap.Decode(r.body)
	if err != nil {
		return promise.Data[any]{}, err
	}
	return promise.Of(v), nil
}

// JSONMap decodes a body that must be a JSON object. Any other body fails
// with the decoder's own error, e.g. *json.UnmarshalTypeError.
func (r *Response) JSONMap() (promise.Data[jsonmap.Map], error) {
	m, err := jsonmap.DecodeMap(r.body)
	if err != nil {
		return promise.Data[jsonmap.Map]{}, err
	}
	return promise.Of(m), nil
}

// Query runs a gjson path over the raw body without decoding all of it.
func (r *Response) Query(path string) (any, bool) {
	return jsonmap.QueryBytes(r.body, path)
}

// Bytes returns the body.
func (r *Response) Bytes() []byte {
	return r.body
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.Get().StatusCode
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	code := r.StatusCode()
	return code >= 200 && code < 300
}

// Header returns the response headers.
func (r *Response) Header() http.Header {
	return r.Get().Header
}

// RequestID returns the X-Request-Id sent with the request.
func (r *Response) RequestID() string {
	return r.requestID
}

// String renders the status line, like printing a requests.Response.
func (r *Response) String() string {
	return "<Response [" + r.Get().Status + "]>"
}
