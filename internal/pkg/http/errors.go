package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
)

// DefaultErrorMessage is used when the server does not say what went wrong
const DefaultErrorMessage = "API Error"

// APIError is returned for every non-2xx response.
// Data holds the decoded JSON body, or the raw text for non-JSON bodies.
type APIError struct {
	Status  int
	Message string
	Data    interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body []byte, isJSON bool) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: DefaultErrorMessage,
	}

	if !isJSON {
		apiErr.Data = string(body)
		return apiErr
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		apiErr.Data = string(body)
		return apiErr
	}
	apiErr.Data = data

	obj, ok := data.(map[string]interface{})
	if !ok {
		return apiErr
	}
	switch detail := obj["detail"].(type) {
	case nil:
	case string:
		if detail != "" {
			apiErr.Message = detail
		}
	default:
		// FastAPI validation errors carry a list of problems
		if raw, err := json.Marshal(detail); err == nil {
			apiErr.Message = string(raw)
		}
	}

	return apiErr
}

// AsAPIError unwraps err into an *APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 API response
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == nethttp.StatusNotFound
}
