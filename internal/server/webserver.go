package server

import (
	"context"
	"net/http"
)

// WebServer is the contract an HTTP framework adapter fulfils so that
// extracted actions can be mounted on it
type WebServer interface {
	// RegisterRoute mounts handler on method and a colon-style path. It
	// fails instead of panicking when the framework rejects the route.
	RegisterRoute(method, path string, handler HandlerFunc, middlewares ...MiddlewareFunc) error

	// Use installs a middleware in front of every route
	Use(middleware MiddlewareFunc)

	Start(addr string) error
	Stop(ctx context.Context) error

	Name() string
}

// RequestContext provides a framework-agnostic view of one request
type RequestContext interface {
	Context() context.Context
	Method() string
	Path() string
	Param(key string) string
	QueryParam(key string) string

	Request() RequestInterface
	Response() ResponseInterface

	Get(key string) interface{}
	Set(key string, val interface{})
}

// RequestInterface provides access to the incoming request
type RequestInterface interface {
	Header(key string) string
}

// ResponseInterface provides response writing capabilities
type ResponseInterface interface {
	Header(key string) string
	SetHeader(key, value string)
	JSON(code int, i interface{}) error
	Blob(code int, contentType string, b []byte) error
}

// HandlerFunc defines the signature for HTTP handlers
type HandlerFunc func(RequestContext) error

// MiddlewareFunc defines the signature for middleware
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// HTTPError represents an HTTP error with status code and message
type HTTPError struct {
	Code     int         `json:"code"`
	Message  interface{} `json:"message"`
	Internal error       `json:"-"`
}

// Error makes HTTPError implement the error interface
func (he *HTTPError) Error() string {
	if he.Internal != nil {
		return he.Internal.Error()
	}
	if s, ok := he.Message.(string); ok {
		return s
	}
	return http.StatusText(he.Code)
}

// NewHTTPError creates a new HTTPError. The message defaults to the status
// text; a second argument of type error becomes the internal cause.
func NewHTTPError(code int, message ...interface{}) *HTTPError {
	he := &HTTPError{Code: code, Message: http.StatusText(code)}
	if len(message) > 0 {
		he.Message = message[0]
	}
	if len(message) > 1 {
		if err, ok := message[1].(error); ok {
			he.Internal = err
		}
	}
	return he
}

// ErrorResponse converts a handler error into a status code and JSON body
func ErrorResponse(err error) (int, map[string]interface{}) {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.Code, map[string]interface{}{"error": httpErr.Message}
	}
	return http.StatusInternalServerError, map[string]interface{}{"error": err.Error()}
}
