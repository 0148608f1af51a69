package server

import "github.com/google/uuid"

const (
	// RequestIDHeader carries the request id on requests and responses
	RequestIDHeader = "X-Request-ID"
	// ActionHeader names the action a mounted route answers for
	ActionHeader = "X-Docspec-Action"

	requestIDKey = "request_id"
)

// RequestID echoes the incoming X-Request-ID header, or a fresh uuid when
// the client sent none, on the response and in the request context
func RequestID() MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c RequestContext) error {
			id := c.Request().Header(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDKey, id)
			c.Response().SetHeader(RequestIDHeader, id)
			return next(c)
		}
	}
}

// ActionName tags the response with the name of the serving action
func ActionName(name string) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c RequestContext) error {
			c.Response().SetHeader(ActionHeader, name)
			return next(c)
		}
	}
}

// GetRequestID returns the id stored by RequestID, if any
func GetRequestID(c RequestContext) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
