// Package adapters binds server.WebServer to echo, gin and fiber.
package adapters

import (
	"fmt"
	"net/http"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/server"
)

const (
	Echo  = "echo"
	Gin   = "gin"
	Fiber = "fiber"
)

// Names lists the supported adapter names in ascending order
func Names() []string {
	return []string{Echo, Fiber, Gin}
}

// New creates the default adapter registered under name
func New(name string) (server.WebServer, error) {
	switch name {
	case Echo:
		return NewDefaultEchoAdapter(), nil
	case Gin:
		return NewDefaultGinAdapter(), nil
	case Fiber:
		return NewDefaultFiberAdapter(), nil
	default:
		return nil, errors.Newf(errors.ConfigurationErrorCode, "unsupported adapter %q", name).
			WithSuggestion(fmt.Sprintf("Use one of: %v", Names()))
	}
}

// recoverRoute turns a framework panic raised while registering a route
// into an error
func recoverRoute(err *error, adapter, method, path string) {
	if r := recover(); r != nil {
		*err = errors.Newf(errors.ServerErrorCode, "%s rejected route %s %s: %v", adapter, method, path, r)
	}
}

// ignoreClosed hides the error net/http returns after a graceful shutdown
func ignoreClosed(err error) error {
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
