package adapters

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/toyz/docspec/internal/server"
)

// EchoAdapter implements server.WebServer for Echo v4
type EchoAdapter struct {
	engine *echo.Echo
}

// NewEchoAdapter creates a new Echo adapter
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	return &EchoAdapter{engine: e}
}

// NewDefaultEchoAdapter creates a new Echo adapter with panic recovery
func NewDefaultEchoAdapter() *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	return &EchoAdapter{engine: e}
}

// RegisterRoute registers a route with the Echo server
func (ea *EchoAdapter) RegisterRoute(method, path string, handler server.HandlerFunc, middlewares ...server.MiddlewareFunc) (err error) {
	defer recoverRoute(&err, ea.Name(), method, path)

	echoMiddlewares := make([]echo.MiddlewareFunc, len(middlewares))
	for i, mw := range middlewares {
		echoMiddlewares[i] = ea.convertMiddleware(mw)
	}

	ea.engine.Add(method, path, ea.convertHandler(handler), echoMiddlewares...)
	return nil
}

// Use adds global middleware
func (ea *EchoAdapter) Use(mw server.MiddlewareFunc) {
	ea.engine.Use(ea.convertMiddleware(mw))
}

// Start starts the server
func (ea *EchoAdapter) Start(addr string) error {
	return ignoreClosed(ea.engine.Start(addr))
}

// Stop stops the server
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// Handler returns the underlying Echo instance as an http.Handler
func (ea *EchoAdapter) Handler() http.Handler {
	return ea.engine
}

// convertHandler converts server.HandlerFunc to echo.HandlerFunc
func (ea *EchoAdapter) convertHandler(handler server.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := handler(&EchoRequestContext{context: c}); err != nil {
			code, body := server.ErrorResponse(err)
			return c.JSON(code, body)
		}
		return nil
	}
}

// convertMiddleware converts server.MiddlewareFunc to echo.MiddlewareFunc
func (ea *EchoAdapter) convertMiddleware(mw server.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wrapped := mw(func(server.RequestContext) error {
				return next(c)
			})
			if err := wrapped(&EchoRequestContext{context: c}); err != nil {
				if _, ok := err.(*echo.HTTPError); ok {
					return err
				}
				code, body := server.ErrorResponse(err)
				return c.JSON(code, body)
			}
			return nil
		}
	}
}

// EchoRequestContext implements server.RequestContext for Echo
type EchoRequestContext struct {
	context echo.Context
}

func (erc *EchoRequestContext) Context() context.Context {
	return erc.context.Request().Context()
}

func (erc *EchoRequestContext) Method() string {
	return erc.context.Request().Method
}

func (erc *EchoRequestContext) Path() string {
	return erc.context.Request().URL.Path
}

func (erc *EchoRequestContext) Param(key string) string {
	return erc.context.Param(key)
}

func (erc *EchoRequestContext) QueryParam(key string) string {
	return erc.context.QueryParam(key)
}

func (erc *EchoRequestContext) Request() server.RequestInterface {
	return &echoRequest{context: erc.context}
}

func (erc *EchoRequestContext) Response() server.ResponseInterface {
	return &echoResponse{context: erc.context}
}

func (erc *EchoRequestContext) Get(key string) interface{} {
	return erc.context.Get(key)
}

func (erc *EchoRequestContext) Set(key string, val interface{}) {
	erc.context.Set(key, val)
}

type echoRequest struct {
	context echo.Context
}

func (er *echoRequest) Header(key string) string {
	return er.context.Request().Header.Get(key)
}

type echoResponse struct {
	context echo.Context
}

func (er *echoResponse) Header(key string) string {
	return er.context.Response().Header().Get(key)
}

func (er *echoResponse) SetHeader(key, value string) {
	er.context.Response().Header().Set(key, value)
}

func (er *echoResponse) JSON(code int, i interface{}) error {
	return er.context.JSON(code, i)
}

func (er *echoResponse) Blob(code int, contentType string, b []byte) error {
	return er.context.Blob(code, contentType, b)
}
