package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/toyz/docspec/internal/server"
)

// GinAdapter implements server.WebServer for the Gin framework
type GinAdapter struct {
	engine *gin.Engine
	server *http.Server
}

// NewGinAdapter creates a new Gin adapter
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g, server: &http.Server{Handler: g}}
}

// NewDefaultGinAdapter creates a new Gin adapter with panic recovery
func NewDefaultGinAdapter() *GinAdapter {
	g := gin.New()
	g.Use(gin.Recovery())
	return NewGinAdapter(g)
}

// convertPathToGin names bare wildcard segments, which Gin requires
func convertPathToGin(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment == "*" {
			segments[i] = "*path"
		}
	}
	return strings.Join(segments, "/")
}

// RegisterRoute registers a route with the Gin server. Gin panics on
// conflicting routes; the panic is returned as an error.
func (ga *GinAdapter) RegisterRoute(method, path string, handler server.HandlerFunc, middlewares ...server.MiddlewareFunc) (err error) {
	defer recoverRoute(&err, ga.Name(), method, path)

	handlers := make([]gin.HandlerFunc, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		handlers = append(handlers, ga.convertMiddleware(mw))
	}
	handlers = append(handlers, ga.convertHandler(handler))

	ga.engine.Handle(method, convertPathToGin(path), handlers...)
	return nil
}

// Use registers a global middleware with the Gin server
func (ga *GinAdapter) Use(mw server.MiddlewareFunc) {
	ga.engine.Use(ga.convertMiddleware(mw))
}

// Start starts the Gin server
func (ga *GinAdapter) Start(addr string) error {
	ga.server.Addr = addr
	return ignoreClosed(ga.server.ListenAndServe())
}

// Stop gracefully shuts the Gin server down
func (ga *GinAdapter) Stop(ctx context.Context) error {
	return ga.server.Shutdown(ctx)
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// Handler returns the underlying Gin engine as an http.Handler
func (ga *GinAdapter) Handler() http.Handler {
	return ga.engine
}

func (ga *GinAdapter) convertHandler(handler server.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(&GinRequestContext{ctx: c}); err != nil {
			code, body := server.ErrorResponse(err)
			c.JSON(code, body)
		}
	}
}

func (ga *GinAdapter) convertMiddleware(mw server.MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := func(server.RequestContext) error {
			c.Next()
			return nil
		}

		if err := mw(next)(&GinRequestContext{ctx: c}); err != nil {
			code, body := server.ErrorResponse(err)
			c.AbortWithStatusJSON(code, body)
		}
	}
}

// GinRequestContext implements server.RequestContext for Gin
type GinRequestContext struct {
	ctx *gin.Context
}

func (grc *GinRequestContext) Context() context.Context {
	return grc.ctx.Request.Context()
}

func (grc *GinRequestContext) Method() string {
	return grc.ctx.Request.Method
}

func (grc *GinRequestContext) Path() string {
	return grc.ctx.Request.URL.Path
}

// Param returns a path parameter; "*" reads the named wildcard
func (grc *GinRequestContext) Param(name string) string {
	if name == "*" {
		return strings.TrimPrefix(grc.ctx.Param("path"), "/")
	}
	return grc.ctx.Param(name)
}

func (grc *GinRequestContext) QueryParam(key string) string {
	return grc.ctx.Query(key)
}

func (grc *GinRequestContext) Request() server.RequestInterface {
	return &ginRequest{ctx: grc.ctx}
}

func (grc *GinRequestContext) Response() server.ResponseInterface {
	return &ginResponse{ctx: grc.ctx}
}

func (grc *GinRequestContext) Get(key string) interface{} {
	value, _ := grc.ctx.Get(key)
	return value
}

func (grc *GinRequestContext) Set(key string, val interface{}) {
	grc.ctx.Set(key, val)
}

type ginRequest struct {
	ctx *gin.Context
}

func (gr *ginRequest) Header(key string) string {
	return gr.ctx.GetHeader(key)
}

type ginResponse struct {
	ctx *gin.Context
}

func (gr *ginResponse) Header(key string) string {
	return gr.ctx.Writer.Header().Get(key)
}

func (gr *ginResponse) SetHeader(key, value string) {
	gr.ctx.Header(key, value)
}

func (gr *ginResponse) JSON(code int, i interface{}) error {
	gr.ctx.JSON(code, i)
	return nil
}

func (gr *ginResponse) Blob(code int, contentType string, b []byte) error {
	gr.ctx.Data(code, contentType, b)
	return nil
}
