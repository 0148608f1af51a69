package adapters

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/toyz/docspec/internal/server"
)

// FiberAdapter wraps a Fiber app to implement server.WebServer
type FiberAdapter struct {
	app *fiber.App
}

// NewFiberAdapter creates a new Fiber adapter instance
func NewFiberAdapter() *FiberAdapter {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	return &FiberAdapter{app: app}
}

// NewDefaultFiberAdapter creates a new Fiber adapter with panic recovery
func NewDefaultFiberAdapter() *FiberAdapter {
	adapter := NewFiberAdapter()
	adapter.app.Use(recover.New())
	return adapter
}

// RegisterRoute registers a route with the Fiber app. Fiber panics on
// unknown methods; the panic is returned as an error.
func (fa *FiberAdapter) RegisterRoute(method, path string, handler server.HandlerFunc, middlewares ...server.MiddlewareFunc) (err error) {
	defer recoverRoute(&err, fa.Name(), method, path)

	handlers := make([]fiber.Handler, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		handlers = append(handlers, convertMiddlewareToFiber(mw))
	}
	handlers = append(handlers, convertHandlerToFiber(handler))

	fa.app.Add(strings.ToUpper(method), path, handlers...)
	return nil
}

// Use adds middleware to the Fiber app
func (fa *FiberAdapter) Use(mw server.MiddlewareFunc) {
	fa.app.Use(convertMiddlewareToFiber(mw))
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop stops the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// App returns the underlying Fiber app
func (fa *FiberAdapter) App() *fiber.App {
	return fa.app
}

func convertHandlerToFiber(handler server.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handler(&FiberRequestContext{ctx: c}); err != nil {
			code, body := server.ErrorResponse(err)
			return c.Status(code).JSON(body)
		}
		return nil
	}
}

func convertMiddlewareToFiber(mw server.MiddlewareFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := mw(func(server.RequestContext) error {
			return c.Next()
		})(&FiberRequestContext{ctx: c})

		if err != nil {
			if _, ok := err.(*fiber.Error); ok {
				return err
			}
			code, body := server.ErrorResponse(err)
			return c.Status(code).JSON(body)
		}
		return nil
	}
}

// FiberRequestContext wraps fiber.Ctx to implement server.RequestContext
type FiberRequestContext struct {
	ctx *fiber.Ctx
}

func (frc *FiberRequestContext) Context() context.Context {
	return frc.ctx.UserContext()
}

func (frc *FiberRequestContext) Method() string {
	return frc.ctx.Method()
}

func (frc *FiberRequestContext) Path() string {
	return frc.ctx.Path()
}

func (frc *FiberRequestContext) Param(key string) string {
	return frc.ctx.Params(key)
}

func (frc *FiberRequestContext) QueryParam(key string) string {
	return frc.ctx.Query(key)
}

func (frc *FiberRequestContext) Request() server.RequestInterface {
	return &fiberRequest{ctx: frc.ctx}
}

func (frc *FiberRequestContext) Response() server.ResponseInterface {
	return &fiberResponse{ctx: frc.ctx}
}

func (frc *FiberRequestContext) Get(key string) interface{} {
	return frc.ctx.Locals(key)
}

func (frc *FiberRequestContext) Set(key string, val interface{}) {
	frc.ctx.Locals(key, val)
}

type fiberRequest struct {
	ctx *fiber.Ctx
}

func (fr *fiberRequest) Header(key string) string {
	return fr.ctx.Get(key)
}

type fiberResponse struct {
	ctx *fiber.Ctx
}

func (fr *fiberResponse) Header(key string) string {
	return string(fr.ctx.Response().Header.Peek(key))
}

func (fr *fiberResponse) SetHeader(key, value string) {
	fr.ctx.Set(key, value)
}

func (fr *fiberResponse) JSON(code int, i interface{}) error {
	return fr.ctx.Status(code).JSON(i)
}

func (fr *fiberResponse) Blob(code int, contentType string, b []byte) error {
	fr.ctx.Set(fiber.HeaderContentType, contentType)
	return fr.ctx.Status(code).Send(b)
}
