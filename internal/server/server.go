// Package server mounts an extracted application on an HTTP framework. Every
// action route answers with its own action record, /_spec with the whole
// application and /_openapi with the generated OpenAPI document.
package server

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/generator"
	"github.com/toyz/docspec/internal/models"
	"github.com/toyz/docspec/internal/parser"
	"github.com/toyz/docspec/internal/utils"
)

const (
	SpecPath    = "/_spec"
	OpenAPIPath = "/_openapi"
)

// Scanner produces a fresh scan of the served source tree
type Scanner interface {
	Scan(ctx context.Context) (*parser.ScanResult, error)
}

// Server serves one source tree. Rescans triggered by /_spec and /_openapi
// are serialised; routes are mounted once, from the scan made by Mount.
type Server struct {
	web         WebServer
	scanner     Scanner
	openapi     *generator.OpenAPIGenerator
	diagnostics *utils.DiagnosticSystem

	mu      sync.Mutex
	current *parser.ScanResult
	mounted map[string]string
}

// New creates a server mounting scans of scanner on web
func New(web WebServer, scanner Scanner, diagnostics *utils.DiagnosticSystem) *Server {
	if diagnostics == nil {
		diagnostics = utils.NewQuietDiagnostics()
	}
	return &Server{
		web:         web,
		scanner:     scanner,
		openapi:     generator.NewOpenAPIGenerator(),
		diagnostics: diagnostics,
		mounted:     make(map[string]string),
	}
}

// Mount scans the tree and registers the system routes and one route per
// action. When several actions declare the same method and path, the first
// one in scan order is served and the others are reported.
func (s *Server) Mount(ctx context.Context) error {
	result, err := s.refresh(ctx)
	if err != nil {
		return err
	}

	s.web.Use(RequestID())
	if err := s.register(http.MethodGet, SpecPath, "", s.handleSpec); err != nil {
		return err
	}
	if err := s.register(http.MethodGet, OpenAPIPath, "", s.handleOpenAPI); err != nil {
		return err
	}

	for _, action := range result.Actions {
		if err := s.register(action.Route.Method, action.Route.Path, action.Name, handleAction(action)); err != nil {
			s.diagnostics.Warn("%v", err)
			continue
		}
		s.diagnostics.Verbose("mounted %s -> %s", action.Route, action.Name)
	}
	return nil
}

// Routes returns the mounted "METHOD path" keys and the action serving each;
// system routes map to an empty name
func (s *Server) Routes() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	routes := make(map[string]string, len(s.mounted))
	for k, v := range s.mounted {
		routes[k] = v
	}
	return routes
}

// Application returns the application of the latest scan, nil before Mount
func (s *Server) Application() *models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	return s.current.Application
}

// Start serves on addr until Stop is called
func (s *Server) Start(addr string) error {
	s.diagnostics.Info("serving on %s with %s", addr, s.web.Name())
	return s.web.Start(addr)
}

// Stop shuts the underlying web server down
func (s *Server) Stop(ctx context.Context) error {
	return s.web.Stop(ctx)
}

func (s *Server) register(method, path, name string, handler HandlerFunc) error {
	method = strings.ToUpper(method)
	path = routePath(path)
	key := method + " " + path

	s.mu.Lock()
	owner, taken := s.mounted[key]
	s.mu.Unlock()
	if taken {
		return errors.Newf(errors.ServerErrorCode, "%s is already served by %q, skipping %q", key, owner, name)
	}

	var middlewares []MiddlewareFunc
	if name != "" {
		middlewares = append(middlewares, ActionName(name))
	}
	if err := s.web.RegisterRoute(method, path, handler, middlewares...); err != nil {
		return err
	}

	s.mu.Lock()
	s.mounted[key] = name
	s.mu.Unlock()
	return nil
}

// refresh rescans the tree; unchanged files are served from the parser cache
func (s *Server) refresh(ctx context.Context) (*parser.ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	s.current = result
	return result, nil
}

func (s *Server) handleSpec(c RequestContext) error {
	result, err := s.refresh(c.Context())
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, errors.Describe(err), err)
	}
	return c.Response().JSON(http.StatusOK, result.Application)
}

func (s *Server) handleOpenAPI(c RequestContext) error {
	result, err := s.refresh(c.Context())
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, errors.Describe(err), err)
	}
	out, err := s.openapi.Generate(result.Application)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to generate openapi document", err)
	}
	return c.Response().Blob(http.StatusOK, "application/json", out)
}

func handleAction(action *models.Action) HandlerFunc {
	return func(c RequestContext) error {
		return c.Response().JSON(http.StatusOK, action)
	}
}

func routePath(path string) string {
	path = utils.ToColonPath(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
