package echoapi

import (
	"context"
	"net/http"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/plan"
	"github.com/trezcool/mipango/core/user"
)

type ServerDeps struct {
	Conf       *core.Config
	Log        core.Logger
	PlanSvc    *plan.Service
	UserSvc    *user.Service
	Validate   *validator.Validate
	Translator ut.Translator
	Shutdown   chan<- os.Signal
}

type Server struct {
	e    *echo.Echo
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Debug = deps.Conf.Debug
	e.HTTPErrorHandler = newHTTPErrorHandler(deps.Log, deps.Translator, deps.Shutdown)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	if deps.Conf.Debug {
		e.Use(middleware.Logger())
	}

	s := &Server{e: e, deps: deps}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	jwt := jwtMiddleware(s.deps.Conf)

	api := s.e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "build": s.deps.Conf.Build})
	})
	api.GET("/departments", func(c echo.Context) error {
		return c.JSON(http.StatusOK, plan.Departments)
	})

	registerAuthAPI(api, s.deps)
	registerPlanAPI(api.Group("/plans", jwt), s.deps)
	registerAdminAPI(api.Group("/admin", jwt, adminMiddleware()), s.deps)
}

func (s *Server) Start() error {
	return s.e.Start(s.deps.Conf.Server.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// ServeHTTP lets tests drive the server without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}
