package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"

	"github.com/W4153WASMCoder/ApplicationService/pkg/auth"
	"github.com/W4153WASMCoder/ApplicationService/pkg/binder"
	"github.com/W4153WASMCoder/ApplicationService/pkg/config"
	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/files"
	"github.com/W4153WASMCoder/ApplicationService/pkg/projects"
	"github.com/W4153WASMCoder/ApplicationService/pkg/stores"
	"github.com/W4153WASMCoder/ApplicationService/pkg/users"
)

func New(cfg *config.Config) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	health.RegisterRoutes(e)

	userStore, err := stores.NewUserStore(cfg.UserStoreURL, cfg.StoreTimeout(), cfg.StoreRetryCount)
	if err != nil {
		return nil, err
	}
	projectStore, err := stores.NewProjectStore(cfg.ProjectStoreURL, cfg.StoreTimeout(), cfg.StoreRetryCount)
	if err != nil {
		return nil, err
	}

	// Register auth routes and get the auth service
	authService := auth.RegisterRoutes(e, userStore, cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	registerProtectedRoutes(e, userStore, projectStore, authMiddleware)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// registerProtectedRoutes registers all routes that require a valid session.
func registerProtectedRoutes(e *echo.Echo, userStore *stores.UserStore, projectStore *stores.ProjectStore, authMiddleware *auth.Middleware) {
	filesGroup := e.Group("/files")
	filesGroup.Use(authMiddleware.Authenticate)
	files.RegisterRoutesWithGroup(filesGroup, projectStore)

	projectsGroup := e.Group("/projects")
	projectsGroup.Use(authMiddleware.Authenticate)
	projects.RegisterRoutesWithGroup(projectsGroup, projectStore)

	usersGroup := e.Group("/users")
	usersGroup.Use(authMiddleware.Authenticate)
	users.RegisterRoutesWithGroup(usersGroup, userStore)
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
