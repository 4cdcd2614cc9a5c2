package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hausbib/hausbib/pkg/auth"
	"github.com/hausbib/hausbib/pkg/binder"
	"github.com/hausbib/hausbib/pkg/books"
	"github.com/hausbib/hausbib/pkg/config"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/people"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/hausbib/hausbib/pkg/prices"
	"github.com/hausbib/hausbib/pkg/topics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	resolver := permissions.NewResolver(cfg.BypassPermissions)

	// Auth routes come with the service; everything downstream shares its
	// session middleware.
	authService := auth.RegisterRoutes(e, db, cfg.SessionSecret, resolver)
	authMiddleware := auth.NewMiddleware(authService, resolver)

	// Every request gets the optional session decode; reads are open to
	// anonymous callers and writes add RequireCapability per route.
	e.Use(authMiddleware.Session)

	books.RegisterRoutes(e, db, resolver, authMiddleware)
	people.RegisterRoutes(e, db, authMiddleware)
	topics.RegisterRoutes(e, db, authMiddleware)
	prices.RegisterRoutes(e, db, authMiddleware)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
