package users

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers all user routes on a pre-configured
// group. Authentication middleware is applied by the caller.
func RegisterRoutesWithGroup(g *echo.Group, store Store) *Service {
	userService := NewService(store)

	h := &handler{
		userService: userService,
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.POST("/:id", h.update)
	g.DELETE("/:id", h.delete)

	return userService
}
