package users

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
	"github.com/W4153WASMCoder/ApplicationService/pkg/pagination"
)

type handler struct {
	userService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListUsersQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	window := pagination.Compute(params.Limit, params.Offset)

	users, total, err := h.userService.List(ctx, ListOptions{
		Limit:  window.Limit,
		Offset: window.Offset,
	})
	if err != nil {
		return err
	}

	resp := struct {
		Users []*models.User   `json:"users"`
		Total int              `json:"total"`
		Links pagination.Links `json:"links"`
	}{users, total, pagination.BuildLinks(pagination.RequestURL(c), total, window)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("User")
	}

	user, err := h.userService.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateUserPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Create(ctx, CreateUserOptions(params))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("User")
	}

	params := UpdateUserPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	if params.UserName != nil {
		user.UserName = *params.UserName
	}
	if params.Email != nil {
		user.Email = params.Email
	}
	if params.IsActive != nil {
		user.IsActive = *params.IsActive
	}

	user, err = h.userService.Update(ctx, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("User")
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
