package projects

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
	projectService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListProjectsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	window := pagination.Compute(params.Limit, params.Offset)

	projects, total, err := h.projectService.List(ctx, ListOptions{
		UserID: params.UserID,
		Limit:  window.Limit,
		Offset: window.Offset,
	})
	if err != nil {
		return err
	}

	resp := struct {
		Projects []*models.Project `json:"projects"`
		Total    int               `json:"total"`
		Links    pagination.Links  `json:"links"`
	}{projects, total, pagination.BuildLinks(pagination.RequestURL(c), total, window)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Project")
	}

	project, err := h.projectService.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateProjectPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.projectService.Create(ctx, CreateProjectOptions(params))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Project")
	}

	params := UpdateProjectPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.projectService.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	if params.Name != nil {
		project.Name = *params.Name
	}

	project, err = h.projectService.Update(ctx, project)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Project")
	}

	if err := h.projectService.Delete(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
