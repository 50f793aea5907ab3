package files

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/filetree"
	"github.com/W4153WASMCoder/ApplicationService/pkg/pagination"
)

type handler struct {
	fileService *Service
}

// list returns one page of a project's files as a nested forest, together
// with the store's total count and the navigation links for the page.
func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListFilesQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	window := pagination.Compute(params.Limit, params.Offset)

	records, total, err := h.fileService.List(ctx, ListOptions{
		ProjectID: params.ProjectID,
		Limit:     window.Limit,
		Offset:    window.Offset,
	})
	if err != nil {
		return err
	}

	resp := struct {
		Files []*filetree.Node `json:"files"`
		Total int              `json:"total"`
		Links pagination.Links `json:"links"`
	}{
		Files: filetree.Build(records),
		Total: total,
		Links: pagination.BuildLinks(pagination.RequestURL(c), total, window),
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("File")
	}

	file, err := h.fileService.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, file)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateFilePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	file, err := h.fileService.Create(ctx, CreateFileOptions(params))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, file)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("File")
	}

	params := UpdateFilePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	file, err := h.fileService.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	if params.Name != nil {
		file.Name = *params.Name
	}
	if params.ParentID != nil {
		file.ParentID = params.ParentID
	}

	file, err = h.fileService.Update(ctx, file)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, file)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("File")
	}

	if err := h.fileService.Delete(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "File deleted successfully"})
}
