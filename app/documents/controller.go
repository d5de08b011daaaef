package documents

import (
	"net/http"
	"strconv"

	"praxis/app/models"
	"praxis/core/router"
	"praxis/core/types"
)

type DocumentController struct {
	Service *DocumentService
}

func NewDocumentController(service *DocumentService) *DocumentController {
	return &DocumentController{
		Service: service,
	}
}

func (c *DocumentController) Routes(router *router.RouterGroup) {
	documentGroup := router.Group("/documents")

	documentGroup.GET("", c.List)
	documentGroup.POST("", c.Create)
	documentGroup.GET("/:id", c.Get)
	documentGroup.PUT("/:id", c.Update)
	documentGroup.DELETE("/:id", c.Delete)

	// Upload endpoints for the file field
	documentGroup.PUT("/:id/file", c.UploadFile)
	documentGroup.DELETE("/:id/file", c.RemoveFile)
}

// CreateDocument godoc
// @Summary Create a new Document
// @Description Create a new Document with the input payload
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param documents body models.CreateDocumentRequest true "Create Document request"
// @Success 201 {object} models.Document
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /documents [post]
func (c *DocumentController) Create(ctx *router.Context) error {
	var req models.CreateDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create item: " + err.Error()})
	}

	return ctx.JSON(http.StatusCreated, item)
}

// GetDocument godoc
// @Summary Get a Document
// @Description Get a Document by its id
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} models.Document
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /documents/{id} [get]
func (c *DocumentController) Get(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	item, err := c.Service.GetById(uint(id))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
	}

	return ctx.JSON(http.StatusOK, item)
}

// ListDocuments godoc
// @Summary List documents
// @Description Get a paginated list of documents
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Number of items per page"
// @Param sort query string false "Sort field (id, created_at, updated_at, title, file_name, file_size, category)"
// @Param order query string false "Sort order (asc, desc)"
// @Success 200 {object} types.PaginatedResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /documents [get]
func (c *DocumentController) List(ctx *router.Context) error {
	var page, limit *int
	var sortBy, sortOrder *string

	if pageStr := ctx.Query("page"); pageStr != "" {
		if pageNum, err := strconv.Atoi(pageStr); err == nil && pageNum > 0 {
			page = &pageNum
		} else {
			return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid page number"})
		}
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limitNum, err := strconv.Atoi(limitStr); err == nil && limitNum > 0 {
			limit = &limitNum
		} else {
			return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid limit number"})
		}
	}

	if sortStr := ctx.Query("sort"); sortStr != "" {
		sortBy = &sortStr
	}
	if orderStr := ctx.Query("order"); orderStr != "" {
		if orderStr == "asc" || orderStr == "desc" {
			sortOrder = &orderStr
		} else {
			return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid sort order. Use 'asc' or 'desc'"})
		}
	}

	result, err := c.Service.GetAll(page, limit, sortBy, sortOrder)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to list items: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, result)
}

// UpdateDocument godoc
// @Summary Update a Document
// @Description Update a Document by its id
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Document id"
// @Param documents body models.UpdateDocumentRequest true "Update Document request"
// @Success 200 {object} models.Document
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /documents/{id} [put]
func (c *DocumentController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	var req models.UpdateDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Update(uint(id), &req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update item: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item)
}

// DeleteDocument godoc
// @Summary Delete a Document
// @Description Delete a Document and its stored file
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /documents/{id} [delete]
func (c *DocumentController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete item: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// UploadDocumentFile godoc
// @Summary Upload a file for a Document
// @Description Upload or replace the stored file of a Document
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Document id"
// @Param file formData file true "File to upload"
// @Success 200 {object} models.Document
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /documents/{id}/file [put]
func (c *DocumentController) UploadFile(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No file uploaded"})
	}

	item, err := c.Service.UploadFile(uint(id), file)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to upload file: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item)
}

// RemoveDocumentFile godoc
// @Summary Remove the stored file of a Document
// @Tags App/Document
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} models.Document
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /documents/{id}/file [delete]
func (c *DocumentController) RemoveFile(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	item, err := c.Service.RemoveFile(uint(id))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to remove file: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item)
}
