package cases

import (
	"net/http"
	"strconv"

	"praxis/app/models"
	"praxis/core/router"
	"praxis/core/types"
)

type CaseController struct {
	Service *CaseService
}

func NewCaseController(service *CaseService) *CaseController {
	return &CaseController{
		Service: service,
	}
}

func (c *CaseController) Routes(router *router.RouterGroup) {
	caseGroup := router.Group("/cases")

	// Specific routes MUST come before parameterized routes
	caseGroup.GET("", c.List)
	caseGroup.POST("", c.Create)
	caseGroup.GET("/all", c.ListAll)
	caseGroup.GET("/:id", c.Get)
	caseGroup.PUT("/:id", c.Update)
	caseGroup.DELETE("/:id", c.Delete)
}

// CreateCase godoc
// @Summary Create a new Case
// @Description Create a new Case with the input payload
// @Tags App/Case
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param cases body models.CreateCaseRequest true "Create Case request"
// @Success 201 {object} models.Case
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /cases [post]
func (c *CaseController) Create(ctx *router.Context) error {
	var req models.CreateCaseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create item: " + err.Error()})
	}

	return ctx.JSON(http.StatusCreated, item)
}

// GetCase godoc
// @Summary Get a Case
// @Description Get a Case by its id
// @Tags App/Case
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Case id"
// @Success 200 {object} models.Case
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /cases/{id} [get]
func (c *CaseController) Get(ctx *router.Context) error {
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

// ListCases godoc
// @Summary List cases
// @Description Get a paginated list of cases
// @Tags App/Case
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Number of items per page"
// @Param sort query string false "Sort field (id, created_at, updated_at, number, title, status, priority, practice_area, opened_at)"
// @Param order query string false "Sort order (asc, desc)"
// @Success 200 {object} types.PaginatedResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /cases [get]
func (c *CaseController) List(ctx *router.Context) error {
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

// ListAllCases godoc
// @Summary List all cases for select options
// @Description Get all cases without pagination (for dropdowns)
// @Tags App/Case
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Case
// @Failure 500 {object} types.ErrorResponse
// @Router /cases/all [get]
func (c *CaseController) ListAll(ctx *router.Context) error {
	items, err := c.Service.GetAllForSelect()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to list items: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, items)
}

// DeleteCase godoc
// @Summary Delete a Case
// @Description Delete a Case by its id
// @Tags App/Case
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param id path int true "Case id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /cases/{id} [delete]
func (c *CaseController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete item: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// UpdateCase godoc
// @Summary Update a Case
// @Description Update a Case by its id
// @Tags App/Case
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Case id"
// @Param cases body models.UpdateCaseRequest true "Update Case request"
// @Success 200 {object} models.Case
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /cases/{id} [put]
func (c *CaseController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	var req models.UpdateCaseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Update(uint(id), &req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update item: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item)
}
