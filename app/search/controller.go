package search

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"praxis/core/logger"
	"praxis/core/router"
	"praxis/core/types"
)

type SearchController struct {
	Service *SearchService
	Logger  logger.Logger
}

func NewSearchController(service *SearchService, log logger.Logger) *SearchController {
	return &SearchController{
		Service: service,
		Logger:  log,
	}
}

func (c *SearchController) Routes(router *router.RouterGroup) {
	router.GET("/search", c.Search)
	router.GET("/search/suggestions", c.Suggestions)
	router.GET("/search/popular", c.PopularTerms)
	router.GET("/search/entities", c.Entities)
	router.POST("/search/log", c.LogQuery)
}

// Search godoc
// @Summary Unified search across all entity types
// @Description Search cases, clients, documents, users, expenses, articles, tasks, invoices and time entries in one call
// @Tags Search
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param q query string true "Search query (minimum 2 characters)" example("acme merger")
// @Param entities query string false "Comma-separated entity types to search" example("cases,clients,documents")
// @Param filters query string false "JSON object of entity filters" example({"status":"open"})
// @Param sortBy query string false "Sort key: relevance, date or title (default: relevance)"
// @Param sortOrder query string false "Sort order: asc or desc (default: desc)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Results per page (default: 20, max: 100)"
// @Param userId query int false "Restrict results to records owned by this user"
// @Param includeArchived query bool false "Include archived records"
// @Success 200 {object} search.SearchResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /search [get]
func (c *SearchController) Search(ctx *router.Context) error {
	opts, err := parseSearchOptions(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	response, err := c.Service.Search(ctx.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		}
		c.Logger.Error("search failed",
			logger.String("query", opts.Query),
			logger.String("error", err.Error()))
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Search failed"})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Suggestions godoc
// @Summary Autocomplete suggestions for a partial query
// @Tags Search
// @Produce json
// @Param q query string true "Partial query (minimum 2 characters)"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} types.ErrorResponse
// @Router /search/suggestions [get]
func (c *SearchController) Suggestions(ctx *router.Context) error {
	suggestions, err := c.Service.Suggestions.Suggest(ctx.Query("q"))
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Suggestions unavailable"})
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return ctx.JSON(http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// PopularTerms godoc
// @Summary Most frequent search terms over the trailing window
// @Tags Search
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} types.ErrorResponse
// @Router /search/popular [get]
func (c *SearchController) PopularTerms(ctx *router.Context) error {
	terms, err := c.Service.Suggestions.PopularTerms()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Popular terms unavailable"})
	}
	if terms == nil {
		terms = []string{}
	}
	return ctx.JSON(http.StatusOK, map[string][]string{"terms": terms})
}

// Entities godoc
// @Summary Searchable entity types
// @Tags Search
// @Produce json
// @Success 200 {object} map[string][]search.EntityInfo
// @Router /search/entities [get]
func (c *SearchController) Entities(ctx *router.Context) error {
	types := c.Service.Registry.Types()
	entities := make([]EntityInfo, len(types))
	for i, t := range types {
		entities[i] = EntityInfo{Type: t, Label: t.Label()}
	}
	return ctx.JSON(http.StatusOK, map[string][]EntityInfo{"entities": entities})
}

// LogQuery godoc
// @Summary Record an externally executed search for analytics
// @Tags Search
// @Accept json
// @Produce json
// @Param request body search.LogQueryRequest true "Query to record"
// @Success 201 {object} map[string]string
// @Failure 400 {object} types.ErrorResponse
// @Router /search/log [post]
func (c *SearchController) LogQuery(ctx *router.Context) error {
	var req LogQueryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	c.Service.Recorder.Record(req.Query, req.UserId, req.ResultsCount)
	return ctx.JSON(http.StatusCreated, map[string]string{"status": "recorded"})
}

func parseSearchOptions(ctx *router.Context) (SearchOptions, error) {
	opts := SearchOptions{
		Query:     ctx.Query("q"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}

	if raw := ctx.Query("entities"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			t := EntityType(strings.TrimSpace(name))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return opts, errors.New("unknown entity type: " + string(t))
			}
			opts.Entities = append(opts.Entities, t)
		}
	}

	if raw := ctx.Query("filters"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &opts.Filters); err != nil {
			return opts, errors.New("filters must be a JSON object")
		}
	}

	if sortBy := opts.SortBy; sortBy != "" && sortBy != "relevance" && sortBy != "date" && sortBy != "title" {
		return opts, errors.New("sortBy must be relevance, date or title")
	}
	if order := opts.SortOrder; order != "" && order != "asc" && order != "desc" {
		return opts, errors.New("sortOrder must be asc or desc")
	}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return opts, errors.New("page must be a positive integer")
		}
		opts.Page = page
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return opts, errors.New("limit must be a positive integer")
		}
		opts.Limit = limit
	}
	if raw := ctx.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return opts, errors.New("userId must be a positive integer")
		}
		opts.UserId = uint(id)
	}
	if raw := ctx.Query("includeArchived"); raw != "" {
		opts.IncludeArchived = raw == "true" || raw == "1"
	}

	return opts, nil
}
