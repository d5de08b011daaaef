package cases

import (
	"math"

	"praxis/app/models"
	"praxis/core/emitter"
	"praxis/core/logger"
	"praxis/core/types"

	"gorm.io/gorm"
)

const (
	CreateCaseEvent = "cases.create"
	UpdateCaseEvent = "cases.update"
	DeleteCaseEvent = "cases.delete"
)

type CaseService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Logger  logger.Logger
}

func NewCaseService(db *gorm.DB, emitter *emitter.Emitter, logger logger.Logger) *CaseService {
	return &CaseService{
		DB:      db,
		Emitter: emitter,
		Logger:  logger,
	}
}

// applySorting applies sorting to the query based on the sort and order parameters
func (s *CaseService) applySorting(query *gorm.DB, sortBy *string, sortOrder *string) {
	validSortFields := map[string]string{
		"id":            "id",
		"created_at":    "created_at",
		"updated_at":    "updated_at",
		"number":        "number",
		"title":         "title",
		"status":        "status",
		"priority":      "priority",
		"practice_area": "practice_area",
		"opened_at":     "opened_at",
		"client_id":     "client_id",
		"assignee_id":   "assignee_id",
	}

	sortField := "id"
	if sortBy != nil && *sortBy != "" {
		if field, exists := validSortFields[*sortBy]; exists {
			sortField = field
		}
	}

	sortDirection := "desc"
	if sortOrder != nil && (*sortOrder == "asc" || *sortOrder == "desc") {
		sortDirection = *sortOrder
	}

	query.Order(sortField + " " + sortDirection)
}

func (s *CaseService) Create(req *models.CreateCaseRequest) (*models.Case, error) {
	item := &models.Case{
		Number:       req.Number,
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		PracticeArea: req.PracticeArea,
		OpenedAt:     req.OpenedAt,
		ClientId:     req.ClientId,
		AssigneeId:   req.AssigneeId,
		CreatedById:  req.CreatedById,
	}
	if item.Status == "" {
		item.Status = "open"
	}

	if err := s.DB.Create(item).Error; err != nil {
		s.Logger.Error("failed to create case", logger.String("error", err.Error()))
		return nil, err
	}

	s.Emitter.Emit(CreateCaseEvent, item)

	return s.GetById(item.Id)
}

func (s *CaseService) Update(id uint, req *models.UpdateCaseRequest) (*models.Case, error) {
	item := &models.Case{}
	if err := s.DB.First(item, id).Error; err != nil {
		s.Logger.Error("failed to find case for update",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Status != "" {
		item.Status = req.Status
	}
	if req.Priority != "" {
		item.Priority = req.Priority
	}
	if req.PracticeArea != "" {
		item.PracticeArea = req.PracticeArea
	}
	if !req.OpenedAt.IsZero() {
		item.OpenedAt = req.OpenedAt
	}
	if req.ClientId != 0 {
		item.ClientId = req.ClientId
	}
	if req.AssigneeId != 0 {
		item.AssigneeId = req.AssigneeId
	}

	if err := s.DB.Save(item).Error; err != nil {
		s.Logger.Error("failed to update case",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	result, err := s.GetById(item.Id)
	if err != nil {
		return nil, err
	}

	s.Emitter.Emit(UpdateCaseEvent, result)

	return result, nil
}

func (s *CaseService) Delete(id uint) error {
	item := &models.Case{}
	if err := s.DB.First(item, id).Error; err != nil {
		s.Logger.Error("failed to find case for deletion",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return err
	}

	if err := s.DB.Delete(item).Error; err != nil {
		s.Logger.Error("failed to delete case",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return err
	}

	s.Emitter.Emit(DeleteCaseEvent, item)

	return nil
}

func (s *CaseService) GetById(id uint) (*models.Case, error) {
	item := &models.Case{}

	query := item.Preload(s.DB)
	if err := query.First(item, id).Error; err != nil {
		s.Logger.Error("failed to get case",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	return item, nil
}

func (s *CaseService) GetAll(page *int, limit *int, sortBy *string, sortOrder *string) (*types.PaginatedResponse, error) {
	var items []*models.Case
	var total int64

	query := s.DB.Model(&models.Case{})
	defaultPage := 1
	defaultLimit := 10
	if page == nil {
		page = &defaultPage
	}
	if limit == nil {
		limit = &defaultLimit
	}

	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count cases",
			logger.String("error", err.Error()))
		return nil, err
	}

	offset := (*page - 1) * *limit
	query = query.Offset(offset).Limit(*limit)

	s.applySorting(query, sortBy, sortOrder)

	if err := query.Find(&items).Error; err != nil {
		s.Logger.Error("failed to get cases",
			logger.String("error", err.Error()))
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(*limit)))
	if totalPages == 0 {
		totalPages = 1
	}

	return &types.PaginatedResponse{
		Data: items,
		Pagination: types.Pagination{
			Total:      int(total),
			Page:       *page,
			PageSize:   *limit,
			TotalPages: totalPages,
		},
	}, nil
}

// GetAllForSelect gets all items for select box/dropdown options
func (s *CaseService) GetAllForSelect() ([]*models.Case, error) {
	var items []*models.Case

	query := s.DB.Model(&models.Case{}).
		Select("id, number, title").
		Where("status <> ?", "deleted").
		Order("title ASC")

	if err := query.Find(&items).Error; err != nil {
		s.Logger.Error("Failed to fetch items for select", logger.String("error", err.Error()))
		return nil, err
	}

	return items, nil
}
