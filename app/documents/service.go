package documents

import (
	"math"
	"mime/multipart"

	"praxis/app/models"
	"praxis/core/emitter"
	"praxis/core/logger"
	"praxis/core/storage"
	"praxis/core/types"

	"gorm.io/gorm"
)

const (
	CreateDocumentEvent = "documents.create"
	UpdateDocumentEvent = "documents.update"
	DeleteDocumentEvent = "documents.delete"
)

type DocumentService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Storage *storage.ActiveStorage
	Logger  logger.Logger
}

func NewDocumentService(db *gorm.DB, emitter *emitter.Emitter, storage *storage.ActiveStorage, logger logger.Logger) *DocumentService {
	return &DocumentService{
		DB:      db,
		Emitter: emitter,
		Storage: storage,
		Logger:  logger,
	}
}

// applySorting applies sorting to the query based on the sort and order parameters
func (s *DocumentService) applySorting(query *gorm.DB, sortBy *string, sortOrder *string) {
	validSortFields := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"updated_at": "updated_at",
		"title":      "title",
		"file_name":  "file_name",
		"file_size":  "file_size",
		"category":   "category",
		"case_id":    "case_id",
		"client_id":  "client_id",
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

func (s *DocumentService) Create(req *models.CreateDocumentRequest) (*models.Document, error) {
	item := &models.Document{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Tags:         req.Tags,
		CaseId:       req.CaseId,
		ClientId:     req.ClientId,
		UploadedById: req.UploadedById,
	}

	if err := s.DB.Create(item).Error; err != nil {
		s.Logger.Error("failed to create document", logger.String("error", err.Error()))
		return nil, err
	}

	s.Emitter.Emit(CreateDocumentEvent, item)

	return s.GetById(item.Id)
}

func (s *DocumentService) Update(id uint, req *models.UpdateDocumentRequest) (*models.Document, error) {
	item := &models.Document{}
	if err := s.DB.First(item, id).Error; err != nil {
		s.Logger.Error("failed to find document for update",
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
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Tags != "" {
		item.Tags = req.Tags
	}
	if req.CaseId != 0 {
		item.CaseId = req.CaseId
	}
	if req.ClientId != 0 {
		item.ClientId = req.ClientId
	}

	if err := s.DB.Save(item).Error; err != nil {
		s.Logger.Error("failed to update document",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	result, err := s.GetById(item.Id)
	if err != nil {
		return nil, err
	}

	s.Emitter.Emit(UpdateDocumentEvent, result)

	return result, nil
}

func (s *DocumentService) Delete(id uint) error {
	item := &models.Document{}
	if err := s.DB.Preload("File").First(item, id).Error; err != nil {
		s.Logger.Error("failed to find document for deletion",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return err
	}

	// Delete the stored file if any
	if item.File != nil {
		if err := s.Storage.Delete(item.File); err != nil {
			s.Logger.Error("failed to delete document file",
				logger.String("error", err.Error()),
				logger.Int("id", int(id)))
			return err
		}
	}

	if err := s.DB.Delete(item).Error; err != nil {
		s.Logger.Error("failed to delete document",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return err
	}

	s.Emitter.Emit(DeleteDocumentEvent, item)

	return nil
}

func (s *DocumentService) GetById(id uint) (*models.Document, error) {
	item := &models.Document{}

	query := item.Preload(s.DB)
	if err := query.First(item, id).Error; err != nil {
		s.Logger.Error("failed to get document",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	return item, nil
}

func (s *DocumentService) GetAll(page *int, limit *int, sortBy *string, sortOrder *string) (*types.PaginatedResponse, error) {
	var items []*models.Document
	var total int64

	query := s.DB.Model(&models.Document{}).Where("is_deleted = ?", false)
	defaultPage := 1
	defaultLimit := 10
	if page == nil {
		page = &defaultPage
	}
	if limit == nil {
		limit = &defaultLimit
	}

	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count documents",
			logger.String("error", err.Error()))
		return nil, err
	}

	offset := (*page - 1) * *limit
	query = query.Offset(offset).Limit(*limit)

	s.applySorting(query, sortBy, sortOrder)

	if err := query.Find(&items).Error; err != nil {
		s.Logger.Error("failed to get documents",
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

// UploadFile uploads a file for the Document's File field
func (s *DocumentService) UploadFile(id uint, file *multipart.FileHeader) (*models.Document, error) {
	item := &models.Document{}
	if err := s.DB.Preload("File").First(item, id).Error; err != nil {
		s.Logger.Error("failed to find document",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	// Delete existing file if any
	if item.File != nil {
		if err := s.Storage.Delete(item.File); err != nil {
			s.Logger.Error("failed to delete existing file",
				logger.String("error", err.Error()),
				logger.Int("id", int(id)))
			return nil, err
		}
	}

	attachment, err := s.Storage.Attach(item, "file", file)
	if err != nil {
		s.Logger.Error("failed to attach file",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	// Mirror file facts onto the searchable columns
	item.FileName = attachment.Filename
	item.FileSize = attachment.Size
	if err := s.DB.Save(item).Error; err != nil {
		s.Logger.Error("failed to save document file info",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	return s.GetById(id)
}

// RemoveFile removes the stored file from the Document
func (s *DocumentService) RemoveFile(id uint) (*models.Document, error) {
	item := &models.Document{}
	if err := s.DB.Preload("File").First(item, id).Error; err != nil {
		s.Logger.Error("failed to find document",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	if item.File == nil {
		return item, nil
	}

	if err := s.Storage.Delete(item.File); err != nil {
		s.Logger.Error("failed to delete file",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	item.FileName = ""
	item.FileSize = 0
	if err := s.DB.Save(item).Error; err != nil {
		s.Logger.Error("failed to clear document file info",
			logger.String("error", err.Error()),
			logger.Int("id", int(id)))
		return nil, err
	}

	return s.GetById(id)
}
