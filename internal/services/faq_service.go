package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFAQNotFound       = errors.New("faq not found")
	ErrInvalidFAQSection = errors.New("invalid faq section")
)

type FAQService struct {
	db *gorm.DB
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

// List returns FAQs ordered by display order, optionally scoped to one
// section.
func (s *FAQService) List(section string) ([]models.FAQ, error) {
	if section != "" && !models.ValidFAQSection(section) {
		return nil, ErrInvalidFAQSection
	}

	query := s.db.Order("display_order ASC, created_at ASC")
	if section != "" {
		query = query.Where("section = ?", section)
	}

	var faqs []models.FAQ
	err := query.Find(&faqs).Error
	return faqs, err
}

func (s *FAQService) Create(req *dto.FAQRequest) (*models.FAQ, error) {
	faq := models.FAQ{
		ID:           uuid.New(),
		Question:     req.Question,
		Answer:       req.Answer,
		Section:      req.Section,
		DisplayOrder: req.Order,
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	return &faq, nil
}

func (s *FAQService) Update(id uuid.UUID, req *dto.FAQRequest) error {
	result := s.db.Model(&models.FAQ{}).Where("id = ?", id).Updates(map[string]interface{}{
		"question":      req.Question,
		"answer":        req.Answer,
		"section":       req.Section,
		"display_order": req.Order,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func (s *FAQService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.FAQ{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}
