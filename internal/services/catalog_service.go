package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrServiceNotFound    = errors.New("service not found")
	ErrCategoryNotFound   = errors.New("finance category not found")
)

// CatalogService owns the three offering catalogs and the polymorphic
// (service_type, service_id) resolution the application lifecycle depends on.
type CatalogService struct {
	db        *gorm.DB
	resolvers map[models.ServiceType]func(uuid.UUID) (*dto.ServiceSummary, error)
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	s := &CatalogService{db: db}
	s.resolvers = map[models.ServiceType]func(uuid.UUID) (*dto.ServiceSummary, error){
		models.ServiceTypeEducare:  s.resolveCourse,
		models.ServiceTypeEduGuide: s.resolveGuidance,
		models.ServiceTypeFinance:  s.resolveFinance,
	}
	return s
}

// Resolve looks up an offering by its discriminated reference. An unknown
// tag is an error; a missing row is not — historical applications may point
// at offerings since deleted from the catalog, and callers render those as
// "Unknown Service" instead of failing the whole listing.
func (s *CatalogService) Resolve(serviceType models.ServiceType, serviceID uuid.UUID) (*dto.ServiceSummary, error) {
	resolve, ok := s.resolvers[serviceType]
	if !ok {
		return nil, ErrInvalidServiceType
	}
	return resolve(serviceID)
}

func (s *CatalogService) resolveCourse(id uuid.UUID) (*dto.ServiceSummary, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.ServiceSummary{
		Type:    models.ServiceTypeEducare,
		ID:      course.ID,
		Name:    course.Name,
		Details: fmt.Sprintf("%s - %s", course.Type, course.Mode),
	}, nil
}

func (s *CatalogService) resolveGuidance(id uuid.UUID) (*dto.ServiceSummary, error) {
	var svc models.GuidanceService
	if err := s.db.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.ServiceSummary{
		Type:    models.ServiceTypeEduGuide,
		ID:      svc.ID,
		Name:    svc.Name,
		Details: strings.ToUpper(strings.ReplaceAll(svc.Category, "_", " ")),
	}, nil
}

func (s *CatalogService) resolveFinance(id uuid.UUID) (*dto.ServiceSummary, error) {
	var svc models.FinanceService
	if err := s.db.Preload("Category").First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.ServiceSummary{
		Type:    models.ServiceTypeFinance,
		ID:      svc.ID,
		Name:    svc.Name,
		Details: svc.Category.Type,
	}, nil
}

// Courses

func (s *CatalogService) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Order("start_date ASC").Find(&courses).Error
	return courses, err
}

func (s *CatalogService) CreateCourse(req *dto.CourseRequest) (*models.Course, error) {
	course := models.Course{
		ID:        uuid.New(),
		Name:      req.Name,
		Fees:      req.Fees,
		Type:      req.Type,
		Mode:      req.Mode,
		StartDate: req.StartDate,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return &course, nil
}

func (s *CatalogService) UpdateCourse(id uuid.UUID, req *dto.CourseRequest) error {
	result := s.db.Model(&models.Course{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       req.Name,
		"fees":       req.Fees,
		"type":       req.Type,
		"mode":       req.Mode,
		"start_date": req.StartDate,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (s *CatalogService) DeleteCourse(id uuid.UUID) error {
	return s.deleteByID(&models.Course{}, id)
}

// Guidance services

func (s *CatalogService) ListGuidanceServices() ([]models.GuidanceService, error) {
	var services []models.GuidanceService
	err := s.db.Order("name ASC").Find(&services).Error
	return services, err
}

func (s *CatalogService) CreateGuidanceService(req *dto.GuidanceServiceRequest) (*models.GuidanceService, error) {
	svc := models.GuidanceService{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Fee:         req.Fee,
		MinStudents: req.MinStudents,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create guidance service: %w", err)
	}
	return &svc, nil
}

func (s *CatalogService) UpdateGuidanceService(id uuid.UUID, req *dto.GuidanceServiceRequest) error {
	result := s.db.Model(&models.GuidanceService{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":         req.Name,
		"description":  req.Description,
		"category":     req.Category,
		"location":     req.Location,
		"fee":          req.Fee,
		"min_students": req.MinStudents,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (s *CatalogService) DeleteGuidanceService(id uuid.UUID) error {
	return s.deleteByID(&models.GuidanceService{}, id)
}

// Finance catalog

func (s *CatalogService) ListFinanceCategories() ([]models.FinanceCategory, error) {
	var categories []models.FinanceCategory
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CatalogService) CreateFinanceCategory(req *dto.FinanceCategoryRequest) (*models.FinanceCategory, error) {
	category := models.FinanceCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create finance category: %w", err)
	}
	return &category, nil
}

func (s *CatalogService) ListFinanceServices() ([]models.FinanceService, error) {
	var services []models.FinanceService
	err := s.db.Preload("Category").Order("name ASC").Find(&services).Error
	return services, err
}

func (s *CatalogService) CreateFinanceService(req *dto.FinanceServiceRequest) (*models.FinanceService, error) {
	var category models.FinanceCategory
	if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	svc := models.FinanceService{
		ID:                uuid.New(),
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Description:       req.Description,
		MinAmount:         req.MinAmount,
		MaxAmount:         req.MaxAmount,
		InterestRate:      req.InterestRate,
		ProcessingFee:     req.ProcessingFee,
		Duration:          req.Duration,
		Requirements:      datatypes.NewJSONSlice(req.Requirements),
		DocumentsRequired: datatypes.NewJSONSlice(req.DocumentsRequired),
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create finance service: %w", err)
	}
	svc.Category = category
	return &svc, nil
}

func (s *CatalogService) UpdateFinanceService(id uuid.UUID, req *dto.FinanceServiceRequest) error {
	var category models.FinanceCategory
	if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		return ErrCategoryNotFound
	}

	result := s.db.Model(&models.FinanceService{}).Where("id = ?", id).Updates(map[string]interface{}{
		"category_id":        req.CategoryID,
		"name":               req.Name,
		"description":        req.Description,
		"min_amount":         req.MinAmount,
		"max_amount":         req.MaxAmount,
		"interest_rate":      req.InterestRate,
		"processing_fee":     req.ProcessingFee,
		"duration":           req.Duration,
		"requirements":       datatypes.NewJSONSlice(req.Requirements),
		"documents_required": datatypes.NewJSONSlice(req.DocumentsRequired),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (s *CatalogService) DeleteFinanceService(id uuid.UUID) error {
	return s.deleteByID(&models.FinanceService{}, id)
}

func (s *CatalogService) deleteByID(model interface{}, id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
