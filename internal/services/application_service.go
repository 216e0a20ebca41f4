package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/metrics"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrProfileIncomplete   = errors.New("profile must be completed before applying for finance services")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidState        = errors.New("only pending applications can be withdrawn")
)

// ApplicationService owns the application lifecycle: submission, listing
// with resolved offerings, admin response, and status overwrite.
type ApplicationService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewApplicationService(db *gorm.DB, catalog *CatalogService) *ApplicationService {
	return &ApplicationService{db: db, catalog: catalog}
}

// Create submits an application. Creation is stricter than reading: the
// offering must exist now, even though listings tolerate orphaned
// references later. Finance applications additionally require a completed
// profile. Duplicate submissions are allowed — a user may legitimately
// reapply after a rejection.
func (s *ApplicationService) Create(userID uuid.UUID, req *dto.CreateApplicationRequest) (*models.Application, error) {
	summary, err := s.catalog.Resolve(req.ServiceType, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, ErrServiceNotFound
	}

	if req.ServiceType == models.ServiceTypeFinance {
		var profile models.UserProfile
		if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
			return nil, ErrProfileIncomplete
		}
	}

	app := models.Application{
		ID:          uuid.New(),
		UserID:      userID,
		ServiceType: req.ServiceType,
		ServiceID:   req.ServiceID,
		Status:      models.StatusPending,
	}

	if err := s.db.Create(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	metrics.ApplicationsSubmitted.WithLabelValues(string(req.ServiceType)).Inc()
	return &app, nil
}

// ListForUser returns the caller's applications, newest first, with status
// and type filters pushed to the store.
func (s *ApplicationService) ListForUser(userID uuid.UUID, status string, serviceType models.ServiceType) ([]dto.ApplicationResponse, error) {
	query := s.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var apps []models.Application
	if err := query.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return s.attachServices(apps, false)
}

// ListForAdmin returns applications across all users with owner identity and
// resolved offerings. The search term matches username, email, or offering
// name case-insensitively; the offering-name leg runs after resolution since
// service_id is not a joinable foreign key.
func (s *ApplicationService) ListForAdmin(search, status string, serviceType models.ServiceType) ([]dto.ApplicationResponse, error) {
	query := s.db.Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var apps []models.Application
	if err := query.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}

	results, err := s.attachServices(apps, true)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return results, nil
	}

	term := strings.ToLower(search)
	filtered := make([]dto.ApplicationResponse, 0, len(results))
	for _, r := range results {
		if matchesSearch(&r, term) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func matchesSearch(r *dto.ApplicationResponse, term string) bool {
	if r.User != nil {
		if strings.Contains(strings.ToLower(r.User.Username), term) ||
			strings.Contains(strings.ToLower(r.User.Email), term) {
			return true
		}
	}
	name := "Unknown Service"
	if r.Service != nil {
		name = r.Service.Name
	}
	return strings.Contains(strings.ToLower(name), term)
}

func (s *ApplicationService) attachServices(apps []models.Application, withUser bool) ([]dto.ApplicationResponse, error) {
	results := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		app := &apps[i]

		summary, err := s.catalog.Resolve(app.ServiceType, app.ServiceID)
		if err != nil {
			return nil, err
		}

		resp := dto.ApplicationResponse{
			ID:            app.ID,
			ServiceType:   app.ServiceType,
			ServiceID:     app.ServiceID,
			Status:        app.Status,
			AdminResponse: app.AdminResponse,
			RespondedAt:   app.RespondedAt,
			CreatedAt:     app.CreatedAt,
			Service:       summary,
		}
		if withUser {
			resp.User = &dto.UserSummary{
				ID:       app.User.ID,
				Email:    app.User.Email,
				Username: app.User.Username,
			}
		}
		results = append(results, resp)
	}
	return results, nil
}

// Respond attaches the admin's free-text reply and stamps the response time.
// Status is left untouched.
func (s *ApplicationService) Respond(id uuid.UUID, response string) error {
	result := s.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"admin_response": response,
			"responded_at":   s.db.NowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// SetStatus overwrites the status. Any status is reachable from any other
// and repeating a target status is a no-op; there is no transition table.
func (s *ApplicationService) SetStatus(id uuid.UUID, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return ErrApplicationNotFound
	}

	return s.db.Model(&app).Update("status", status).Error
}

// Delete withdraws an application. Owner-only, and only while pending —
// decided applications are kept regardless of what the client asks for.
func (s *ApplicationService) Delete(id, userID uuid.UUID) error {
	var app models.Application
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&app).Error; err != nil {
		return ErrApplicationNotFound
	}

	if app.Status != models.StatusPending {
		return ErrInvalidState
	}

	return s.db.Delete(&app).Error
}
