package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileService owns account profile reads/updates and the admin user
// directory.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the account plus its profile; Profile is nil until the user
// completes the profile screen.
func (s *ProfileService) Get(userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	resp := &dto.ProfileResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}

	var profile models.UserProfile
	err := s.db.First(&profile, "id = ?", userID).Error
	switch {
	case err == nil:
		resp.Profile = &profile
	case errors.Is(err, gorm.ErrRecordNotFound):
		// lazily created on first update
	default:
		return nil, err
	}

	return resp, nil
}

// Update writes account fields and upserts the profile record in one
// transaction.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if req.Email != user.Email {
		var other models.User
		if err := s.db.Where("email = ? AND id <> ?", req.Email, userID).First(&other).Error; err == nil {
			return ErrEmailTaken
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(map[string]interface{}{
			"username": req.Username,
			"email":    req.Email,
		}).Error; err != nil {
			return err
		}

		profile := models.UserProfile{
			ID:             userID,
			FullName:       req.FullName,
			Address:        req.Address,
			EmploymentType: req.EmploymentType,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "address", "employment_type", "updated_at"}),
		}).Create(&profile).Error
	})
}

// HasProfile reports whether the user completed the profile screen.
func (s *ProfileService) HasProfile(userID uuid.UUID) bool {
	var profile models.UserProfile
	return s.db.First(&profile, "id = ?", userID).Error == nil
}

// ListUsers is the admin directory: every account with per-user application
// and message counts, optionally filtered by a case-insensitive search on
// username or email.
func (s *ProfileService) ListUsers(search string) ([]dto.DirectoryEntry, error) {
	query := s.db.Model(&models.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]dto.DirectoryEntry, 0, len(users))
	for i := range users {
		user := &users[i]
		entry := dto.DirectoryEntry{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		}

		if err := s.db.Model(&models.Application{}).Where("user_id = ?", user.ID).Count(&entry.ApplicationsCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count applications: %w", err)
		}
		if err := s.db.Model(&models.Message{}).Where("user_id = ?", user.ID).Count(&entry.MessagesCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count messages: %w", err)
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
