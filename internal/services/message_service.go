package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/metrics"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageService handles support/contact messages: user submission, owner
// listing and read-marking, admin listing and replies.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) Create(userID uuid.UUID, req *dto.CreateMessageRequest) (*models.Message, error) {
	msg := models.Message{
		ID:      uuid.New(),
		UserID:  userID,
		Subject: req.Subject,
		Content: req.Content,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	metrics.MessagesSubmitted.Inc()
	return &msg, nil
}

func (s *MessageService) ListForUser(userID uuid.UUID) ([]dto.MessageResponse, error) {
	var messages []models.Message
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return toMessageResponses(messages, false), nil
}

func (s *MessageService) ListForAdmin() ([]dto.MessageResponse, error) {
	var messages []models.Message
	if err := s.db.Preload("User").Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return toMessageResponses(messages, true), nil
}

// MarkRead flips the read flag. Owner-only; marking an already-read message
// is a no-op, not an error.
func (s *MessageService) MarkRead(id, userID uuid.UUID) error {
	result := s.db.Model(&models.Message{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish "not yours / missing" from "already read".
		var msg models.Message
		if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&msg).Error; err != nil {
			return ErrMessageNotFound
		}
	}
	return nil
}

// Respond sets the admin reply, overwriting any prior one, and stamps the
// response time.
func (s *MessageService) Respond(id uuid.UUID, response string) error {
	result := s.db.Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"admin_response": response,
			"responded_at":   s.db.NowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func toMessageResponses(messages []models.Message, withUser bool) []dto.MessageResponse {
	results := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		msg := &messages[i]
		resp := dto.MessageResponse{
			ID:            msg.ID,
			Subject:       msg.Subject,
			Content:       msg.Content,
			AdminResponse: msg.AdminResponse,
			RespondedAt:   msg.RespondedAt,
			IsRead:        msg.IsRead,
			CreatedAt:     msg.CreatedAt,
		}
		if withUser {
			resp.User = &dto.UserSummary{
				ID:       msg.User.ID,
				Email:    msg.User.Email,
				Username: msg.User.Username,
			}
		}
		results = append(results, resp)
	}
	return results
}
