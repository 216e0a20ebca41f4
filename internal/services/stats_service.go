package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"gorm.io/gorm"
)

const recentWindow = 7 * 24 * time.Hour

// StatsService computes dashboard aggregates. Everything is a server-side
// COUNT; no rows are fetched just to take their length.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) UserStats(userID uuid.UUID) (*dto.UserStats, error) {
	stats := &dto.UserStats{}
	apps := func() *gorm.DB {
		return s.db.Model(&models.Application{}).Where("user_id = ?", userID)
	}

	if err := apps().Count(&stats.TotalApplications).Error; err != nil {
		return nil, err
	}
	if err := apps().Where("status <> ?", models.StatusApproved).Count(&stats.IncompleteApplications).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Message{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&stats.UnreadMessages).Error; err != nil {
		return nil, err
	}

	enrollments := map[models.ServiceType]*int64{
		models.ServiceTypeEducare:  &stats.Enrollments.Educare,
		models.ServiceTypeEduGuide: &stats.Enrollments.EduGuide,
		models.ServiceTypeFinance:  &stats.Enrollments.Finance,
	}
	for serviceType, count := range enrollments {
		if err := apps().
			Where("service_type = ? AND status = ?", serviceType, models.StatusApproved).
			Count(count).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (s *StatsService) AdminStats() (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}
	since := time.Now().Add(-recentWindow)

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{s.db.Model(&models.User{}), &stats.TotalUsers},
		{s.db.Model(&models.User{}).Where("created_at >= ?", since), &stats.RecentSignups},
		{s.db.Model(&models.Message{}), &stats.TotalMessages},
		{s.db.Model(&models.Message{}).Where("admin_response IS NULL"), &stats.UnrespondedMessages},
		{s.db.Model(&models.Message{}).Where("created_at >= ?", since), &stats.RecentMessages},
		{s.db.Model(&models.Application{}), &stats.TotalApplications},
		{s.db.Model(&models.Application{}).Where("status = ?", models.StatusPending), &stats.PendingApplications},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
