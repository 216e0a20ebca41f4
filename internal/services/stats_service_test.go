package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	user := createTestUser(t, db, "student@example.com", "student")
	other := createTestUser(t, db, "other@example.com", "other")

	course := createTestCourse(t, db, "NEET Coaching")
	guidance := createTestGuidance(t, db, "Career Counselling Session")
	finance := createTestFinance(t, db, "Education Loan Assistance")

	now := time.Now()
	createTestApplication(t, db, user.ID, course.ID, models.ServiceTypeEducare, models.StatusApproved, now)
	createTestApplication(t, db, user.ID, course.ID, models.ServiceTypeEducare, models.StatusPending, now)
	createTestApplication(t, db, user.ID, guidance.ID, models.ServiceTypeEduGuide, models.StatusApproved, now)
	createTestApplication(t, db, user.ID, finance.ID, models.ServiceTypeFinance, models.StatusRejected, now)
	createTestApplication(t, db, other.ID, course.ID, models.ServiceTypeEducare, models.StatusApproved, now)

	require.NoError(t, db.Create(&models.Message{
		ID: uuid.New(), UserID: user.ID, Subject: "a", Content: "first unread question here",
	}).Error)
	require.NoError(t, db.Create(&models.Message{
		ID: uuid.New(), UserID: user.ID, Subject: "b", Content: "already read question here", IsRead: true,
	}).Error)

	stats, err := svc.UserStats(user.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalApplications)
	// Anything not approved counts as incomplete, rejected included.
	assert.EqualValues(t, 2, stats.IncompleteApplications)
	assert.EqualValues(t, 1, stats.UnreadMessages)
	assert.EqualValues(t, 1, stats.Enrollments.Educare)
	assert.EqualValues(t, 1, stats.Enrollments.EduGuide)
	assert.EqualValues(t, 0, stats.Enrollments.Finance)
}

func TestAdminStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	alice := createTestUser(t, db, "alice@example.com", "alice")
	bob := createTestUser(t, db, "bob@example.com", "bob")
	course := createTestCourse(t, db, "NEET Coaching")

	createTestApplication(t, db, alice.ID, course.ID, models.ServiceTypeEducare, models.StatusPending, time.Now())
	createTestApplication(t, db, bob.ID, course.ID, models.ServiceTypeEducare, models.StatusApproved, time.Now())

	response := "handled"
	now := time.Now()
	require.NoError(t, db.Create(&models.Message{
		ID: uuid.New(), UserID: alice.ID, Subject: "open", Content: "nobody has answered this yet",
	}).Error)
	require.NoError(t, db.Create(&models.Message{
		ID: uuid.New(), UserID: bob.ID, Subject: "done", Content: "this one has been answered",
		AdminResponse: &response, RespondedAt: &now,
	}).Error)

	stats, err := svc.AdminStats()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.RecentSignups)
	assert.EqualValues(t, 2, stats.TotalMessages)
	assert.EqualValues(t, 1, stats.UnrespondedMessages)
	assert.EqualValues(t, 2, stats.RecentMessages)
	assert.EqualValues(t, 2, stats.TotalApplications)
	assert.EqualValues(t, 1, stats.PendingApplications)
}
