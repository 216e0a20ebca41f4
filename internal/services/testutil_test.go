package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/database"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection to :memory: would see an empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: "$2a$10$notarealhashnotarealhashnotarealhashnotarealhash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.UserProfile {
	t.Helper()

	profile := models.UserProfile{
		ID:             userID,
		FullName:       "Test Person",
		Address:        "12 Test Street",
		EmploymentType: models.EmploymentSalaried,
	}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}

func createTestCourse(t *testing.T, db *gorm.DB, name string) *models.Course {
	t.Helper()

	course := models.Course{
		ID:        uuid.New(),
		Name:      name,
		Fees:      45000,
		Type:      models.CourseTypeDomestic,
		Mode:      models.CourseModeOnline,
		StartDate: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createTestGuidance(t *testing.T, db *gorm.DB, name string) *models.GuidanceService {
	t.Helper()

	svc := models.GuidanceService{
		ID:       uuid.New(),
		Name:     name,
		Category: models.GuidanceCareerCounselling,
		Fee:      1500,
	}
	require.NoError(t, db.Create(&svc).Error)
	return &svc
}

func createTestFinance(t *testing.T, db *gorm.DB, name string) *models.FinanceService {
	t.Helper()

	category := models.FinanceCategory{
		ID:   uuid.New(),
		Name: "Education Loans",
		Type: models.FinanceCategoryLoan,
	}
	require.NoError(t, db.Create(&category).Error)

	svc := models.FinanceService{
		ID:         uuid.New(),
		CategoryID: category.ID,
		Name:       name,
	}
	require.NoError(t, db.Create(&svc).Error)
	svc.Category = category
	return &svc
}

func createTestApplication(t *testing.T, db *gorm.DB, userID, serviceID uuid.UUID, serviceType models.ServiceType, status string, createdAt time.Time) *models.Application {
	t.Helper()

	app := models.Application{
		ID:          uuid.New(),
		UserID:      userID,
		ServiceType: serviceType,
		ServiceID:   serviceID,
		Status:      status,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&app).Error)
	return &app
}
