package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := createTestCourse(t, db, "MBBS Abroad Prep")
	guidance := createTestGuidance(t, db, "Career Counselling Session")
	finance := createTestFinance(t, db, "Education Loan Assistance")

	t.Run("course", func(t *testing.T) {
		summary, err := svc.Resolve(models.ServiceTypeEducare, course.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, course.Name, summary.Name)
		assert.Equal(t, models.ServiceTypeEducare, summary.Type)
		assert.Equal(t, "Domestic - Online", summary.Details)
	})

	t.Run("guidance", func(t *testing.T) {
		summary, err := svc.Resolve(models.ServiceTypeEduGuide, guidance.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, guidance.Name, summary.Name)
		assert.Equal(t, "CAREER COUNSELLING", summary.Details)
	})

	t.Run("finance", func(t *testing.T) {
		summary, err := svc.Resolve(models.ServiceTypeFinance, finance.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, finance.Name, summary.Name)
		assert.Equal(t, models.FinanceCategoryLoan, summary.Details)
	})

	t.Run("unknown tag is an error", func(t *testing.T) {
		_, err := svc.Resolve("astrology", course.ID)
		assert.ErrorIs(t, err, ErrInvalidServiceType)
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		summary, err := svc.Resolve(models.ServiceTypeEducare, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, summary)
	})
}

func TestCourseCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	created, err := svc.CreateCourse(&dto.CourseRequest{
		Name: "IELTS Coaching",
		Fees: 12000,
		Type: models.CourseTypeAbroad,
		Mode: models.CourseModeOffline,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)

	err = svc.UpdateCourse(created.ID, &dto.CourseRequest{
		Name: "IELTS Coaching (Batch 2)",
		Fees: 14000,
		Type: models.CourseTypeAbroad,
		Mode: models.CourseModeOnline,
	})
	require.NoError(t, err)

	var got models.Course
	require.NoError(t, db.First(&got, "id = ?", created.ID).Error)
	assert.Equal(t, "IELTS Coaching (Batch 2)", got.Name)
	assert.Equal(t, models.CourseModeOnline, got.Mode)

	assert.ErrorIs(t, svc.UpdateCourse(uuid.New(), &dto.CourseRequest{Name: "x"}), ErrServiceNotFound)

	require.NoError(t, svc.DeleteCourse(created.ID))
	assert.ErrorIs(t, svc.DeleteCourse(created.ID), ErrServiceNotFound)
}

func TestGuidanceServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	location := "Ahmedabad"
	minStudents := 10
	created, err := svc.CreateGuidanceService(&dto.GuidanceServiceRequest{
		Name:        "College Admission Support",
		Category:    models.GuidanceCollegeAdmission,
		Location:    &location,
		Fee:         2500,
		MinStudents: &minStudents,
	})
	require.NoError(t, err)

	list, err := svc.ListGuidanceServices()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].MinStudents)
	assert.Equal(t, 10, *list[0].MinStudents)

	require.NoError(t, svc.DeleteGuidanceService(created.ID))
	assert.ErrorIs(t, svc.UpdateGuidanceService(created.ID, &dto.GuidanceServiceRequest{Name: "x"}), ErrServiceNotFound)
}

func TestFinanceCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.CreateFinanceCategory(&dto.FinanceCategoryRequest{
		Name: "Document Services",
		Type: models.FinanceCategoryDocument,
	})
	require.NoError(t, err)

	t.Run("create requires an existing category", func(t *testing.T) {
		_, err := svc.CreateFinanceService(&dto.FinanceServiceRequest{
			CategoryID: uuid.New(),
			Name:       "PAN Card Assistance",
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	duration := "7 days"
	created, err := svc.CreateFinanceService(&dto.FinanceServiceRequest{
		CategoryID:        category.ID,
		Name:              "PAN Card Assistance",
		Duration:          &duration,
		Requirements:      []string{"Aadhaar card", "Passport photo"},
		DocumentsRequired: []string{"Address proof"},
	})
	require.NoError(t, err)
	assert.Equal(t, category.ID, created.Category.ID)

	list, err := svc.ListFinanceServices()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Aadhaar card", "Passport photo"}, []string(list[0].Requirements))
	assert.Equal(t, "Document Services", list[0].Category.Name)
}
