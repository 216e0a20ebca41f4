package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/config"
	"github.com/prashilgroup/prashil-backend/internal/database"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/handlers"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"github.com/prashilgroup/prashil-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	// The health endpoint pings through the package-level handle.
	database.DB = db

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}

	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	applicationService := services.NewApplicationService(db, catalogService)
	messageService := services.NewMessageService(db)
	profileService := services.NewProfileService(db)
	faqService := services.NewFAQService(db)
	statsService := services.NewStatsService(db)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewFAQHandler(faqService),
		handlers.NewProfileHandler(profileService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewMessageHandler(messageService),
		handlers.NewStatsHandler(statsService),
	)

	return &testServer{app: app, db: db}
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (s *testServer) register(t *testing.T, email, username string) (token string, userID uuid.UUID) {
	t.Helper()

	resp, body := s.request(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token = body["access_token"].(string)
	user := body["user"].(map[string]interface{})
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)
	return token, userID
}

func TestHealthAndPublicCatalog(t *testing.T) {
	srv := newTestServer(t)
	course := models.Course{
		ID: uuid.New(), Name: "NEET Coaching", Fees: 45000,
		Type: models.CourseTypeDomestic, Mode: models.CourseModeOnline,
	}
	require.NoError(t, srv.db.Create(&course).Error)

	resp, body := srv.request(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = srv.request(t, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["courses"], 1)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/applications", "/api/messages", "/api/profile", "/api/dashboard/stats"} {
		resp, _ := srv.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAdminRoutesRequireCapability(t *testing.T) {
	srv := newTestServer(t)
	userToken, _ := srv.register(t, "user@example.com", "user")
	adminToken, adminID := srv.register(t, "admin@example.com", "admin")
	require.NoError(t, srv.db.Create(&models.AdminUser{ID: adminID}).Error)

	resp, _ := srv.request(t, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = srv.request(t, http.MethodGet, "/api/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = srv.request(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplicationLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	userToken, _ := srv.register(t, "student@example.com", "student")
	adminToken, adminID := srv.register(t, "staff@example.com", "staff")
	require.NoError(t, srv.db.Create(&models.AdminUser{ID: adminID}).Error)

	course := models.Course{
		ID: uuid.New(), Name: "NEET Coaching", Fees: 45000,
		Type: models.CourseTypeDomestic, Mode: models.CourseModeOnline,
	}
	require.NoError(t, srv.db.Create(&course).Error)

	// Submit
	resp, body := srv.request(t, http.MethodPost, "/api/applications", userToken, dto.CreateApplicationRequest{
		ServiceType: models.ServiceTypeEducare,
		ServiceID:   course.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", body["status"])
	appID := body["id"].(string)

	// Admin sees it with owner identity and resolved offering
	resp, body = srv.request(t, http.MethodGet, "/api/admin/applications", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])
	listed := body["applications"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "student", listed["user"].(map[string]interface{})["username"])
	assert.Equal(t, "NEET Coaching", listed["service"].(map[string]interface{})["name"])

	// Respond then approve
	resp, _ = srv.request(t, http.MethodPut, "/api/admin/applications/"+appID+"/response", adminToken, dto.RespondRequest{
		Response: "Please share your marksheet.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = srv.request(t, http.MethodPut, "/api/admin/applications/"+appID+"/status", adminToken, dto.SetStatusRequest{
		Status: models.StatusApproved,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Owner sees the decision and the reply
	resp, body = srv.request(t, http.MethodGet, "/api/applications", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := body["applications"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "approved", mine["status"])
	assert.Equal(t, "Please share your marksheet.", mine["admin_response"])

	// Approved applications cannot be withdrawn
	resp, _ = srv.request(t, http.MethodDelete, "/api/applications/"+appID, userToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFinanceApplicationNeedsProfile(t *testing.T) {
	srv := newTestServer(t)
	token, _ := srv.register(t, "borrower@example.com", "borrower")

	category := models.FinanceCategory{ID: uuid.New(), Name: "Loans", Type: models.FinanceCategoryLoan}
	require.NoError(t, srv.db.Create(&category).Error)
	finance := models.FinanceService{ID: uuid.New(), CategoryID: category.ID, Name: "Education Loan"}
	require.NoError(t, srv.db.Create(&finance).Error)

	req := dto.CreateApplicationRequest{
		ServiceType: models.ServiceTypeFinance,
		ServiceID:   finance.ID,
	}

	resp, body := srv.request(t, http.MethodPost, "/api/applications", token, req)
	assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)
	assert.Equal(t, "/dashboard/profile", body["redirect"])

	// Completing the profile clears the precondition.
	resp, _ = srv.request(t, http.MethodPut, "/api/profile", token, dto.UpdateProfileRequest{
		Username:       "borrower",
		Email:          "borrower@example.com",
		FullName:       "Asha Patel",
		Address:        "14 MG Road, Surat",
		EmploymentType: models.EmploymentSalaried,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = srv.request(t, http.MethodPost, "/api/applications", token, req)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestMessageFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token, _ := srv.register(t, "student@example.com", "student")

	resp, body := srv.request(t, http.MethodPost, "/api/messages", token, dto.CreateMessageRequest{
		Subject: "Visa question",
		Content: "Which documents do I need for the visa interview?",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	msgID := body["id"].(string)

	resp, _ = srv.request(t, http.MethodPut, "/api/messages/"+msgID+"/read", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = srv.request(t, http.MethodGet, "/api/messages", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := body["messages"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, listed["is_read"])
}

func TestValidationErrorsCarryFieldMap(t *testing.T) {
	srv := newTestServer(t)

	resp, body := srv.request(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    "not-an-email",
		Username: "x",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
}
