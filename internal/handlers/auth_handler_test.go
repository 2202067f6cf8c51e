package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

const (
	testUserID  = "0190f5d2-7c2e-7000-8000-000000000001"
	testOtherID = "0190f5d2-7c2e-7000-8000-000000000002"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(input services.RegisterInput) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	attemptLoginFn   func(email, password string) (*models.User, error)
	updateProfileFn  func(userID string, patch services.UserPatch) (*models.User, error)
	changePasswordFn func(userID, current, next string) error
	getSettingsFn    func(userID string) (*models.UserSettings, error)
	updateSettingsFn func(userID string, patch services.SettingsPatch) (*models.UserSettings, error)
	deleteUserFn     func(userID string) error
}

func (m *mockUserService) CreateUser(input services.RegisterInput) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(input)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(_ string) (*models.User, error) {
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(_ *models.User, _ string) bool {
	return true
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) UpdateProfile(userID string, patch services.UserPatch) (*models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(userID, patch)
	}
	return &models.User{}, nil
}

func (m *mockUserService) ChangePassword(userID, current, next string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(userID, current, next)
	}
	return nil
}

func (m *mockUserService) GetSettings(userID string) (*models.UserSettings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(userID)
	}
	return &models.UserSettings{}, nil
}

func (m *mockUserService) UpdateSettings(userID string, patch services.SettingsPatch) (*models.UserSettings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(userID, patch)
	}
	return &models.UserSettings{}, nil
}

func (m *mockUserService) DeleteUser(userID string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(userID)
	}
	return nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type auditEntry struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func testTokens() *middleware.TokenManager {
	return middleware.NewTokenManager("test-secret", time.Hour)
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// dataObject returns the data payload of a success envelope.
func dataObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %v", result)
	}
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got: %v", result["data"])
	}
	return data
}

// dataList returns the data payload of a success envelope holding a list.
func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %v", result)
	}
	data, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("expected data list, got: %v", result["data"])
	}
	return data
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["success"] != false {
		t.Errorf("expected success=false, got %v", result["success"])
	}
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	auth := r.Group("/auth", injectUserID(testUserID))
	auth.GET("/profile", handler.GetProfile)
	auth.PUT("/profile", handler.UpdateProfile)
	auth.DELETE("/profile", handler.DeleteProfile)
	auth.PUT("/password", handler.ChangePassword)
	auth.GET("/settings", handler.GetSettings)
	auth.PUT("/settings", handler.UpdateSettings)
	r.GET("/anonymous/profile", handler.GetProfile)
	return r
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 with user and token", func(t *testing.T) {
		var got services.RegisterInput
		userSvc := &mockUserService{
			createUserFn: func(input services.RegisterInput) (*models.User, error) {
				got = input
				return &models.User{Base: models.Base{ID: testUserID}, Email: input.Email, Name: input.Name}, nil
			},
		}
		audit := &mockAuditService{}
		tokens := testTokens()
		r := setupAuthRouter(NewAuthHandler(userSvc, audit, tokens))

		rec := doRequest(r, "POST", "/auth/register", `{"name":"Asha","email":"a@x.com","password":"Passw0rd!"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, rec)
		token, _ := data["token"].(string)
		claims, err := tokens.ParseToken(token)
		if err != nil {
			t.Fatalf("expected a valid token, got %v", err)
		}
		if claims.UserID != testUserID || claims.Email != "a@x.com" {
			t.Errorf("unexpected claims %+v", claims)
		}
		user := data["user"].(map[string]interface{})
		if user["email"] != "a@x.com" || user["name"] != "Asha" {
			t.Errorf("unexpected user %v", user)
		}
		if _, leaked := user["password"]; leaked {
			t.Error("password must not be serialised")
		}
		if got.Password != "Passw0rd!" {
			t.Errorf("expected password to reach the service, got %q", got.Password)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditActionRegister {
			t.Errorf("expected register audit entry, got %+v", audit.entries)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"A","password":"password123"}`},
		{"missing name", `{"email":"a@x.com","password":"password123"}`},
		{"short password", `{"name":"A","email":"a@x.com","password":"short"}`},
		{"invalid email", `{"name":"A","email":"not-an-email","password":"password123"}`},
		{"malformed json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, testTokens()))
			rec := doRequest(r, "POST", "/auth/register", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
		})
	}

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_ services.RegisterInput) (*models.User, error) {
				return nil, apperrors.ErrUserExists
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))

		rec := doRequest(r, "POST", "/auth/register", `{"name":"A","email":"dup@x.com","password":"password123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "USER_EXISTS")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(userSvc, audit, testTokens()))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"a@x.com","password":"Passw0rd!"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, rec)
		if data["token"] == "" || data["expires_in"].(float64) != 3600 {
			t.Errorf("unexpected auth payload %v", data)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditActionLogin {
			t.Errorf("expected login audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(userSvc, audit, testTokens()))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"a@x.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entries, got %+v", audit.entries)
		}
	})

	t.Run("returns 500 on store failure", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.Wrap(apperrors.ErrServerError, errors.New("disk I/O error"))
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"a@x.com","password":"x"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SERVER_ERROR")
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("get returns the caller", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "a@x.com", Name: "Asha"}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))

		rec := doRequest(r, "GET", "/auth/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if dataObject(t, rec)["id"] != testUserID {
			t.Errorf("unexpected profile %s", rec.Body.String())
		}
	})

	t.Run("get without user is unauthorized", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, testTokens()))
		rec := doRequest(r, "GET", "/anonymous/profile", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})

	t.Run("update passes only provided fields", func(t *testing.T) {
		var got services.UserPatch
		userSvc := &mockUserService{
			updateProfileFn: func(id string, patch services.UserPatch) (*models.User, error) {
				got = patch
				return &models.User{Base: models.Base{ID: id}, Name: *patch.Name}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))

		rec := doRequest(r, "PUT", "/auth/profile", `{"name":"New Name"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Name == nil || *got.Name != "New Name" || got.Phone != nil || got.Avatar != nil {
			t.Errorf("unexpected patch %+v", got)
		}
	})

	t.Run("delete removes the account", func(t *testing.T) {
		var deleted string
		userSvc := &mockUserService{
			deleteUserFn: func(id string) error {
				deleted = id
				return nil
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(userSvc, audit, testTokens()))

		rec := doRequest(r, "DELETE", "/auth/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != testUserID {
			t.Errorf("expected %s deleted, got %q", testUserID, deleted)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditActionDeleteAccount {
			t.Errorf("expected delete audit entry, got %+v", audit.entries)
		}
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, testTokens()))
		rec := doRequest(r, "PUT", "/auth/password", `{"current_password":"old-pass","new_password":"new-pass-1"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 401 on wrong current password", func(t *testing.T) {
		userSvc := &mockUserService{
			changePasswordFn: func(_, _, _ string) error {
				return apperrors.WithMessage(apperrors.ErrInvalidCredentials, "Current password is incorrect")
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))
		rec := doRequest(r, "PUT", "/auth/password", `{"current_password":"nope","new_password":"new-pass-1"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 on short new password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, testTokens()))
		rec := doRequest(r, "PUT", "/auth/password", `{"current_password":"old-pass","new_password":"x"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Settings(t *testing.T) {
	t.Run("get returns settings", func(t *testing.T) {
		userSvc := &mockUserService{
			getSettingsFn: func(id string) (*models.UserSettings, error) {
				return models.DefaultSettings(id), nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))

		rec := doRequest(r, "GET", "/auth/settings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if dataObject(t, rec)["currency"] != "USD" {
			t.Errorf("unexpected settings %s", rec.Body.String())
		}
	})

	t.Run("update validates theme", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, testTokens()))
		rec := doRequest(r, "PUT", "/auth/settings", `{"theme":"neon"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("update forwards patch", func(t *testing.T) {
		var got services.SettingsPatch
		userSvc := &mockUserService{
			updateSettingsFn: func(id string, patch services.SettingsPatch) (*models.UserSettings, error) {
				got = patch
				s := models.DefaultSettings(id)
				s.Currency = "INR"
				return s, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, testTokens()))

		rec := doRequest(r, "PUT", "/auth/settings", `{"currency":"inr","budget_alerts_enabled":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Currency == nil || *got.Currency != "inr" || got.BudgetAlertsEnabled == nil || *got.BudgetAlertsEnabled {
			t.Errorf("unexpected patch %+v", got)
		}
	})
}
