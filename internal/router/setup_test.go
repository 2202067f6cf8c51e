package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/logger"
	"fintrack/internal/testutil"
	"fintrack/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testApp struct {
	DB     *gorm.DB
	Config *config.Config
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		CORSOrigin:       "*",
		JWTSecret:        "router-test-secret",
		JWTExpirationDur: time.Hour,
		BcryptCost:       bcrypt.MinCost,
		LoginRateLimit:   100,
	}
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithConfig(t, testConfig())
}

func setupAppWithConfig(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	return &testApp{DB: db, Config: cfg, Router: New(cfg, db)}
}

func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %s", rec.Body.String())
	}
	return data
}

func listOf(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	list, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("expected list data, got %s", rec.Body.String())
	}
	return list
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != false {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	errObj := result["error"].(map[string]interface{})
	return errObj["code"].(string)
}

// registerUser registers a new user and returns the token and user id.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	data := dataOf(t, rec)
	user := data["user"].(map[string]interface{})
	return data["token"].(string), user["id"].(string)
}

// createCategory creates a top-level category owned by the token's user.
func (app *testApp) createCategory(t *testing.T, token, name, categoryType string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":%q}`, name, categoryType)
	rec := app.request("POST", "/api/categories", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	return dataOf(t, rec)["id"].(string)
}

// createTransaction records a transaction and returns its id.
func (app *testApp) createTransaction(t *testing.T, token, categoryID, txType, amount, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"category_id":%q,"type":%q,"amount":%s,"transaction_date":%q}`, categoryID, txType, amount, date)
	rec := app.request("POST", "/api/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	return dataOf(t, rec)["id"].(string)
}
