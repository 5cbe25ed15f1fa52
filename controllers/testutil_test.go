package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-diet/controllers"
	"daily-diet/middlewares"
	"daily-diet/models"
	"daily-diet/routes"
	"daily-diet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTokenSecret = []byte("daily-diet-test-secret")

// setupTestRouter wires the full application against an in-memory SQLite
// database, identity middleware included.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	userSvc := services.NewUserService(db)
	r := routes.SetupRouter(
		controllers.NewUserController(userSvc, testTokenSecret),
		controllers.NewMealController(services.NewMealService(db), services.NewMetricsService(db)),
		controllers.NewHealthController(db),
		middlewares.CookieAuth(userSvc, testTokenSecret),
	)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// registerUser registers a username and returns the identity cookies the
// server issued.
func registerUser(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()

	resp := doJSON(t, r, http.MethodPost, "/users", map[string]string{"username": username}, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register %q: expected 201, got %d (%s)", username, resp.Code, resp.Body.String())
	}
	cookies := resp.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("register %q: no identity cookie set", username)
	}
	return cookies
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return out
}
