package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/profast/parcel-server/internal/models"
	"github.com/profast/parcel-server/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	identity *services.Identity
	err      error
	got      string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*services.Identity, error) {
	s.got = token
	return s.identity, s.err
}

func authRouter(verifier services.TokenVerifier) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)})
	})
	return router
}

func TestAuthMiddlewareMissingCredential(t *testing.T) {
	router := authRouter(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := authRouter(&stubVerifier{err: services.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

func TestAuthMiddlewareAttachesVerifiedEmail(t *testing.T) {
	verifier := &stubVerifier{identity: &services.Identity{Email: "alice@example.com", Subject: "uid-1"}}
	router := authRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if verifier.got != "good-token" {
		t.Fatalf("expected the bearer token forwarded to the verifier, got %q", verifier.got)
	}
	if body := w.Body.String(); body != `{"email":"alice@example.com"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAuthMiddlewareAcceptsTokenQueryParam(t *testing.T) {
	verifier := &stubVerifier{identity: &services.Identity{Email: "alice@example.com"}}
	router := authRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/protected?token=ws-token", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if verifier.got != "ws-token" {
		t.Fatalf("expected query token forwarded to the verifier, got %q", verifier.got)
	}
}

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestRequireAdmin(t *testing.T) {
	db := newAuthTestDB(t)
	seed := []models.User{
		{Email: "admin@example.com", Role: models.RoleAdmin},
		{Email: "user@example.com", Role: models.RoleUser},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		c.Set(ContextEmailKey, c.Query("as"))
	}, RequireAdmin(db), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		email string
		want  int
	}{
		{"admin@example.com", http.StatusOK},
		{"user@example.com", http.StatusForbidden},
		{"ghost@example.com", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin?as="+tc.email, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("email %q: expected status %d, got %d", tc.email, tc.want, w.Code)
		}
	}
}
