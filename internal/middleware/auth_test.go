package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/auth"
	"spendtrack/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService("middleware-test-secret", time.Hour, 24*time.Hour)
}

func testPrincipal() *auth.Principal {
	return &auth.Principal{UserID: 42, Email: "mw@example.com", Roles: models.DefaultRoles()}
}

// setupProtectedRouter mounts a probe handler behind Auth that echoes the
// principal it sees.
func setupProtectedRouter(tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		p, ok := auth.GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "email": p.Email})
	})
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v\nbody: %s", err, rec.Body.String())
	}
	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token attaches principal", func(t *testing.T) {
		tokens := newTokenService()
		r := setupProtectedRouter(tokens)

		token, err := tokens.GenerateAccessToken(testPrincipal())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(r, "Bearer "+token)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if body["user_id"] != float64(42) {
			t.Errorf("expected user_id 42, got %v", body["user_id"])
		}
		if body["email"] != "mw@example.com" {
			t.Errorf("expected email mw@example.com, got %v", body["email"])
		}
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		r := setupProtectedRouter(newTokenService())

		rec := doAuthRequest(r, "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "UNAUTHORIZED" {
			t.Errorf("expected UNAUTHORIZED, got %s", code)
		}
	})

	t.Run("wrong scheme returns 401", func(t *testing.T) {
		tokens := newTokenService()
		r := setupProtectedRouter(tokens)

		token, err := tokens.GenerateAccessToken(testPrincipal())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(r, "Basic "+token)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token returns 401 malformed", func(t *testing.T) {
		r := setupProtectedRouter(newTokenService())

		rec := doAuthRequest(r, "Bearer not-a-jwt")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "MALFORMED_TOKEN" {
			t.Errorf("expected MALFORMED_TOKEN, got %s", code)
		}
	})

	t.Run("expired token returns 401 expired", func(t *testing.T) {
		expiring := auth.NewTokenService("middleware-test-secret", -time.Minute, 24*time.Hour)
		r := setupProtectedRouter(expiring)

		token, err := expiring.GenerateAccessToken(testPrincipal())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(r, "Bearer "+token)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "TOKEN_EXPIRED" {
			t.Errorf("expected TOKEN_EXPIRED, got %s", code)
		}
	})

	t.Run("refresh token rejected on protected route", func(t *testing.T) {
		tokens := newTokenService()
		r := setupProtectedRouter(tokens)

		token, err := tokens.GenerateRefreshToken(testPrincipal())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(r, "Bearer "+token)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "MALFORMED_TOKEN" {
			t.Errorf("expected MALFORMED_TOKEN, got %s", code)
		}
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		other := auth.NewTokenService("some-other-secret", time.Hour, 24*time.Hour)
		r := setupProtectedRouter(newTokenService())

		token, err := other.GenerateAccessToken(testPrincipal())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(r, "Bearer "+token)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
