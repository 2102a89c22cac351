package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func newIdentityRouter(cfg IdentityConfig, seen *entities.Identity) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequireIdentity(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		*seen = id
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := Claims{
		OrgID: "org-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "fieldops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	cases := []struct {
		name   string
		cfg    IdentityConfig
		header func(t *testing.T) string
		status int
	}{
		{
			name:   "missing header",
			cfg:    IdentityConfig{Secret: testSecret},
			header: func(*testing.T) string { return "" },
			status: http.StatusUnauthorized,
		},
		{
			name:   "not a bearer",
			cfg:    IdentityConfig{Secret: testSecret},
			header: func(*testing.T) string { return "Basic abc" },
			status: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			cfg:  IdentityConfig{Secret: testSecret},
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), valid)
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "expired",
			cfg:  IdentityConfig{Secret: testSecret},
			header: func(t *testing.T) string {
				c := valid
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, c)
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "missing org",
			cfg:  IdentityConfig{Secret: testSecret},
			header: func(t *testing.T) string {
				c := valid
				c.OrgID = ""
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, c)
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "wrong issuer",
			cfg:  IdentityConfig{Secret: testSecret, Issuer: "someone-else"},
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, valid)
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "valid",
			cfg:  IdentityConfig{Secret: testSecret, Issuer: "fieldops"},
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, valid)
			},
			status: http.StatusNoContent,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen entities.Identity
			r := newIdentityRouter(tc.cfg, &seen)

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if w.Header().Get(requestIDHeader) == "" {
				t.Fatalf("expected request id header")
			}
			if tc.status == http.StatusNoContent && (seen.OrgID != "org-1" || seen.ActorID != "user-1") {
				t.Fatalf("unexpected identity: %+v", seen)
			}
		})
	}
}
