package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	sharedContext "github.com/taalentio/talent-api/internal/shared/context"
	"github.com/taalentio/talent-api/internal/shared/token"
)

type stubManager struct {
	claims *token.Claims
	err    error
}

func (s stubManager) GenerateAccessToken(string, string, string) (string, error)  { return "", nil }
func (s stubManager) GenerateRefreshToken(string, string, string) (string, error) { return "", nil }
func (s stubManager) ValidateToken(string) (*token.Claims, error)                 { return s.claims, s.err }

func serveWith(m token.Manager, authorization string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", JWTWithManager(m), func(c *gin.Context) {
		id, _ := sharedContext.GetTalentID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "code": c.GetString(sharedContext.TalentCodeKey)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(AuthorizationHeader, authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWT_AccessToken(t *testing.T) {
	m := stubManager{claims: &token.Claims{TalentID: "7", UniqueCode: "MAF0007CAS", TokenType: token.ACCESS}}

	w := serveWith(m, "Bearer abc")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"code":"MAF0007CAS"}`, w.Body.String())
}

func TestJWT_Rejections(t *testing.T) {
	testCases := []struct {
		name          string
		manager       stubManager
		authorization string
	}{
		{"missing header", stubManager{}, ""},
		{"wrong scheme", stubManager{}, "Basic abc"},
		{"expired", stubManager{err: token.ErrExpiredToken}, "Bearer abc"},
		{"refresh token", stubManager{claims: &token.Claims{TalentID: "7", TokenType: token.REFRESH}}, "Bearer abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveWith(tc.manager, tc.authorization)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "AUTH-000")
		})
	}
}
