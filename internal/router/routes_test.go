package router_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taalentio/talent-api/internal/auth"
	"github.com/taalentio/talent-api/internal/cinema"
	"github.com/taalentio/talent-api/internal/config"
	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/router"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/testutil"
	"github.com/taalentio/talent-api/internal/talent"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	return setupRouterWithConfig(t, testutil.NewTestConfig())
}

func setupRouterWithConfig(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	engine := testutil.SetupTestRouter()
	router.Setup(engine, cfg, &database.DB{DB: db})
	return engine
}

func TestSignupLoginAndReadProfile(t *testing.T) {
	engine := setupRouter(t)

	// Given: a talent signs up
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			FirstName:       "Awa",
			LastName:        "Diop",
			Email:           "awa@example.com",
			Password:        "password123",
			Gender:          "F",
			CountryOfOrigin: "Sénégal",
			ResidenceCity:   "Dakar",
			Phone:           "+221771234567",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var signup auth.SignupResponse
	testutil.ParseResponse(t, recorder, &signup)
	assert.Equal(t, "SNF0001DAK", signup.UniqueCode)

	// When: logging in and reading the profile with the issued token
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Email: "awa@example.com", Password: "password123"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var login auth.LoginResponse
	testutil.ParseResponse(t, recorder, &login)

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/talents/me",
		Headers: map[string]string{"Authorization": "Bearer " + login.AccessToken},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var profile talent.ProfileResponse
	testutil.ParseResponse(t, recorder, &profile)
	assert.Equal(t, "SNF0001DAK", profile.UniqueCode)
	require.NotNil(t, profile.Phone)
	assert.Equal(t, "+221771234567", *profile.Phone)
}

func TestRegistrationFormsHaveSeparateRateLimits(t *testing.T) {
	// Given: one request per client and per form
	cfg := testutil.NewTestConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1
	engine := setupRouterWithConfig(t, cfg)

	signupRequest := func(email string) testutil.TestRequest {
		return testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/v1/auth/signup",
			Body: auth.SignupRequest{
				FirstName:       "Awa",
				LastName:        "Diop",
				Email:           email,
				Password:        "password123",
				Gender:          "F",
				CountryOfOrigin: "Sénégal",
				ResidenceCity:   "Dakar",
				Phone:           "+221771234567",
			},
		}
	}

	recorder := testutil.ExecuteRequest(t, engine, signupRequest("awa@example.com"))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = testutil.ExecuteRequest(t, engine, signupRequest("awa2@example.com"))
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)

	// When: the same client uses the cinema form
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/cinema-talents",
		Body: cinema.RegisterRequest{
			FirstName:        "Awa",
			LastName:         "Diop",
			Email:            "awa.cinema@example.com",
			Gender:           "F",
			ResidenceCountry: "Sénégal",
			ResidenceCity:    "Dakar",
			Phone:            "+221771234567",
		},
	})

	// Then: its own quota is untouched
	assert.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func TestRefreshTokenIsRejected(t *testing.T) {
	engine := setupRouter(t)

	testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			FirstName: "Awa", LastName: "Diop", Email: "awa@example.com", Password: "password123",
			Gender: "F", CountryOfOrigin: "SN", ResidenceCity: "Dakar", Phone: "+221771234567",
		},
	})
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Email: "awa@example.com", Password: "password123"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var login auth.LoginResponse
	testutil.ParseResponse(t, recorder, &login)

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/talents/me",
		Headers: map[string]string{"Authorization": "Bearer " + login.RefreshToken},
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestDecodeCode(t *testing.T) {
	engine := setupRouter(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/codes/cinema/MACAS0001F",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var decoded identity.Decoded
	testutil.ParseResponse(t, recorder, &decoded)
	assert.Equal(t, identity.Decoded{
		Variant: identity.VariantCinema, Country: "MA", Locality: "CAS", Sequence: 1, Gender: "F",
	}, decoded)
}

func TestDecodeCode_Errors(t *testing.T) {
	engine := setupRouter(t)

	testCases := []struct {
		url  string
		code string
	}{
		{"/api/v1/codes/general/MAF00X1CAS", "CODE-001"},
		{"/api/v1/codes/vip/MAF0001CAS", "CODE-002"},
	}

	for _, tc := range testCases {
		recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: tc.url})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.url)
		assert.Contains(t, recorder.Body.String(), tc.code, tc.url)
	}
}

func TestProjectsRequireAuthentication(t *testing.T) {
	engine := setupRouter(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/projects",
		Body:   map[string]string{"title": "Atlas", "productionCompany": "ABC Productions"},
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	engine := setupRouter(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/metrics"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}
