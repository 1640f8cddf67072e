package meta_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taalentio/talent-api/internal/meta"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/testutil"
)

type healthResponse struct {
	Status string                    `json:"status"`
	Checks map[string]map[string]any `json:"checks"`
}

func TestHealth_Healthy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	router := testutil.SetupTestRouter()
	router.GET("/health", meta.NewHandler(testutil.NewTestConfig(), &database.DB{DB: db}).Health)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response healthResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "up", response.Checks["database"]["status"])
	assert.Equal(t, "up", response.Checks["fieldEncryption"]["status"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	// Given: a closed connection pool
	db := testutil.SetupTestDB(t)
	testutil.CleanupTestDB(t, db)

	router := testutil.SetupTestRouter()
	router.GET("/health", meta.NewHandler(testutil.NewTestConfig(), &database.DB{DB: db}).Health)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var response healthResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "down", response.Checks["database"]["status"])
}
