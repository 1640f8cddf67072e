package talent_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taalentio/talent-api/internal/model"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
	"github.com/taalentio/talent-api/internal/shared/middleware"
	"github.com/taalentio/talent-api/internal/shared/testutil"
	"github.com/taalentio/talent-api/internal/talent"
	"gorm.io/gorm"
)

var bearer = map[string]string{"Authorization": "Bearer test-token"}

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *model.Talent) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	repo := talent.NewTalentRepository()

	// Given: a registered talent
	existing := model.NewTalent("salma@example.com", "hash", "Salma", "Bennani", "F", "Maroc", "Casablanca")
	existing.UniqueCode = "MAF0001CAS"
	existing.Bio = "Comédienne"
	existing.Phone = sharedCrypto.NewEncryptedString("+212612345678")
	existing.Instagram = sharedCrypto.NewEncryptedString("@salma.b")
	require.NoError(t, repo.Create(context.Background(), db, existing))

	tokens := testutil.NewMockTokenManager().AuthenticatedAs("1", existing.UniqueCode, existing.Email)
	h := talent.NewTalentHandler(talent.NewTalentService(db, repo))

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/talents/:code", h.GetPublicCard)
	me := router.Group("/api/v1/talents/me")
	me.Use(middleware.JWTWithManager(tokens))
	me.GET("", h.GetProfile)
	me.PATCH("", h.UpdateProfile)

	return router, db, existing
}

func TestGetProfile_DecryptsPersonalData(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/talents/me",
		Headers: bearer,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var response talent.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "MAF0001CAS", response.UniqueCode)
	require.NotNil(t, response.Phone)
	assert.Equal(t, "+212612345678", *response.Phone)
	require.NotNil(t, response.Instagram)
	assert.Equal(t, "@salma.b", *response.Instagram)
	assert.Nil(t, response.WhatsApp)
	assert.Empty(t, response.UnavailableFields)
}

func TestGetProfile_RequiresToken(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/talents/me",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetProfile_UndecryptableFieldIsReportedNotFatal(t *testing.T) {
	// Given: the phone was written under a previous secret
	router, db, _ := setupTestEnvironment(t)

	previous, err := sharedCrypto.NewCipher("previous-secret")
	require.NoError(t, err)
	stale, err := previous.Encrypt("+33612345678")
	require.NoError(t, err)
	require.NoError(t, db.Exec("UPDATE talent SET phone_encrypted = ?", stale).Error)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/talents/me",
		Headers: bearer,
	})

	// Then: the rest of the profile is still served
	require.Equal(t, http.StatusOK, recorder.Code)

	var response talent.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Nil(t, response.Phone)
	assert.Equal(t, []string{"phone"}, response.UnavailableFields)
	require.NotNil(t, response.Instagram)
	assert.Equal(t, "@salma.b", *response.Instagram)
}

func TestUpdateProfile_KeepsUndecryptableCiphertext(t *testing.T) {
	router, db, _ := setupTestEnvironment(t)

	previous, err := sharedCrypto.NewCipher("previous-secret")
	require.NoError(t, err)
	stale, err := previous.Encrypt("+33612345678")
	require.NoError(t, err)
	require.NoError(t, db.Exec("UPDATE talent SET phone_encrypted = ?", stale).Error)

	// When: an unrelated field is updated
	bio := "Actrice et chanteuse"
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodPatch,
		URL:     "/api/v1/talents/me",
		Body:    talent.UpdateProfileRequest{Bio: &bio},
		Headers: bearer,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var stored string
	require.NoError(t, db.Raw("SELECT phone_encrypted FROM talent WHERE id = 1").Row().Scan(&stored))
	assert.Equal(t, stale, stored)
}

func TestUpdateProfile_SetsAndClearsFields(t *testing.T) {
	router, db, _ := setupTestEnvironment(t)

	whatsapp := "+212700000001"
	empty := ""
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodPatch,
		URL:     "/api/v1/talents/me",
		Body:    talent.UpdateProfileRequest{WhatsApp: &whatsapp, Instagram: &empty},
		Headers: bearer,
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response talent.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	require.NotNil(t, response.WhatsApp)
	assert.Equal(t, whatsapp, *response.WhatsApp)
	assert.Nil(t, response.Instagram)
	assert.Equal(t, "MAF0001CAS", response.UniqueCode)

	var reloaded model.Talent
	require.NoError(t, db.First(&reloaded, 1).Error)
	assert.Equal(t, whatsapp, reloaded.WhatsApp.String())
	assert.Equal(t, sharedCrypto.StatusEmpty, reloaded.Instagram.Get().Status)
	assert.Equal(t, "MAF0001CAS", reloaded.UniqueCode)
}

func TestUpdateProfile_InvalidPhone(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	phone := "not-a-phone"
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodPatch,
		URL:     "/api/v1/talents/me",
		Body:    talent.UpdateProfileRequest{Phone: &phone},
		Headers: bearer,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetPublicCard(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/talents/MAF0001CAS",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "612345678")

	var response talent.PublicCardResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "Salma", response.FirstName)
	assert.Equal(t, "Salma Bennani", response.DisplayName)
	assert.Equal(t, "Comédienne", response.Bio)
}

func TestGetPublicCard_NotFound(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/talents/SNM0001DAK",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "TALENT-001", errorResponse.Code)
}
