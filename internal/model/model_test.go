package model_test

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taalentio/talent-api/internal/model"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"gorm.io/gorm/schema"
)

var varchar2Size = regexp.MustCompile(`^VARCHAR2\((\d+)\)$`)

// columnBytes returns the declared byte capacity of a column; -1 means unbounded.
func columnBytes(t *testing.T, value any, column string) int {
	t.Helper()

	s, err := schema.Parse(value, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField(column)
	require.NotNil(t, field, column)

	dataType := strings.ToUpper(string(field.DataType))
	if dataType == "CLOB" {
		return -1
	}
	if m := varchar2Size.FindStringSubmatch(dataType); m != nil {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		return n
	}
	require.Positive(t, field.Size, column)
	return field.Size
}

func assertFits(t *testing.T, value any, column string, needed int) {
	t.Helper()

	capacity := columnBytes(t, value, column)
	if capacity == -1 {
		return
	}
	assert.GreaterOrEqual(t, capacity, needed, column)
}

func TestEncryptedColumns_HoldLongestAcceptedInput(t *testing.T) {
	testCases := []struct {
		model    any
		column   string
		maxRunes int
	}{
		{&model.Talent{}, "phone_encrypted", 32},
		{&model.Talent{}, "whatsapp_encrypted", 32},
		{&model.Talent{}, "address_encrypted", 500},
		{&model.Talent{}, "id_document_number_encrypted", 50},
		{&model.Talent{}, "instagram_encrypted", 255},
		{&model.Talent{}, "facebook_encrypted", 255},
		{&model.Talent{}, "tiktok_encrypted", 255},
		{&model.Talent{}, "youtube_encrypted", 255},
		{&model.Talent{}, "linkedin_encrypted", 255},
		{&model.CinemaTalent{}, "phone_encrypted", 32},
		{&model.CinemaTalent{}, "whatsapp_encrypted", 32},
		{&model.CinemaTalent{}, "id_document_number_encrypted", 50},
		{&model.ProjectTalent{}, "phone_encrypted", 32},
	}

	for _, tc := range testCases {
		assertFits(t, tc.model, tc.column, sharedCrypto.MaxTokenLen(tc.maxRunes))
	}
}

func TestEncryptedColumns_MultiByteAddressFits(t *testing.T) {
	// Given: a 500-character address in a two-byte script
	cipher, err := sharedCrypto.NewCipher("model-size-test-secret")
	require.NoError(t, err)

	// When
	token, err := cipher.Encrypt(strings.Repeat("ش", 500))
	require.NoError(t, err)

	// Then
	assert.LessOrEqual(t, len(token), columnBytes(t, &model.Talent{}, "address_encrypted"))
}

func TestTextColumns_HoldLongestAcceptedInput(t *testing.T) {
	testCases := []struct {
		model    any
		column   string
		maxRunes int
	}{
		{&model.Talent{}, "email", 255},
		{&model.Talent{}, "first_name", 100},
		{&model.Talent{}, "last_name", 100},
		{&model.Talent{}, "country_of_origin", 100},
		{&model.Talent{}, "residence_country", 100},
		{&model.Talent{}, "residence_city", 100},
		{&model.Talent{}, "bio", 2000},
		{&model.CinemaTalent{}, "email", 255},
		{&model.CinemaTalent{}, "first_name", 100},
		{&model.CinemaTalent{}, "last_name", 100},
		{&model.CinemaTalent{}, "residence_country", 100},
		{&model.CinemaTalent{}, "residence_city", 100},
		{&model.Project{}, "title", 255},
		{&model.Project{}, "production_company", 255},
		{&model.ProjectTalent{}, "first_name", 100},
		{&model.ProjectTalent{}, "last_name", 100},
		{&model.ProjectTalent{}, "country_of_origin", 100},
		{&model.ProjectTalent{}, "role", 100},
	}

	for _, tc := range testCases {
		assertFits(t, tc.model, tc.column, utf8.UTFMax*tc.maxRunes)
	}
}

func TestProfessionsColumn_HoldsLongestAcceptedList(t *testing.T) {
	// Given: ten professions of fifty characters that JSON escapes to six bytes each
	professions := make([]string, 10)
	for i := range professions {
		professions[i] = strings.Repeat("<", 50)
	}

	// When
	encoded, err := json.Marshal(professions)
	require.NoError(t, err)

	// Then
	assertFits(t, &model.CinemaTalent{}, "professions", len(encoded))
}
