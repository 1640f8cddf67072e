package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installTestCipher(t *testing.T, secret string) *Cipher {
	t.Helper()

	previous := defaultCipher.Load()
	c := newTestCipher(t, secret)
	Install(c)
	t.Cleanup(func() {
		defaultCipher.Store(previous)
	})
	return c
}

func TestEncryptedString_ValueNeverStoresPlaintext(t *testing.T) {
	c := installTestCipher(t, testSecret)

	field := NewEncryptedString("+212612345678")
	v, err := field.Value()
	require.NoError(t, err)

	token, ok := v.(string)
	require.True(t, ok)
	assert.NotContains(t, token, "212612345678")
	assert.Equal(t, "+212612345678", c.Decrypt(token).Value)
}

func TestEncryptedString_EmptyStoresNull(t *testing.T) {
	installTestCipher(t, testSecret)

	for _, field := range []EncryptedString{{}, NewEncryptedString("")} {
		v, err := field.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestEncryptedString_ScanDecrypts(t *testing.T) {
	c := installTestCipher(t, testSecret)
	token, err := c.Encrypt("Casablanca, Maarif")
	require.NoError(t, err)

	var field EncryptedString
	require.NoError(t, field.Scan([]byte(token)))

	assert.Equal(t, "Casablanca, Maarif", field.String())
	require.NotNil(t, field.Ptr())
	assert.Equal(t, StatusDecrypted, field.Get().Status)
}

func TestEncryptedString_ScanNull(t *testing.T) {
	installTestCipher(t, testSecret)

	field := NewEncryptedString("stale")
	require.NoError(t, field.Scan(nil))

	assert.Equal(t, StatusEmpty, field.Get().Status)
	assert.Nil(t, field.Ptr())
}

func TestEncryptedString_RotatedKeyKeepsCiphertext(t *testing.T) {
	// Given: a token written under the old secret
	old := newTestCipher(t, "old-secret-old-secret-old-secret")
	token, err := old.Encrypt("AB123456")
	require.NoError(t, err)

	// When: read after the secret changed
	installTestCipher(t, "new-secret-new-secret-new-secret")
	var field EncryptedString
	require.NoError(t, field.Scan(token))

	// Then: the value is unavailable but saving it back keeps the old token
	assert.Equal(t, StatusUnavailable, field.Get().Status)
	assert.Empty(t, field.String())

	v, err := field.Value()
	require.NoError(t, err)
	assert.Equal(t, token, v)
}

func TestEncryptedString_SetReplacesUnavailable(t *testing.T) {
	c := installTestCipher(t, testSecret)

	field := EncryptedString{plain: Plaintext{Status: StatusUnavailable}, raw: "garbage"}
	field.Set("new value")

	v, err := field.Value()
	require.NoError(t, err)
	assert.Equal(t, "new value", c.Decrypt(v.(string)).Value)
}

func TestEncryptedString_MissingCipher(t *testing.T) {
	previous := defaultCipher.Load()
	defaultCipher.Store(nil)
	t.Cleanup(func() { defaultCipher.Store(previous) })

	_, err := NewEncryptedString("value").Value()
	assert.ErrorIs(t, err, ErrMissingSecret)

	var field EncryptedString
	assert.ErrorIs(t, field.Scan("token"), ErrMissingSecret)
}

func TestEncryptedString_ScanRejectsUnknownType(t *testing.T) {
	installTestCipher(t, testSecret)

	var field EncryptedString
	assert.Error(t, field.Scan(42))
}
