package crypto

import (
	"database/sql/driver"
	"fmt"
	"sync/atomic"
)

var defaultCipher atomic.Pointer[Cipher]

// Install sets the process-wide cipher used by EncryptedString columns.
// It is called once at startup after the configuration is loaded.
func Install(c *Cipher) {
	defaultCipher.Store(c)
}

// Default returns the installed cipher or ErrMissingSecret.
func Default() (*Cipher, error) {
	c := defaultCipher.Load()
	if c == nil {
		return nil, ErrMissingSecret
	}
	return c, nil
}

// EncryptedString is a plaintext profile attribute persisted only as ciphertext.
//
// The model field holds the plaintext; the column (`<field>_encrypted`) holds the
// token produced by the installed Cipher. Reading a column that cannot be decrypted
// leaves the field unavailable and keeps the stored token, so saving the row again
// does not overwrite the original ciphertext.
type EncryptedString struct {
	plain Plaintext
	raw   string
}

// NewEncryptedString wraps a plaintext value. Empty input means unset.
func NewEncryptedString(value string) EncryptedString {
	if value == "" {
		return EncryptedString{}
	}
	return EncryptedString{plain: Plaintext{Status: StatusDecrypted, Value: value}}
}

// Get returns the decryption outcome.
func (e EncryptedString) Get() Plaintext {
	return e.plain
}

// String returns the plaintext, or "" when unset or unavailable.
func (e EncryptedString) String() string {
	if !e.plain.Valid() {
		return ""
	}
	return e.plain.Value
}

// Ptr returns the plaintext, or nil when unset or unavailable.
func (e EncryptedString) Ptr() *string {
	return e.plain.Ptr()
}

// Set replaces the plaintext. An empty value clears the column.
func (e *EncryptedString) Set(value string) {
	*e = NewEncryptedString(value)
}

// GormDataType implements schema.GormDataTypeInterface; size comes from the field tag.
func (EncryptedString) GormDataType() string {
	return "string"
}

// Value implements driver.Valuer. Plaintext never reaches the driver.
func (e EncryptedString) Value() (driver.Value, error) {
	switch e.plain.Status {
	case StatusDecrypted:
		c, err := Default()
		if err != nil {
			return nil, err
		}
		token, err := c.Encrypt(e.plain.Value)
		if err != nil {
			return nil, err
		}
		return token, nil
	case StatusUnavailable:
		if e.raw == "" {
			return nil, nil
		}
		return e.raw, nil
	default:
		return nil, nil
	}
}

// Scan implements sql.Scanner. Decryption failures are absorbed; only a missing
// cipher is reported.
func (e *EncryptedString) Scan(src any) error {
	var token string
	switch v := src.(type) {
	case nil:
		*e = EncryptedString{}
		return nil
	case string:
		token = v
	case []byte:
		token = string(v)
	default:
		return fmt.Errorf("crypto: cannot scan %T into EncryptedString", src)
	}

	if token == "" {
		*e = EncryptedString{}
		return nil
	}

	c, err := Default()
	if err != nil {
		return err
	}

	*e = EncryptedString{plain: c.Decrypt(token), raw: token}
	return nil
}
