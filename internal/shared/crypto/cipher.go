package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/chacha20poly1305"
)

// envelopeV1 prefixes every ciphertext and is bound as associated data.
const envelopeV1 byte = 0x01

var (
	ErrMissingSecret       = errors.New("crypto: field encryption secret is not configured")
	ErrMalformedCiphertext = errors.New("crypto: malformed ciphertext")
	ErrUnsupportedVersion  = errors.New("crypto: unsupported ciphertext version")
	ErrAuthentication      = errors.New("crypto: ciphertext authentication failed")
)

var encoding = base64.URLEncoding.Strict()

var decryptFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "taalentio_field_decrypt_failures_total",
		Help: "Encrypted fields that could not be decrypted, by reason.",
	},
	[]string{"reason"},
)

func init() {
	prometheus.MustRegister(decryptFailures)
}

// Cipher encrypts sensitive profile fields with a single process-wide secret.
// It is safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives the operational key as SHA-256(secret), so the same configured
// secret always yields the same key.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	key := sha256.Sum256([]byte(secret))
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: init aead: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// MaxTokenLen is the longest token Encrypt can produce for a plaintext of at most
// maxRunes characters. Encrypted columns are sized from it.
func MaxTokenLen(maxRunes int) int {
	sealed := 1 + chacha20poly1305.NonceSizeX + utf8.UTFMax*maxRunes + chacha20poly1305.Overhead
	return encoding.EncodedLen(sealed)
}

// Encrypt seals plaintext into a URL-safe token: base64(version | nonce | sealed).
// An empty plaintext yields an empty token without touching the cipher.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonceSize := c.aead.NonceSize()
	buf := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+c.aead.Overhead())
	buf[0] = envelopeV1
	if _, err := rand.Read(buf[1:]); err != nil {
		return "", fmt.Errorf("crypto: generate nonce: %w", err)
	}

	sealed := c.aead.Seal(buf, buf[1:], []byte(plaintext), buf[:1])
	return encoding.EncodeToString(sealed), nil
}

// Decrypt opens a token produced by Encrypt. It never returns an error: failures
// are logged and reported as an unavailable Plaintext.
func (c *Cipher) Decrypt(ciphertext string) Plaintext {
	if ciphertext == "" {
		return Plaintext{}
	}

	value, err := c.open(ciphertext)
	if err != nil {
		decryptFailures.WithLabelValues(failureReason(err)).Inc()
		slog.Warn("Échec du déchiffrement d'un champ chiffré", "error", err)
		return Plaintext{Status: StatusUnavailable, Reason: err}
	}

	return Plaintext{Status: StatusDecrypted, Value: value}
}

// DecryptString is the nullable form of Decrypt: nil when the field is unset or
// cannot be decrypted.
func (c *Cipher) DecryptString(ciphertext string) *string {
	return c.Decrypt(ciphertext).Ptr()
}

func (c *Cipher) open(ciphertext string) (string, error) {
	raw, err := encoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < 1+nonceSize+c.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}
	if raw[0] != envelopeV1 {
		return "", fmt.Errorf("%w: 0x%02x", ErrUnsupportedVersion, raw[0])
	}

	plain, err := c.aead.Open(nil, raw[1:1+nonceSize], raw[1+nonceSize:], raw[:1])
	if err != nil {
		return "", ErrAuthentication
	}

	return string(plain), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrAuthentication):
		return "authentication"
	case errors.Is(err, ErrUnsupportedVersion):
		return "version"
	default:
		return "malformed"
	}
}
