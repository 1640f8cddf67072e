package crypto

// Status tells a caller why a decrypted field has or lacks a value.
type Status int

const (
	// StatusEmpty means the field was never set.
	StatusEmpty Status = iota
	// StatusDecrypted means Value holds the original plaintext.
	StatusDecrypted
	// StatusUnavailable means ciphertext exists but could not be opened,
	// typically after a secret rotation.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusDecrypted:
		return "decrypted"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "empty"
	}
}

// Plaintext is the outcome of a decryption.
type Plaintext struct {
	Status Status
	Value  string
	Reason error
}

// Valid reports whether Value holds a decrypted plaintext.
func (p Plaintext) Valid() bool {
	return p.Status == StatusDecrypted
}

// Ptr returns nil unless the plaintext was decrypted.
func (p Plaintext) Ptr() *string {
	if !p.Valid() {
		return nil
	}
	v := p.Value
	return &v
}
