package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Phone  string `validate:"phone"`
	Gender string `validate:"gender"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, v.RegisterValidation("phone", ValidatePhone))
	require.NoError(t, v.RegisterValidation("gender", ValidateGender))
	return v
}

func TestValidatePhone(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"+212612345678", "+212 6 12 34 56 78", "0612345678", "+33 (1) 23-45-67-89"} {
		assert.NoError(t, v.Struct(sample{Phone: ok, Gender: "F"}), ok)
	}
	for _, bad := range []string{"12345", "phone", "+212-abc-345678", "++212612345678"} {
		assert.Error(t, v.Struct(sample{Phone: bad, Gender: "F"}), bad)
	}
}

func TestValidateGender(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"M", "f", "N"} {
		assert.NoError(t, v.Struct(sample{Phone: "+212612345678", Gender: ok}), ok)
	}
	for _, bad := range []string{"", "X", "male"} {
		assert.Error(t, v.Struct(sample{Phone: "+212612345678", Gender: bad}), bad)
	}
}

func TestToErrorResponse(t *testing.T) {
	v := newValidate(t)

	err := v.Struct(sample{Phone: "bad", Gender: "F"})
	resp, ok := ToErrorResponse(err)

	require.True(t, ok)
	assert.Equal(t, "ERROR-001", resp.Code)
	assert.Contains(t, resp.Message, "téléphone")
}
