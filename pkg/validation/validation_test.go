package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string `validate:"required,valid_name"`
	Email     string `validate:"required,email"`
	MainSkill string `validate:"max=5,no_emoji"`
	Age       int    `validate:"lte=120"`
}

func TestValidators(t *testing.T) {
	v := New()

	t.Run("Should accept valid input", func(t *testing.T) {
		err := v.Struct(sample{Name: "Anne O'Neil", Email: "anne@example.com", MainSkill: "Go"})
		assert.NoError(t, err)
	})

	t.Run("Should reject digits in names", func(t *testing.T) {
		err := v.Struct(sample{Name: "R2D2", Email: "r@example.com"})
		require.Error(t, err)
		assert.Equal(t, []string{"Name: only letters, spaces and . ' - / are allowed"}, FormatValidationErrors(err))
	})

	t.Run("Should reject emoji", func(t *testing.T) {
		err := v.Struct(sample{Name: "Anne", Email: "a@example.com", MainSkill: "Go🚀"})
		require.Error(t, err)
		assert.Contains(t, Message(err), "Main skill: must not contain emoji")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()

	err := v.Struct(sample{MainSkill: "TypeScript", Age: 130})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{
		"Name: is required",
		"Email: is required",
		"Main skill: must be at most 5 characters",
		"Age: must be at most 120",
	}, FormatValidationErrors(err))

	assert.Equal(t, []string{"plain"}, FormatValidationErrors(errors.New("plain")))
}
