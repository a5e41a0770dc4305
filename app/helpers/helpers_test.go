package helpers_test

import (
	"testing"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"My Product":           "my-product",
		"  Spaced  Out  ":      "spaced-out",
		"Ünïcode Störe":        "unicode-store",
		"Already-Slugged":      "already-slugged",
		"Symbols & Ampersands": "symbols-ampersands",
	}
	for input, want := range cases {
		assert.Equal(t, want, helpers.GenerateSlug(input), "input %q", input)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash := helpers.HashPassword("s3cret")
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, helpers.PasswordCompare(hash, []byte("s3cret")))
	assert.False(t, helpers.PasswordCompare(hash, []byte("wrong")))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(&form{Email: "nope"})
	require.Error(t, err)

	messages := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
	assert.Contains(t, messages["name"], "required")
	assert.Contains(t, messages["email"], "valid email")
}
