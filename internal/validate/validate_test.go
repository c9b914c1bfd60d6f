package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required,max=10"`
	Email string `validate:"omitempty,email"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Acme"}))
}

func TestStruct_FieldErrors(t *testing.T) {
	err := Struct(sample{Email: "not-an-email"})
	assert.Error(t, err)

	var verrs Errors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "name is required", verrs["name"])
	assert.Equal(t, "email must be a valid email", verrs["email"])
}

func TestStruct_MaxLength(t *testing.T) {
	err := Struct(sample{Name: "way too long for the tag"})

	var verrs Errors
	assert.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs["name"], "at most 10")
}
