package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData("All users", data)

	assert.True(t, resp.OK)
	assert.Equal(t, "All users", resp.Msg)
	assert.Equal(t, data, resp.Data)
	assert.Empty(t, resp.Errors)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.False(t, resp.OK)
	assert.Equal(t, "something went wrong", resp.Msg)
	assert.Nil(t, resp.Data)
}

func TestValidationError_ListsEveryViolation(t *testing.T) {
	type TestStruct struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	v := validator.New()
	ts := TestStruct{
		Email: "not-an-email",
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.False(t, resp.OK)
	assert.Equal(t, "validation failed", resp.Msg)
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors, "field Name is a required field")
	assert.Contains(t, resp.Errors, "field Email must be a valid email address")
}

func TestValidationError_MinRule(t *testing.T) {
	type TestStruct struct {
		Password string `validate:"min=8"`
	}

	v := validator.New()
	ts := TestStruct{Password: "short"}

	err := v.Struct(ts)
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Contains(t, resp.Errors, "field Password must have at least 8 characters")
}
