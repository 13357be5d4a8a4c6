package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Theme string `validate:"omitempty,oneof=light dark auto"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{Email: "user@example.com", Name: "User"})
		assert.Empty(t, errs)
		assert.NoError(t, AsError(errs))
	})

	t.Run("reports every failing field", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{Email: "not-an-email", Theme: "neon"})
		require.Len(t, errs, 3)

		tagsByField := map[string]string{}
		for _, fe := range errs {
			tagsByField[fe.Field] = fe.Tag
		}
		assert.Equal(t, "email", tagsByField["sampleRequest.Email"])
		assert.Equal(t, "required", tagsByField["sampleRequest.Name"])
		assert.Equal(t, "oneof", tagsByField["sampleRequest.Theme"])
	})

	t.Run("oneof param is captured", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{Email: "user@example.com", Name: "User", Theme: "neon"})
		require.Len(t, errs, 1)
		assert.Equal(t, "light dark auto", errs[0].Param)
	})
}

func TestAsError(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Email: "user@example.com"})
	require.NotEmpty(t, errs)

	err := AsError(errs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "required")
}
