package validator

import (
	stdErrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	LinkedinBio *string `json:"linkedin_bio" validate:"required"`
	DeckURL     *string `json:"deck_url,omitempty"`
}

func TestValidate_ReportsJSONName(t *testing.T) {
	err := New().Validate(&request{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, stdErrors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "linkedin_bio", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}

func TestValidate_EmptyStringIsPresent(t *testing.T) {
	empty := ""
	assert.NoError(t, New().Validate(&request{LinkedinBio: &empty}))
}
