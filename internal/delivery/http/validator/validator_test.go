package validator

import (
	"testing"

	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&credentials{Username: "alice", Password: "pw1"}))

	err := v.Validate(&credentials{Username: "alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "credentials.password failed on 'required'")
	assert.NotContains(t, err.Error(), "username")
}

func TestValidate_NonStruct(t *testing.T) {
	err := New().Validate("not a struct")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
