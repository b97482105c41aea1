package errors_test

import (
	stderrors "errors"
	"testing"

	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.NotFoundf("ability %s", "fuel_saver_1").WithMeta("id", "fuel_saver_1")
	wrapped := apperr.Wrap(base, "failed to unlock")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "failed to unlock: ability fuel_saver_1", wrapped.Error())
	assert.Equal(t, "fuel_saver_1", apperr.GetMeta(wrapped)["id"])
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_PlainError(t *testing.T) {
	wrapped := apperr.Wrap(stderrors.New("boom"), "redis")
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
}

func TestEntryInvalid(t *testing.T) {
	err := apperr.EntryInvalid("ability", "emergency_fuel", "max charges must be >= 1, got %d", 0)

	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, `ability "emergency_fuel": max charges must be >= 1, got 0`, err.Error())
	assert.Equal(t, "ability", apperr.GetMeta(err)["kind"])
}

func TestWrapWithCode(t *testing.T) {
	err := apperr.WrapWithCode(stderrors.New("bad yaml"), apperr.CodeValidation, "decode events")
	assert.True(t, apperr.IsValidation(err))
	assert.False(t, apperr.IsNotFound(err))
}
