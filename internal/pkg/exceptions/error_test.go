package exceptions

import (
	"batch-schedule-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("wraps plain error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := BuildNewCustomError(cause, constvars.StatusInternalServerError, "client", "dev")

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, "client", err.ClientMessage)
		assert.Equal(t, "dev: connection refused", err.DevMessage)
		assert.Len(t, err.Locations, 1)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("appends location to existing custom error", func(t *testing.T) {
		inner := ErrScheduleSessionNotFound("session-1")
		outer := BuildNewCustomError(inner, constvars.StatusInternalServerError, "other", "other")

		assert.Same(t, inner, outer)
		assert.Equal(t, constvars.StatusNotFound, outer.StatusCode)
		assert.Len(t, outer.Locations, 2)
	})
}

func TestErrServerDeadlineExceeded(t *testing.T) {
	err := ErrServerDeadlineExceeded(ErrMongoDBFindDocument(context.DeadlineExceeded))

	assert.Equal(t, constvars.StatusGatewayTimeout, err.StatusCode)
	assert.Equal(t, constvars.ErrClientServerLongRespond, err.ClientMessage)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Field string `validate:"required"`
		Kind  string `validate:"oneof=batch module"`
	}

	validate := validator.New()

	err := validate.Struct(payload{Kind: "batch"})
	require.Error(t, err)
	assert.Equal(t, "field is required", FormatFirstValidationError(err))

	err = validate.Struct(payload{Field: "x", Kind: "course"})
	require.Error(t, err)
	assert.Equal(t, "kind must be one of batch, module", FormatFirstValidationError(err))

	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
}
