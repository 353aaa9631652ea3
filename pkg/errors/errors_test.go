package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppErrorThroughWrapping(t *testing.T) {
	base := NewNotFoundError("regulation r1")
	wrapped := fmt.Errorf("invalid command: %w", base)

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
}

func TestGetAppErrorPlainError(t *testing.T) {
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.Nil(t, GetAppError(nil))
}

func TestNewNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("theme t1")
	assert.Equal(t, "theme t1 not found", err.Message)
}

func TestConstructorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewConflictError("x").HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, NewFormatError("x").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").HTTPStatus)
}

func TestWrapKeepsAppErrorType(t *testing.T) {
	err := Wrap(NewFormatError("missing version"), "import failed")
	require.True(t, IsFormat(err))
	assert.Contains(t, err.Error(), "import failed")

	t.Run("plain error becomes internal", func(t *testing.T) {
		wrapped := Wrap(fmt.Errorf("disk gone"), "save failed")
		appErr := GetAppError(wrapped)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrorTypeInternal, appErr.Type)
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "whatever"))
	})
}
