package apierrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
	"github.com/funkybooboo/alle-sub000/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		os.Exit(1)
	}
	err = translator.Translator.AddMessages(language.French, &i18n.Message{
		ID:    "test_key",
		Other: "Message de test",
	})
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestRender_ReturnsEnvelope(t *testing.T) {
	err := apierrors.Render(400, "test_key", "en")
	assert.Equal(t, 400, err.Details.Code)
	assert.Equal(t, "Test message", err.Details.Message)
}

func TestTranslate_ReturnsTranslation(t *testing.T) {
	assert.Equal(t, "Test message", apierrors.Translate("test_key", "en"))
	assert.Equal(t, "Message de test", apierrors.Translate("test_key", "fr-FR,fr;q=0.9"))
}

func TestTranslate_FallbackToKey(t *testing.T) {
	msg := apierrors.Translate("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestEnvelope_ErrorMethod(t *testing.T) {
	err := apierrors.Render(500, "test_key", "en")
	assert.Equal(t, "500: Test message", err.Error())
}

func TestRenderAppError_UsesStatusAndKey(t *testing.T) {
	got := apierrors.RenderAppError(apierrors.NewNotFoundError("test_key", errors.New("gone")), "fr")
	assert.Equal(t, http.StatusNotFound, got.Details.Code)
	assert.Equal(t, "Message de test", got.Details.Message)
}

func TestAppErrorConstructors(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		err         *apierrors.AppError
		status      int
		operational bool
	}{
		{apierrors.NewValidationError("k", cause), http.StatusUnprocessableEntity, true},
		{apierrors.NewBadRequestError("k", cause), http.StatusBadRequest, true},
		{apierrors.NewNotFoundError("k", cause), http.StatusNotFound, true},
		{apierrors.NewUnauthorizedError(cause), http.StatusUnauthorized, true},
		{apierrors.NewForbiddenError(cause), http.StatusForbidden, true},
		{apierrors.NewConflictError("k", cause), http.StatusConflict, true},
		{apierrors.NewInternalServerError(cause), http.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode)
		assert.Equal(t, tc.operational, tc.err.Operational)
		assert.ErrorIs(t, tc.err, cause)
	}
}

func TestAsAppError(t *testing.T) {
	notFound := apierrors.NewNotFoundError(apierrors.MsgTaskNotFound, nil)
	wrapped := fmt.Errorf("handler: %w", notFound)

	require.Same(t, notFound, apierrors.AsAppError(wrapped))

	internal := apierrors.AsAppError(errors.New("nil map"))
	assert.Equal(t, http.StatusInternalServerError, internal.StatusCode)
	assert.False(t, internal.Operational)
	assert.Equal(t, apierrors.MsgInternalServerError, internal.MessageKey)
}
