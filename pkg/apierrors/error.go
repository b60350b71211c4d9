package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/pkg/translator"
)

// Envelope is the JSON body of every error response:
// {"error":{"code":404,"message":"Task not found"}}.
type Envelope struct {
	Details Detail `json:"error"`
}

type Detail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e Envelope) Error() string {
	return fmt.Sprintf("%d: %s", e.Details.Code, e.Details.Message)
}

// Render builds the envelope for a status and message key in lang.
func Render(code int, msgKey string, lang string) Envelope {
	return Envelope{Details: Detail{Code: code, Message: Translate(msgKey, lang)}}
}

// RenderAppError builds the envelope an AppError is sent as.
func RenderAppError(err *AppError, lang string) Envelope {
	return Render(err.StatusCode, err.MessageKey, lang)
}

// Translate resolves msgKey for lang, falling back to English and then to the
// key itself.
func Translate(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	localizer := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
