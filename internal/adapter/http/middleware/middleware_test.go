package middleware_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/middleware"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
	"github.com/funkybooboo/alle-sub000/pkg/translator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

func observeGlobal(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func perform(r *gin.Engine, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) apierrors.Envelope {
	t.Helper()

	var got apierrors.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestToAppError_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		key    string
	}{
		{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
		{fmt.Errorf("load: %w", domain.ErrListNotFound), http.StatusNotFound, apierrors.MsgListNotFound},
		{domain.ErrTrashEmpty, http.StatusNotFound, apierrors.MsgTrashEmpty},
		{domain.ErrDuplicatePresetName, http.StatusConflict, apierrors.MsgPresetNameTaken},
		{domain.ErrDateAndList, http.StatusUnprocessableEntity, apierrors.MsgDateAndList},
		{fmt.Errorf("%w: theme", domain.ErrInvalidSettings), http.StatusUnprocessableEntity, apierrors.MsgInvalidSettings},
		{domain.ErrInvalidColor, http.StatusUnprocessableEntity, apierrors.MsgInvalidPayload},
		{apierrors.NewBadRequestError(apierrors.MsgInvalidID, nil), http.StatusBadRequest, apierrors.MsgInvalidID},
		{errors.New("disk on fire"), http.StatusInternalServerError, apierrors.MsgInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			got := middleware.ToAppError(tc.err)
			assert.Equal(t, tc.status, got.StatusCode)
			assert.Equal(t, tc.key, got.MessageKey)
		})
	}
}

func TestErrorHandler_TranslatesAndLogsOperationalAtWarn(t *testing.T) {
	logs := observeGlobal(t)
	r := gin.New()
	r.Use(middleware.LanguageMiddleware(), middleware.ErrorHandler())
	r.GET("/tasks/1", func(c *gin.Context) {
		_ = c.Error(domain.ErrTaskNotFound)
		c.Abort()
	})

	rec := perform(r, "/tasks/1", map[string]string{"Accept-Language": "fr-CA,fr;q=0.9"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Tâche introuvable", envelope(t, rec).Details.Message)
	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestErrorHandler_LogsUnexpectedAtErrorWithStack(t *testing.T) {
	logs := observeGlobal(t)
	r := gin.New()
	r.Use(middleware.LanguageMiddleware(), middleware.ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
		c.Abort()
	})

	rec := perform(r, "/boom", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", envelope(t, rec).Details.Message)
	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap(), "stack")
}

func TestRecovery_RendersInternalError(t *testing.T) {
	observeGlobal(t)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/panic", func(*gin.Context) { panic("nil map") })

	rec := perform(r, "/panic", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusInternalServerError, envelope(t, rec).Details.Code)
}

func TestNotFound_UsesEnvelope(t *testing.T) {
	r := gin.New()
	r.NoRoute(middleware.LanguageMiddleware(), middleware.NotFound())

	rec := perform(r, "/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, envelope(t, rec).Details.Code)
}

func TestLanguageMiddleware_FallsBackToEnglish(t *testing.T) {
	cases := map[string]string{
		"":                translator.LanguageEn,
		"fr":              translator.LanguageFr,
		"de-DE,de;q=0.9":  translator.LanguageEn,
		"en-GB,fr;q=0.5":  translator.LanguageEn,
		"not a;;language": translator.LanguageEn,
	}

	for header, want := range cases {
		r := gin.New()
		r.Use(middleware.LanguageMiddleware())
		var got string
		r.GET("/", func(c *gin.Context) { got = middleware.GetLang(c) })

		perform(r, "/", map[string]string{"Accept-Language": header})
		assert.Equal(t, want, got, header)
	}
}

func TestRequestID_ReusesOrGenerates(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	rec := perform(r, "/", map[string]string{middleware.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())

	rec = perform(r, "/", nil)
	generated := rec.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())
}

func TestGinZapMiddleware_LevelsByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(middleware.GinZapMiddleware(zap.New(core)))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/tasks/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/api/tasks", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, "/api/health", nil)
	perform(r, "/api/tasks/9", nil)
	perform(r, "/api/tasks", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "/api/tasks/:id", entries[0].ContextMap()["route"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
}
