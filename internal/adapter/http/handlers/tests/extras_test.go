package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/handlers"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/translator"
)

const testMaxUpload = 64

func extrasRouter(handler *handlers.ExtrasHandler) *gin.Engine {
	return newRouter(func(api *gin.RouterGroup) {
		api.POST("/tasks/:id/tags", handler.AddTag)
		api.DELETE("/tasks/:id/tags/:tagId", handler.RemoveTag)
		api.POST("/tasks/:id/links", handler.AddLink)
		api.GET("/attachments/:id", handler.GetAttachment)
		api.GET("/attachments/:id/content", handler.DownloadAttachment)
		api.POST("/upload", handler.Upload)
	})
}

func multipartBody(t *testing.T, fields map[string]string, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func upload(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestExtrasHandler_AddTagAndRemove(t *testing.T) {
	color := "#00ff00"
	serviceMock := new(extrasServiceMock)
	serviceMock.On("AddTag", mock.Anything, uint64(1), "home", &color).
		Return(domain.TaskTag{ID: 2, TaskID: 1, Name: "home", Color: &color}, nil).Once()
	serviceMock.On("RemoveTag", mock.Anything, uint64(1), uint64(2)).Return(nil).Once()
	serviceMock.On("RemoveTag", mock.Anything, uint64(1), uint64(3)).Return(domain.ErrTagNotFound).Once()
	router := extrasRouter(handlers.NewExtrasHandler(serviceMock, testMaxUpload))

	rec := serve(router, http.MethodPost, "/api/tasks/1/tags", `{"name":"home","color":"#00ff00"}`, translator.LanguageEn)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tag dto.TaskTag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tag))
	require.Equal(t, uint64(2), tag.ID)

	rec = serve(router, http.MethodDelete, "/api/tasks/1/tags/2", "", translator.LanguageEn)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/tasks/1/tags/3", "", translator.LanguageEn)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Tag not found", decodeError(t, rec).Details.Message)
	serviceMock.AssertExpectations(t)
}

func TestExtrasHandler_AddLinkInvalidURL(t *testing.T) {
	serviceMock := new(extrasServiceMock)
	serviceMock.On("AddLink", mock.Anything, uint64(1), "ftp://x", (*string)(nil)).
		Return(domain.TaskLink{}, domain.ErrInvalidURL).Once()

	rec := serve(extrasRouter(handlers.NewExtrasHandler(serviceMock, testMaxUpload)), http.MethodPost,
		"/api/tasks/1/links", `{"url":"ftp://x"}`, translator.LanguageEn)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestExtrasHandler_Upload_Success(t *testing.T) {
	serviceMock := new(extrasServiceMock)
	serviceMock.On("UploadAttachment", mock.Anything, mock.MatchedBy(func(in ports.UploadInput) bool {
		return in.TaskID == 7 && in.FileName == "notes.txt" && in.Size == 5
	})).Return(domain.TaskAttachment{
		ID:          1,
		TaskID:      7,
		FileName:    "notes.txt",
		FileSize:    5,
		StoragePath: "uploads/abc.txt",
	}, nil).Once()
	router := extrasRouter(handlers.NewExtrasHandler(serviceMock, testMaxUpload))

	body, contentType := multipartBody(t, map[string]string{"task_id": "7"}, "notes.txt", "hello")
	rec := upload(router, body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "notes.txt", got.FileName)
	require.Equal(t, int64(5), got.FileSize)
	require.Equal(t, "uploads/abc.txt", got.StoragePath)
	require.Equal(t, "File uploaded successfully", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestExtrasHandler_Upload_Rejections(t *testing.T) {
	serviceMock := new(extrasServiceMock)
	serviceMock.On("UploadAttachment", mock.Anything, mock.Anything).
		Return(domain.TaskAttachment{}, domain.ErrTaskNotFound).Once()
	router := extrasRouter(handlers.NewExtrasHandler(serviceMock, testMaxUpload))

	body, contentType := multipartBody(t, map[string]string{"task_id": "7"}, "", "")
	rec := upload(router, body, contentType)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "A file and a task_id are required", decodeError(t, rec).Details.Message)

	body, contentType = multipartBody(t, map[string]string{"task_id": "7"}, "big.bin", strings.Repeat("x", testMaxUpload+1))
	rec = upload(router, body, contentType)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "File exceeds the 50MB limit", decodeError(t, rec).Details.Message)

	body, contentType = multipartBody(t, map[string]string{"task_id": "999"}, "a.txt", "a")
	rec = upload(router, body, contentType)
	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestExtrasHandler_DownloadAttachment(t *testing.T) {
	serviceMock := new(extrasServiceMock)
	serviceMock.On("OpenAttachment", mock.Anything, uint64(4)).Return(
		domain.TaskAttachment{ID: 4, FileName: "a.txt", FileSize: 2, MimeType: "text/plain"},
		io.NopCloser(strings.NewReader("hi")),
		nil,
	).Once()
	serviceMock.On("OpenAttachment", mock.Anything, uint64(5)).Return(domain.TaskAttachment{}, nil, domain.ErrAttachmentNotFound).Once()
	router := extrasRouter(handlers.NewExtrasHandler(serviceMock, testMaxUpload))

	rec := serve(router, http.MethodGet, "/api/attachments/4/content", "", translator.LanguageEn)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hi", rec.Body.String())
	require.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename=a.txt`, rec.Header().Get("Content-Disposition"))

	rec = serve(router, http.MethodGet, "/api/attachments/5/content", "", translator.LanguageEn)
	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}
