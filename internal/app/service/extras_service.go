package service

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/internal/metrics"
)

type TaskExtrasService struct {
	tasks     ports.TaskRepository
	extras    ports.TaskExtrasRepository
	files     ports.FileStorage
	usage     usageRecorder
	events    ports.EventPublisher
	maxUpload int64
	now       func() time.Time
}

var _ ports.TaskExtrasService = (*TaskExtrasService)(nil)

func NewTaskExtrasService(
	tasks ports.TaskRepository,
	extras ports.TaskExtrasRepository,
	files ports.FileStorage,
	usage usageRecorder,
	events ports.EventPublisher,
	maxUpload int64,
) *TaskExtrasService {
	if usage == nil {
		usage = nopUsage{}
	}
	return &TaskExtrasService{
		tasks:     tasks,
		extras:    extras,
		files:     files,
		usage:     usage,
		events:    orNop(events),
		maxUpload: maxUpload,
		now:       time.Now,
	}
}

func (s *TaskExtrasService) AddTag(ctx context.Context, taskID uint64, name string, color *string) (domain.TaskTag, error) {
	name, err := trimmed(name)
	if err != nil {
		return domain.TaskTag{}, err
	}
	if color != nil {
		if err := validateColor(*color); err != nil {
			return domain.TaskTag{}, err
		}
	}
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return domain.TaskTag{}, err
	}

	tag, err := s.extras.AddTag(ctx, domain.TaskTag{TaskID: taskID, Name: name, Color: color})
	if err != nil {
		return domain.TaskTag{}, err
	}
	if err := s.usage.RecordTagUsage(ctx, name); err != nil {
		zap.L().Warn("failed to record tag usage", zap.String("tag", name), zap.Error(err))
	}
	publish(ctx, s.events, domain.EventTaskUpdated, taskID, s.now())
	return tag, nil
}

func (s *TaskExtrasService) RemoveTag(ctx context.Context, taskID, tagID uint64) error {
	removed, err := s.extras.RemoveTag(ctx, taskID, tagID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrTagNotFound
	}
	publish(ctx, s.events, domain.EventTaskUpdated, taskID, s.now())
	return nil
}

// AddLink attaches an absolute http(s) URL to a task.
func (s *TaskExtrasService) AddLink(ctx context.Context, taskID uint64, rawURL string, title *string) (domain.TaskLink, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.TaskLink{}, domain.ErrInvalidURL
	}
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			title = nil
		} else {
			title = &t
		}
	}
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return domain.TaskLink{}, err
	}

	link, err := s.extras.AddLink(ctx, domain.TaskLink{TaskID: taskID, URL: rawURL, Title: title})
	if err != nil {
		return domain.TaskLink{}, err
	}
	publish(ctx, s.events, domain.EventTaskUpdated, taskID, s.now())
	return link, nil
}

func (s *TaskExtrasService) RemoveLink(ctx context.Context, taskID, linkID uint64) error {
	removed, err := s.extras.RemoveLink(ctx, taskID, linkID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrLinkNotFound
	}
	publish(ctx, s.events, domain.EventTaskUpdated, taskID, s.now())
	return nil
}

func (s *TaskExtrasService) ListAttachments(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.extras.ListAttachments(ctx, taskID)
}

func (s *TaskExtrasService) GetAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, error) {
	return s.extras.GetAttachment(ctx, id)
}

// OpenAttachment returns the record and its content. The caller closes the
// reader.
func (s *TaskExtrasService) OpenAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, io.ReadCloser, error) {
	attachment, err := s.extras.GetAttachment(ctx, id)
	if err != nil {
		return domain.TaskAttachment{}, nil, err
	}
	rc, err := s.files.Open(ctx, attachment.StoragePath)
	if err != nil {
		return domain.TaskAttachment{}, nil, err
	}
	return attachment, rc, nil
}

// UploadAttachment stores the content and records it on the task. Content
// larger than the configured limit is rejected even when the declared size
// lies.
func (s *TaskExtrasService) UploadAttachment(ctx context.Context, input ports.UploadInput) (domain.TaskAttachment, error) {
	if s.maxUpload > 0 && input.Size > s.maxUpload {
		return domain.TaskAttachment{}, domain.ErrAttachmentTooLarge
	}
	if _, err := s.tasks.FindByID(ctx, input.TaskID); err != nil {
		return domain.TaskAttachment{}, err
	}

	name := filepath.Base(strings.TrimSpace(input.FileName))
	if name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	content := input.Content
	if s.maxUpload > 0 {
		content = io.LimitReader(content, s.maxUpload+1)
	}
	path, size, err := s.files.Save(ctx, name, content)
	if err != nil {
		return domain.TaskAttachment{}, err
	}
	if s.maxUpload > 0 && size > s.maxUpload {
		s.removeFile(ctx, path)
		return domain.TaskAttachment{}, domain.ErrAttachmentTooLarge
	}

	attachment, err := s.extras.AddAttachment(ctx, domain.TaskAttachment{
		TaskID:      input.TaskID,
		FileName:    name,
		FileSize:    size,
		MimeType:    mimeType,
		StoragePath: path,
	})
	if err != nil {
		s.removeFile(ctx, path)
		return domain.TaskAttachment{}, err
	}

	metrics.AddUploadedBytes(size)
	publish(ctx, s.events, domain.EventAttachmentAdded, attachment.ID, s.now())
	return attachment, nil
}

func (s *TaskExtrasService) DeleteAttachment(ctx context.Context, id uint64) error {
	attachment, err := s.extras.GetAttachment(ctx, id)
	if err != nil {
		return err
	}
	removed, err := s.extras.RemoveAttachment(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrAttachmentNotFound
	}
	s.removeFile(ctx, attachment.StoragePath)
	publish(ctx, s.events, domain.EventAttachmentRemoved, id, s.now())
	return nil
}

func (s *TaskExtrasService) removeFile(ctx context.Context, path string) {
	if err := s.files.Remove(ctx, path); err != nil {
		zap.L().Warn("failed to remove attachment file", zap.String("path", path), zap.Error(err))
	}
}
