package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type TaskExtrasRepository struct {
	mu          sync.RWMutex
	tags        map[uint64]domain.TaskTag
	links       map[uint64]domain.TaskLink
	attachments map[uint64]domain.TaskAttachment
	nextTagID   uint64
	nextLinkID  uint64
	nextFileID  uint64
	now         func() time.Time
}

var _ ports.TaskExtrasRepository = (*TaskExtrasRepository)(nil)

func NewTaskExtrasRepository(opts ...Option) *TaskExtrasRepository {
	o := buildOptions(opts)
	return &TaskExtrasRepository{
		tags:        make(map[uint64]domain.TaskTag),
		links:       make(map[uint64]domain.TaskLink),
		attachments: make(map[uint64]domain.TaskAttachment),
		nextTagID:   1,
		nextLinkID:  1,
		nextFileID:  1,
		now:         o.now,
	}
}

func (r *TaskExtrasRepository) AddTag(_ context.Context, tag domain.TaskTag) (domain.TaskTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag.ID = r.nextTagID
	tag.Color = cloneString(tag.Color)
	r.tags[tag.ID] = tag
	r.nextTagID++
	return tag, nil
}

func (r *TaskExtrasRepository) RemoveTag(_ context.Context, taskID, tagID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag, ok := r.tags[tagID]
	if !ok || tag.TaskID != taskID {
		return false, nil
	}
	delete(r.tags, tagID)
	return true, nil
}

func (r *TaskExtrasRepository) ListTags(_ context.Context, taskID uint64) ([]domain.TaskTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]domain.TaskTag, 0)
	for _, tag := range r.tags {
		if tag.TaskID == taskID {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (r *TaskExtrasRepository) AddLink(_ context.Context, link domain.TaskLink) (domain.TaskLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link.ID = r.nextLinkID
	link.Title = cloneString(link.Title)
	r.links[link.ID] = link
	r.nextLinkID++
	return link, nil
}

func (r *TaskExtrasRepository) RemoveLink(_ context.Context, taskID, linkID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[linkID]
	if !ok || link.TaskID != taskID {
		return false, nil
	}
	delete(r.links, linkID)
	return true, nil
}

func (r *TaskExtrasRepository) ListLinks(_ context.Context, taskID uint64) ([]domain.TaskLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := make([]domain.TaskLink, 0)
	for _, link := range r.links {
		if link.TaskID == taskID {
			links = append(links, link)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

func (r *TaskExtrasRepository) AddAttachment(_ context.Context, attachment domain.TaskAttachment) (domain.TaskAttachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attachment.ID = r.nextFileID
	attachment.CreatedAt = r.now()
	r.attachments[attachment.ID] = attachment
	r.nextFileID++
	return attachment, nil
}

func (r *TaskExtrasRepository) GetAttachment(_ context.Context, id uint64) (domain.TaskAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attachment, ok := r.attachments[id]
	if !ok {
		return domain.TaskAttachment{}, domain.ErrAttachmentNotFound
	}
	return attachment, nil
}

func (r *TaskExtrasRepository) RemoveAttachment(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attachments[id]; !ok {
		return false, nil
	}
	delete(r.attachments, id)
	return true, nil
}

func (r *TaskExtrasRepository) ListAttachments(_ context.Context, taskID uint64) ([]domain.TaskAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attachments := make([]domain.TaskAttachment, 0)
	for _, a := range r.attachments {
		if a.TaskID == taskID {
			attachments = append(attachments, a)
		}
	}
	sort.Slice(attachments, func(i, j int) bool { return attachments[i].ID < attachments[j].ID })
	return attachments, nil
}

// DeleteByTask drops every extra of a task and returns the removed
// attachments so their files can be cleaned up.
func (r *TaskExtrasRepository) DeleteByTask(_ context.Context, taskID uint64) ([]domain.TaskAttachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, tag := range r.tags {
		if tag.TaskID == taskID {
			delete(r.tags, id)
		}
	}
	for id, link := range r.links {
		if link.TaskID == taskID {
			delete(r.links, id)
		}
	}
	removed := make([]domain.TaskAttachment, 0)
	for id, a := range r.attachments {
		if a.TaskID == taskID {
			removed = append(removed, a)
			delete(r.attachments, id)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })
	return removed, nil
}
