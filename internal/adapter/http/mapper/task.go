package mapper

import (
	"time"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Text:        task.Text,
		Completed:   task.Completed,
		Date:        dateutil.FormatPtr(task.Date),
		ListID:      task.ListID,
		Type:        string(task.Type()),
		Notes:       task.Notes,
		Color:       task.Color,
		Position:    task.Position,
		Tags:        make([]dto.TaskTag, 0, len(task.Tags)),
		Links:       make([]dto.TaskLink, 0, len(task.Links)),
		Attachments: make([]dto.TaskAttachment, 0, len(task.Attachments)),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	for _, tag := range task.Tags {
		item.Tags = append(item.Tags, ToTaskTag(tag))
	}
	for _, link := range task.Links {
		item.Links = append(item.Links, ToTaskLink(link))
	}
	item.Attachments = append(item.Attachments, ToAttachments(task.Attachments)...)

	return item
}

func ToTaskTag(tag domain.TaskTag) dto.TaskTag {
	return dto.TaskTag{ID: tag.ID, TaskID: tag.TaskID, Name: tag.Name, Color: tag.Color}
}

func ToTaskLink(link domain.TaskLink) dto.TaskLink {
	return dto.TaskLink{ID: link.ID, TaskID: link.TaskID, URL: link.URL, Title: link.Title}
}

func ToAttachments(attachments []domain.TaskAttachment) []dto.TaskAttachment {
	items := make([]dto.TaskAttachment, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, ToAttachment(a))
	}
	return items
}

func ToAttachment(a domain.TaskAttachment) dto.TaskAttachment {
	return dto.TaskAttachment{
		ID:          a.ID,
		TaskID:      a.TaskID,
		FileName:    a.FileName,
		FileSize:    a.FileSize,
		MimeType:    a.MimeType,
		StoragePath: a.StoragePath,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func ToTrashItems(items []domain.TrashItem) []dto.TrashItem {
	out := make([]dto.TrashItem, 0, len(items))
	for _, item := range items {
		out = append(out, ToTrashItem(item))
	}
	return out
}

func ToTrashItem(item domain.TrashItem) dto.TrashItem {
	return dto.TrashItem{
		ID:            item.ID,
		TaskID:        item.TaskID,
		TaskText:      item.TaskText,
		TaskDate:      dateutil.FormatPtr(item.TaskDate),
		TaskCompleted: item.TaskCompleted,
		TaskNotes:     item.TaskNotes,
		TaskColor:     item.TaskColor,
		TaskType:      string(item.TaskType),
		SomedayListID: item.SomedayListID,
		DeletedAt:     item.DeletedAt.Format(time.RFC3339),
	}
}
