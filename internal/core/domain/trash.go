package domain

import "time"

// TrashItem is a snapshot of a deleted task, kept so the task can be restored.
type TrashItem struct {
	ID            uint64
	TaskID        uint64
	TaskText      string
	TaskDate      *time.Time
	TaskCompleted bool
	TaskNotes     *string
	TaskColor     *string
	TaskType      TaskType
	SomedayListID *uint64
	DeletedAt     time.Time
}

func NewTrashItem(task Task, deletedAt time.Time) TrashItem {
	return TrashItem{
		TaskID:        task.ID,
		TaskText:      task.Text,
		TaskDate:      task.Date,
		TaskCompleted: task.Completed,
		TaskNotes:     task.Notes,
		TaskColor:     task.Color,
		TaskType:      task.Type(),
		SomedayListID: task.ListID,
		DeletedAt:     deletedAt,
	}
}
