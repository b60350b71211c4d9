package domain

import "time"

type TaskType string

const (
	TaskTypeCalendar TaskType = "calendar"
	TaskTypeSomeday  TaskType = "someday"
)

type Task struct {
	ID          uint64
	Text        string
	Completed   bool
	Date        *time.Time
	ListID      *uint64
	Notes       *string
	Color       *string
	Position    int
	Tags        []TaskTag
	Links       []TaskLink
	Attachments []TaskAttachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Type reports whether the task sits on the calendar or in a someday list.
func (t Task) Type() TaskType {
	if t.ListID != nil {
		return TaskTypeSomeday
	}
	return TaskTypeCalendar
}

type CreateTaskInput struct {
	Text     string
	Date     *time.Time
	ListID   *uint64
	Notes    *string
	Color    *string
	Position int
}

// UpdateTaskInput carries a partial update. Nullable fields use a *Set flag so
// an explicit null can be told apart from an absent field.
type UpdateTaskInput struct {
	Text      *string
	Completed *bool
	Date      *time.Time
	DateSet   bool
	ListID    *uint64
	ListIDSet bool
	Notes     *string
	NotesSet  bool
	Color     *string
	ColorSet  bool
	Position  *int
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Text == nil && in.Completed == nil && !in.DateSet && !in.ListIDSet &&
		!in.NotesSet && !in.ColorSet && in.Position == nil
}

type MoveTaskInput struct {
	Date     *time.Time
	ListID   *uint64
	Position *int
}

type TaskTag struct {
	ID     uint64
	TaskID uint64
	Name   string
	Color  *string
}

type TaskLink struct {
	ID     uint64
	TaskID uint64
	URL    string
	Title  *string
}

type TaskAttachment struct {
	ID          uint64
	TaskID      uint64
	FileName    string
	FileSize    int64
	MimeType    string
	StoragePath string
	CreatedAt   time.Time
}
