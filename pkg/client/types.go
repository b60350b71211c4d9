package client

type Task struct {
	ID          uint64       `json:"id"`
	Text        string       `json:"text"`
	Completed   bool         `json:"completed"`
	Date        *string      `json:"date"`
	ListID      *uint64      `json:"list_id"`
	Type        string       `json:"type"`
	Notes       *string      `json:"notes"`
	Color       *string      `json:"color"`
	Position    int          `json:"position"`
	Tags        []Tag        `json:"tags"`
	Links       []Link       `json:"links"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

type Tag struct {
	ID     uint64  `json:"id"`
	TaskID uint64  `json:"task_id"`
	Name   string  `json:"name"`
	Color  *string `json:"color"`
}

type Link struct {
	ID     uint64  `json:"id"`
	TaskID uint64  `json:"task_id"`
	URL    string  `json:"url"`
	Title  *string `json:"title"`
}

type Attachment struct {
	ID          uint64 `json:"id"`
	TaskID      uint64 `json:"task_id"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	MimeType    string `json:"mime_type"`
	StoragePath string `json:"storage_path"`
	CreatedAt   string `json:"created_at"`
}

type TrashItem struct {
	ID            uint64  `json:"id"`
	TaskID        uint64  `json:"task_id"`
	TaskText      string  `json:"task_text"`
	TaskDate      *string `json:"task_date"`
	TaskCompleted bool    `json:"task_completed"`
	TaskNotes     *string `json:"task_notes"`
	TaskColor     *string `json:"task_color"`
	TaskType      string  `json:"task_type"`
	SomedayListID *uint64 `json:"someday_list_id"`
	DeletedAt     string  `json:"deleted_at"`
}

type SomedayList struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type Breakpoints struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

type Settings struct {
	ColumnWidth     int         `json:"column_width"`
	Breakpoints     Breakpoints `json:"breakpoints"`
	SingleArrowDays int         `json:"single_arrow_days"`
	DoubleArrowDays int         `json:"double_arrow_days"`
	Theme           string      `json:"theme"`
	UpdatedAt       *string     `json:"updated_at"`
}

type NewTask struct {
	Text   string  `json:"text"`
	Date   *string `json:"date,omitempty"`
	ListID *uint64 `json:"list_id,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Color  *string `json:"color,omitempty"`
}

// TaskPatch only sends the fields that are set.
type TaskPatch struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Color     *string `json:"color,omitempty"`
}

type SettingsPatch struct {
	ColumnWidth     *int         `json:"column_width,omitempty"`
	Breakpoints     *Breakpoints `json:"breakpoints,omitempty"`
	SingleArrowDays *int         `json:"single_arrow_days,omitempty"`
	DoubleArrowDays *int         `json:"double_arrow_days,omitempty"`
	Theme           *string      `json:"theme,omitempty"`
}
