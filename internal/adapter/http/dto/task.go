package dto

type TaskItem struct {
	ID          uint64           `json:"id"`
	Text        string           `json:"text"`
	Completed   bool             `json:"completed"`
	Date        *string          `json:"date"`
	ListID      *uint64          `json:"list_id"`
	Type        string           `json:"type"`
	Notes       *string          `json:"notes"`
	Color       *string          `json:"color"`
	Position    int              `json:"position"`
	Tags        []TaskTag        `json:"tags"`
	Links       []TaskLink       `json:"links"`
	Attachments []TaskAttachment `json:"attachments"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type TaskTag struct {
	ID     uint64  `json:"id"`
	TaskID uint64  `json:"task_id"`
	Name   string  `json:"name"`
	Color  *string `json:"color"`
}

type TaskLink struct {
	ID     uint64  `json:"id"`
	TaskID uint64  `json:"task_id"`
	URL    string  `json:"url"`
	Title  *string `json:"title"`
}

type TaskAttachment struct {
	ID          uint64 `json:"id"`
	TaskID      uint64 `json:"task_id"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	MimeType    string `json:"mime_type"`
	StoragePath string `json:"storage_path"`
	CreatedAt   string `json:"created_at"`
}

type CreateTaskRequest struct {
	Text     string  `json:"text" binding:"required,max=1000"`
	Date     *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ListID   *uint64 `json:"list_id" binding:"omitempty,gt=0"`
	Notes    *string `json:"notes" binding:"omitempty,max=65535"`
	Color    *string `json:"color"`
	Position *int    `json:"position" binding:"omitempty,gte=0"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text" binding:"omitempty,max=1000"`
	Completed *bool   `json:"completed"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ListID    *uint64 `json:"list_id" binding:"omitempty,gt=0"`
	Notes     *string `json:"notes" binding:"omitempty,max=65535"`
	Color     *string `json:"color"`
	Position  *int    `json:"position" binding:"omitempty,gte=0"`
}

type MoveTaskRequest struct {
	Date     *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ListID   *uint64 `json:"list_id" binding:"omitempty,gt=0"`
	Position *int    `json:"position" binding:"omitempty,gte=0"`
}

type AddTagRequest struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Color *string `json:"color"`
}

type AddLinkRequest struct {
	URL   string  `json:"url" binding:"required,max=2048"`
	Title *string `json:"title" binding:"omitempty,max=255"`
}

type UploadResponse struct {
	ID          uint64 `json:"id"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	StoragePath string `json:"storage_path"`
	Message     string `json:"message"`
}
