package dto

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
