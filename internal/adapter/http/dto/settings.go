package dto

type Breakpoints struct {
	Small  int `json:"small" binding:"gt=0"`
	Medium int `json:"medium" binding:"gt=0"`
	Large  int `json:"large" binding:"gt=0"`
}

type Settings struct {
	ColumnWidth     int         `json:"column_width"`
	Breakpoints     Breakpoints `json:"breakpoints"`
	SingleArrowDays int         `json:"single_arrow_days"`
	DoubleArrowDays int         `json:"double_arrow_days"`
	Theme           string      `json:"theme"`
	UpdatedAt       *string     `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	ColumnWidth     *int         `json:"column_width"`
	Breakpoints     *Breakpoints `json:"breakpoints"`
	SingleArrowDays *int         `json:"single_arrow_days"`
	DoubleArrowDays *int         `json:"double_arrow_days"`
	Theme           *string      `json:"theme" binding:"omitempty,oneof=light dark system"`
}
