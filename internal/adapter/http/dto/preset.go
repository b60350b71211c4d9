package dto

type TagPreset struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	UsageCount int    `json:"usage_count"`
	Position   int    `json:"position"`
}

type ColorPreset struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Hex        string `json:"hex"`
	UsageCount int    `json:"usage_count"`
	Position   int    `json:"position"`
}

type CreateTagPresetRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"required"`
}

type CreateColorPresetRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Hex  string `json:"hex" binding:"required"`
}

// UpdatePresetRequest updates a tag or color preset. Color carries the tag
// color or the color preset's hex value.
type UpdatePresetRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Color *string `json:"color"`
	Hex   *string `json:"hex"`
}
