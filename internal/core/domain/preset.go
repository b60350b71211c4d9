package domain

type TagPreset struct {
	ID         uint64
	Name       string
	Color      string
	UsageCount int
	Position   int
}

type ColorPreset struct {
	ID         uint64
	Name       string
	Hex        string
	UsageCount int
	Position   int
}

type PresetInput struct {
	Name  *string
	Color *string
}
