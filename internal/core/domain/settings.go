package domain

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

const (
	MinColumnWidth = 150
	MaxColumnWidth = 800
	MinStepDays    = 1
	MaxStepDays    = 31
)

// Breakpoints are the viewport widths, in pixels, at which the calendar
// switches its column count.
type Breakpoints struct {
	Small  int
	Medium int
	Large  int
}

type UserSettings struct {
	ColumnWidth     int
	Breakpoints     Breakpoints
	SingleArrowDays int
	DoubleArrowDays int
	Theme           Theme
	UpdatedAt       time.Time
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		ColumnWidth: 280,
		Breakpoints: Breakpoints{
			Small:  640,
			Medium: 1024,
			Large:  1440,
		},
		SingleArrowDays: 1,
		DoubleArrowDays: 7,
		Theme:           ThemeSystem,
	}
}

type UpdateSettingsInput struct {
	ColumnWidth     *int
	Breakpoints     *Breakpoints
	SingleArrowDays *int
	DoubleArrowDays *int
	Theme           *Theme
}
