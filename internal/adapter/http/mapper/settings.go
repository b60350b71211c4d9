package mapper

import (
	"time"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

func ToSomedayLists(lists []domain.SomedayList) []dto.SomedayList {
	items := make([]dto.SomedayList, 0, len(lists))
	for _, list := range lists {
		items = append(items, ToSomedayList(list))
	}
	return items
}

func ToSomedayList(list domain.SomedayList) dto.SomedayList {
	return dto.SomedayList{
		ID:        list.ID,
		Name:      list.Name,
		Position:  list.Position,
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
		UpdatedAt: list.UpdatedAt.Format(time.RFC3339),
	}
}

// ToSettings leaves updated_at null for defaults that were never saved.
func ToSettings(s domain.UserSettings) dto.Settings {
	out := dto.Settings{
		ColumnWidth: s.ColumnWidth,
		Breakpoints: dto.Breakpoints{
			Small:  s.Breakpoints.Small,
			Medium: s.Breakpoints.Medium,
			Large:  s.Breakpoints.Large,
		},
		SingleArrowDays: s.SingleArrowDays,
		DoubleArrowDays: s.DoubleArrowDays,
		Theme:           string(s.Theme),
	}
	if !s.UpdatedAt.IsZero() {
		value := s.UpdatedAt.Format(time.RFC3339)
		out.UpdatedAt = &value
	}
	return out
}

func ToTagPresets(presets []domain.TagPreset) []dto.TagPreset {
	items := make([]dto.TagPreset, 0, len(presets))
	for _, p := range presets {
		items = append(items, ToTagPreset(p))
	}
	return items
}

func ToTagPreset(p domain.TagPreset) dto.TagPreset {
	return dto.TagPreset{ID: p.ID, Name: p.Name, Color: p.Color, UsageCount: p.UsageCount, Position: p.Position}
}

func ToColorPresets(presets []domain.ColorPreset) []dto.ColorPreset {
	items := make([]dto.ColorPreset, 0, len(presets))
	for _, p := range presets {
		items = append(items, ToColorPreset(p))
	}
	return items
}

func ToColorPreset(p domain.ColorPreset) dto.ColorPreset {
	return dto.ColorPreset{ID: p.ID, Name: p.Name, Hex: p.Hex, UsageCount: p.UsageCount, Position: p.Position}
}
