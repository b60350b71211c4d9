package validation

import (
	"errors"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

var ErrEmptyPayload = errors.New("payload has no fields")

func BuildUpdateSettingsInput(req dto.UpdateSettingsRequest) (domain.UpdateSettingsInput, error) {
	input := domain.UpdateSettingsInput{
		ColumnWidth:     req.ColumnWidth,
		SingleArrowDays: req.SingleArrowDays,
		DoubleArrowDays: req.DoubleArrowDays,
	}
	if req.Breakpoints != nil {
		input.Breakpoints = &domain.Breakpoints{
			Small:  req.Breakpoints.Small,
			Medium: req.Breakpoints.Medium,
			Large:  req.Breakpoints.Large,
		}
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		input.Theme = &theme
	}

	if input.ColumnWidth == nil && input.Breakpoints == nil && input.SingleArrowDays == nil &&
		input.DoubleArrowDays == nil && input.Theme == nil {
		return domain.UpdateSettingsInput{}, ErrEmptyPayload
	}
	return input, nil
}

// BuildPresetInput accepts the color under either "color" or "hex".
func BuildPresetInput(req dto.UpdatePresetRequest) (domain.PresetInput, error) {
	input := domain.PresetInput{Name: req.Name, Color: req.Color}
	if input.Color == nil {
		input.Color = req.Hex
	}
	if input.Name == nil && input.Color == nil {
		return domain.PresetInput{}, ErrEmptyPayload
	}
	return input, nil
}
