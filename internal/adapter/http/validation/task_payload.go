package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	input := domain.CreateTaskInput{
		Text:   text,
		Date:   date,
		ListID: req.ListID,
		Notes:  req.Notes,
		Color:  req.Color,
	}
	if req.Position != nil {
		input.Position = *req.Position
	}
	return input, nil
}

// BuildUpdateTaskInput tells an explicit null (clear the field) apart from an
// absent field using the raw JSON object.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "text") && req.Text == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	var text *string
	if req.Text != nil {
		value := strings.TrimSpace(*req.Text)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		text = &value
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "position") && req.Position == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	dateSet := hasJSONField(raw, "date")
	var date *time.Time
	if dateSet && !isJSONNull(raw["date"]) {
		if req.Date == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := parseDate(req.Date)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		date = parsed
	}

	listIDSet := hasJSONField(raw, "list_id")
	if listIDSet && !isJSONNull(raw["list_id"]) && req.ListID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	notesSet := hasJSONField(raw, "notes")
	if notesSet && !isJSONNull(raw["notes"]) && req.Notes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	colorSet := hasJSONField(raw, "color")
	if colorSet && !isJSONNull(raw["color"]) && req.Color == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Text:      text,
		Completed: req.Completed,
		Date:      date,
		DateSet:   dateSet,
		ListID:    req.ListID,
		ListIDSet: listIDSet,
		Notes:     req.Notes,
		NotesSet:  notesSet,
		Color:     req.Color,
		ColorSet:  colorSet,
		Position:  req.Position,
	}, nil
}

func BuildMoveTaskInput(req dto.MoveTaskRequest) (domain.MoveTaskInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.MoveTaskInput{}, err
	}
	return domain.MoveTaskInput{Date: date, ListID: req.ListID, Position: req.Position}, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := dateutil.Parse(*value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{"text", "completed", "date", "list_id", "notes", "color", "position"} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
