package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrListNotFound        = errors.New("someday list not found")
	ErrTrashItemNotFound   = errors.New("trash item not found")
	ErrTrashEmpty          = errors.New("trash is empty")
	ErrPresetNotFound      = errors.New("preset not found")
	ErrTagNotFound         = errors.New("task tag not found")
	ErrLinkNotFound        = errors.New("task link not found")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrDateAndList         = errors.New("task cannot have both a date and a someday list")
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrInvalidOrder        = errors.New("order does not match existing items")
	ErrAttachmentTooLarge  = errors.New("attachment exceeds size limit")
	ErrEmptyText           = errors.New("text must not be empty")
	ErrDuplicatePresetName = errors.New("preset name already exists")
	ErrInvalidRange        = errors.New("range end is before its start")
	ErrInvalidColor        = errors.New("color must be a #rgb or #rrggbb hex value")
	ErrInvalidURL          = errors.New("link must be an absolute http(s) url")
	ErrMoveTarget          = errors.New("move needs exactly one of date or list")
)
