package domain

import "time"

type EventType string

const (
	EventHeartbeat         EventType = "heartbeat"
	EventTaskCreated       EventType = "task.created"
	EventTaskUpdated       EventType = "task.updated"
	EventTaskDeleted       EventType = "task.deleted"
	EventTasksCleared      EventType = "task.cleared"
	EventListChanged       EventType = "someday_list.changed"
	EventTrashRestored     EventType = "trash.restored"
	EventTrashChanged      EventType = "trash.changed"
	EventSettingsUpdated   EventType = "settings.updated"
	EventPresetsChanged    EventType = "presets.changed"
	EventAttachmentAdded   EventType = "attachment.added"
	EventAttachmentRemoved EventType = "attachment.removed"
)

type Event struct {
	Type      EventType `json:"type"`
	EntityID  uint64    `json:"entity_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
