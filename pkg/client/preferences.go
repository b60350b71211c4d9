package client

import (
	"encoding/json"
	"strconv"
	"sync"
)

const (
	KeyFontSize          = "alle_fontSize"
	KeyFontType          = "alle_fontType"
	KeyKeyboardShortcuts = "alle_keyboardShortcuts"

	DefaultFontSize = 16
	DefaultFontType = "system"
)

// Store is the local key/value storage the preferences live in.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// DefaultShortcuts maps actions to their default keys.
func DefaultShortcuts() map[string]string {
	return map[string]string{
		"previousDay":  "ArrowLeft",
		"nextDay":      "ArrowRight",
		"previousWeek": "Shift+ArrowLeft",
		"nextWeek":     "Shift+ArrowRight",
		"today":        "t",
		"undo":         "Ctrl+z",
		"toggleTrash":  "Ctrl+Shift+t",
	}
}

// Preferences are the font and shortcut settings kept client side. Missing or
// corrupt values fall back to defaults.
type Preferences struct {
	store Store
}

func NewPreferences(store Store) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) FontSize() int {
	raw, ok := p.store.Get(KeyFontSize)
	if !ok {
		return DefaultFontSize
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return DefaultFontSize
	}
	return size
}

func (p *Preferences) SetFontSize(size int) error {
	return p.store.Set(KeyFontSize, strconv.Itoa(size))
}

func (p *Preferences) FontType() string {
	raw, ok := p.store.Get(KeyFontType)
	if !ok || raw == "" {
		return DefaultFontType
	}
	return raw
}

func (p *Preferences) SetFontType(fontType string) error {
	return p.store.Set(KeyFontType, fontType)
}

// KeyboardShortcuts overlays the stored shortcuts on the defaults.
func (p *Preferences) KeyboardShortcuts() map[string]string {
	shortcuts := DefaultShortcuts()
	raw, ok := p.store.Get(KeyKeyboardShortcuts)
	if !ok {
		return shortcuts
	}
	var stored map[string]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return shortcuts
	}
	for action, key := range stored {
		shortcuts[action] = key
	}
	return shortcuts
}

func (p *Preferences) SetKeyboardShortcuts(shortcuts map[string]string) error {
	raw, err := json.Marshal(shortcuts)
	if err != nil {
		return err
	}
	return p.store.Set(KeyKeyboardShortcuts, string(raw))
}
