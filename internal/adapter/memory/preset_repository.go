package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

// presetStore holds presets of either kind under one lock. key is the
// case-insensitive unique field: the tag name or the color hex.
type presetStore[P any] struct {
	mu      sync.RWMutex
	presets map[uint64]P
	nextID  uint64

	id        func(P) uint64
	key       func(P) string
	position  func(P) int
	withID    func(P, uint64) P
	withPos   func(P, int) P
	withUsage func(P, int) P
	usage     func(P) int
}

func (s *presetStore[P]) findAll() []P {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presets := make([]P, 0, len(s.presets))
	for _, p := range s.presets {
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool {
		if a, b := s.position(presets[i]), s.position(presets[j]); a != b {
			return a < b
		}
		return s.id(presets[i]) < s.id(presets[j])
	})
	return presets
}

func (s *presetStore[P]) findByID(id uint64) (P, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[id]
	if !ok {
		return *new(P), domain.ErrPresetNotFound
	}
	return p, nil
}

func (s *presetStore[P]) findByKey(key string) (P, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.lookupLocked(key); ok {
		return p, nil
	}
	return *new(P), domain.ErrPresetNotFound
}

func (s *presetStore[P]) lookupLocked(key string) (P, bool) {
	for _, p := range s.presets {
		if strings.EqualFold(s.key(p), key) {
			return p, true
		}
	}
	return *new(P), false
}

func (s *presetStore[P]) create(p P) (P, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.lookupLocked(s.key(p)); taken {
		return *new(P), domain.ErrDuplicatePresetName
	}
	last := 0
	for _, existing := range s.presets {
		last = max(last, s.position(existing))
	}

	p = s.withPos(s.withID(p, s.nextID), last+1)
	p = s.withUsage(p, 0)
	s.presets[s.id(p)] = p
	s.nextID++
	return p, nil
}

// save replaces the preset but keeps its stored usage count, which only
// increment changes.
func (s *presetStore[P]) save(p P) (P, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.presets[s.id(p)]
	if !ok {
		return *new(P), domain.ErrPresetNotFound
	}
	if other, taken := s.lookupLocked(s.key(p)); taken && s.id(other) != s.id(p) {
		return *new(P), domain.ErrDuplicatePresetName
	}
	p = s.withUsage(p, s.usage(stored))
	s.presets[s.id(p)] = p
	return p, nil
}

func (s *presetStore[P]) delete(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[id]; !ok {
		return false
	}
	delete(s.presets, id)
	return true
}

func (s *presetStore[P]) increment(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lookupLocked(key)
	if !ok {
		return false
	}
	s.presets[s.id(p)] = s.withUsage(p, s.usage(p)+1)
	return true
}

type TagPresetRepository struct {
	store *presetStore[domain.TagPreset]
}

var _ ports.TagPresetRepository = (*TagPresetRepository)(nil)

func NewTagPresetRepository() *TagPresetRepository {
	return &TagPresetRepository{store: &presetStore[domain.TagPreset]{
		presets:   make(map[uint64]domain.TagPreset),
		nextID:    1,
		id:        func(p domain.TagPreset) uint64 { return p.ID },
		key:       func(p domain.TagPreset) string { return p.Name },
		position:  func(p domain.TagPreset) int { return p.Position },
		usage:     func(p domain.TagPreset) int { return p.UsageCount },
		withID:    func(p domain.TagPreset, id uint64) domain.TagPreset { p.ID = id; return p },
		withPos:   func(p domain.TagPreset, pos int) domain.TagPreset { p.Position = pos; return p },
		withUsage: func(p domain.TagPreset, n int) domain.TagPreset { p.UsageCount = n; return p },
	}}
}

func (r *TagPresetRepository) FindAll(_ context.Context) ([]domain.TagPreset, error) {
	return r.store.findAll(), nil
}

func (r *TagPresetRepository) FindByID(_ context.Context, id uint64) (domain.TagPreset, error) {
	return r.store.findByID(id)
}

// FindByName matches case-insensitively.
func (r *TagPresetRepository) FindByName(_ context.Context, name string) (domain.TagPreset, error) {
	return r.store.findByKey(name)
}

func (r *TagPresetRepository) Create(_ context.Context, preset domain.TagPreset) (domain.TagPreset, error) {
	return r.store.create(preset)
}

func (r *TagPresetRepository) Save(_ context.Context, preset domain.TagPreset) (domain.TagPreset, error) {
	return r.store.save(preset)
}

func (r *TagPresetRepository) Delete(_ context.Context, id uint64) (bool, error) {
	return r.store.delete(id), nil
}

func (r *TagPresetRepository) IncrementUsage(_ context.Context, name string) (bool, error) {
	return r.store.increment(name), nil
}

type ColorPresetRepository struct {
	store *presetStore[domain.ColorPreset]
}

var _ ports.ColorPresetRepository = (*ColorPresetRepository)(nil)

func NewColorPresetRepository() *ColorPresetRepository {
	return &ColorPresetRepository{store: &presetStore[domain.ColorPreset]{
		presets:   make(map[uint64]domain.ColorPreset),
		nextID:    1,
		id:        func(p domain.ColorPreset) uint64 { return p.ID },
		key:       func(p domain.ColorPreset) string { return p.Hex },
		position:  func(p domain.ColorPreset) int { return p.Position },
		usage:     func(p domain.ColorPreset) int { return p.UsageCount },
		withID:    func(p domain.ColorPreset, id uint64) domain.ColorPreset { p.ID = id; return p },
		withPos:   func(p domain.ColorPreset, pos int) domain.ColorPreset { p.Position = pos; return p },
		withUsage: func(p domain.ColorPreset, n int) domain.ColorPreset { p.UsageCount = n; return p },
	}}
}

func (r *ColorPresetRepository) FindAll(_ context.Context) ([]domain.ColorPreset, error) {
	return r.store.findAll(), nil
}

func (r *ColorPresetRepository) FindByID(_ context.Context, id uint64) (domain.ColorPreset, error) {
	return r.store.findByID(id)
}

func (r *ColorPresetRepository) FindByHex(_ context.Context, hex string) (domain.ColorPreset, error) {
	return r.store.findByKey(hex)
}

func (r *ColorPresetRepository) Create(_ context.Context, preset domain.ColorPreset) (domain.ColorPreset, error) {
	return r.store.create(preset)
}

func (r *ColorPresetRepository) Save(_ context.Context, preset domain.ColorPreset) (domain.ColorPreset, error) {
	return r.store.save(preset)
}

func (r *ColorPresetRepository) Delete(_ context.Context, id uint64) (bool, error) {
	return r.store.delete(id), nil
}

func (r *ColorPresetRepository) IncrementUsage(_ context.Context, hex string) (bool, error) {
	return r.store.increment(hex), nil
}
