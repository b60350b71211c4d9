// Package memory holds map-backed repositories. Data lives for the lifetime of
// the process only.
package memory

import (
	"sort"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneUint(v *uint64) *uint64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneTask(t domain.Task) domain.Task {
	t.Date = cloneTime(t.Date)
	t.ListID = cloneUint(t.ListID)
	t.Notes = cloneString(t.Notes)
	t.Color = cloneString(t.Color)
	t.Tags = nil
	t.Links = nil
	t.Attachments = nil
	return t
}

// sortByDate orders tasks by date (undated last), then creation time, then id.
func sortByDate(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if c := dateutil.Compare(tasks[i].Date, tasks[j].Date); c != 0 {
			return c < 0
		}
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func sortByPosition(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Position != tasks[j].Position {
			return tasks[i].Position < tasks[j].Position
		}
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}
