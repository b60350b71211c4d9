package domain

import "time"

type SomedayList struct {
	ID        uint64
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
