package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

// settingsRowID is the key of the one settings row.
const settingsRowID = 1

const (
	getSettingsQuery = `
SELECT column_width, breakpoint_small, breakpoint_medium, breakpoint_large,
       single_arrow_days, double_arrow_days, theme, updated_at
FROM user_settings
WHERE id = ?`

	insertSettingsQuery = `
INSERT INTO user_settings (id, column_width, breakpoint_small, breakpoint_medium, breakpoint_large,
                           single_arrow_days, double_arrow_days, theme, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

type settingsRow struct {
	ColumnWidth      int       `db:"column_width"`
	BreakpointSmall  int       `db:"breakpoint_small"`
	BreakpointMedium int       `db:"breakpoint_medium"`
	BreakpointLarge  int       `db:"breakpoint_large"`
	SingleArrowDays  int       `db:"single_arrow_days"`
	DoubleArrowDays  int       `db:"double_arrow_days"`
	Theme            string    `db:"theme"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type SettingsRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db, now: time.Now}
}

// WithClock replaces time.Now for timestamps.
func (r *SettingsRepository) WithClock(now func() time.Time) *SettingsRepository {
	r.now = now
	return r
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.UserSettings, bool, error) {
	var row settingsRow
	if err := r.db.GetContext(ctx, &row, getSettingsQuery, settingsRowID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserSettings{}, false, nil
		}
		return domain.UserSettings{}, false, err
	}

	return domain.UserSettings{
		ColumnWidth: row.ColumnWidth,
		Breakpoints: domain.Breakpoints{
			Small:  row.BreakpointSmall,
			Medium: row.BreakpointMedium,
			Large:  row.BreakpointLarge,
		},
		SingleArrowDays: row.SingleArrowDays,
		DoubleArrowDays: row.DoubleArrowDays,
		Theme:           domain.Theme(row.Theme),
		UpdatedAt:       row.UpdatedAt,
	}, true, nil
}

// Save replaces the stored row in one transaction.
func (r *SettingsRepository) Save(ctx context.Context, settings domain.UserSettings) (domain.UserSettings, error) {
	settings.UpdatedAt = r.now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.UserSettings{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_settings WHERE id = ?`, settingsRowID); err != nil {
		return domain.UserSettings{}, err
	}
	if _, err := tx.ExecContext(ctx, insertSettingsQuery,
		settingsRowID,
		settings.ColumnWidth,
		settings.Breakpoints.Small,
		settings.Breakpoints.Medium,
		settings.Breakpoints.Large,
		settings.SingleArrowDays,
		settings.DoubleArrowDays,
		string(settings.Theme),
		settings.UpdatedAt,
	); err != nil {
		return domain.UserSettings{}, err
	}
	return settings, tx.Commit()
}

func (r *SettingsRepository) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_settings WHERE id = ?`, settingsRowID)
	return err
}
