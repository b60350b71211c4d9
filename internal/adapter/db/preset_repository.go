package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type presetRow struct {
	ID         uint64 `db:"id"`
	Name       string `db:"name"`
	Value      string `db:"value"`
	UsageCount int    `db:"usage_count"`
	Position   int    `db:"position"`
}

// presetTable holds the queries both preset kinds share. value is the
// column beside name (color or hex) and key the unique one; both
// schemas compare key case-insensitively.
type presetTable struct {
	db    *sqlx.DB
	table string
	value string
	key   string
}

func (t presetTable) selectFrom() string {
	return `SELECT id, name, ` + t.value + ` AS value, usage_count, position FROM ` + t.table
}

func (t presetTable) findAll(ctx context.Context) ([]presetRow, error) {
	var rows []presetRow
	if err := t.db.SelectContext(ctx, &rows, t.selectFrom()+` ORDER BY position, id`); err != nil {
		return nil, err
	}
	return rows, nil
}

func (t presetTable) findBy(ctx context.Context, q sqlx.QueryerContext, column string, arg any) (presetRow, error) {
	var row presetRow
	if err := sqlx.GetContext(ctx, q, &row, t.selectFrom()+` WHERE `+column+` = ?`, arg); err != nil {
		return presetRow{}, notFound(err, domain.ErrPresetNotFound)
	}
	return row, nil
}

// create appends the preset; position and uniqueness are settled by the
// statement itself.
func (t presetTable) create(ctx context.Context, name, value string) (presetRow, error) {
	result, err := t.db.ExecContext(ctx, `
INSERT INTO `+t.table+` (name, `+t.value+`, usage_count, position)
SELECT ?, ?, 0, COALESCE(MAX(position), 0) + 1 FROM `+t.table, name, value)
	if err != nil {
		return presetRow{}, duplicateName(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return presetRow{}, err
	}
	return t.findBy(ctx, t.db, "id", id)
}

// save writes name, value and position. usage_count is left to increment.
func (t presetTable) save(ctx context.Context, row presetRow) (presetRow, error) {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return presetRow{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := t.findBy(ctx, tx, "id", row.ID); err != nil {
		return presetRow{}, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE `+t.table+` SET name = ?, `+t.value+` = ?, position = ? WHERE id = ?`,
		row.Name, row.Value, row.Position, row.ID); err != nil {
		return presetRow{}, duplicateName(err)
	}

	saved, err := t.findBy(ctx, tx, "id", row.ID)
	if err != nil {
		return presetRow{}, err
	}
	return saved, tx.Commit()
}

func (t presetTable) delete(ctx context.Context, id uint64) (bool, error) {
	return execAffected(ctx, t.db, `DELETE FROM `+t.table+` WHERE id = ?`, id)
}

func (t presetTable) increment(ctx context.Context, key string) (bool, error) {
	return execAffected(ctx, t.db, `UPDATE `+t.table+` SET usage_count = usage_count + 1 WHERE `+t.key+` = ?`, key)
}

func duplicateName(err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicatePresetName
	}
	return err
}

type TagPresetRepository struct {
	t presetTable
}

var _ ports.TagPresetRepository = (*TagPresetRepository)(nil)

func NewTagPresetRepository(db *sqlx.DB) *TagPresetRepository {
	return &TagPresetRepository{t: presetTable{db: db, table: "tag_presets", value: "color", key: "name"}}
}

func (r *TagPresetRepository) FindAll(ctx context.Context) ([]domain.TagPreset, error) {
	rows, err := r.t.findAll(ctx)
	if err != nil {
		return nil, err
	}
	presets := make([]domain.TagPreset, 0, len(rows))
	for _, row := range rows {
		presets = append(presets, tagPreset(row))
	}
	return presets, nil
}

func (r *TagPresetRepository) FindByID(ctx context.Context, id uint64) (domain.TagPreset, error) {
	row, err := r.t.findBy(ctx, r.t.db, "id", id)
	return tagPreset(row), err
}

// FindByName matches case-insensitively.
func (r *TagPresetRepository) FindByName(ctx context.Context, name string) (domain.TagPreset, error) {
	row, err := r.t.findBy(ctx, r.t.db, "name", name)
	return tagPreset(row), err
}

func (r *TagPresetRepository) Create(ctx context.Context, preset domain.TagPreset) (domain.TagPreset, error) {
	row, err := r.t.create(ctx, preset.Name, preset.Color)
	return tagPreset(row), err
}

func (r *TagPresetRepository) Save(ctx context.Context, preset domain.TagPreset) (domain.TagPreset, error) {
	row, err := r.t.save(ctx, presetRow{ID: preset.ID, Name: preset.Name, Value: preset.Color, Position: preset.Position})
	return tagPreset(row), err
}

func (r *TagPresetRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *TagPresetRepository) IncrementUsage(ctx context.Context, name string) (bool, error) {
	return r.t.increment(ctx, name)
}

func tagPreset(row presetRow) domain.TagPreset {
	return domain.TagPreset{ID: row.ID, Name: row.Name, Color: row.Value, UsageCount: row.UsageCount, Position: row.Position}
}

type ColorPresetRepository struct {
	t presetTable
}

var _ ports.ColorPresetRepository = (*ColorPresetRepository)(nil)

func NewColorPresetRepository(db *sqlx.DB) *ColorPresetRepository {
	return &ColorPresetRepository{t: presetTable{db: db, table: "color_presets", value: "hex", key: "hex"}}
}

func (r *ColorPresetRepository) FindAll(ctx context.Context) ([]domain.ColorPreset, error) {
	rows, err := r.t.findAll(ctx)
	if err != nil {
		return nil, err
	}
	presets := make([]domain.ColorPreset, 0, len(rows))
	for _, row := range rows {
		presets = append(presets, colorPreset(row))
	}
	return presets, nil
}

func (r *ColorPresetRepository) FindByID(ctx context.Context, id uint64) (domain.ColorPreset, error) {
	row, err := r.t.findBy(ctx, r.t.db, "id", id)
	return colorPreset(row), err
}

func (r *ColorPresetRepository) FindByHex(ctx context.Context, hex string) (domain.ColorPreset, error) {
	row, err := r.t.findBy(ctx, r.t.db, "hex", hex)
	return colorPreset(row), err
}

func (r *ColorPresetRepository) Create(ctx context.Context, preset domain.ColorPreset) (domain.ColorPreset, error) {
	row, err := r.t.create(ctx, preset.Name, preset.Hex)
	return colorPreset(row), err
}

func (r *ColorPresetRepository) Save(ctx context.Context, preset domain.ColorPreset) (domain.ColorPreset, error) {
	row, err := r.t.save(ctx, presetRow{ID: preset.ID, Name: preset.Name, Value: preset.Hex, Position: preset.Position})
	return colorPreset(row), err
}

func (r *ColorPresetRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *ColorPresetRepository) IncrementUsage(ctx context.Context, hex string) (bool, error) {
	return r.t.increment(ctx, hex)
}

func colorPreset(row presetRow) domain.ColorPreset {
	return domain.ColorPreset{ID: row.ID, Name: row.Name, Hex: row.Value, UsageCount: row.UsageCount, Position: row.Position}
}
