package identity

import (
	"context"

	"gorm.io/gorm"
)

// Column names shared by every table carrying identity codes.
const (
	codeColumn    = "unique_code"
	projectColumn = "project_id"
)

// TableLookup answers Lookup queries against the table of model, using db as
// given. Pass the open transaction so the scan and the insert see the same rows.
type TableLookup struct {
	db    *gorm.DB
	model any
}

func NewTableLookup(db *gorm.DB, model any) *TableLookup {
	return &TableLookup{db: db, model: model}
}

func (l *TableLookup) CodesInScope(ctx context.Context, scope Scope) ([]string, error) {
	query := l.db.WithContext(ctx).Model(l.model)
	if scope.ProjectID != 0 {
		query = query.Where(projectColumn+" = ?", scope.ProjectID)
	} else {
		query = query.Where(codeColumn+" LIKE ?", scope.Prefix+"%")
	}

	var codes []string
	if err := query.Pluck(codeColumn, &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (l *TableLookup) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(l.model).
		Where(codeColumn+" = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ Lookup = (*TableLookup)(nil)
