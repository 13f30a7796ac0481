package relation

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// Toggle removes the pair's row if present and inserts it otherwise,
// returning whether the relation holds afterwards. Both steps run in one
// transaction and the insert is a no-op on conflict, so concurrent toggles
// never leave more than one row for a pair.
func (e *Engine) Toggle(ctx context.Context, r Relation) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	cond, args := r.Pair()

	var engaged bool
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(cond, args...).Delete(r.Model())
		if res.Error != nil {
			return errors.Wrapf(res.Error, "toggle %s: delete", r.Name())
		}
		if res.RowsAffected > 0 {
			engaged = false
			return nil
		}

		// A concurrent toggle may win the insert. Both callers report true:
		// the row exists when either of them returns.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(r.NewRow()).Error; err != nil {
			return errors.Wrapf(err, "toggle %s: insert", r.Name())
		}
		engaged = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return engaged, nil
}

// Exists reports whether the pair's row is present.
func (e *Engine) Exists(ctx context.Context, r Relation) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	cond, args := r.Pair()

	var count int64
	err := e.db.WithContext(ctx).Model(r.Model()).Where(cond, args...).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check %s", r.Name())
	}
	return count > 0, nil
}
