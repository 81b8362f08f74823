package repositories

import (
	"context"

	"starwars-server/db"
	"starwars-server/entities"
)

// pgRepository holds the queries shared by every catalog table. Rows come
// back in id order, which is insertion order.
type pgRepository[T any] struct {
	db     db.Database
	entity string
}

func (r *pgRepository[T]) Create(ctx context.Context, row *T) error {
	err := r.db.GetDB().WithContext(ctx).Create(row).Error
	return translateWrite("create "+r.entity, err)
}

func (r *pgRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.db.GetDB().WithContext(ctx).First(&row, id).Error
	if err != nil {
		return nil, translateRead("get "+r.entity, r.entity, id, err)
	}
	return &row, nil
}

func (r *pgRepository[T]) GetByIDs(ctx context.Context, ids []uint) ([]T, error) {
	rows := []T{}
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.GetDB().WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, entities.Persistence("get "+r.entity+"s by id", err)
	}
	return rows, nil
}

func (r *pgRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	rows := []T{}
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, entities.Persistence("list "+r.entity+"s", err)
	}
	return rows, nil
}

func (r *pgRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.GetDB().WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translateDelete("delete "+r.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.NotFound(r.entity, id)
	}
	return nil
}
