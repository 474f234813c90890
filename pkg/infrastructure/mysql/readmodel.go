package mysql

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

var (
	_ model.ProductNamesReader = &ReadModel{}
	_ model.DisplayOrderReader = &ReadModel{}
)

type ReadModel struct {
	db            *sqlx.DB
	merchandiseID string
}

func NewReadModel(db *sqlx.DB, merchandiseID string) *ReadModel {
	return &ReadModel{db: db, merchandiseID: merchandiseID}
}

func (r *ReadModel) ReadProductNames(ctx context.Context) (model.ProductNames, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, `SELECT name FROM product WHERE merchandise_id = ?`, r.merchandiseID)
	if err != nil {
		return model.ProductNames{}, errors.WithStack(err)
	}
	return model.NewProductNames(names...), nil
}

// ReadDisplayOrder places the next product after the last one.
func (r *ReadModel) ReadDisplayOrder(ctx context.Context) (model.DisplayOrder, error) {
	var last int
	err := r.db.GetContext(ctx, &last,
		`SELECT COALESCE(MAX(display_order), 0) FROM product WHERE merchandise_id = ?`, r.merchandiseID)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return model.NewDisplayOrder(last + 1)
}
