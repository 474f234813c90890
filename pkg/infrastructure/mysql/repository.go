package mysql

import (
	"context"
	"database/sql"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

const (
	statusOpen      = "open"
	statusSuspended = "suspended"

	errDuplicateEntry = 1062
)

var _ model.MerchandiseRepository = &MerchandiseRepository{}

type merchandiseRow struct {
	Status  string         `db:"status"`
	Reason  sql.NullString `db:"reason"`
	Version int            `db:"version"`
}

type productRow struct {
	ID            string `db:"id"`
	MerchandiseID string `db:"merchandise_id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	Category      string `db:"category"`
	DisplayOrder  int    `db:"display_order"`
}

// MerchandiseRepository stores a single merchandise aggregate and its
// product projection. The version column guards every write.
type MerchandiseRepository struct {
	db            *sqlx.DB
	merchandiseID string
}

func NewMerchandiseRepository(db *sqlx.DB, merchandiseID string) *MerchandiseRepository {
	return &MerchandiseRepository{db: db, merchandiseID: merchandiseID}
}

func (r *MerchandiseRepository) Restore(ctx context.Context) (model.Merchandise, error) {
	var row merchandiseRow
	err := r.db.GetContext(ctx, &row, `SELECT status, reason, version FROM merchandise WHERE id = ?`, r.merchandiseID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewEmpty(0), nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	switch row.Status {
	case statusSuspended:
		reason, err := model.NewNonEmptyString(row.Reason.String)
		if err != nil {
			return nil, errors.Wrapf(err, "merchandise %s is suspended without reason", r.merchandiseID)
		}
		return model.NewSuspended(reason, row.Version), nil
	case statusOpen:
		var count int
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM product WHERE merchandise_id = ?`, r.merchandiseID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if count == 0 {
			return model.NewEmpty(row.Version), nil
		}
		return model.NewOpen(row.Version), nil
	default:
		return nil, errors.Errorf("merchandise %s has unknown status %q", r.merchandiseID, row.Status)
	}
}

func (r *MerchandiseRepository) SaveProduct(ctx context.Context, event model.ProductAdded, expectedVersion int) error {
	return r.inTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.bumpVersion(ctx, tx, statusOpen, sql.NullString{}, expectedVersion); err != nil {
			return err
		}

		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO product (id, merchandise_id, name, description, category, display_order)
			VALUES (:id, :merchandise_id, :name, :description, :category, :display_order)`,
			productRow{
				ID:            event.Product.ID.String(),
				MerchandiseID: r.merchandiseID,
				Name:          event.Product.Name.String(),
				Description:   event.Product.Description.String(),
				Category:      event.Product.Category.String(),
				DisplayOrder:  event.DisplayOrder.Int(),
			},
		)
		return translateError(err)
	})
}

func (r *MerchandiseRepository) SaveState(ctx context.Context, merchandise model.Merchandise, expectedVersion int) error {
	var (
		status string
		reason sql.NullString
	)
	switch m := merchandise.(type) {
	case model.Empty, model.Open:
		status = statusOpen
	case model.Suspended:
		status = statusSuspended
		reason = sql.NullString{String: m.Reason().String(), Valid: true}
	default:
		return model.ErrUnknownMerchandiseState
	}

	return r.inTransaction(ctx, func(tx *sqlx.Tx) error {
		return r.bumpVersion(ctx, tx, status, reason, expectedVersion)
	})
}

func (r *MerchandiseRepository) bumpVersion(ctx context.Context, tx *sqlx.Tx, status string, reason sql.NullString, expectedVersion int) error {
	if expectedVersion == 0 {
		_, err := tx.ExecContext(ctx,
			`INSERT IGNORE INTO merchandise (id, status, reason, version) VALUES (?, ?, NULL, 0)`,
			r.merchandiseID, statusOpen,
		)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE merchandise SET status = ?, reason = ?, version = version + 1 WHERE id = ? AND version = ?`,
		status, reason, r.merchandiseID, expectedVersion,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return model.ErrOptimisticLock
	}
	return nil
}

func (r *MerchandiseRepository) inTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit transaction")
}

// translateError reports unique key violations as lost races.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
		return model.ErrOptimisticLock
	}
	return errors.WithStack(err)
}
