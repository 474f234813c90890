package mysql

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

// setupTestDB connects to the database named by MERCHANDISE_TEST_DSN
// and skips the test when it is not configured or unreachable.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("MERCHANDISE_TEST_DSN")
	if dsn == "" {
		t.Skip("MERCHANDISE_TEST_DSN is not set")
	}

	db, err := Open(context.Background(), dsn)
	if err != nil {
		t.Skipf("could not connect to mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db.DB))
	return db
}

func mustNonEmpty(t *testing.T, s string) model.NonEmptyString {
	t.Helper()
	v, err := model.NewNonEmptyString(s)
	require.NoError(t, err)
	return v
}

func productAdded(t *testing.T, name string, order int) model.ProductAdded {
	return model.ProductAdded{
		Product: model.Product{
			ID:          model.IdentifierFrom(mustNonEmpty(t, uuid.NewString())),
			Name:        mustNonEmpty(t, name),
			Description: mustNonEmpty(t, "description of "+name),
			Category:    mustNonEmpty(t, "Kitchen"),
		},
		DisplayOrder: model.DisplayOrder(order),
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN{User: "app", Password: "secret", Host: "db:3306", Database: "merchandise"}.String()

	require.Contains(t, dsn, "app:secret@tcp(db:3306)/merchandise")
	require.Contains(t, dsn, "parseTime=true")
	require.Contains(t, dsn, "multiStatements=true")
}

func TestMerchandiseRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	newStores := func() (*MerchandiseRepository, *ReadModel) {
		id := uuid.NewString()
		return NewMerchandiseRepository(db, id), NewReadModel(db, id)
	}

	t.Run("unknown merchandise restores as empty", func(t *testing.T) {
		repo, readModel := newStores()

		state, err := repo.Restore(ctx)
		require.NoError(t, err)
		require.Equal(t, model.NewEmpty(0), state)

		names, err := readModel.ReadProductNames(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, names.Len())

		order, err := readModel.ReadDisplayOrder(ctx)
		require.NoError(t, err)
		require.Equal(t, model.DisplayOrder(1), order)
	})

	t.Run("saved products are projected", func(t *testing.T) {
		repo, readModel := newStores()

		require.NoError(t, repo.SaveProduct(ctx, productAdded(t, "Mug", 1), 0))
		require.NoError(t, repo.SaveProduct(ctx, productAdded(t, "Plate", 2), 1))

		state, err := repo.Restore(ctx)
		require.NoError(t, err)
		require.Equal(t, model.NewOpen(2), state)

		names, err := readModel.ReadProductNames(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Mug", "Plate"}, names.Names())

		order, err := readModel.ReadDisplayOrder(ctx)
		require.NoError(t, err)
		require.Equal(t, model.DisplayOrder(3), order)
	})

	t.Run("stale version is rejected without partial writes", func(t *testing.T) {
		repo, readModel := newStores()
		require.NoError(t, repo.SaveProduct(ctx, productAdded(t, "Mug", 1), 0))

		err := repo.SaveProduct(ctx, productAdded(t, "Plate", 2), 0)
		require.ErrorIs(t, err, model.ErrOptimisticLock)

		names, err := readModel.ReadProductNames(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Mug"}, names.Names())
	})

	t.Run("suspension is persisted with its reason", func(t *testing.T) {
		repo, _ := newStores()
		require.NoError(t, repo.SaveProduct(ctx, productAdded(t, "Mug", 1), 0))

		suspended := model.NewSuspended(mustNonEmpty(t, "入荷停止中"), 2)
		require.NoError(t, repo.SaveState(ctx, suspended, 1))

		state, err := repo.Restore(ctx)
		require.NoError(t, err)
		require.Equal(t, suspended, state)

		require.NoError(t, repo.SaveState(ctx, model.NewOpen(3), 2))
		state, err = repo.Restore(ctx)
		require.NoError(t, err)
		require.Equal(t, model.NewOpen(3), state)
	})
}
