package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_ByIDs(t *testing.T) {
	db := setupDB(t)
	seedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	hotels, err := repo.HotelsByIDs(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, hotels, 2)

	// Unknown ids simply return fewer rows; the composer compares counts.
	hotels, err = repo.HotelsByIDs(ctx, []int64{1, 999})
	require.NoError(t, err)
	assert.Len(t, hotels, 1)

	activities, err := repo.ActivitiesByIDs(ctx, []int64{2})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Kayaking at Ao Nang", activities[0].Name)

	transfers, err := repo.TransfersByIDs(ctx, []int64{1})
	require.NoError(t, err)
	assert.Len(t, transfers, 1)
}

func TestCatalogRepository_Locations(t *testing.T) {
	db := setupDB(t)
	seedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	all, err := repo.Locations(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	phuket, err := repo.Locations(ctx, "Phuket")
	require.NoError(t, err)
	require.Len(t, phuket, 1)
	assert.Equal(t, "Patong Beach", phuket[0].Name)

	none, err := repo.Locations(ctx, "Bangkok")
	require.NoError(t, err)
	assert.Empty(t, none)
}
