package repository

import (
	"context"
	"testing"

	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarRepo_CreateAssignsID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStarRepo(db)

	s := &domain.Star{RA: 10, Dec: 20, Dist: 3, Mag: 1.5, XEarth: 1}
	require.NoError(t, repo.Create(context.Background(), s))
	assert.NotEmpty(t, s.ID)
}

func TestStarRepo_ListBrightestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStarRepo(db)
	ctx := context.Background()

	for _, mag := range []float64{4, -1, 2} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestStar(testutil.WithMag(mag))))
	}

	stars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stars, 3)
	assert.Equal(t, -1.0, stars[0].Mag)
	assert.Equal(t, 4.0, stars[2].Mag)
}

func TestStarRepo_DeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStarRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestStar()))
	require.NoError(t, repo.Create(ctx, testutil.NewTestStar()))
	require.NoError(t, repo.DeleteAll(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
