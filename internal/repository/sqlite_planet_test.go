package repository

import (
	"context"
	"testing"

	"github.com/sixworlds/exosky/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanetRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanetRepo(db)
	ctx := context.Background()

	p := testutil.NewTestPlanet("Kepler-22 b", testutil.WithPosition(289.2, 47.9, 195))
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "Kepler-22 b")
	require.NoError(t, err)
	assert.Equal(t, *p, *got)
}

func TestPlanetRepo_UpsertReplaces(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanetRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanet("b", testutil.WithPosition(1, 2, 3))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanet("b", testutil.WithPosition(4, 5, 6))))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.RA)
	assert.Equal(t, 6.0, got.Dist)
}

func TestPlanetRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanetRepo(db)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetRepo_ListOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanetRepo(db)
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanet(name)))
	}

	planets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 3)
	assert.Equal(t, "a", planets[0].Name)
	assert.Equal(t, "c", planets[2].Name)
}

func TestPlanetRepo_RejectsNonPositiveDistance(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanetRepo(db)

	err := repo.Upsert(context.Background(), testutil.NewTestPlanet("x", testutil.WithPosition(0, 0, 0)))
	assert.Error(t, err)
}
