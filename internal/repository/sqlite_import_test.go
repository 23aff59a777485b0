package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRepo_ListRecentNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteImportRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &domain.ImportRecord{
		Kind: domain.ImportPlanets, Source: "planets.csv", RowCount: 12, CreatedAt: base,
	}))
	require.NoError(t, repo.Create(ctx, &domain.ImportRecord{
		Kind: domain.ImportStars, Source: "stars.json", RowCount: 900, CreatedAt: base.Add(time.Hour),
	}))

	recs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.ImportStars, recs[0].Kind)
	assert.Equal(t, 900, recs[0].RowCount)
	assert.True(t, recs[0].CreatedAt.Equal(base.Add(time.Hour)))
	assert.Equal(t, "planets.csv", recs[1].Source)

	recs, err = repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestImportRepo_RejectsUnknownKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteImportRepo(db)

	err := repo.Create(context.Background(), &domain.ImportRecord{Kind: "comets", Source: "x"})
	assert.Error(t, err)
}
