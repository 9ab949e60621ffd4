package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPledgeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPledgeRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ok, err := repo.Insert(ctx, "p1", entities.PledgeRecord{OrderID: "o2", Seq: 2, Time: base, Amount: decimal.NewFromInt(32)})
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.Insert(ctx, "p1", entities.PledgeRecord{OrderID: "o1", Seq: 1, Time: base.Add(time.Hour), Amount: decimal.NewFromInt(11)})
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("insert is insert-if-absent", func(t *testing.T) {
		ok, err := repo.Insert(ctx, "p1", entities.PledgeRecord{OrderID: "o1", Amount: decimal.NewFromInt(99)})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("list is ordered by seq and scoped by project", func(t *testing.T) {
		recs, err := repo.ListByProject(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		require.Equal(t, "o1", recs[0].OrderID)
		require.True(t, recs[0].Amount.Equal(decimal.NewFromInt(11)))

		other, err := repo.ListByProject(ctx, "p2")
		require.NoError(t, err)
		require.Empty(t, other)
	})

	t.Run("update flags touches only settlement flags", func(t *testing.T) {
		err := repo.UpdateFlags(ctx, "p1", entities.PledgeRecord{OrderID: "o2", Refunded: true, Amount: decimal.Zero})
		require.NoError(t, err)
		recs, _ := repo.ListByProject(ctx, "p1")
		require.True(t, recs[1].Refunded)
		require.False(t, recs[1].Bonus.Refunded)
		require.True(t, recs[1].Amount.Equal(decimal.NewFromInt(32)))
	})

	t.Run("update unknown record", func(t *testing.T) {
		err := repo.UpdateFlags(ctx, "p1", entities.PledgeRecord{OrderID: "nope"})
		require.True(t, errors.Is(err, ErrRecordNotFound))
	})

	t.Run("replace all", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(ctx, "p1", []entities.PledgeRecord{{OrderID: "o9", Seq: 1}}))
		recs, _ := repo.ListByProject(ctx, "p1")
		require.Len(t, recs, 1)
		require.Equal(t, "o9", recs[0].OrderID)
	})
}

func TestLedgerSchemaRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerSchemaRepository()
	v, err := repo.GetVersion(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.NoError(t, repo.SetVersion(ctx, "p1", 2))
	v, _ = repo.GetVersion(ctx, "p1")
	require.Equal(t, 2, v)
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()
	p, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	require.Equal(t, "", p.ID)

	require.NoError(t, repo.Put(ctx, entities.Project{ID: "b"}))
	require.NoError(t, repo.Put(ctx, entities.Project{ID: "a", AuthorName: "Ann"}))
	got, _ := repo.Get(ctx, "a")
	require.Equal(t, "Ann", got.AuthorName)
	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ids)
}

func TestAclRepository_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := NewAclRepository()

	acl, err := repo.Get(ctx, "/projects/p1")
	require.NoError(t, err)
	require.Equal(t, int64(0), acl.Version)
	require.Empty(t, acl.Grants)

	acl.Grants["ann"] = []entities.Permission{entities.PermissionEdit}
	stored, err := repo.CompareAndSwap(ctx, acl, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), stored.Version)

	_, err = repo.CompareAndSwap(ctx, acl, 0)
	require.True(t, errors.Is(err, interfaces.ErrAclVersionConflict))

	stored.Grants["ann"][0] = entities.PermissionPublish
	again, _ := repo.Get(ctx, "/projects/p1")
	require.Equal(t, []entities.Permission{entities.PermissionEdit}, again.Grants["ann"])
}
