package repository

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedJobGormRepository_GetAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots survive later renames", func(t *testing.T) {
		db := newTestDB(t)
		s := seedJob(t, db, "org-1")
		res, err := newCompletionUseCase(db).CompleteJob(ctx, entities.Identity{OrgID: s.OrgID, ActorID: "tech-1"}, s.JobID)
		require.NoError(t, err)

		require.NoError(t, db.Model(&customerModel{}).Where("id = ?", s.CustomerID).Update("name", "Acme Renamed").Error)
		require.NoError(t, db.Model(&equipmentModel{}).Where("id = ?", s.BoilerID).Update("name", "Boiler v2").Error)

		agg, err := NewCompletedJobGormRepository(db).GetAggregate(ctx, s.OrgID, res.CompletedJobID)
		require.NoError(t, err)
		assert.Equal(t, res.CompletedJobID, agg.CompletedJob.ID)
		assert.Equal(t, "Acme Heating", agg.CompletedJob.CustomerNameSnapshot)
		require.Len(t, agg.Equipment, 3)
		assert.Equal(t, "Boiler", agg.Equipment[0].EquipmentNameSnapshot)
		assert.Equal(t, s.BoilerID, agg.Equipment[0].EquipmentID)

		assert.Len(t, agg.Notes, 2)
		assert.Len(t, agg.Charges, 3)
		assert.Len(t, agg.Hours, 1)
		assert.Len(t, agg.Parts, 2)
		require.Len(t, agg.Photos, 1)
		assert.Equal(t, "photos/"+s.JobID+"/1.jpg", agg.Photos[0].StorageKey)
		assert.Equal(t, "arrived", agg.Notes[0].Text)
		assert.Equal(t, res.CompletedJobID, agg.Notes[0].CompletedJobID)
		assert.InDelta(t, -5.0, agg.Charges[2].Total, 0.0001)

		seeded := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
		at := func(minutes int) time.Time { return seeded.Add(time.Duration(minutes) * time.Minute) }
		assert.True(t, agg.Notes[0].CreatedAt.Equal(at(1)))
		assert.Equal(t, "discount", agg.Charges[2].Kind)
		assert.InDelta(t, 2.0, agg.Charges[1].Quantity, 0.0001)
		assert.InDelta(t, 10.0, agg.Charges[1].UnitPrice, 0.0001)
		assert.True(t, agg.Charges[0].CreatedAt.Equal(at(3)))
		assert.InDelta(t, 2.5, agg.Hours[0].Hours, 0.0001)
		assert.Equal(t, "Labor", agg.Hours[0].Description)
		assert.True(t, agg.Hours[0].CreatedAt.Equal(at(6)))
		assert.Equal(t, "Filter", agg.Parts[0].PartName)
		assert.InDelta(t, 2.0, agg.Parts[0].Quantity, 0.0001)
		assert.True(t, agg.Parts[1].CreatedAt.Equal(at(8)))
		assert.True(t, agg.Photos[0].CreatedAt.Equal(at(9)))
		assert.True(t, agg.Equipment[2].CreatedAt.Equal(at(12)))
	})

	t.Run("unknown id and other org return zero", func(t *testing.T) {
		db := newTestDB(t)
		s := seedJob(t, db, "org-1")
		res, err := newCompletionUseCase(db).CompleteJob(ctx, entities.Identity{OrgID: s.OrgID, ActorID: "tech-1"}, s.JobID)
		require.NoError(t, err)
		repo := NewCompletedJobGormRepository(db)

		agg, err := repo.GetAggregate(ctx, s.OrgID, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, agg.CompletedJob.ID)

		agg, err = repo.GetAggregate(ctx, "org-2", res.CompletedJobID)
		require.NoError(t, err)
		assert.Empty(t, agg.CompletedJob.ID)
	})
}

func TestCompletedJobGormRepository_ListByOrg(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	customerA, customerB := uuid.NewString(), uuid.NewString()

	rows := []completedJobModel{
		{ID: "cj-old", OrgID: "org-1", OriginalJobID: uuid.NewString(), CustomerID: customerA, CompletedAt: base},
		{ID: "cj-new", OrgID: "org-1", OriginalJobID: uuid.NewString(), CustomerID: customerB, CompletedAt: base.Add(48 * time.Hour)},
		{ID: "cj-mid", OrgID: "org-1", OriginalJobID: uuid.NewString(), CustomerID: customerA, CompletedAt: base.Add(24 * time.Hour)},
		{ID: "cj-other", OrgID: "org-2", OriginalJobID: uuid.NewString(), CustomerID: customerA, CompletedAt: base},
	}
	require.NoError(t, db.Create(&rows).Error)
	repo := NewCompletedJobGormRepository(db)

	all, err := repo.ListByOrg(ctx, "org-1", "")
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, cj := range all {
		ids = append(ids, cj.ID)
	}
	assert.Equal(t, []string{"cj-new", "cj-mid", "cj-old"}, ids)

	filtered, err := repo.ListByOrg(ctx, "org-1", customerA)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "cj-mid", filtered[0].ID)

	none, err := repo.ListByOrg(ctx, "org-3", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPricingPresetGormRepository_ListByOrg(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&[]pricingPresetModel{
		{ID: uuid.NewString(), OrgID: "org-1", Name: "Labor", UnitPrice: 80},
		{ID: uuid.NewString(), OrgID: "org-1", Name: "Filter", UnitPrice: 7.25},
		{ID: uuid.NewString(), OrgID: "org-2", Name: "Labor", UnitPrice: 95},
	}).Error)

	presets, err := NewPricingPresetGormRepository(db).ListByOrg(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "Filter", presets[0].Name)
	assert.Equal(t, 80.0, presets[1].UnitPrice)
}
