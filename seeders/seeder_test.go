package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"equipment-system/internal/services"
)

func seededRegistry(t *testing.T) *services.Registry {
	t.Helper()
	reg := services.NewMemoryRegistry(0, zap.NewNop())
	require.NoError(t, New(reg, zap.NewNop()).SeedAll(context.Background()))
	return reg
}

func TestSeedAllCounts(t *testing.T) {
	reg := seededRegistry(t)
	ctx := context.Background()

	buildings, err := reg.Buildings.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, buildings.TotalCount)

	persons, err := reg.Persons.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, persons.TotalCount)

	teams, err := reg.Teams.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, teams.TotalCount)

	equipment, err := reg.Equipment.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, equipment.TotalCount)

	loans, err := reg.Loans.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, loans.TotalCount)

	issues, err := reg.Issues.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, issues.TotalCount)
}

func TestSeedResolvesReferences(t *testing.T) {
	reg := seededRegistry(t)
	ctx := context.Background()

	equipment, err := reg.Equipment.GetAll(ctx, nil)
	require.NoError(t, err)

	teams, err := reg.Teams.GetAll(ctx, nil)
	require.NoError(t, err)
	teamIDs := map[string]bool{}
	for _, team := range teams.Data {
		teamIDs[team.TeamID] = true
	}

	children := 0
	for _, e := range equipment.Data {
		if e.OwnerTeamID != nil {
			assert.True(t, teamIDs[*e.OwnerTeamID],
				"equipment %s references unknown team %s", e.EquipmentCode, *e.OwnerTeamID)
			assert.NotContains(t, *e.OwnerTeamID, ":", "symbolic key leaked into store")
		}
		if e.ParentEquipmentID != nil {
			children++
			parent, err := reg.Equipment.GetByID(ctx, *e.ParentEquipmentID)
			require.NoError(t, err)
			assert.Equal(t, "SIM-KIT-001", parent.EquipmentCode)
		}
	}
	assert.Equal(t, 2, children)
}

func TestSeedLinksPersonsToTeams(t *testing.T) {
	reg := seededRegistry(t)

	persons, err := reg.Persons.GetAll(context.Background(), nil)
	require.NoError(t, err)

	linked := 0
	for _, p := range persons.Data {
		if p.TeamID != nil {
			linked++
		} else {
			assert.Equal(t, "Hank Williams", p.DisplayName)
		}
	}
	assert.Equal(t, 7, linked)
}

func TestSeedCreatesScheduledPMTask(t *testing.T) {
	reg := seededRegistry(t)
	ctx := context.Background()

	tasks, err := reg.PMTasks.GetAll(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 1, tasks.TotalCount)
	task := tasks.Data[0]
	assert.Equal(t, "Scheduled", string(task.Status))

	items, err := reg.PMService.GetTaskItems(ctx, task.PMTaskID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "Pending", string(item.Status))
	}
}

func TestClearAllEmptiesStores(t *testing.T) {
	reg := seededRegistry(t)
	ctx := context.Background()

	require.NoError(t, New(reg, zap.NewNop()).ClearAll(ctx))

	equipment, err := reg.Equipment.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, equipment.TotalCount)

	persons, err := reg.Persons.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, persons.TotalCount)

	buildings, err := reg.Buildings.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, buildings.TotalCount)
}
