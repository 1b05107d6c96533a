package dataservice

import (
	"context"
	"fmt"
	"testing"

	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equipmentStore(t *testing.T, items []entities.Equipment) *MemoryDataService[entities.Equipment] {
	t.Helper()
	seq := 0
	store, err := NewMemoryDataService(items, MemoryConfig{
		IDField:      "equipmentId",
		EntityName:   "Equipment",
		SearchFields: []string{"name", "equipmentCode", "description"},
		NewID: func() string {
			seq++
			return fmt.Sprintf("gen-%d", seq)
		},
	})
	require.NoError(t, err)
	return store
}

func sampleEquipment() []entities.Equipment {
	return []entities.Equipment{
		{EquipmentID: "eq-1", EquipmentCode: "SIM-001", Name: "Debrief Camera", Status: entities.EquipmentAvailable, OwnerType: entities.OwnerTypeTeam, Active: true},
		{EquipmentID: "eq-2", EquipmentCode: "SIM-002", Name: "Adult Manikin", Status: entities.EquipmentInUse, OwnerType: entities.OwnerTypeTeam, Active: true},
		{EquipmentID: "eq-3", EquipmentCode: "SIM-003", Name: "Ventilator", Status: entities.EquipmentAvailable, OwnerType: entities.OwnerTypeTeam, Active: true},
	}
}

func TestMemoryGetAllSearch(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	result, err := store.GetAll(context.Background(), &ListOptions{Search: "cam"})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, "Debrief Camera", result.Data[0].Name)
	assert.Equal(t, 1, result.TotalCount)
	assert.False(t, result.HasMore)
}

func TestMemoryGetAllSearchIsCaseInsensitive(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	result, err := store.GetAll(context.Background(), &ListOptions{Search: "MANIKIN"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "eq-2", result.Data[0].EquipmentID)
}

func TestMemoryGetAllEqualityFilter(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	result, err := store.GetAll(context.Background(), &ListOptions{Filter: "status eq 'Available'"})
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)

	result, err = store.GetAll(context.Background(), &ListOptions{Filter: "equipmentId eq 'eq-2'"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Adult Manikin", result.Data[0].Name)
}

func TestMemoryGetAllSort(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	asc, err := store.GetAll(context.Background(), &ListOptions{OrderBy: "name asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Adult Manikin", "Debrief Camera", "Ventilator"}, names(asc.Data))

	desc, err := store.GetAll(context.Background(), &ListOptions{OrderBy: "name desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ventilator", "Debrief Camera", "Adult Manikin"}, names(desc.Data))
}

func TestMemoryGetAllSortsNullsLast(t *testing.T) {
	alpha, zulu := "alpha", "zulu"
	items := []entities.Equipment{
		{EquipmentID: "a", Name: "First", ParentEquipmentID: &alpha, Status: entities.EquipmentAvailable},
		{EquipmentID: "b", Name: "Unparented", Status: entities.EquipmentAvailable},
		{EquipmentID: "c", Name: "Last", ParentEquipmentID: &zulu, Status: entities.EquipmentAvailable},
	}
	store := equipmentStore(t, items)

	asc, err := store.GetAll(context.Background(), &ListOptions{OrderBy: "parentEquipmentId asc"})
	require.NoError(t, err)
	require.Len(t, asc.Data, 3)
	assert.Equal(t, "a", asc.Data[0].EquipmentID)
	assert.Equal(t, "c", asc.Data[1].EquipmentID)
	assert.Equal(t, "b", asc.Data[2].EquipmentID, "nil sorts last ascending")

	desc, err := store.GetAll(context.Background(), &ListOptions{OrderBy: "parentEquipmentId desc"})
	require.NoError(t, err)
	require.Len(t, desc.Data, 3)
	assert.Equal(t, "c", desc.Data[0].EquipmentID)
	assert.Equal(t, "a", desc.Data[1].EquipmentID)
	assert.Equal(t, "b", desc.Data[2].EquipmentID, "nil sorts last descending too")
}

func TestMemoryGetAllPagination(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	page, err := store.GetAll(context.Background(), &ListOptions{OrderBy: "equipmentCode asc", Top: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.TotalCount)
	assert.True(t, page.HasMore)

	last, err := store.GetAll(context.Background(), &ListOptions{OrderBy: "equipmentCode asc", Top: 2, Skip: 2})
	require.NoError(t, err)
	require.Len(t, last.Data, 1)
	assert.Equal(t, "SIM-003", last.Data[0].EquipmentCode)
	assert.False(t, last.HasMore)
}

func TestMemoryGetByID(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	item, err := store.GetByID(context.Background(), "eq-3")
	require.NoError(t, err)
	assert.Equal(t, "Ventilator", item.Name)

	_, err = store.GetByID(context.Background(), "missing")
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Equipment", nf.Entity)
	assert.Equal(t, "missing", nf.ID)
}

func TestMemoryCreateAssignsIdentity(t *testing.T) {
	store := equipmentStore(t, nil)

	created, err := store.Create(context.Background(), Fields{
		"name":          "Infusion Pump",
		"equipmentCode": "SIM-010",
		"status":        "Available",
	})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", created.EquipmentID)

	fetched, err := store.GetByID(context.Background(), "gen-1")
	require.NoError(t, err)
	assert.Equal(t, "Infusion Pump", fetched.Name)
}

func TestMemoryUpdateMergesPatch(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	updated, err := store.Update(context.Background(), "eq-1", Fields{"status": "Retired"})
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentRetired, updated.Status)
	assert.Equal(t, "Debrief Camera", updated.Name, "untouched fields survive")

	_, err = store.Update(context.Background(), "missing", Fields{"status": "Retired"})
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestMemoryUpdateClearsFieldWithNil(t *testing.T) {
	parent := "eq-2"
	store := equipmentStore(t, []entities.Equipment{
		{EquipmentID: "eq-1", Name: "Child", ParentEquipmentID: &parent, Status: entities.EquipmentAvailable},
	})

	updated, err := store.Update(context.Background(), "eq-1", Fields{"parentEquipmentId": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.ParentEquipmentID)
}

func TestMemoryDelete(t *testing.T) {
	store := equipmentStore(t, sampleEquipment())

	require.NoError(t, store.Delete(context.Background(), "eq-2"))

	_, err := store.GetByID(context.Background(), "eq-2")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)

	err = store.Delete(context.Background(), "eq-2")
	assert.ErrorAs(t, err, &nf)
}

func TestMemoryCopiesSourceSlice(t *testing.T) {
	source := sampleEquipment()
	store := equipmentStore(t, source)

	source[0].Name = "Mutated"

	item, err := store.GetByID(context.Background(), "eq-1")
	require.NoError(t, err)
	assert.Equal(t, "Debrief Camera", item.Name)
}

func names(items []entities.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Name
	}
	return out
}
