package services

import (
	"context"
	"testing"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/dataverse"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore[T any](t *testing.T, adapter *dataverse.ColumnAdapter, items []T) dataservice.DataService[T] {
	t.Helper()
	store, err := dataservice.NewMemoryDataService(items, dataservice.MemoryConfig{
		IDField:      adapter.IDField,
		EntityName:   adapter.EntityName,
		SearchFields: adapter.SearchFields,
	})
	require.NoError(t, err)
	return store
}

func newEquipmentFixture(t *testing.T) (*EquipmentService, dataservice.DataService[entities.Equipment]) {
	t.Helper()
	equipment := seededStore(t, dataverse.EquipmentAdapter, []entities.Equipment{
		{
			EquipmentID:     "eq-1",
			EquipmentCode:   "SIM-001",
			Name:            "Adult Manikin",
			OwnerType:       entities.OwnerTypeTeam,
			OwnerTeamID:     strPtr("team-1"),
			ContactPersonID: "person-1",
			HomeLocationID:  "loc-1",
			Status:          entities.EquipmentAvailable,
			Active:          true,
		},
		{
			EquipmentID:       "eq-2",
			EquipmentCode:     "SIM-002",
			Name:              "Manikin Arm",
			OwnerType:         entities.OwnerTypeTeam,
			OwnerTeamID:       strPtr("team-1"),
			ParentEquipmentID: strPtr("eq-1"),
			Status:            entities.EquipmentAvailable,
		},
	})
	teams := seededStore(t, dataverse.TeamAdapter, []entities.Team{
		{TeamID: "team-1", TeamCode: "SIM-01", Name: "Simulation Team"},
	})
	persons := seededStore(t, dataverse.PersonAdapter, []entities.Person{
		{PersonID: "person-1", DisplayName: "Jane Doe", Email: "jane.doe@rbwh.edu.au"},
	})
	locations := seededStore(t, dataverse.LocationAdapter, []entities.Location{
		{LocationID: "loc-1", BuildingID: "bld-1", LevelID: "lvl-1", Name: "Room 101"},
	})

	return NewEquipmentService(equipment, teams, persons, locations, nil), equipment
}

func TestGetWithDetailsResolvesRelated(t *testing.T) {
	service, _ := newEquipmentFixture(t)

	details, err := service.GetWithDetails(context.Background(), "eq-1")
	require.NoError(t, err)

	assert.Equal(t, "Adult Manikin", details.Equipment.Name)
	require.NotNil(t, details.OwnerTeam)
	assert.Equal(t, "Simulation Team", details.OwnerTeam.Name)
	require.NotNil(t, details.ContactPerson)
	assert.Equal(t, "jane.doe@rbwh.edu.au", details.ContactPerson.Email)
	require.NotNil(t, details.HomeLocation)
	assert.Equal(t, "Room 101", details.HomeLocation.Name)
	assert.Nil(t, details.OwnerPerson)
}

func TestGetWithDetailsToleratesDanglingReferences(t *testing.T) {
	service, equipment := newEquipmentFixture(t)

	_, err := equipment.Update(context.Background(), "eq-1", dataservice.Fields{
		"ownerTeamId": "deleted-team",
	})
	require.NoError(t, err)

	details, err := service.GetWithDetails(context.Background(), "eq-1")
	require.NoError(t, err, "a dangling reference must not hide the record")
	assert.Nil(t, details.OwnerTeam)
	assert.NotNil(t, details.ContactPerson)
}

func TestGetWithDetailsMissingEquipment(t *testing.T) {
	service, _ := newEquipmentFixture(t)

	_, err := service.GetWithDetails(context.Background(), "missing")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGetChildren(t *testing.T) {
	service, _ := newEquipmentFixture(t)

	children, err := service.GetChildren(context.Background(), "eq-1")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "eq-2", children[0].EquipmentID)

	none, err := service.GetChildren(context.Background(), "eq-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestValidateAndCreateRejectsInvalid(t *testing.T) {
	service, equipment := newEquipmentFixture(t)

	_, err := service.ValidateAndCreate(context.Background(), dataservice.Fields{
		"name":          "Ventilator",
		"equipmentCode": "SIM-003",
		"ownerType":     "Team",
		"ownerTeamId":   "team-1",
		"ownerPersonId": "person-1",
		"status":        "Available",
	})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ownerPersonId", ve.Field)

	// Nothing was persisted.
	all, err := equipment.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)
}

func TestValidateAndCreatePersistsValid(t *testing.T) {
	service, _ := newEquipmentFixture(t)

	created, err := service.ValidateAndCreate(context.Background(), dataservice.Fields{
		"name":          "Ventilator",
		"equipmentCode": "SIM-003",
		"ownerType":     "Team",
		"ownerTeamId":   "team-1",
		"status":        "Available",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.EquipmentID)
	assert.Equal(t, "Ventilator", created.Name)
}

func TestValidateAndUpdateValidatesMergedRecord(t *testing.T) {
	service, _ := newEquipmentFixture(t)

	// The patch alone looks harmless; merged with the stored team-owned
	// record it violates owner exclusivity.
	_, err := service.ValidateAndUpdate(context.Background(), "eq-1", dataservice.Fields{
		"ownerPersonId": "person-1",
	})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ownerPersonId", ve.Field)

	updated, err := service.ValidateAndUpdate(context.Background(), "eq-1", dataservice.Fields{
		"status": "UnderMaintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentUnderMaintenance, updated.Status)
	assert.Equal(t, "Adult Manikin", updated.Name)
}

func TestValidateAndUpdateRejectsSelfParent(t *testing.T) {
	service, _ := newEquipmentFixture(t)

	_, err := service.ValidateAndUpdate(context.Background(), "eq-1", dataservice.Fields{
		"parentEquipmentId": "eq-1",
	})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "parentEquipmentId", ve.Field)
}
