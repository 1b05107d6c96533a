package repositories

import (
	"testing"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/dataverse"
	"equipment-system/internal/entities"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equipmentPostgres() *PostgresDataService[entities.Equipment] {
	return NewPostgresDataService[entities.Equipment](nil, dataverse.EquipmentAdapter, nil)
}

func TestPredicatesIncludeBaseFilter(t *testing.T) {
	service := equipmentPostgres()

	predicates := service.predicates(&dataservice.ListOptions{})
	require.Len(t, predicates, 1)

	sql, _, err := squirrel.Select("1").From("t").Where(predicates[0]).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "redi_sq_active IS NOT NULL")
}

func TestPredicatesSearchUsesILike(t *testing.T) {
	service := equipmentPostgres()

	predicates := service.predicates(&dataservice.ListOptions{Search: "cam"})
	require.Len(t, predicates, 2)

	sql, args, err := squirrel.Select("1").From("t").Where(predicates[1]).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "redi_itemname ILIKE ?")
	assert.Contains(t, sql, "redi_equipmentcode ILIKE ?")
	assert.Contains(t, sql, " OR ")
	assert.Contains(t, args, "%cam%")
}

func TestPredicatesFilterEncodesChoiceValues(t *testing.T) {
	service := equipmentPostgres()

	predicates := service.predicates(&dataservice.ListOptions{Filter: "status eq 'Available'"})
	require.Len(t, predicates, 2)

	sql, args, err := squirrel.Select("1").From("t").Where(predicates[1]).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "redi_sq_status = ?")
	assert.Equal(t, []any{1}, args, "choice enum stored as its integer code")
}

func TestPredicatesFilterOnLookupColumn(t *testing.T) {
	service := equipmentPostgres()

	predicates := service.predicates(&dataservice.ListOptions{Filter: "parentEquipmentId eq 'eq-1'"})
	require.Len(t, predicates, 2)

	sql, args, err := squirrel.Select("1").From("t").Where(predicates[1]).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "_redi_parentequipmentid_value = ?")
	assert.Equal(t, []any{"eq-1"}, args)
}

func TestOrderClauseSortsNullsLast(t *testing.T) {
	service := equipmentPostgres()

	assert.Equal(t, "redi_itemname ASC NULLS LAST", service.orderClause("name"))
	assert.Equal(t, "redi_itemname DESC NULLS LAST", service.orderClause("name desc"))
}

func TestToRowEncodesPatch(t *testing.T) {
	service := equipmentPostgres()

	row := service.toRow(dataservice.Fields{
		"equipmentId":       "ignored",
		"name":              "Ventilator",
		"status":            "Retired",
		"parentEquipmentId": nil,
		"unmapped":          "dropped",
	})

	assert.NotContains(t, row, "redi_equipmentid")
	assert.NotContains(t, row, "unmapped")
	assert.Equal(t, "Ventilator", row["redi_itemname"])
	assert.Equal(t, 4, row["redi_sq_status"])

	value, present := row["_redi_parentequipmentid_value"]
	assert.True(t, present, "nil patch value clears the column")
	assert.Nil(t, value)
}

func TestToRowDropsVirtualFields(t *testing.T) {
	service := NewPostgresDataService[entities.Person](nil, dataverse.PersonAdapter, nil)

	row := service.toRow(dataservice.Fields{
		"displayName": "Alex Rivera",
		"teamId":      "team-1",
	})

	assert.Equal(t, "Alex Rivera", row["redi_displayname"])
	assert.NotContains(t, row, "_redi_teamid_value")
}
