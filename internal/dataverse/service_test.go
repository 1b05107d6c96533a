package dataverse

import (
	"context"
	"strings"
	"testing"
	"time"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientCall struct {
	table     string
	operation string
	params    map[string]any
}

type fakeClient struct {
	calls   []clientCall
	handler func(call clientCall) (*OperationResult, error)
}

func (c *fakeClient) Execute(_ context.Context, table, operation string, params map[string]any) (*OperationResult, error) {
	call := clientCall{table: table, operation: operation, params: params}
	c.calls = append(c.calls, call)
	return c.handler(call)
}

func remoteEquipmentRow(id, name string) map[string]any {
	return map[string]any{
		"redi_equipmentid":   id,
		"redi_equipmentcode": "SIM-001",
		"redi_itemname":      name,
		"redi_sq_ownertype":  float64(1),
		"redi_sq_status":     float64(2),
		"redi_sq_active":     true,
		"_redi_ownerteamid_value": "team-1",
	}
}

func equipmentService(client Client, retryOpts *retry.Options) *DataverseDataService[entities.Equipment] {
	return NewDataverseDataService[entities.Equipment](client, EquipmentAdapter, nil, retryOpts)
}

func noRetry() *retry.Options {
	return &retry.Options{Sleep: func(context.Context, time.Duration) error { return nil }}
}

func TestRemoteGetAllTranslatesQuery(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{
			Success: true,
			Data:    []map[string]any{remoteEquipmentRow("eq-1", "Debrief Camera")},
		}, nil
	}}
	service := equipmentService(client, noRetry())

	result, err := service.GetAll(context.Background(), &dataservice.ListOptions{
		Search:  "cam",
		Filter:  "status eq 'Available'",
		OrderBy: "name desc",
		Top:     10,
		Skip:    5,
	})
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "redi_equipments", call.table)
	assert.Equal(t, OpList, call.operation)
	assert.Equal(t, true, call.params[ParamCount])
	assert.Equal(t, 10, call.params[ParamTop])
	assert.Equal(t, 5, call.params[ParamSkip])
	assert.Equal(t, "redi_itemname desc", call.params[ParamOrderBy])
	assert.Equal(t, strings.Join(EquipmentAdapter.SelectColumns(), ","), call.params[ParamSelect])

	expectedFilter := "redi_sq_active ne null" +
		" and (contains(redi_itemname,'cam') or contains(redi_equipmentcode,'cam') or contains(redi_sq_description,'cam'))" +
		" and redi_sq_status eq 'Available'"
	assert.Equal(t, expectedFilter, call.params[ParamFilter])

	require.Len(t, result.Data, 1)
	item := result.Data[0]
	assert.Equal(t, "eq-1", item.EquipmentID)
	assert.Equal(t, "Debrief Camera", item.Name)
	assert.Equal(t, entities.EquipmentInUse, item.Status)
	assert.Equal(t, entities.OwnerTypeTeam, item.OwnerType)
	require.NotNil(t, item.OwnerTeamID)
	assert.Equal(t, "team-1", *item.OwnerTeamID)
}

func TestRemoteGetAllSearchEscapesQuotes(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{Success: true, Data: []map[string]any{}}, nil
	}}
	service := equipmentService(client, noRetry())

	_, err := service.GetAll(context.Background(), &dataservice.ListOptions{Search: "O'Brien"})
	require.NoError(t, err)

	filter, _ := client.calls[0].params[ParamFilter].(string)
	assert.Contains(t, filter, "contains(redi_itemname,'O''Brien')")
}

func TestRemoteGetAllPagingMetadata(t *testing.T) {
	count := 42
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{
			Success:   true,
			Data:      []map[string]any{remoteEquipmentRow("eq-1", "Ventilator")},
			Count:     &count,
			SkipToken: "page-2",
		}, nil
	}}
	service := equipmentService(client, noRetry())

	result, err := service.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 42, result.TotalCount)
	assert.True(t, result.HasMore)
}

func TestRemoteGetByIDNotFound(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{
			Success: false,
			Error:   &OperationError{Status: 404, Message: "no such record"},
		}, nil
	}}
	service := equipmentService(client, noRetry())

	_, err := service.GetByID(context.Background(), "missing")
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Equipment", nf.Entity)
	assert.Equal(t, "missing", nf.ID)
	assert.Len(t, client.calls, 1)
}

func TestRemoteCreateEncodesAndRefetches(t *testing.T) {
	client := &fakeClient{handler: func(call clientCall) (*OperationResult, error) {
		if call.operation == OpCreate {
			return &OperationResult{
				Success: true,
				Data:    map[string]any{"redi_equipmentid": "eq-9"},
			}, nil
		}
		return &OperationResult{Success: true, Data: remoteEquipmentRow("eq-9", "Infusion Pump")}, nil
	}}
	service := equipmentService(client, noRetry())

	created, err := service.Create(context.Background(), dataservice.Fields{
		"equipmentId":       "client-supplied-ignored",
		"name":              "Infusion Pump",
		"status":            "InUse",
		"ownerType":         "Team",
		"ownerTeamId":       "team-1",
		"parentEquipmentId": nil,
		"unmappedField":     "dropped",
	})
	require.NoError(t, err)

	require.Len(t, client.calls, 2)
	assert.Equal(t, OpCreate, client.calls[0].operation)
	assert.Equal(t, OpGet, client.calls[1].operation)
	assert.Equal(t, "eq-9", client.calls[1].params[ParamID])

	record, ok := client.calls[0].params[ParamRecord].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, record, "redi_equipmentid", "primary key is server-generated")
	assert.NotContains(t, record, "unmappedField")
	assert.Equal(t, "Infusion Pump", record["redi_itemname"])
	assert.Equal(t, 2, record["redi_sq_status"], "choice enum encodes to its code")
	assert.Equal(t, 1, record["redi_sq_ownertype"])
	assert.Equal(t, "team-1", record["_redi_ownerteamid_value"])

	// Cleared lookups bind through the navigation property.
	value, present := record["redi_parentequipmentid"]
	assert.True(t, present)
	assert.Nil(t, value)
	assert.NotContains(t, record, "_redi_parentequipmentid_value")

	assert.Equal(t, "eq-9", created.EquipmentID)
	assert.Equal(t, "Infusion Pump", created.Name)
}

func TestRemoteUpdateRefetches(t *testing.T) {
	client := &fakeClient{handler: func(call clientCall) (*OperationResult, error) {
		if call.operation == OpUpdate {
			return &OperationResult{Success: true}, nil
		}
		return &OperationResult{Success: true, Data: remoteEquipmentRow("eq-1", "Renamed")}, nil
	}}
	service := equipmentService(client, noRetry())

	updated, err := service.Update(context.Background(), "eq-1", dataservice.Fields{"name": "Renamed"})
	require.NoError(t, err)

	require.Len(t, client.calls, 2)
	assert.Equal(t, OpUpdate, client.calls[0].operation)
	assert.Equal(t, "eq-1", client.calls[0].params[ParamID])
	assert.Equal(t, OpGet, client.calls[1].operation)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestRemoteDelete(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{Success: true}, nil
	}}
	service := equipmentService(client, noRetry())

	require.NoError(t, service.Delete(context.Background(), "eq-1"))
	assert.Equal(t, OpDelete, client.calls[0].operation)

	client.handler = func(clientCall) (*OperationResult, error) {
		return &OperationResult{Success: false, Error: &OperationError{Status: 404}}, nil
	}
	err := service.Delete(context.Background(), "gone")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRemoteRetriesRateLimit(t *testing.T) {
	attempts := 0
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		attempts++
		if attempts < 3 {
			return &OperationResult{
				Success: false,
				Error:   &OperationError{Status: 429, Message: "throttled"},
			}, nil
		}
		return &OperationResult{Success: true, Data: []map[string]any{}}, nil
	}}

	var delays []time.Duration
	service := equipmentService(client, &retry.Options{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		Sleep: func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		},
	})

	_, err := service.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, delays)
}

func TestRemoteServerErrorIsTransient(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{Success: false, Error: &OperationError{Status: 503, Message: "unavailable"}}, nil
	}}
	service := equipmentService(client, &retry.Options{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		Sleep:      func(context.Context, time.Duration) error { return nil },
	})

	_, err := service.GetAll(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransient(err))
	assert.Len(t, client.calls, 3, "retried to exhaustion")
}

func TestRemoteListNotFoundMapsByStatus(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{
			Success: false,
			Error:   &OperationError{Status: 404, Message: "entity set gone"},
		}, nil
	}}
	service := equipmentService(client, noRetry())

	_, err := service.GetAll(context.Background(), nil)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Equipment", nf.Entity)
}

func TestRemoteClientErrorFailsFast(t *testing.T) {
	client := &fakeClient{handler: func(clientCall) (*OperationResult, error) {
		return &OperationResult{Success: false, Error: &OperationError{Status: 400, Message: "bad request"}}, nil
	}}
	service := equipmentService(client, &retry.Options{MaxRetries: 5, BaseDelay: time.Millisecond})

	_, err := service.GetAll(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, apperrors.IsTransient(err))
	assert.Len(t, client.calls, 1)
}

func TestRemoteVirtualFieldDecodesToNil(t *testing.T) {
	client := &fakeClient{handler: func(call clientCall) (*OperationResult, error) {
		selected, _ := call.params[ParamSelect].(string)
		assert.NotContains(t, selected, "_redi_teamid_value")
		return &OperationResult{Success: true, Data: []map[string]any{{
			"redi_personid":    "p-1",
			"redi_displayname": "Alex Rivera",
			"redi_email":       "alex@example.org",
			"redi_active":      true,
		}}}, nil
	}}
	service := NewDataverseDataService[entities.Person](client, PersonAdapter, nil, noRetry())

	result, err := service.GetAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Nil(t, result.Data[0].TeamID)
	assert.Equal(t, "Alex Rivera", result.Data[0].DisplayName)
}
