package dataverse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The data service and the HTTP connector share the parameter bag, so these
// tests drive the full chain and assert what actually reaches the wire.

func TestHTTPClientListCarriesQueryOptions(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{"value": []map[string]any{}})
	}))
	defer server.Close()

	service := NewDataverseDataService[entities.Equipment](
		NewHTTPClient(server.URL, "token", nil), EquipmentAdapter, nil, noRetry())

	_, err := service.GetAll(context.Background(), &dataservice.ListOptions{
		OrderBy: "name desc",
		Top:     10,
		Skip:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, strings.Join(EquipmentAdapter.SelectColumns(), ","), captured.Get("$select"))
	assert.Equal(t, "redi_itemname desc", captured.Get("$orderby"))
	assert.Equal(t, "redi_sq_active ne null", captured.Get("$filter"))
	assert.Equal(t, "10", captured.Get("$top"))
	assert.Equal(t, "5", captured.Get("$skip"))
	assert.Equal(t, "true", captured.Get("$count"))
}

func TestHTTPClientListDecodesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"@odata.count":    2,
			"@odata.nextLink": nextLinkFor(r),
			"value": []map[string]any{{
				"redi_equipmentid": "eq-1",
				"redi_itemname":    "Ventilator",
				"redi_sq_status":   2,
				"redi_sq_active":   true,
			}},
		})
	}))
	defer server.Close()

	service := NewDataverseDataService[entities.Equipment](
		NewHTTPClient(server.URL, "token", nil), EquipmentAdapter, nil, noRetry())

	result, err := service.GetAll(context.Background(), &dataservice.ListOptions{Top: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	assert.True(t, result.HasMore)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Ventilator", result.Data[0].Name)
	assert.Equal(t, entities.EquipmentInUse, result.Data[0].Status)
}

func nextLinkFor(r *http.Request) string {
	return "http://" + r.Host + r.URL.Path + "?$skiptoken=page-2"
}

func TestHTTPClientGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "record does not exist"},
		})
	}))
	defer server.Close()

	service := NewDataverseDataService[entities.Equipment](
		NewHTTPClient(server.URL, "token", nil), EquipmentAdapter, nil, noRetry())

	_, err := service.GetByID(context.Background(), "missing")
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.ID)
}

func TestHTTPClientSendsAuthHeaders(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(map[string]any{"value": []map[string]any{}})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret-token", nil)
	_, err := client.Execute(context.Background(), "redi_equipments", OpList, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", captured.Get("Authorization"))
	assert.Equal(t, "4.0", captured.Get("OData-Version"))
}
