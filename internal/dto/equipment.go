// Package dto defines the HTTP request payloads. Create DTOs are validated
// structurally here (required fields, enum membership, date format) before
// the domain services apply the cross-field business rules. Nullable
// references use null.String so an explicit null clears the field.
package dto

import (
	"equipment-system/internal/dataservice"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	EquipmentCode           string      `json:"equipmentCode" validate:"required"`
	Name                    string      `json:"name" validate:"required"`
	Description             string      `json:"description"`
	OwnerType               string      `json:"ownerType" validate:"required,oneof=Team Person"`
	OwnerTeamID             null.String `json:"ownerTeamId"`
	OwnerPersonID           null.String `json:"ownerPersonId"`
	ContactPersonID         string      `json:"contactPersonId"`
	HomeLocationID          string      `json:"homeLocationId"`
	ParentEquipmentID       null.String `json:"parentEquipmentId"`
	KeyImageURL             string      `json:"keyImageUrl"`
	QuickStartFlowChartJSON string      `json:"quickStartFlowChartJson"`
	ContentsListJSON        string      `json:"contentsListJson"`
	Status                  string      `json:"status" validate:"required,oneof=Available InUse UnderMaintenance Retired"`
	Active                  bool        `json:"active"`
}

func (d *CreateEquipmentDTO) ToFields() dataservice.Fields {
	return dataservice.Fields{
		"equipmentCode":           d.EquipmentCode,
		"name":                    d.Name,
		"description":             d.Description,
		"ownerType":               d.OwnerType,
		"ownerTeamId":             nullable(d.OwnerTeamID),
		"ownerPersonId":           nullable(d.OwnerPersonID),
		"contactPersonId":         d.ContactPersonID,
		"homeLocationId":          d.HomeLocationID,
		"parentEquipmentId":       nullable(d.ParentEquipmentID),
		"keyImageUrl":             d.KeyImageURL,
		"quickStartFlowChartJson": d.QuickStartFlowChartJSON,
		"contentsListJson":        d.ContentsListJSON,
		"status":                  d.Status,
		"active":                  d.Active,
	}
}

// nullable converts a null.String into the Fields representation: the value
// when set, nil when cleared.
func nullable(s null.String) any {
	if s.Valid {
		return s.String
	}
	return nil
}
