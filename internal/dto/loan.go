package dto

import "equipment-system/internal/dataservice"

type CreateLoanTransferDTO struct {
	EquipmentID        string `json:"equipmentId" validate:"required"`
	StartDate          string `json:"startDate" validate:"required,isodate"`
	DueDate            string `json:"dueDate" validate:"required,isodate"`
	OriginTeamID       string `json:"originTeamId" validate:"required"`
	RecipientTeamID    string `json:"recipientTeamId" validate:"required"`
	ReasonCode         string `json:"reasonCode" validate:"required,oneof=Simulation Training Service Other"`
	ApproverPersonID   string `json:"approverPersonId" validate:"required"`
	IsInternalTransfer bool   `json:"isInternalTransfer"`
	Status             string `json:"status" validate:"required,oneof=Draft Active Overdue Returned Cancelled"`
	Notes              string `json:"notes"`
}

func (d *CreateLoanTransferDTO) ToFields() dataservice.Fields {
	return dataservice.Fields{
		"equipmentId":        d.EquipmentID,
		"startDate":          d.StartDate,
		"dueDate":            d.DueDate,
		"originTeamId":       d.OriginTeamID,
		"recipientTeamId":    d.RecipientTeamID,
		"reasonCode":         d.ReasonCode,
		"approverPersonId":   d.ApproverPersonID,
		"isInternalTransfer": d.IsInternalTransfer,
		"status":             d.Status,
		"notes":              d.Notes,
	}
}
