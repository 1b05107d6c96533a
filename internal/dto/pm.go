package dto

import "equipment-system/internal/dataservice"

type CreatePMTemplateDTO struct {
	EquipmentID string `json:"equipmentId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Frequency   string `json:"frequency" validate:"required,oneof=Weekly Monthly Quarterly SemiAnnual Annual"`
}

func (d *CreatePMTemplateDTO) ToFields() dataservice.Fields {
	return dataservice.Fields{
		"equipmentId": d.EquipmentID,
		"name":        d.Name,
		"description": d.Description,
		"frequency":   d.Frequency,
	}
}

type CreatePMTemplateItemDTO struct {
	PMTemplateID string `json:"pmTemplateId" validate:"required"`
	Description  string `json:"description" validate:"required"`
	SortOrder    int    `json:"sortOrder"`
}

func (d *CreatePMTemplateItemDTO) ToFields() dataservice.Fields {
	return dataservice.Fields{
		"pmTemplateId": d.PMTemplateID,
		"description":  d.Description,
		"sortOrder":    d.SortOrder,
	}
}

type CreatePMTaskDTO struct {
	PMTemplateID  string `json:"pmTemplateId" validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"omitempty,isodate"`
}

type UpdatePMTaskItemDTO struct {
	Status string `json:"status" validate:"required,oneof=Pending Pass Fail NotApplicable"`
	Notes  string `json:"notes"`
}

func (d *UpdatePMTaskItemDTO) ToFields() dataservice.Fields {
	return dataservice.Fields{
		"status": d.Status,
		"notes":  d.Notes,
	}
}

type CompletePMTaskDTO struct {
	CompletedByPersonID string `json:"completedByPersonId" validate:"required"`
}
