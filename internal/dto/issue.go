package dto

import (
	"equipment-system/internal/dataservice"

	"github.com/aarondl/null/v8"
)

type CreateIssueDTO struct {
	EquipmentID        string      `json:"equipmentId" validate:"required"`
	Title              string      `json:"title" validate:"required"`
	Description        string      `json:"description"`
	ReportedByPersonID string      `json:"reportedByPersonId" validate:"required"`
	AssignedToPersonID null.String `json:"assignedToPersonId"`
	Status             string      `json:"status" validate:"omitempty,oneof=Open InProgress AwaitingParts Resolved Closed"`
	Priority           string      `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	DueDate            string      `json:"dueDate" validate:"omitempty,isodate"`
}

// ToFields omits the optional keys entirely when blank so the issue service
// can apply its own defaults.
func (d *CreateIssueDTO) ToFields() dataservice.Fields {
	fields := dataservice.Fields{
		"equipmentId":        d.EquipmentID,
		"title":              d.Title,
		"description":        d.Description,
		"reportedByPersonId": d.ReportedByPersonID,
		"assignedToPersonId": nullable(d.AssignedToPersonID),
	}
	if d.Status != "" {
		fields["status"] = d.Status
	}
	if d.Priority != "" {
		fields["priority"] = d.Priority
	}
	if d.DueDate != "" {
		fields["dueDate"] = d.DueDate
	}
	return fields
}

type CreateIssueNoteDTO struct {
	IssueID        string `json:"issueId" validate:"required"`
	AuthorPersonID string `json:"authorPersonId" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

func (d *CreateIssueNoteDTO) ToFields() dataservice.Fields {
	return dataservice.Fields{
		"issueId":        d.IssueID,
		"authorPersonId": d.AuthorPersonID,
		"content":        d.Content,
	}
}

type CreateCorrectiveActionDTO struct {
	IssueID            string `json:"issueId" validate:"required"`
	Description        string `json:"description" validate:"required"`
	AssignedToPersonID string `json:"assignedToPersonId" validate:"required"`
	Status             string `json:"status" validate:"omitempty,oneof=Planned InProgress Completed Verified"`
}

func (d *CreateCorrectiveActionDTO) ToFields() dataservice.Fields {
	fields := dataservice.Fields{
		"issueId":            d.IssueID,
		"description":        d.Description,
		"assignedToPersonId": d.AssignedToPersonID,
	}
	if d.Status != "" {
		fields["status"] = d.Status
	}
	return fields
}

type CompleteActionDTO struct {
	EquipmentStatusChange null.String `json:"equipmentStatusChange" validate:"omitempty"`
}
