// Package services implements the domain workflows: equipment details and
// hierarchy, issue and corrective-action tracking, and preventative
// maintenance. Services orchestrate the generic data services and enforce the
// business rules below before anything is persisted.
package services

import (
	"regexp"
	"strings"

	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func set(p *string) bool {
	return p != nil && *p != ""
}

// ValidateEquipment checks required fields, owner consistency (exactly one of
// team/person populated, matching ownerType), and the parent self-reference
// rule. All violations are returned, not just the first.
func ValidateEquipment(equipment *entities.Equipment) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError

	if equipment.Name == "" {
		errs = append(errs, apperrors.NewValidationError("name is required", "name"))
	}

	if equipment.EquipmentCode == "" {
		errs = append(errs, apperrors.NewValidationError("equipmentCode is required", "equipmentCode"))
	} else if strings.TrimSpace(equipment.EquipmentCode) == "" {
		errs = append(errs, apperrors.NewValidationError("equipmentCode must be a non-empty string", "equipmentCode"))
	}

	if equipment.OwnerType == "" {
		errs = append(errs, apperrors.NewValidationError("ownerType is required", "ownerType"))
	}

	if equipment.Status == "" {
		errs = append(errs, apperrors.NewValidationError("status is required", "status"))
	}

	if equipment.OwnerType == entities.OwnerTypeTeam {
		if !set(equipment.OwnerTeamID) {
			errs = append(errs, apperrors.NewValidationError("ownerTeamId is required when ownerType is Team", "ownerTeamId"))
		}
		if equipment.OwnerPersonID != nil {
			errs = append(errs, apperrors.NewValidationError("ownerPersonId must be null when ownerType is Team", "ownerPersonId"))
		}
	}

	if equipment.OwnerType == entities.OwnerTypePerson {
		if !set(equipment.OwnerPersonID) {
			errs = append(errs, apperrors.NewValidationError("ownerPersonId is required when ownerType is Person", "ownerPersonId"))
		}
		if equipment.OwnerTeamID != nil {
			errs = append(errs, apperrors.NewValidationError("ownerTeamId must be null when ownerType is Person", "ownerTeamId"))
		}
	}

	if set(equipment.ParentEquipmentID) && equipment.EquipmentID != "" &&
		*equipment.ParentEquipmentID == equipment.EquipmentID {
		errs = append(errs, apperrors.NewValidationError("parentEquipmentId cannot reference itself", "parentEquipmentId"))
	}

	return errs
}

// ValidateLoanTransfer checks required fields, date ordering, and the
// internal-transfer consistency rule: isInternalTransfer must be true exactly
// when origin and recipient teams match.
func ValidateLoanTransfer(loan *entities.LoanTransfer) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError

	required := []struct {
		value string
		field string
	}{
		{loan.EquipmentID, "equipmentId"},
		{loan.StartDate, "startDate"},
		{loan.DueDate, "dueDate"},
		{loan.OriginTeamID, "originTeamId"},
		{loan.RecipientTeamID, "recipientTeamId"},
		{string(loan.ReasonCode), "reasonCode"},
		{loan.ApproverPersonID, "approverPersonId"},
		{string(loan.Status), "status"},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, apperrors.NewValidationError(r.field+" is required", r.field))
		}
	}

	// ISO dates compare correctly as strings.
	if loan.StartDate != "" && loan.DueDate != "" && loan.DueDate < loan.StartDate {
		errs = append(errs, apperrors.NewValidationError("dueDate must be greater than or equal to startDate", "dueDate"))
	}

	if loan.IsInternalTransfer && loan.OriginTeamID != "" && loan.RecipientTeamID != "" &&
		loan.OriginTeamID != loan.RecipientTeamID {
		errs = append(errs, apperrors.NewValidationError("originTeamId must equal recipientTeamId when isInternalTransfer is true", "originTeamId"))
	}

	if loan.OriginTeamID != "" && loan.RecipientTeamID != "" &&
		loan.OriginTeamID == loan.RecipientTeamID && !loan.IsInternalTransfer {
		errs = append(errs, apperrors.NewValidationError("isInternalTransfer must be true when originTeamId equals recipientTeamId", "isInternalTransfer"))
	}

	return errs
}

func ValidateTeam(team *entities.Team) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError
	if team.Name == "" {
		errs = append(errs, apperrors.NewValidationError("name is required", "name"))
	}
	if team.TeamCode == "" {
		errs = append(errs, apperrors.NewValidationError("teamCode is required", "teamCode"))
	}
	return errs
}

func ValidateLocation(location *entities.Location) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError
	if location.Name == "" {
		errs = append(errs, apperrors.NewValidationError("name is required", "name"))
	}
	if location.BuildingID == "" {
		errs = append(errs, apperrors.NewValidationError("buildingId is required", "buildingId"))
	}
	if location.LevelID == "" {
		errs = append(errs, apperrors.NewValidationError("levelId is required", "levelId"))
	}
	return errs
}

func ValidatePerson(person *entities.Person) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError
	if person.DisplayName == "" {
		errs = append(errs, apperrors.NewValidationError("displayName is required", "displayName"))
	}
	if person.Email == "" {
		errs = append(errs, apperrors.NewValidationError("email is required", "email"))
	} else if !isValidEmail(person.Email) {
		errs = append(errs, apperrors.NewValidationError("email must be a valid email address", "email"))
	}
	return errs
}

func ValidateEquipmentIssue(issue *entities.EquipmentIssue) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError

	if issue.Title == "" {
		errs = append(errs, apperrors.NewValidationError("title is required", "title"))
	} else if strings.TrimSpace(issue.Title) == "" {
		errs = append(errs, apperrors.NewValidationError("title must be a non-empty string", "title"))
	}
	if issue.EquipmentID == "" {
		errs = append(errs, apperrors.NewValidationError("equipmentId is required", "equipmentId"))
	}
	if issue.ReportedByPersonID == "" {
		errs = append(errs, apperrors.NewValidationError("reportedByPersonId is required", "reportedByPersonId"))
	}
	if issue.Status == "" {
		errs = append(errs, apperrors.NewValidationError("status is required", "status"))
	}
	if issue.Priority == "" {
		errs = append(errs, apperrors.NewValidationError("priority is required", "priority"))
	}
	if issue.DueDate == "" {
		errs = append(errs, apperrors.NewValidationError("dueDate is required", "dueDate"))
	}

	return errs
}

func ValidateIssueNote(note *entities.IssueNote) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError

	if note.IssueID == "" {
		errs = append(errs, apperrors.NewValidationError("issueId is required", "issueId"))
	}
	if note.AuthorPersonID == "" {
		errs = append(errs, apperrors.NewValidationError("authorPersonId is required", "authorPersonId"))
	}
	if note.Content == "" {
		errs = append(errs, apperrors.NewValidationError("content is required", "content"))
	} else if strings.TrimSpace(note.Content) == "" {
		errs = append(errs, apperrors.NewValidationError("content must be a non-empty string", "content"))
	}

	return errs
}

func ValidateCorrectiveAction(action *entities.CorrectiveAction) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError

	if action.IssueID == "" {
		errs = append(errs, apperrors.NewValidationError("issueId is required", "issueId"))
	}
	if action.Description == "" {
		errs = append(errs, apperrors.NewValidationError("description is required", "description"))
	} else if strings.TrimSpace(action.Description) == "" {
		errs = append(errs, apperrors.NewValidationError("description must be a non-empty string", "description"))
	}
	if action.AssignedToPersonID == "" {
		errs = append(errs, apperrors.NewValidationError("assignedToPersonId is required", "assignedToPersonId"))
	}
	if action.Status == "" {
		errs = append(errs, apperrors.NewValidationError("status is required", "status"))
	}

	return errs
}

func ValidatePMTemplate(template *entities.PMTemplate) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError
	if template.Name == "" {
		errs = append(errs, apperrors.NewValidationError("name is required", "name"))
	}
	if template.EquipmentID == "" {
		errs = append(errs, apperrors.NewValidationError("equipmentId is required", "equipmentId"))
	}
	if template.Frequency == "" {
		errs = append(errs, apperrors.NewValidationError("frequency is required", "frequency"))
	}
	return errs
}

func ValidatePMTask(task *entities.PMTask) []*apperrors.ValidationError {
	var errs []*apperrors.ValidationError

	if task.PMTemplateID == "" {
		errs = append(errs, apperrors.NewValidationError("pmTemplateId is required", "pmTemplateId"))
	}
	if task.EquipmentID == "" {
		errs = append(errs, apperrors.NewValidationError("equipmentId is required", "equipmentId"))
	}
	if task.ScheduledDate == "" {
		errs = append(errs, apperrors.NewValidationError("scheduledDate is required", "scheduledDate"))
	}
	if task.Status == "" {
		errs = append(errs, apperrors.NewValidationError("status is required", "status"))
	}

	if set(task.CompletedDate) && task.ScheduledDate != "" && *task.CompletedDate < task.ScheduledDate {
		errs = append(errs, apperrors.NewValidationError("completedDate must be greater than or equal to scheduledDate", "completedDate"))
	}

	return errs
}

// firstError converts a validation result into a single error for callers
// that short-circuit on the first violation.
func firstError(errs []*apperrors.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
