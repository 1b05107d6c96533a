package services

import (
	"context"
	"time"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"

	"go.uber.org/zap"
)

// defaultDueDays is the due-date offset applied to new issues.
const defaultDueDays = 7

const (
	dateLayout = "2006-01-02"
)

// CreatedIssue pairs a new issue with the resolved owner email, which the
// caller uses to trigger a notification.
type CreatedIssue struct {
	Issue      *entities.EquipmentIssue `json:"issue"`
	OwnerEmail *string                  `json:"ownerEmail"`
}

// IssueService implements issue and corrective-action tracking: automatic
// due-date population, resolvedOn stamping, and equipment status updates on
// action completion.
type IssueService struct {
	issues    dataservice.DataService[entities.EquipmentIssue]
	notes     dataservice.DataService[entities.IssueNote]
	actions   dataservice.DataService[entities.CorrectiveAction]
	equipment dataservice.DataService[entities.Equipment]
	persons   dataservice.DataService[entities.Person]
	logger    *zap.Logger
	now       func() time.Time
}

func NewIssueService(
	issues dataservice.DataService[entities.EquipmentIssue],
	notes dataservice.DataService[entities.IssueNote],
	actions dataservice.DataService[entities.CorrectiveAction],
	equipment dataservice.DataService[entities.Equipment],
	persons dataservice.DataService[entities.Person],
	logger *zap.Logger,
) *IssueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IssueService{
		issues:    issues,
		notes:     notes,
		actions:   actions,
		equipment: equipment,
		persons:   persons,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source, for deterministic tests.
func (s *IssueService) WithClock(now func() time.Time) *IssueService {
	s.now = now
	return s
}

func (s *IssueService) today() string {
	return s.now().UTC().Format(dateLayout)
}

func (s *IssueService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *IssueService) GetIssues(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[entities.EquipmentIssue], error) {
	return s.issues.GetAll(ctx, opts)
}

func (s *IssueService) GetIssueByID(ctx context.Context, id string) (*entities.EquipmentIssue, error) {
	return s.issues.GetByID(ctx, id)
}

func (s *IssueService) GetIssuesForEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentIssue, error) {
	result, err := s.issues.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "equipmentId eq '" + sanitizeFilterValue(equipmentID) + "'",
		OrderBy: "createdOn desc",
		Top:     500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateIssue applies defaults (Open status, Medium priority, due date a week
// out), validates, persists, and resolves the equipment owner's email for
// notification. Owner resolution is best-effort: its failure never fails the
// create.
func (s *IssueService) CreateIssue(ctx context.Context, fields dataservice.Fields) (*CreatedIssue, error) {
	withDefaults := dataservice.Clone(fields)
	if withDefaults["status"] == nil {
		withDefaults["status"] = string(entities.IssueOpen)
	}
	if withDefaults["priority"] == nil {
		withDefaults["priority"] = string(entities.PriorityMedium)
	}
	if withDefaults["dueDate"] == nil {
		withDefaults["dueDate"] = s.now().UTC().AddDate(0, 0, defaultDueDays).Format(dateLayout)
	}
	if withDefaults["createdOn"] == nil {
		withDefaults["createdOn"] = s.today()
	}
	withDefaults["resolvedOn"] = nil
	withDefaults["active"] = true

	issue, err := dataservice.FromFields[entities.EquipmentIssue](withDefaults)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateEquipmentIssue(issue)); err != nil {
		return nil, err
	}

	created, err := s.issues.Create(ctx, withDefaults)
	if err != nil {
		return nil, err
	}

	var ownerEmail *string
	if created.EquipmentID != "" {
		ownerEmail = s.resolveOwnerEmail(ctx, created.EquipmentID)
	}

	return &CreatedIssue{Issue: created, OwnerEmail: ownerEmail}, nil
}

// UpdateIssue merges the patch with the stored issue, stamps resolvedOn the
// first time the status moves into Resolved or Closed, validates, and
// persists the patch.
func (s *IssueService) UpdateIssue(ctx context.Context, id string, fields dataservice.Fields) (*entities.EquipmentIssue, error) {
	existing, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existingFields, err := dataservice.ToFields(existing)
	if err != nil {
		return nil, err
	}

	patch := dataservice.Clone(fields)
	merged := dataservice.Merge(existingFields, patch)

	status, _ := merged["status"].(string)
	resolved := status == string(entities.IssueResolved) || status == string(entities.IssueClosed)
	if resolved && merged["resolvedOn"] == nil {
		stamp := s.today()
		merged["resolvedOn"] = stamp
		patch["resolvedOn"] = stamp
	}

	issue, err := dataservice.FromFields[entities.EquipmentIssue](merged)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateEquipmentIssue(issue)); err != nil {
		return nil, err
	}

	return s.issues.Update(ctx, id, patch)
}

func (s *IssueService) GetNotesForIssue(ctx context.Context, issueID string) ([]entities.IssueNote, error) {
	result, err := s.notes.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "issueId eq '" + sanitizeFilterValue(issueID) + "'",
		OrderBy: "createdOn asc",
		Top:     500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// AddNote appends a conversation note to an issue.
func (s *IssueService) AddNote(ctx context.Context, fields dataservice.Fields) (*entities.IssueNote, error) {
	withDefaults := dataservice.Clone(fields)
	if withDefaults["createdOn"] == nil {
		withDefaults["createdOn"] = s.timestamp()
	}

	note, err := dataservice.FromFields[entities.IssueNote](withDefaults)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateIssueNote(note)); err != nil {
		return nil, err
	}

	return s.notes.Create(ctx, withDefaults)
}

func (s *IssueService) GetActionsForIssue(ctx context.Context, issueID string) ([]entities.CorrectiveAction, error) {
	result, err := s.actions.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "issueId eq '" + sanitizeFilterValue(issueID) + "'",
		OrderBy: "createdOn asc",
		Top:     500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateAction records a corrective action against an issue.
func (s *IssueService) CreateAction(ctx context.Context, fields dataservice.Fields) (*entities.CorrectiveAction, error) {
	withDefaults := dataservice.Clone(fields)
	if withDefaults["status"] == nil {
		withDefaults["status"] = string(entities.ActionPlanned)
	}
	if withDefaults["createdOn"] == nil {
		withDefaults["createdOn"] = s.timestamp()
	}

	action, err := dataservice.FromFields[entities.CorrectiveAction](withDefaults)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateCorrectiveAction(action)); err != nil {
		return nil, err
	}

	return s.actions.Create(ctx, withDefaults)
}

// CompleteAction marks a corrective action Completed. When an equipment
// status change is requested, the related issue is resolved to find the
// equipment and its status is updated before the action is persisted.
func (s *IssueService) CompleteAction(ctx context.Context, actionID string, statusChange *entities.EquipmentStatus) (*entities.CorrectiveAction, error) {
	existing, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return nil, err
	}

	updates := dataservice.Fields{
		"status":      string(entities.ActionCompleted),
		"completedOn": s.timestamp(),
	}

	if statusChange != nil {
		updates["equipmentStatusChange"] = string(*statusChange)

		issue, err := s.issues.GetByID(ctx, existing.IssueID)
		if err != nil {
			return nil, err
		}
		if _, err := s.equipment.Update(ctx, issue.EquipmentID, dataservice.Fields{
			"status": string(*statusChange),
		}); err != nil {
			return nil, err
		}
	}

	return s.actions.Update(ctx, actionID, updates)
}

// resolveOwnerEmail finds the notification address for an equipment record:
// the contact person first, then the owning person. Failures are swallowed
// since notification is optional.
func (s *IssueService) resolveOwnerEmail(ctx context.Context, equipmentID string) *string {
	equipment, err := s.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		s.logger.Debug("owner email resolution skipped", zap.String("equipmentId", equipmentID), zap.Error(err))
		return nil
	}

	if equipment.ContactPersonID != "" {
		if person := safeGetByID(ctx, s.persons, equipment.ContactPersonID); person != nil {
			return &person.Email
		}
	}
	if equipment.OwnerPersonID != nil {
		if person := safeGetByID(ctx, s.persons, *equipment.OwnerPersonID); person != nil {
			return &person.Email
		}
	}
	return nil
}
