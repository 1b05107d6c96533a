package services

import (
	"context"
	"testing"
	"time"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/dataverse"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(date string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return parsed }
}

type issueFixture struct {
	service   *IssueService
	issues    dataservice.DataService[entities.EquipmentIssue]
	actions   dataservice.DataService[entities.CorrectiveAction]
	equipment dataservice.DataService[entities.Equipment]
}

func newIssueFixture(t *testing.T) *issueFixture {
	t.Helper()
	issues := seededStore(t, dataverse.EquipmentIssueAdapter, []entities.EquipmentIssue{})
	notes := seededStore(t, dataverse.IssueNoteAdapter, []entities.IssueNote{})
	actions := seededStore(t, dataverse.CorrectiveActionAdapter, []entities.CorrectiveAction{})
	equipment := seededStore(t, dataverse.EquipmentAdapter, []entities.Equipment{
		{
			EquipmentID:     "eq-1",
			EquipmentCode:   "SIM-001",
			Name:            "Adult Manikin",
			OwnerType:       entities.OwnerTypeTeam,
			OwnerTeamID:     strPtr("team-1"),
			ContactPersonID: "person-1",
			Status:          entities.EquipmentAvailable,
		},
	})
	persons := seededStore(t, dataverse.PersonAdapter, []entities.Person{
		{PersonID: "person-1", DisplayName: "Jane Doe", Email: "jane.doe@rbwh.edu.au"},
	})

	service := NewIssueService(issues, notes, actions, equipment, persons, nil).
		WithClock(fixedClock("2026-02-20"))
	return &issueFixture{service: service, issues: issues, actions: actions, equipment: equipment}
}

func TestCreateIssueAppliesDefaults(t *testing.T) {
	f := newIssueFixture(t)

	created, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId":        "eq-1",
		"title":              "Damaged connector",
		"reportedByPersonId": "person-1",
	})
	require.NoError(t, err)

	issue := created.Issue
	assert.Equal(t, entities.IssueOpen, issue.Status)
	assert.Equal(t, entities.PriorityMedium, issue.Priority)
	assert.Equal(t, "2026-02-27", issue.DueDate, "due a week out")
	assert.Equal(t, "2026-02-20", issue.CreatedOn)
	assert.Nil(t, issue.ResolvedOn)
	assert.True(t, issue.Active)

	require.NotNil(t, created.OwnerEmail)
	assert.Equal(t, "jane.doe@rbwh.edu.au", *created.OwnerEmail)
}

func TestCreateIssueKeepsExplicitValues(t *testing.T) {
	f := newIssueFixture(t)

	created, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId":        "eq-1",
		"title":              "Damaged connector",
		"reportedByPersonId": "person-1",
		"priority":           "Critical",
		"dueDate":            "2026-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityCritical, created.Issue.Priority)
	assert.Equal(t, "2026-03-15", created.Issue.DueDate)
}

func TestCreateIssueValidationBlocksPersistence(t *testing.T) {
	f := newIssueFixture(t)

	_, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId": "eq-1",
	})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	all, err := f.issues.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, all.TotalCount)
}

func TestCreateIssueOwnerEmailIsBestEffort(t *testing.T) {
	f := newIssueFixture(t)

	require.NoError(t, f.equipment.Delete(context.Background(), "eq-1"))

	// The equipment vanished between form load and submit; the issue is
	// still recorded, only the notification address is missing.
	created, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId":        "eq-1",
		"title":              "Damaged connector",
		"reportedByPersonId": "person-1",
	})
	require.NoError(t, err)
	assert.Nil(t, created.OwnerEmail)
}

func TestUpdateIssueStampsResolvedOn(t *testing.T) {
	f := newIssueFixture(t)

	created, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId":        "eq-1",
		"title":              "Damaged connector",
		"reportedByPersonId": "person-1",
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateIssue(context.Background(), created.Issue.IssueID, dataservice.Fields{
		"status": "Resolved",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedOn)
	assert.Equal(t, "2026-02-20", *updated.ResolvedOn)
}

func TestUpdateIssueKeepsExistingResolvedOn(t *testing.T) {
	f := newIssueFixture(t)

	created, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId":        "eq-1",
		"title":              "Damaged connector",
		"reportedByPersonId": "person-1",
	})
	require.NoError(t, err)
	id := created.Issue.IssueID

	_, err = f.service.UpdateIssue(context.Background(), id, dataservice.Fields{"status": "Resolved"})
	require.NoError(t, err)

	f.service.WithClock(fixedClock("2026-03-01"))
	updated, err := f.service.UpdateIssue(context.Background(), id, dataservice.Fields{"status": "Closed"})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedOn)
	assert.Equal(t, "2026-02-20", *updated.ResolvedOn, "first resolution date survives")
}

func TestAddNoteDefaultsCreatedOn(t *testing.T) {
	f := newIssueFixture(t)

	note, err := f.service.AddNote(context.Background(), dataservice.Fields{
		"issueId":        "issue-1",
		"authorPersonId": "person-1",
		"content":        "Inspection scheduled",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20T00:00:00Z", note.CreatedOn)
}

func TestAddNoteRejectsBlankContent(t *testing.T) {
	f := newIssueFixture(t)

	_, err := f.service.AddNote(context.Background(), dataservice.Fields{
		"issueId":        "issue-1",
		"authorPersonId": "person-1",
		"content":        "   ",
	})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
}

func TestCreateActionDefaultsToPlanned(t *testing.T) {
	f := newIssueFixture(t)

	action, err := f.service.CreateAction(context.Background(), dataservice.Fields{
		"issueId":            "issue-1",
		"description":        "Replace damaged connector",
		"assignedToPersonId": "person-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ActionPlanned, action.Status)
	assert.Equal(t, "2026-02-20T00:00:00Z", action.CreatedOn)
}

func TestCompleteActionUpdatesEquipmentStatus(t *testing.T) {
	f := newIssueFixture(t)

	created, err := f.service.CreateIssue(context.Background(), dataservice.Fields{
		"equipmentId":        "eq-1",
		"title":              "Damaged connector",
		"reportedByPersonId": "person-1",
	})
	require.NoError(t, err)

	action, err := f.service.CreateAction(context.Background(), dataservice.Fields{
		"issueId":            created.Issue.IssueID,
		"description":        "Replace damaged connector",
		"assignedToPersonId": "person-1",
	})
	require.NoError(t, err)

	statusChange := entities.EquipmentUnderMaintenance
	completed, err := f.service.CompleteAction(context.Background(), action.CorrectiveActionID, &statusChange)
	require.NoError(t, err)

	assert.Equal(t, entities.ActionCompleted, completed.Status)
	require.NotNil(t, completed.CompletedOn)
	require.NotNil(t, completed.EquipmentStatusChange)
	assert.Equal(t, entities.EquipmentUnderMaintenance, *completed.EquipmentStatusChange)

	equipment, err := f.equipment.GetByID(context.Background(), "eq-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentUnderMaintenance, equipment.Status)
}

func TestCompleteActionWithoutStatusChange(t *testing.T) {
	f := newIssueFixture(t)

	action, err := f.service.CreateAction(context.Background(), dataservice.Fields{
		"issueId":            "issue-1",
		"description":        "Tighten screws",
		"assignedToPersonId": "person-1",
	})
	require.NoError(t, err)

	completed, err := f.service.CompleteAction(context.Background(), action.CorrectiveActionID, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.ActionCompleted, completed.Status)
	assert.Nil(t, completed.EquipmentStatusChange)

	equipment, err := f.equipment.GetByID(context.Background(), "eq-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentAvailable, equipment.Status, "equipment untouched")
}
