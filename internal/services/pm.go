package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"

	"go.uber.org/zap"
)

// CompletedTask is the outcome of completing a PM task: the completed task
// itself, the issue generated from failed checklist items (nil when none
// failed), and the next scheduled task (nil when the template is inactive).
type CompletedTask struct {
	Task           *entities.PMTask         `json:"task"`
	GeneratedIssue *entities.EquipmentIssue `json:"generatedIssue"`
	NextTask       *entities.PMTask         `json:"nextTask"`
}

// PMService implements preventative-maintenance tracking: templates with
// checklist definitions, task instantiation, and the completion workflow that
// spawns issues from failures and schedules the next cycle.
type PMService struct {
	templates     dataservice.DataService[entities.PMTemplate]
	templateItems dataservice.DataService[entities.PMTemplateItem]
	tasks         dataservice.DataService[entities.PMTask]
	taskItems     dataservice.DataService[entities.PMTaskItem]
	issues        dataservice.DataService[entities.EquipmentIssue]
	logger        *zap.Logger
	now           func() time.Time
}

func NewPMService(
	templates dataservice.DataService[entities.PMTemplate],
	templateItems dataservice.DataService[entities.PMTemplateItem],
	tasks dataservice.DataService[entities.PMTask],
	taskItems dataservice.DataService[entities.PMTaskItem],
	issues dataservice.DataService[entities.EquipmentIssue],
	logger *zap.Logger,
) *PMService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PMService{
		templates:     templates,
		templateItems: templateItems,
		tasks:         tasks,
		taskItems:     taskItems,
		issues:        issues,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock overrides the time source, for deterministic tests.
func (s *PMService) WithClock(now func() time.Time) *PMService {
	s.now = now
	return s
}

func (s *PMService) today() string {
	return s.now().UTC().Format(dateLayout)
}

// NextDate advances an ISO date by one frequency interval.
func NextDate(date string, frequency entities.PMFrequency) (string, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", apperrors.NewValidationError("scheduledDate must be an ISO date", "scheduledDate")
	}

	var next time.Time
	switch frequency {
	case entities.FrequencyWeekly:
		next = parsed.AddDate(0, 0, 7)
	case entities.FrequencyMonthly:
		next = parsed.AddDate(0, 1, 0)
	case entities.FrequencyQuarterly:
		next = parsed.AddDate(0, 3, 0)
	case entities.FrequencySemiAnnual:
		next = parsed.AddDate(0, 6, 0)
	case entities.FrequencyAnnual:
		next = parsed.AddDate(1, 0, 0)
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown frequency '%s'", frequency), "frequency")
	}

	return next.Format(dateLayout), nil
}

func (s *PMService) GetTemplates(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[entities.PMTemplate], error) {
	return s.templates.GetAll(ctx, opts)
}

func (s *PMService) GetTemplateByID(ctx context.Context, id string) (*entities.PMTemplate, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *PMService) GetTemplatesForEquipment(ctx context.Context, equipmentID string) ([]entities.PMTemplate, error) {
	result, err := s.templates.GetAll(ctx, &dataservice.ListOptions{
		Filter: "equipmentId eq '" + sanitizeFilterValue(equipmentID) + "'",
		Top:    500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (s *PMService) CreateTemplate(ctx context.Context, fields dataservice.Fields) (*entities.PMTemplate, error) {
	withDefaults := dataservice.Clone(fields)
	if withDefaults["active"] == nil {
		withDefaults["active"] = true
	}

	template, err := dataservice.FromFields[entities.PMTemplate](withDefaults)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidatePMTemplate(template)); err != nil {
		return nil, err
	}

	return s.templates.Create(ctx, withDefaults)
}

func (s *PMService) UpdateTemplate(ctx context.Context, id string, fields dataservice.Fields) (*entities.PMTemplate, error) {
	return s.templates.Update(ctx, id, fields)
}

// GetTemplateItems returns a template's checklist definitions in order.
func (s *PMService) GetTemplateItems(ctx context.Context, templateID string) ([]entities.PMTemplateItem, error) {
	result, err := s.templateItems.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "pmTemplateId eq '" + sanitizeFilterValue(templateID) + "'",
		OrderBy: "sortOrder asc",
		Top:     500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (s *PMService) AddTemplateItem(ctx context.Context, fields dataservice.Fields) (*entities.PMTemplateItem, error) {
	return s.templateItems.Create(ctx, fields)
}

func (s *PMService) UpdateTemplateItem(ctx context.Context, id string, fields dataservice.Fields) (*entities.PMTemplateItem, error) {
	return s.templateItems.Update(ctx, id, fields)
}

func (s *PMService) DeleteTemplateItem(ctx context.Context, id string) error {
	return s.templateItems.Delete(ctx, id)
}

func (s *PMService) GetTasks(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[entities.PMTask], error) {
	return s.tasks.GetAll(ctx, opts)
}

func (s *PMService) GetTaskByID(ctx context.Context, id string) (*entities.PMTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *PMService) GetTasksForEquipment(ctx context.Context, equipmentID string) ([]entities.PMTask, error) {
	result, err := s.tasks.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "equipmentId eq '" + sanitizeFilterValue(equipmentID) + "'",
		OrderBy: "scheduledDate desc",
		Top:     500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateTaskFromTemplate instantiates a task for a template, copying every
// checklist definition into a Pending task item. An empty scheduledDate
// defaults to today.
func (s *PMService) CreateTaskFromTemplate(ctx context.Context, templateID, scheduledDate string) (*entities.PMTask, error) {
	template, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	templateItems, err := s.GetTemplateItems(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if scheduledDate == "" {
		scheduledDate = s.today()
	}

	taskFields := dataservice.Fields{
		"pmTemplateId":        templateID,
		"equipmentId":         template.EquipmentID,
		"scheduledDate":       scheduledDate,
		"completedDate":       nil,
		"completedByPersonId": nil,
		"status":              string(entities.PMScheduled),
		"notes":               "",
		"generatedIssueId":    nil,
	}

	task, err := dataservice.FromFields[entities.PMTask](taskFields)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidatePMTask(task)); err != nil {
		return nil, err
	}

	created, err := s.tasks.Create(ctx, taskFields)
	if err != nil {
		return nil, err
	}

	for _, item := range templateItems {
		_, err := s.taskItems.Create(ctx, dataservice.Fields{
			"pmTaskId":         created.PMTaskID,
			"pmTemplateItemId": item.PMTemplateItemID,
			"description":      item.Description,
			"status":           string(entities.ChecklistPending),
			"notes":            "",
			"sortOrder":        item.SortOrder,
		})
		if err != nil {
			return nil, err
		}
	}

	return created, nil
}

// GetTaskItems returns a task's checklist in order.
func (s *PMService) GetTaskItems(ctx context.Context, taskID string) ([]entities.PMTaskItem, error) {
	result, err := s.taskItems.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "pmTaskId eq '" + sanitizeFilterValue(taskID) + "'",
		OrderBy: "sortOrder asc",
		Top:     500,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// UpdateTaskItem records a checklist outcome (Pass, Fail, NotApplicable).
func (s *PMService) UpdateTaskItem(ctx context.Context, id string, fields dataservice.Fields) (*entities.PMTaskItem, error) {
	return s.taskItems.Update(ctx, id, fields)
}

// CompleteTask finishes a PM cycle:
//  1. marks the task Completed with today's date and the completing person,
//  2. generates an issue when any checklist item failed,
//  3. schedules the next task one frequency interval after the completed
//     task's scheduled date, while the template remains active.
//
// Completing an already-Completed task is a conflict, so invoking this twice
// cannot double-schedule the next cycle.
func (s *PMService) CompleteTask(ctx context.Context, taskID, completedByPersonID string) (*CompletedTask, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == entities.PMCompleted {
		return nil, apperrors.NewConflictError(fmt.Sprintf("PM task '%s' is already completed", taskID))
	}

	taskItems, err := s.GetTaskItems(ctx, taskID)
	if err != nil {
		return nil, err
	}
	template, err := s.templates.GetByID(ctx, task.PMTemplateID)
	if err != nil {
		return nil, err
	}

	var failed []entities.PMTaskItem
	for _, item := range taskItems {
		if item.Status == entities.ChecklistFail {
			failed = append(failed, item)
		}
	}

	var generatedIssue *entities.EquipmentIssue
	if len(failed) > 0 {
		generatedIssue, err = s.createIssueForFailures(ctx, task, template, failed, completedByPersonID)
		if err != nil {
			return nil, err
		}
	}

	updates := dataservice.Fields{
		"status":              string(entities.PMCompleted),
		"completedDate":       s.today(),
		"completedByPersonId": completedByPersonID,
		"generatedIssueId":    nil,
	}
	if generatedIssue != nil {
		updates["generatedIssueId"] = generatedIssue.IssueID
	}

	completed, err := s.tasks.Update(ctx, taskID, updates)
	if err != nil {
		return nil, err
	}

	// The next cycle advances from the completed task's scheduled date, not
	// from the completion date, so a late completion does not drift the
	// schedule.
	var nextTask *entities.PMTask
	if template.Active {
		nextDate, err := NextDate(task.ScheduledDate, template.Frequency)
		if err != nil {
			return nil, err
		}
		nextTask, err = s.CreateTaskFromTemplate(ctx, task.PMTemplateID, nextDate)
		if err != nil {
			return nil, err
		}
	}

	return &CompletedTask{Task: completed, GeneratedIssue: generatedIssue, NextTask: nextTask}, nil
}

func (s *PMService) createIssueForFailures(
	ctx context.Context,
	task *entities.PMTask,
	template *entities.PMTemplate,
	failed []entities.PMTaskItem,
	reportedByPersonID string,
) (*entities.EquipmentIssue, error) {
	lines := make([]string, 0, len(failed))
	for _, item := range failed {
		line := "- " + item.Description
		if item.Notes != "" {
			line += ": " + item.Notes
		}
		lines = append(lines, line)
	}

	return s.issues.Create(ctx, dataservice.Fields{
		"equipmentId":        task.EquipmentID,
		"title":              "PM Failed Items: " + template.Name,
		"description":        "The following items failed during preventative maintenance:\n" + strings.Join(lines, "\n"),
		"reportedByPersonId": reportedByPersonID,
		"assignedToPersonId": nil,
		"status":             string(entities.IssueOpen),
		"priority":           string(entities.PriorityMedium),
		"dueDate":            s.now().UTC().AddDate(0, 0, defaultDueDays).Format(dateLayout),
		"createdOn":          s.today(),
		"resolvedOn":         nil,
		"active":             true,
	})
}
