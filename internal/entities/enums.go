package entities

// Choice enums. Application code works with the string values; the column
// adapters translate to the remote store's integer codes.

type OwnerType string

const (
	OwnerTypeTeam   OwnerType = "Team"
	OwnerTypePerson OwnerType = "Person"
)

type EquipmentStatus string

const (
	EquipmentAvailable        EquipmentStatus = "Available"
	EquipmentInUse            EquipmentStatus = "InUse"
	EquipmentUnderMaintenance EquipmentStatus = "UnderMaintenance"
	EquipmentRetired          EquipmentStatus = "Retired"
)

type LoanStatus string

const (
	LoanDraft     LoanStatus = "Draft"
	LoanActive    LoanStatus = "Active"
	LoanOverdue   LoanStatus = "Overdue"
	LoanReturned  LoanStatus = "Returned"
	LoanCancelled LoanStatus = "Cancelled"
)

type LoanReason string

const (
	LoanReasonSimulation LoanReason = "Simulation"
	LoanReasonTraining   LoanReason = "Training"
	LoanReasonService    LoanReason = "Service"
	LoanReasonOther      LoanReason = "Other"
)

type MediaType string

const (
	MediaImage      MediaType = "Image"
	MediaAttachment MediaType = "Attachment"
)

type IssueStatus string

const (
	IssueOpen          IssueStatus = "Open"
	IssueInProgress    IssueStatus = "InProgress"
	IssueAwaitingParts IssueStatus = "AwaitingParts"
	IssueResolved      IssueStatus = "Resolved"
	IssueClosed        IssueStatus = "Closed"
)

type IssuePriority string

const (
	PriorityLow      IssuePriority = "Low"
	PriorityMedium   IssuePriority = "Medium"
	PriorityHigh     IssuePriority = "High"
	PriorityCritical IssuePriority = "Critical"
)

type CorrectiveActionStatus string

const (
	ActionPlanned    CorrectiveActionStatus = "Planned"
	ActionInProgress CorrectiveActionStatus = "InProgress"
	ActionCompleted  CorrectiveActionStatus = "Completed"
	ActionVerified   CorrectiveActionStatus = "Verified"
)

type PMStatus string

const (
	PMScheduled  PMStatus = "Scheduled"
	PMInProgress PMStatus = "InProgress"
	PMCompleted  PMStatus = "Completed"
	PMOverdue    PMStatus = "Overdue"
	PMCancelled  PMStatus = "Cancelled"
)

type PMFrequency string

const (
	FrequencyWeekly     PMFrequency = "Weekly"
	FrequencyMonthly    PMFrequency = "Monthly"
	FrequencyQuarterly  PMFrequency = "Quarterly"
	FrequencySemiAnnual PMFrequency = "SemiAnnual"
	FrequencyAnnual     PMFrequency = "Annual"
)

type PMChecklistItemStatus string

const (
	ChecklistPending       PMChecklistItemStatus = "Pending"
	ChecklistPass          PMChecklistItemStatus = "Pass"
	ChecklistFail          PMChecklistItemStatus = "Fail"
	ChecklistNotApplicable PMChecklistItemStatus = "NotApplicable"
)
