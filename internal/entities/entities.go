// Package entities holds the application data model.
//
// JSON tags are the canonical application field names: the dataservice Fields
// maps, the column adapters, and filter expressions all key off them. Dates
// are ISO strings so they compare correctly as strings.
package entities

type Person struct {
	PersonID    string  `json:"personId"`
	DisplayName string  `json:"displayName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	TeamID      *string `json:"teamId"`
	Active      bool    `json:"active"`
}

type Team struct {
	TeamID              string `json:"teamId"`
	TeamCode            string `json:"teamCode"`
	Name                string `json:"name"`
	MainContactPersonID string `json:"mainContactPersonId"`
	MainLocationID      string `json:"mainLocationId"`
	Active              bool   `json:"active"`
}

type TeamMember struct {
	TeamMemberID string `json:"teamMemberId"`
	TeamID       string `json:"teamId"`
	PersonID     string `json:"personId"`
	Role         string `json:"role"`
}

type Building struct {
	BuildingID string `json:"buildingId"`
	Name       string `json:"name"`
	Code       string `json:"code"`
}

type Level struct {
	LevelID    string `json:"levelId"`
	BuildingID string `json:"buildingId"`
	Name       string `json:"name"`
	SortOrder  int    `json:"sortOrder"`
}

type Location struct {
	LocationID      string `json:"locationId"`
	BuildingID      string `json:"buildingId"`
	LevelID         string `json:"levelId"`
	Name            string `json:"name"`
	ContactPersonID string `json:"contactPersonId"`
	Description     string `json:"description"`
}

type Equipment struct {
	EquipmentID             string          `json:"equipmentId"`
	EquipmentCode           string          `json:"equipmentCode"`
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	OwnerType               OwnerType       `json:"ownerType"`
	OwnerTeamID             *string         `json:"ownerTeamId"`
	OwnerPersonID           *string         `json:"ownerPersonId"`
	ContactPersonID         string          `json:"contactPersonId"`
	HomeLocationID          string          `json:"homeLocationId"`
	ParentEquipmentID       *string         `json:"parentEquipmentId"`
	KeyImageURL             string          `json:"keyImageUrl"`
	QuickStartFlowChartJSON string          `json:"quickStartFlowChartJson"`
	ContentsListJSON        string          `json:"contentsListJson"`
	Status                  EquipmentStatus `json:"status"`
	Active                  bool            `json:"active"`
}

type EquipmentMedia struct {
	EquipmentMediaID string    `json:"equipmentMediaId"`
	EquipmentID      string    `json:"equipmentId"`
	MediaType        MediaType `json:"mediaType"`
	FileName         string    `json:"fileName"`
	MimeType         string    `json:"mimeType"`
	FileURL          string    `json:"fileUrl"`
	SortOrder        int       `json:"sortOrder"`
}

type LocationMedia struct {
	LocationMediaID string    `json:"locationMediaId"`
	LocationID      string    `json:"locationId"`
	MediaType       MediaType `json:"mediaType"`
	FileName        string    `json:"fileName"`
	MimeType        string    `json:"mimeType"`
	FileURL         string    `json:"fileUrl"`
	SortOrder       int       `json:"sortOrder"`
}

type LoanTransfer struct {
	LoanTransferID     string     `json:"loanTransferId"`
	EquipmentID        string     `json:"equipmentId"`
	StartDate          string     `json:"startDate"`
	DueDate            string     `json:"dueDate"`
	OriginTeamID       string     `json:"originTeamId"`
	RecipientTeamID    string     `json:"recipientTeamId"`
	ReasonCode         LoanReason `json:"reasonCode"`
	ApproverPersonID   string     `json:"approverPersonId"`
	IsInternalTransfer bool       `json:"isInternalTransfer"`
	Status             LoanStatus `json:"status"`
	Notes              string     `json:"notes"`
}

type EquipmentIssue struct {
	IssueID            string        `json:"issueId"`
	EquipmentID        string        `json:"equipmentId"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	ReportedByPersonID string        `json:"reportedByPersonId"`
	AssignedToPersonID *string       `json:"assignedToPersonId"`
	Status             IssueStatus   `json:"status"`
	Priority           IssuePriority `json:"priority"`
	DueDate            string        `json:"dueDate"`
	CreatedOn          string        `json:"createdOn"`
	ResolvedOn         *string       `json:"resolvedOn"`
	Active             bool          `json:"active"`
}

type IssueNote struct {
	IssueNoteID    string `json:"issueNoteId"`
	IssueID        string `json:"issueId"`
	AuthorPersonID string `json:"authorPersonId"`
	Content        string `json:"content"`
	CreatedOn      string `json:"createdOn"`
}

type CorrectiveAction struct {
	CorrectiveActionID    string                 `json:"correctiveActionId"`
	IssueID               string                 `json:"issueId"`
	Description           string                 `json:"description"`
	AssignedToPersonID    string                 `json:"assignedToPersonId"`
	Status                CorrectiveActionStatus `json:"status"`
	EquipmentStatusChange *EquipmentStatus       `json:"equipmentStatusChange"`
	CompletedOn           *string                `json:"completedOn"`
	CreatedOn             string                 `json:"createdOn"`
}

type PMTemplate struct {
	PMTemplateID string      `json:"pmTemplateId"`
	EquipmentID  string      `json:"equipmentId"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Frequency    PMFrequency `json:"frequency"`
	Active       bool        `json:"active"`
}

type PMTemplateItem struct {
	PMTemplateItemID string `json:"pmTemplateItemId"`
	PMTemplateID     string `json:"pmTemplateId"`
	Description      string `json:"description"`
	SortOrder        int    `json:"sortOrder"`
}

type PMTask struct {
	PMTaskID            string   `json:"pmTaskId"`
	PMTemplateID        string   `json:"pmTemplateId"`
	EquipmentID         string   `json:"equipmentId"`
	ScheduledDate       string   `json:"scheduledDate"`
	CompletedDate       *string  `json:"completedDate"`
	CompletedByPersonID *string  `json:"completedByPersonId"`
	Status              PMStatus `json:"status"`
	Notes               string   `json:"notes"`
	GeneratedIssueID    *string  `json:"generatedIssueId"`
}

type PMTaskItem struct {
	PMTaskItemID     string                `json:"pmTaskItemId"`
	PMTaskID         string                `json:"pmTaskId"`
	PMTemplateItemID string                `json:"pmTemplateItemId"`
	Description      string                `json:"description"`
	Status           PMChecklistItemStatus `json:"status"`
	Notes            string                `json:"notes"`
	SortOrder        int                   `json:"sortOrder"`
}
