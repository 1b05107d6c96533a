package services

import (
	"time"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/dataverse"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"equipment-system/pkg/retry"
)

// Registry holds one data service per entity plus the domain services built
// on them. Consumers depend on the registry, never on which backend is
// wired behind it.
type Registry struct {
	Persons          dataservice.DataService[entities.Person]
	Teams            dataservice.DataService[entities.Team]
	TeamMembers      dataservice.DataService[entities.TeamMember]
	Buildings        dataservice.DataService[entities.Building]
	Levels           dataservice.DataService[entities.Level]
	Locations        dataservice.DataService[entities.Location]
	Equipment        dataservice.DataService[entities.Equipment]
	EquipmentMedia   dataservice.DataService[entities.EquipmentMedia]
	LocationMedia    dataservice.DataService[entities.LocationMedia]
	Loans            dataservice.DataService[entities.LoanTransfer]
	Issues           dataservice.DataService[entities.EquipmentIssue]
	IssueNotes       dataservice.DataService[entities.IssueNote]
	Actions          dataservice.DataService[entities.CorrectiveAction]
	PMTemplates      dataservice.DataService[entities.PMTemplate]
	PMTemplateItems  dataservice.DataService[entities.PMTemplateItem]
	PMTasks          dataservice.DataService[entities.PMTask]
	PMTaskItems      dataservice.DataService[entities.PMTaskItem]

	EquipmentService *EquipmentService
	LoanService      *LoanService
	IssueService     *IssueService
	PMService        *PMService
	ReportService    *ReportService
}

// bind builds the domain services once the per-entity stores are in place.
func (r *Registry) bind(logger *zap.Logger) *Registry {
	r.EquipmentService = NewEquipmentService(r.Equipment, r.Teams, r.Persons, r.Locations, logger)
	r.LoanService = NewLoanService(r.Loans, logger)
	r.IssueService = NewIssueService(r.Issues, r.IssueNotes, r.Actions, r.Equipment, r.Persons, logger)
	r.PMService = NewPMService(r.PMTemplates, r.PMTemplateItems, r.PMTasks, r.PMTaskItems, r.Issues, logger)
	r.ReportService = NewReportService(r.Equipment, r.Teams, r.Persons, r.Locations, logger)
	return r
}

func memoryConfig(adapter *dataverse.ColumnAdapter, latency time.Duration) dataservice.MemoryConfig {
	return dataservice.MemoryConfig{
		IDField:      adapter.IDField,
		EntityName:   adapter.EntityName,
		SearchFields: adapter.SearchFields,
		Latency:      latency,
	}
}

func mustMemory[T any](adapter *dataverse.ColumnAdapter, latency time.Duration) dataservice.DataService[T] {
	store, err := dataservice.NewMemoryDataService[T](nil, memoryConfig(adapter, latency))
	if err != nil {
		panic(err)
	}
	return store
}

// NewMemoryRegistry wires every entity to an empty in-memory store. The
// optional latency simulates remote round-trips during local development.
func NewMemoryRegistry(latency time.Duration, logger *zap.Logger) *Registry {
	r := &Registry{
		Persons:         mustMemory[entities.Person](dataverse.PersonAdapter, latency),
		Teams:           mustMemory[entities.Team](dataverse.TeamAdapter, latency),
		TeamMembers:     mustMemory[entities.TeamMember](dataverse.TeamMemberAdapter, latency),
		Buildings:       mustMemory[entities.Building](dataverse.BuildingAdapter, latency),
		Levels:          mustMemory[entities.Level](dataverse.LevelAdapter, latency),
		Locations:       mustMemory[entities.Location](dataverse.LocationAdapter, latency),
		Equipment:       mustMemory[entities.Equipment](dataverse.EquipmentAdapter, latency),
		EquipmentMedia:  mustMemory[entities.EquipmentMedia](dataverse.EquipmentMediaAdapter, latency),
		LocationMedia:   mustMemory[entities.LocationMedia](dataverse.LocationMediaAdapter, latency),
		Loans:           mustMemory[entities.LoanTransfer](dataverse.LoanTransferAdapter, latency),
		Issues:          mustMemory[entities.EquipmentIssue](dataverse.EquipmentIssueAdapter, latency),
		IssueNotes:      mustMemory[entities.IssueNote](dataverse.IssueNoteAdapter, latency),
		Actions:         mustMemory[entities.CorrectiveAction](dataverse.CorrectiveActionAdapter, latency),
		PMTemplates:     mustMemory[entities.PMTemplate](dataverse.PMTemplateAdapter, latency),
		PMTemplateItems: mustMemory[entities.PMTemplateItem](dataverse.PMTemplateItemAdapter, latency),
		PMTasks:         mustMemory[entities.PMTask](dataverse.PMTaskAdapter, latency),
		PMTaskItems:     mustMemory[entities.PMTaskItem](dataverse.PMTaskItemAdapter, latency),
	}
	return r.bind(logger)
}

// NewDataverseRegistry wires every entity to the remote platform through the
// shared connector, with one retry policy across all of them.
func NewDataverseRegistry(client dataverse.Client, logger *zap.Logger, retryOpts *retry.Options) *Registry {
	r := &Registry{
		Persons:         dataverse.NewDataverseDataService[entities.Person](client, dataverse.PersonAdapter, logger, retryOpts),
		Teams:           dataverse.NewDataverseDataService[entities.Team](client, dataverse.TeamAdapter, logger, retryOpts),
		TeamMembers:     dataverse.NewDataverseDataService[entities.TeamMember](client, dataverse.TeamMemberAdapter, logger, retryOpts),
		Buildings:       dataverse.NewDataverseDataService[entities.Building](client, dataverse.BuildingAdapter, logger, retryOpts),
		Levels:          dataverse.NewDataverseDataService[entities.Level](client, dataverse.LevelAdapter, logger, retryOpts),
		Locations:       dataverse.NewDataverseDataService[entities.Location](client, dataverse.LocationAdapter, logger, retryOpts),
		Equipment:       dataverse.NewDataverseDataService[entities.Equipment](client, dataverse.EquipmentAdapter, logger, retryOpts),
		EquipmentMedia:  dataverse.NewDataverseDataService[entities.EquipmentMedia](client, dataverse.EquipmentMediaAdapter, logger, retryOpts),
		LocationMedia:   dataverse.NewDataverseDataService[entities.LocationMedia](client, dataverse.LocationMediaAdapter, logger, retryOpts),
		Loans:           dataverse.NewDataverseDataService[entities.LoanTransfer](client, dataverse.LoanTransferAdapter, logger, retryOpts),
		Issues:          dataverse.NewDataverseDataService[entities.EquipmentIssue](client, dataverse.EquipmentIssueAdapter, logger, retryOpts),
		IssueNotes:      dataverse.NewDataverseDataService[entities.IssueNote](client, dataverse.IssueNoteAdapter, logger, retryOpts),
		Actions:         dataverse.NewDataverseDataService[entities.CorrectiveAction](client, dataverse.CorrectiveActionAdapter, logger, retryOpts),
		PMTemplates:     dataverse.NewDataverseDataService[entities.PMTemplate](client, dataverse.PMTemplateAdapter, logger, retryOpts),
		PMTemplateItems: dataverse.NewDataverseDataService[entities.PMTemplateItem](client, dataverse.PMTemplateItemAdapter, logger, retryOpts),
		PMTasks:         dataverse.NewDataverseDataService[entities.PMTask](client, dataverse.PMTaskAdapter, logger, retryOpts),
		PMTaskItems:     dataverse.NewDataverseDataService[entities.PMTaskItem](client, dataverse.PMTaskItemAdapter, logger, retryOpts),
	}
	return r.bind(logger)
}

// NewPostgresRegistry wires every entity to the Postgres store.
func NewPostgresRegistry(pool *pgxpool.Pool, logger *zap.Logger) *Registry {
	r := &Registry{
		Persons:         repositories.NewPostgresDataService[entities.Person](pool, dataverse.PersonAdapter, logger),
		Teams:           repositories.NewPostgresDataService[entities.Team](pool, dataverse.TeamAdapter, logger),
		TeamMembers:     repositories.NewPostgresDataService[entities.TeamMember](pool, dataverse.TeamMemberAdapter, logger),
		Buildings:       repositories.NewPostgresDataService[entities.Building](pool, dataverse.BuildingAdapter, logger),
		Levels:          repositories.NewPostgresDataService[entities.Level](pool, dataverse.LevelAdapter, logger),
		Locations:       repositories.NewPostgresDataService[entities.Location](pool, dataverse.LocationAdapter, logger),
		Equipment:       repositories.NewPostgresDataService[entities.Equipment](pool, dataverse.EquipmentAdapter, logger),
		EquipmentMedia:  repositories.NewPostgresDataService[entities.EquipmentMedia](pool, dataverse.EquipmentMediaAdapter, logger),
		LocationMedia:   repositories.NewPostgresDataService[entities.LocationMedia](pool, dataverse.LocationMediaAdapter, logger),
		Loans:           repositories.NewPostgresDataService[entities.LoanTransfer](pool, dataverse.LoanTransferAdapter, logger),
		Issues:          repositories.NewPostgresDataService[entities.EquipmentIssue](pool, dataverse.EquipmentIssueAdapter, logger),
		IssueNotes:      repositories.NewPostgresDataService[entities.IssueNote](pool, dataverse.IssueNoteAdapter, logger),
		Actions:         repositories.NewPostgresDataService[entities.CorrectiveAction](pool, dataverse.CorrectiveActionAdapter, logger),
		PMTemplates:     repositories.NewPostgresDataService[entities.PMTemplate](pool, dataverse.PMTemplateAdapter, logger),
		PMTemplateItems: repositories.NewPostgresDataService[entities.PMTemplateItem](pool, dataverse.PMTemplateItemAdapter, logger),
		PMTasks:         repositories.NewPostgresDataService[entities.PMTask](pool, dataverse.PMTaskAdapter, logger),
		PMTaskItems:     repositories.NewPostgresDataService[entities.PMTaskItem](pool, dataverse.PMTaskItemAdapter, logger),
	}
	return r.bind(logger)
}
