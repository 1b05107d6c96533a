package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"
)

const exportPageSize = 10000

var equipmentReportHeaders = []string{
	"Code", "Name", "Description", "Owner Type", "Owner Team", "Owner Person",
	"Contact Person", "Home Location", "Status", "Active",
}

// ReportService renders the equipment inventory as an xlsx workbook with
// lookup references resolved to display names.
type ReportService struct {
	equipment dataservice.DataService[entities.Equipment]
	teams     dataservice.DataService[entities.Team]
	persons   dataservice.DataService[entities.Person]
	locations dataservice.DataService[entities.Location]
	logger    *zap.Logger
	now       func() time.Time
}

func NewReportService(
	equipment dataservice.DataService[entities.Equipment],
	teams dataservice.DataService[entities.Team],
	persons dataservice.DataService[entities.Person],
	locations dataservice.DataService[entities.Location],
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		equipment: equipment,
		teams:     teams,
		persons:   persons,
		locations: locations,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// FileName returns the suggested attachment name for the current export.
func (s *ReportService) FileName() string {
	return fmt.Sprintf("equipment_inventory_%s.xlsx", s.now().UTC().Format("2006-01-02"))
}

// ExportEquipment builds the workbook. Lookup resolution is best effort;
// a reference to a deleted row renders as an empty cell.
func (s *ReportService) ExportEquipment(ctx context.Context) (*excelize.File, error) {
	page, err := s.equipment.GetAll(ctx, &dataservice.ListOptions{
		Top:     exportPageSize,
		OrderBy: "name asc",
	})
	if err != nil {
		return nil, err
	}

	teamNames := s.teamNames(ctx)
	personNames := s.personNames(ctx)
	locationNames := s.locationNames(ctx)

	f := excelize.NewFile()
	sheet := "Equipment"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, item := range page.Data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := equipmentReportRow(item, teamNames, personNames, locationNames)
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "C", 32)
	f.SetColWidth(sheet, "E", "H", 24)

	s.logger.Debug("equipment export built", zap.Int("rows", len(page.Data)))
	return f, nil
}

func equipmentReportRow(
	item entities.Equipment,
	teams, persons, locations map[string]string,
) []interface{} {
	active := "No"
	if item.Active {
		active = "Yes"
	}
	return []interface{}{
		item.EquipmentCode,
		item.Name,
		item.Description,
		string(item.OwnerType),
		refName(teams, item.OwnerTeamID),
		refName(persons, item.OwnerPersonID),
		persons[item.ContactPersonID],
		locations[item.HomeLocationID],
		string(item.Status),
		active,
	}
}

func refName(names map[string]string, id *string) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func (s *ReportService) teamNames(ctx context.Context) map[string]string {
	names := map[string]string{}
	page, err := s.teams.GetAll(ctx, &dataservice.ListOptions{Top: exportPageSize})
	if err != nil {
		s.logger.Debug("team lookup for export failed", zap.Error(err))
		return names
	}
	for _, t := range page.Data {
		names[t.TeamID] = t.Name
	}
	return names
}

func (s *ReportService) personNames(ctx context.Context) map[string]string {
	names := map[string]string{}
	page, err := s.persons.GetAll(ctx, &dataservice.ListOptions{Top: exportPageSize})
	if err != nil {
		s.logger.Debug("person lookup for export failed", zap.Error(err))
		return names
	}
	for _, p := range page.Data {
		names[p.PersonID] = p.DisplayName
	}
	return names
}

func (s *ReportService) locationNames(ctx context.Context) map[string]string {
	names := map[string]string{}
	page, err := s.locations.GetAll(ctx, &dataservice.ListOptions{Top: exportPageSize})
	if err != nil {
		s.logger.Debug("location lookup for export failed", zap.Error(err))
		return names
	}
	for _, l := range page.Data {
		names[l.LocationID] = l.Name
	}
	return names
}
