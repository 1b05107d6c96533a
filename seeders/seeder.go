// Package seeders loads a demonstration data set through the data service
// contract, so it works unchanged against the in-memory, remote, and
// Postgres backends.
package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/services"
)

const clearPageSize = 5000

// Seeder creates the demo data set in dependency order and tracks the ids
// the stores hand back so later rows can reference earlier ones.
type Seeder struct {
	reg    *services.Registry
	logger *zap.Logger
	ids    map[string]string
}

func New(reg *services.Registry, logger *zap.Logger) *Seeder {
	return &Seeder{reg: reg, logger: logger, ids: map[string]string{}}
}

// resolve swaps symbolic reference values for the real ids of already
// created rows. Unknown strings pass through untouched.
func (s *Seeder) resolve(fields dataservice.Fields) dataservice.Fields {
	out := dataservice.Clone(fields)
	for k, v := range out {
		if str, ok := v.(string); ok {
			if real, found := s.ids[str]; found {
				out[k] = real
			}
		}
	}
	return out
}

// seedRows creates each row and records its generated id under the row key.
func seedRows[T any](
	ctx context.Context,
	s *Seeder,
	store dataservice.DataService[T],
	idField, label string,
	rows []row,
) error {
	for _, r := range rows {
		created, err := store.Create(ctx, s.resolve(r.fields))
		if err != nil {
			return fmt.Errorf("seeding %s: %w", label, err)
		}
		if r.key != "" {
			fields, err := dataservice.ToFields(created)
			if err != nil {
				return fmt.Errorf("seeding %s: %w", label, err)
			}
			id, _ := fields[idField].(string)
			s.ids[r.key] = id
		}
	}
	s.logger.Info("seeded", zap.String("entity", label), zap.Int("count", len(rows)))
	return nil
}

// SeedAll populates every entity. Creation order follows the reference
// graph; persons are linked to their teams in a second pass because the
// Person, Team, and Location references form a cycle.
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := seedRows(ctx, s, s.reg.Buildings, "buildingId", "buildings", seedBuildings); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.Levels, "levelId", "levels", seedLevels); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.Persons, "personId", "persons", seedPersons); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.Locations, "locationId", "locations", seedLocations); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.Teams, "teamId", "teams", seedTeams); err != nil {
		return err
	}

	for personKey, teamKey := range seedPersonTeams {
		_, err := s.reg.Persons.Update(ctx, s.ids[personKey], dataservice.Fields{
			"teamId": s.ids[teamKey],
		})
		if err != nil {
			return fmt.Errorf("linking person to team: %w", err)
		}
	}
	s.logger.Info("linked persons to teams", zap.Int("count", len(seedPersonTeams)))

	if err := seedRows(ctx, s, s.reg.TeamMembers, "teamMemberId", "team members", seedTeamMembers); err != nil {
		return err
	}

	// Parents before children so parentEquipmentId always resolves.
	var parents, children []row
	for _, r := range seedEquipment {
		if r.fields["parentEquipmentId"] == nil {
			parents = append(parents, r)
		} else {
			children = append(children, r)
		}
	}
	if err := seedRows(ctx, s, s.reg.Equipment, "equipmentId", "equipment", parents); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.Equipment, "equipmentId", "equipment", children); err != nil {
		return err
	}

	if err := seedRows(ctx, s, s.reg.EquipmentMedia, "equipmentMediaId", "equipment media", seedEquipmentMedia); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.Loans, "loanTransferId", "loan transfers", seedLoanTransfers); err != nil {
		return err
	}

	for _, r := range seedIssues {
		if _, err := s.reg.IssueService.CreateIssue(ctx, s.resolve(r.fields)); err != nil {
			return fmt.Errorf("seeding issues: %w", err)
		}
	}
	s.logger.Info("seeded", zap.String("entity", "issues"), zap.Int("count", len(seedIssues)))

	if err := seedRows(ctx, s, s.reg.PMTemplates, "pmTemplateId", "pm templates", seedPMTemplates); err != nil {
		return err
	}
	if err := seedRows(ctx, s, s.reg.PMTemplateItems, "pmTemplateItemId", "pm template items", seedPMTemplateItems); err != nil {
		return err
	}

	// Materialize one scheduled task so the maintenance screens have data.
	if _, err := s.reg.PMService.CreateTaskFromTemplate(ctx, s.ids[pmtManikin], ""); err != nil {
		return fmt.Errorf("seeding pm task: %w", err)
	}
	s.logger.Info("seeded", zap.String("entity", "pm tasks"), zap.Int("count", 1))

	s.logger.Info("seed complete")
	return nil
}

// clearRows deletes every record of one entity.
func clearRows[T any](
	ctx context.Context,
	s *Seeder,
	store dataservice.DataService[T],
	idField, label string,
) error {
	page, err := store.GetAll(ctx, &dataservice.ListOptions{Top: clearPageSize})
	if err != nil {
		return fmt.Errorf("clearing %s: %w", label, err)
	}
	for _, item := range page.Data {
		fields, err := dataservice.ToFields(item)
		if err != nil {
			return fmt.Errorf("clearing %s: %w", label, err)
		}
		id, _ := fields[idField].(string)
		if err := store.Delete(ctx, id); err != nil {
			return fmt.Errorf("clearing %s: %w", label, err)
		}
	}
	s.logger.Info("cleared", zap.String("entity", label), zap.Int("count", len(page.Data)))
	return nil
}

// ClearAll wipes every entity, leaf entities first. Self and cyclic
// references are nulled out before the owning rows are deleted.
func (s *Seeder) ClearAll(ctx context.Context) error {
	if err := clearRows(ctx, s, s.reg.PMTaskItems, "pmTaskItemId", "pm task items"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.PMTasks, "pmTaskId", "pm tasks"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.PMTemplateItems, "pmTemplateItemId", "pm template items"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.PMTemplates, "pmTemplateId", "pm templates"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Actions, "correctiveActionId", "corrective actions"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.IssueNotes, "issueNoteId", "issue notes"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Issues, "issueId", "issues"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Loans, "loanTransferId", "loan transfers"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.EquipmentMedia, "equipmentMediaId", "equipment media"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.LocationMedia, "locationMediaId", "location media"); err != nil {
		return err
	}

	equipment, err := s.reg.Equipment.GetAll(ctx, &dataservice.ListOptions{Top: clearPageSize})
	if err != nil {
		return fmt.Errorf("clearing equipment: %w", err)
	}
	for _, e := range equipment.Data {
		if e.ParentEquipmentID != nil {
			_, err := s.reg.Equipment.Update(ctx, e.EquipmentID, dataservice.Fields{
				"parentEquipmentId": nil,
			})
			if err != nil {
				return fmt.Errorf("clearing equipment: %w", err)
			}
		}
	}
	if err := clearRows(ctx, s, s.reg.Equipment, "equipmentId", "equipment"); err != nil {
		return err
	}

	if err := clearRows(ctx, s, s.reg.TeamMembers, "teamMemberId", "team members"); err != nil {
		return err
	}

	persons, err := s.reg.Persons.GetAll(ctx, &dataservice.ListOptions{Top: clearPageSize})
	if err != nil {
		return fmt.Errorf("clearing persons: %w", err)
	}
	for _, p := range persons.Data {
		if p.TeamID != nil {
			_, err := s.reg.Persons.Update(ctx, p.PersonID, dataservice.Fields{"teamId": nil})
			if err != nil {
				return fmt.Errorf("clearing persons: %w", err)
			}
		}
	}

	if err := clearRows(ctx, s, s.reg.Teams, "teamId", "teams"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Locations, "locationId", "locations"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Levels, "levelId", "levels"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Persons, "personId", "persons"); err != nil {
		return err
	}
	if err := clearRows(ctx, s, s.reg.Buildings, "buildingId", "buildings"); err != nil {
		return err
	}

	s.logger.Info("clear complete")
	return nil
}
