package services

import (
	"context"
	"strings"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EquipmentWithDetails is an equipment record with its owner, contact, and
// location references resolved. A dangling reference resolves to nil rather
// than failing the whole fetch.
type EquipmentWithDetails struct {
	Equipment     *entities.Equipment `json:"equipment"`
	OwnerTeam     *entities.Team      `json:"ownerTeam"`
	OwnerPerson   *entities.Person    `json:"ownerPerson"`
	ContactPerson *entities.Person    `json:"contactPerson"`
	HomeLocation  *entities.Location  `json:"homeLocation"`
}

// EquipmentService adds domain behavior on top of the equipment store:
// detail resolution, parent/child hierarchy, and validated writes.
type EquipmentService struct {
	equipment dataservice.DataService[entities.Equipment]
	teams     dataservice.DataService[entities.Team]
	persons   dataservice.DataService[entities.Person]
	locations dataservice.DataService[entities.Location]
	logger    *zap.Logger
}

func NewEquipmentService(
	equipment dataservice.DataService[entities.Equipment],
	teams dataservice.DataService[entities.Team],
	persons dataservice.DataService[entities.Person],
	locations dataservice.DataService[entities.Location],
	logger *zap.Logger,
) *EquipmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EquipmentService{
		equipment: equipment,
		teams:     teams,
		persons:   persons,
		locations: locations,
		logger:    logger,
	}
}

func (s *EquipmentService) GetAll(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[entities.Equipment], error) {
	return s.equipment.GetAll(ctx, opts)
}

func (s *EquipmentService) GetByID(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	return s.equipment.Delete(ctx, id)
}

// GetWithDetails fetches an equipment record and resolves its related
// entities in parallel. Related lookups that fail resolve to nil because a
// dangling reference must not hide the primary record.
func (s *EquipmentService) GetWithDetails(ctx context.Context, id string) (*EquipmentWithDetails, error) {
	equipment, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &EquipmentWithDetails{Equipment: equipment}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if equipment.OwnerTeamID != nil {
			details.OwnerTeam = safeGetByID(gctx, s.teams, *equipment.OwnerTeamID)
		}
		return nil
	})
	g.Go(func() error {
		if equipment.OwnerPersonID != nil {
			details.OwnerPerson = safeGetByID(gctx, s.persons, *equipment.OwnerPersonID)
		}
		return nil
	})
	g.Go(func() error {
		details.ContactPerson = safeGetByID(gctx, s.persons, equipment.ContactPersonID)
		return nil
	})
	g.Go(func() error {
		details.HomeLocation = safeGetByID(gctx, s.locations, equipment.HomeLocationID)
		return nil
	})
	_ = g.Wait()

	return details, nil
}

// GetChildren returns all equipment whose parentEquipmentId matches the
// given id.
func (s *EquipmentService) GetChildren(ctx context.Context, parentID string) ([]entities.Equipment, error) {
	result, err := s.equipment.GetAll(ctx, &dataservice.ListOptions{
		Filter: "parentEquipmentId eq '" + sanitizeFilterValue(parentID) + "'",
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ValidateAndCreate runs the equipment rules and persists only when all pass.
// The first violation is returned as the error.
func (s *EquipmentService) ValidateAndCreate(ctx context.Context, fields dataservice.Fields) (*entities.Equipment, error) {
	equipment, err := dataservice.FromFields[entities.Equipment](fields)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateEquipment(equipment)); err != nil {
		return nil, err
	}
	return s.equipment.Create(ctx, fields)
}

// ValidateAndUpdate merges the patch with the stored record before
// validation so required-field rules see the full picture, then persists
// only the patch.
func (s *EquipmentService) ValidateAndUpdate(ctx context.Context, id string, fields dataservice.Fields) (*entities.Equipment, error) {
	existing, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existingFields, err := dataservice.ToFields(existing)
	if err != nil {
		return nil, err
	}
	merged, err := dataservice.FromFields[entities.Equipment](dataservice.Merge(existingFields, fields))
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateEquipment(merged)); err != nil {
		return nil, err
	}
	return s.equipment.Update(ctx, id, fields)
}

// safeGetByID fetches a record, mapping any failure to nil.
func safeGetByID[T any](ctx context.Context, service dataservice.DataService[T], id string) *T {
	item, err := service.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return item
}

// sanitizeFilterValue doubles single quotes so ids are safe inside a filter
// literal.
func sanitizeFilterValue(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
