package services

import (
	"context"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/entities"

	"go.uber.org/zap"
)

// LoanService adds validated writes and per-equipment history on top of the
// loan transfer store.
type LoanService struct {
	loans  dataservice.DataService[entities.LoanTransfer]
	logger *zap.Logger
}

func NewLoanService(
	loans dataservice.DataService[entities.LoanTransfer],
	logger *zap.Logger,
) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanService{loans: loans, logger: logger}
}

func (s *LoanService) GetAll(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[entities.LoanTransfer], error) {
	return s.loans.GetAll(ctx, opts)
}

func (s *LoanService) GetByID(ctx context.Context, id string) (*entities.LoanTransfer, error) {
	return s.loans.GetByID(ctx, id)
}

func (s *LoanService) Delete(ctx context.Context, id string) error {
	return s.loans.Delete(ctx, id)
}

// GetForEquipment returns the loan history of one equipment item, most
// recent start date first.
func (s *LoanService) GetForEquipment(ctx context.Context, equipmentID string) ([]entities.LoanTransfer, error) {
	result, err := s.loans.GetAll(ctx, &dataservice.ListOptions{
		Filter:  "equipmentId eq '" + sanitizeFilterValue(equipmentID) + "'",
		OrderBy: "startDate desc",
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ValidateAndCreate runs the loan rules and persists only when all pass.
func (s *LoanService) ValidateAndCreate(ctx context.Context, fields dataservice.Fields) (*entities.LoanTransfer, error) {
	loan, err := dataservice.FromFields[entities.LoanTransfer](fields)
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateLoanTransfer(loan)); err != nil {
		return nil, err
	}
	return s.loans.Create(ctx, fields)
}

// ValidateAndUpdate merges the patch with the stored record before
// validation, then persists only the patch.
func (s *LoanService) ValidateAndUpdate(ctx context.Context, id string, fields dataservice.Fields) (*entities.LoanTransfer, error) {
	existing, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existingFields, err := dataservice.ToFields(existing)
	if err != nil {
		return nil, err
	}
	merged, err := dataservice.FromFields[entities.LoanTransfer](dataservice.Merge(existingFields, fields))
	if err != nil {
		return nil, err
	}
	if err := firstError(ValidateLoanTransfer(merged)); err != nil {
		return nil, err
	}
	return s.loans.Update(ctx, id, fields)
}
