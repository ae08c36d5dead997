package usecase

import (
	"context"

	"github.com/fundledger/fundledger/internal/domain"
)

// AgencyUseCase resolves agency memberships and implements Authorizer.
type AgencyUseCase struct {
	agencyRepo AgencyRepository
	userRepo   UserRepository
}

// NewAgencyUseCase creates a new AgencyUseCase.
func NewAgencyUseCase(agencyRepo AgencyRepository, userRepo UserRepository) *AgencyUseCase {
	return &AgencyUseCase{
		agencyRepo: agencyRepo,
		userRepo:   userRepo,
	}
}

// ValidateMember checks that the user belongs to the agency.
func (uc *AgencyUseCase) ValidateMember(ctx context.Context, userID, agencyID string) (*domain.AgencyUser, error) {
	if uc.userRepo != nil {
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			return nil, err
		}
	}

	return uc.agencyRepo.GetMember(ctx, userID, agencyID)
}

// RequireStaff checks that the user belongs to the agency with the staff
// role. Member-level roles may read but never record.
func (uc *AgencyUseCase) RequireStaff(ctx context.Context, userID, agencyID string) error {
	member, err := uc.ValidateMember(ctx, userID, agencyID)
	if err != nil {
		return err
	}

	if !member.Role.CanRecord() {
		return domain.ErrInvalidAccess
	}

	return nil
}
