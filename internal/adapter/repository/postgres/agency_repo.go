package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/infrastructure/postgres/generated"
)

// AgencyRepository implements usecase.AgencyRepository.
type AgencyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAgencyRepository creates a new AgencyRepository.
func NewAgencyRepository(pool *pgxpool.Pool) *AgencyRepository {
	return &AgencyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetMember retrieves a user's membership in an agency.
func (r *AgencyRepository) GetMember(ctx context.Context, userID, agencyID string) (*domain.AgencyUser, error) {
	row, err := r.queries.GetAgencyMember(ctx, generated.GetAgencyMemberParams{
		UserID:   userID,
		AgencyID: agencyID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgencyUserNotFound
		}

		return nil, err
	}

	return &domain.AgencyUser{
		ID:        row.ID,
		UserID:    row.UserID,
		AgencyID:  row.AgencyID,
		Role:      domain.AgencyRole(row.Role),
		CreatedAt: row.CreatedAt.Time,
	}, nil
}
