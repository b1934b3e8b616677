package report

import (
	"context"
	"fmt"

	bookingRepo "stayx/database/repository/booking"
	propertyRepo "stayx/database/repository/property"
	txRepo "stayx/database/repository/transaction"
	userRepo "stayx/database/repository/user"
	"stayx/models"
)

// Overview aggregates the numbers the admin dashboard shows.
type Overview struct {
	Users        int64   `json:"users"`
	Properties   int64   `json:"properties"`
	Bookings     int64   `json:"bookings"`
	Transactions int64   `json:"transactions"`
	GrossVolume  float64 `json:"grossVolume"`
	PlatformFees float64 `json:"platformFees"`
}

// Service computes administrative aggregates.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
	ListUsers(ctx context.Context, limit int) ([]models.User, error)
	ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Users        userRepo.Repository
	Properties   propertyRepo.Repository
	Bookings     bookingRepo.Repository
	Transactions txRepo.Repository
}

func (s *DefaultReportService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user count failed: %w", err)
	}
	properties, err := s.Properties.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("property count failed: %w", err)
	}
	bookings, err := s.Bookings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking count failed: %w", err)
	}

	// Completed transactions only; pending cash entries are not revenue yet.
	txs, err := s.Transactions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("transaction list failed: %w", err)
	}

	var gross, fees float64
	for _, t := range txs {
		if t.Status != models.TransactionCompleted {
			continue
		}
		gross += t.Amount
		fees += t.PlatformFee
	}

	return &Overview{
		Users:        users,
		Properties:   properties,
		Bookings:     bookings,
		Transactions: int64(len(txs)),
		GrossVolume:  gross,
		PlatformFees: fees,
	}, nil
}

func (s *DefaultReportService) ListUsers(ctx context.Context, limit int) ([]models.User, error) {
	return s.Users.List(ctx, limit)
}

func (s *DefaultReportService) ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	return s.Transactions.List(ctx, limit)
}
