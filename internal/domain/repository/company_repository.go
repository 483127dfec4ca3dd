package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"
)

// Domain-specific errors for the singleton company/terms records.
var (
	// ErrCompanyNotFound is returned when the company record has not been created yet.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrTermNotFound is returned when the terms record has not been created yet.
	ErrTermNotFound = errors.New("terms not found")
)

// CompanyRepository persists the single corporate-profile record.
type CompanyRepository interface {
	// Get retrieves the company record.
	Get(ctx context.Context) (*entity.Company, error)

	// Update modifies the company record, creating it on first write.
	Update(ctx context.Context, company *entity.Company) error
}

// TermRepository persists the single terms-of-service record.
type TermRepository interface {
	// Get retrieves the terms record.
	Get(ctx context.Context) (*entity.Term, error)

	// Update modifies the terms record, creating it on first write.
	Update(ctx context.Context, term *entity.Term) error
}
