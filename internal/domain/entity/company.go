package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company holds the operator's corporate profile shown on the public company
// page. A single row exists; administrators edit it in place.
type Company struct {
	ID             uuid.UUID
	Name           string
	PostalCode     string
	Address        string
	Representative string
	EstablishedAt  string // Display string, e.g. "April 2015".
	Capital        string
	Business       string
	EmployeeCount  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Term holds the terms-of-service text shown on the public terms page.
// A single row exists; administrators edit it in place.
type Term struct {
	ID        uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
