package entity

import (
	"time"

	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/google/uuid"
)

// Product is the sample resource shipped with the scaffolding. It carries the
// minimal shape the generic controller relies on: a UUID identity plus a few
// mutable fields.
type Product struct {
	ID         uuid.UUID // Unique identifier for the product
	Name       string
	PriceCents int64 // Price stored in cents to avoid floating point precision issues
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProduct creates a new product with the given identity, name and price
func NewProduct(id uuid.UUID, name string, priceCents int64, timeProvider coreport.TimeProvider) (*Product, error) {
	if id == uuid.Nil {
		return nil, errs.ErrInvalidID
	}
	if name == "" {
		return nil, errs.ErrEmptyName
	}
	if priceCents < 0 {
		return nil, errs.ErrNegativePrice
	}

	now := timeProvider.Now()
	return &Product{
		ID:         id,
		Name:       name,
		PriceCents: priceCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetID returns the product identifier
func (p *Product) GetID() uuid.UUID {
	return p.ID
}

// Rename changes the product name
func (p *Product) Rename(name string, timeProvider coreport.TimeProvider) error {
	if name == "" {
		return errs.ErrEmptyName
	}
	p.Name = name
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Reprice changes the product price
func (p *Product) Reprice(priceCents int64, timeProvider coreport.TimeProvider) error {
	if priceCents < 0 {
		return errs.ErrNegativePrice
	}
	p.PriceCents = priceCents
	p.UpdatedAt = timeProvider.Now()
	return nil
}
