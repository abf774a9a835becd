package dto

import "github.com/google/uuid"

// Product is the transfer object exposed for the sample product resource.
// The same shape serves request payloads and responses. Field validation is
// left to the entity mapping so invalid values surface as mapping failures,
// not bind errors.
type Product struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
}

// GetID returns the product identifier
func (p Product) GetID() uuid.UUID {
	return p.ID
}
