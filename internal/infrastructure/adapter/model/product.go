package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents the database model for products
type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	PriceCents int64     `gorm:"not null"` // Price in cents
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
