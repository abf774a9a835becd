package repository

import (
	"github.com/matheusvbd/crudapi/internal/domain/entity"
	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/model"
)

// ProductModelMapper converts between the product entity and its GORM model
type ProductModelMapper struct{}

// NewProductModelMapper creates a new product model mapper
func NewProductModelMapper() *ProductModelMapper {
	return &ProductModelMapper{}
}

// ToModel converts a product entity to its database model
func (ProductModelMapper) ToModel(p *entity.Product) (*model.Product, error) {
	if p == nil {
		return nil, errs.ErrMappingFailed
	}
	return &model.Product{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

// ToEntity converts a database model to a product entity
func (ProductModelMapper) ToEntity(m *model.Product) (*entity.Product, error) {
	if m == nil {
		return nil, errs.ErrMappingFailed
	}
	return &entity.Product{
		ID:         m.ID,
		Name:       m.Name,
		PriceCents: m.PriceCents,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}
