package mapper

import (
	"github.com/matheusvbd/crudapi/internal/domain/entity"
	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/api/dto"
)

// ProductMapper converts between the product entity and its transfer object.
// Implements persistence.Mapper[*entity.Product, dto.Product].
type ProductMapper struct {
	timeProvider coreport.TimeProvider
}

// NewProductMapper creates a new product mapper
func NewProductMapper(timeProvider coreport.TimeProvider) *ProductMapper {
	return &ProductMapper{timeProvider: timeProvider}
}

// ToTransfer maps a product entity to its transfer object
func (m *ProductMapper) ToTransfer(p *entity.Product) (dto.Product, error) {
	if p == nil {
		return dto.Product{}, errs.ErrMappingFailed
	}
	return dto.Product{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
	}, nil
}

// ToTransferList maps a collection of product entities to transfer objects
func (m *ProductMapper) ToTransferList(ps []*entity.Product) ([]dto.Product, error) {
	transfers := make([]dto.Product, 0, len(ps))
	for _, p := range ps {
		t, err := m.ToTransfer(p)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}

// ToEntity maps a transfer object back to a product entity
func (m *ProductMapper) ToEntity(d dto.Product) (*entity.Product, error) {
	p, err := entity.NewProduct(d.ID, d.Name, d.PriceCents, m.timeProvider)
	if err != nil {
		return nil, errs.ErrMappingFailed
	}
	return p, nil
}
