package mapper

import (
	"testing"
	"time"

	"github.com/matheusvbd/crudapi/internal/domain/entity"
	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/api/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTimeProvider struct {
	now time.Time
}

func (s stubTimeProvider) Now() time.Time                  { return s.now }
func (s stubTimeProvider) Since(t time.Time) time.Duration { return s.now.Sub(t) }

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

func newMapper() *ProductMapper {
	return NewProductMapper(stubTimeProvider{now: fixedTime})
}

func TestProductMapperToTransfer(t *testing.T) {
	id := uuid.MustParse("7d8f6f3a-8f7e-4a24-9d35-1b2f5a6c0e11")

	t.Run("Maps entity fields onto the transfer object", func(t *testing.T) {
		p, err := entity.NewProduct(id, "Keyboard", 19900, stubTimeProvider{now: fixedTime})
		require.NoError(t, err)

		transfer, err := newMapper().ToTransfer(p)

		require.NoError(t, err)
		assert.Equal(t, id, transfer.ID)
		assert.Equal(t, "Keyboard", transfer.Name)
		assert.Equal(t, int64(19900), transfer.PriceCents)
	})

	t.Run("Nil entity fails to map", func(t *testing.T) {
		_, err := newMapper().ToTransfer(nil)
		assert.ErrorIs(t, err, errs.ErrMappingFailed)
	})
}

func TestProductMapperToTransferList(t *testing.T) {
	id := uuid.MustParse("7d8f6f3a-8f7e-4a24-9d35-1b2f5a6c0e11")
	p, err := entity.NewProduct(id, "Keyboard", 19900, stubTimeProvider{now: fixedTime})
	require.NoError(t, err)

	t.Run("Maps every entity in the collection", func(t *testing.T) {
		transfers, err := newMapper().ToTransferList([]*entity.Product{p, p})

		require.NoError(t, err)
		require.Len(t, transfers, 2)
		assert.Equal(t, id, transfers[0].ID)
	})

	t.Run("Empty collection yields empty slice", func(t *testing.T) {
		transfers, err := newMapper().ToTransferList(nil)

		require.NoError(t, err)
		assert.Empty(t, transfers)
	})

	t.Run("Nil element aborts the whole mapping", func(t *testing.T) {
		_, err := newMapper().ToTransferList([]*entity.Product{p, nil})
		assert.ErrorIs(t, err, errs.ErrMappingFailed)
	})
}

func TestProductMapperToEntity(t *testing.T) {
	id := uuid.MustParse("7d8f6f3a-8f7e-4a24-9d35-1b2f5a6c0e11")

	t.Run("Builds a valid entity with provider timestamps", func(t *testing.T) {
		p, err := newMapper().ToEntity(dto.Product{ID: id, Name: "Keyboard", PriceCents: 19900})

		require.NoError(t, err)
		assert.Equal(t, id, p.GetID())
		assert.Equal(t, fixedTime, p.CreatedAt)
		assert.Equal(t, fixedTime, p.UpdatedAt)
	})

	t.Run("Zero identifier fails to map", func(t *testing.T) {
		_, err := newMapper().ToEntity(dto.Product{Name: "Keyboard", PriceCents: 19900})
		assert.ErrorIs(t, err, errs.ErrMappingFailed)
	})

	t.Run("Invalid fields fail to map", func(t *testing.T) {
		_, err := newMapper().ToEntity(dto.Product{ID: id, Name: "", PriceCents: 19900})
		assert.ErrorIs(t, err, errs.ErrMappingFailed)

		_, err = newMapper().ToEntity(dto.Product{ID: id, Name: "Keyboard", PriceCents: -1})
		assert.ErrorIs(t, err, errs.ErrMappingFailed)
	})
}
