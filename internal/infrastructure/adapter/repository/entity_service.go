package repository

import (
	"context"

	"github.com/matheusvbd/crudapi/internal/domain/entity"
	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModelMapper converts between a persisted model M and a domain entity E
type ModelMapper[E entity.Identifiable, M any] interface {
	ToModel(e E) (*M, error)
	ToEntity(m *M) (E, error)
}

// EntityService is a generic persistence.Service implementation backed by
// GORM. It joins the caller's unit of work through the transaction carried in
// ctx and falls back to the base connection outside one.
type EntityService[E entity.Identifiable, M any] struct {
	db          *gorm.DB
	mapper      ModelMapper[E, M]
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewEntityService creates a generic service for one entity/model pair
func NewEntityService[E entity.Identifiable, M any](db *gorm.DB, mapper ModelMapper[E, M], logger coreport.Logger) *EntityService[E, M] {
	return &EntityService[E, M]{
		db:          db,
		mapper:      mapper,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// GetAll retrieves every entity in the collection
func (s *EntityService[E, M]) GetAll(ctx context.Context) ([]E, error) {
	db := database.DBFromContext(ctx, s.db)

	var models []M
	if err := db.Find(&models).Error; err != nil {
		s.logger.Error("Failed to fetch collection", map[string]any{"error": err.Error()})
		return nil, s.errorMapper.MapError(err)
	}

	entities := make([]E, 0, len(models))
	for i := range models {
		e, err := s.mapper.ToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// GetByID retrieves one entity by identifier
func (s *EntityService[E, M]) GetByID(ctx context.Context, id uuid.UUID) (E, error) {
	db := database.DBFromContext(ctx, s.db)

	var zero E
	var m M
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return zero, s.errorMapper.MapError(err)
	}
	return s.mapper.ToEntity(&m)
}

// Exists reports whether an entity with the given identifier is present
func (s *EntityService[E, M]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	db := database.DBFromContext(ctx, s.db)

	var count int64
	if err := db.Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, s.errorMapper.MapError(err)
	}
	return count > 0, nil
}

// Add persists a new entity
func (s *EntityService[E, M]) Add(ctx context.Context, e E) error {
	db := database.DBFromContext(ctx, s.db)

	m, err := s.mapper.ToModel(e)
	if err != nil {
		return err
	}
	if err := db.Create(m).Error; err != nil {
		s.logger.Error("Failed to create entity", map[string]any{
			"id":    e.GetID(),
			"error": err.Error(),
		})
		return s.errorMapper.MapError(err)
	}
	return nil
}

// Update replaces the stored entity identified by id. A write that touches
// no rows means the row vanished since it was read, which surfaces as a
// concurrency conflict for the caller to resolve.
func (s *EntityService[E, M]) Update(ctx context.Context, id uuid.UUID, e E) error {
	db := database.DBFromContext(ctx, s.db)

	m, err := s.mapper.ToModel(e)
	if err != nil {
		return err
	}

	result := db.Model(new(M)).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		s.logger.Error("Failed to update entity", map[string]any{
			"id":    id,
			"error": result.Error.Error(),
		})
		return s.errorMapper.MapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes the entity
func (s *EntityService[E, M]) Delete(ctx context.Context, e E) error {
	db := database.DBFromContext(ctx, s.db)

	m, err := s.mapper.ToModel(e)
	if err != nil {
		return err
	}
	if err := db.Delete(m).Error; err != nil {
		s.logger.Error("Failed to delete entity", map[string]any{
			"id":    e.GetID(),
			"error": err.Error(),
		})
		return s.errorMapper.MapError(err)
	}
	return nil
}
