package persistence

import (
	"github.com/matheusvbd/crudapi/internal/domain/entity"
)

// Mapper converts between an entity and its external transfer representation
type Mapper[E entity.Identifiable, D entity.Identifiable] interface {
	// ToTransfer maps one entity to its transfer object
	ToTransfer(e E) (D, error)

	// ToTransferList maps a collection of entities to transfer objects
	ToTransferList(es []E) ([]D, error)

	// ToEntity maps a transfer object back to an entity
	ToEntity(d D) (E, error)
}
