package entity

import "github.com/google/uuid"

// Identifiable is the capability every resource flowing through the CRUD
// layer must provide: a stable UUID identity. Entities and transfer objects
// both satisfy it, which is what lets the controller compare the two.
type Identifiable interface {
	GetID() uuid.UUID
}
