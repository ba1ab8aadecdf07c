package either

import (
	"time"

	"github.com/google/uuid"
)

// Tagged is the type-erased view of an instance tag
type Tagged interface {
	// IsOk reports whether the instance holds a success value
	IsOk() bool
	// IsErr reports whether the instance holds a failure value
	IsErr() bool
	// IsEmpty reports whether the instance bypassed the constructors
	IsEmpty() bool
}

// Traced is implemented by values carrying construction metadata
type Traced interface {
	Tagged
	// Id returns the identity assigned at construction
	Id() uuid.UUID
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

//type Projectable[T, E any] interface {
//	Traced
//	Ok() Option[T]
//	Err() Option[E]
//}
