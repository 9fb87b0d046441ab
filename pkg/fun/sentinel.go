package fun

import (
	"reflect"

	"github.com/google/uuid"
)

// sentinel values are compared by pointer identity; the uuid tag keeps them
// distinguishable in dumps and debugger output.
type sentinel struct {
	id   uuid.UUID
	name string
}

func (s *sentinel) String() string { return s.name }

// Gap marks an argument slot to be filled by a later call to a curried
// function.
var Gap = &sentinel{id: uuid.New(), name: "fun.Gap"}

// None is the absence marker: the result of a lookup that found nothing.
// It is distinct from every value a container can store, including nil,
// false and empty strings.
var None = &sentinel{id: uuid.New(), name: "fun.None"}

// IsGap reports whether v is the placeholder.
func IsGap(v any) bool { return v == Gap }

// IsNone reports whether v is the absence marker.
func IsNone(v any) bool { return v == None }

// Truthy reports whether a helper result counts as present. Only nil,
// false, None and nil pointers do not; zero numbers, empty strings and
// empty containers are all truthy.
func Truthy(v any) bool {
	if v == nil || IsNone(v) {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return false
	}
	return true
}
