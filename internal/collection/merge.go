// Package collection reconciles committed entities back into the list they
// were displayed from.
package collection

import (
	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/logging"
)

// Merge returns a new slice in which the element sharing u's id is replaced
// by u in place, or u is appended when no element matches. The input slice
// is never modified. When several elements share the id, the first is
// replaced.
func Merge[E garage.Entity](c []E, u E) []E {
	out := make([]E, len(c), len(c)+1)
	copy(out, c)

	i := IndexOf(c, u.EntityID())
	if i >= 0 {
		out[i] = u
	} else {
		out = append(out, u)
	}

	logging.LogMerge(kindOf(u), u.EntityID(), i >= 0, len(out))
	return out
}

// MergeFront is Merge for newest-first lists: a match is replaced in place,
// anything else goes to the front.
func MergeFront[E garage.Entity](c []E, u E) []E {
	i := IndexOf(c, u.EntityID())
	if i >= 0 {
		return Merge(c, u)
	}

	out := make([]E, 0, len(c)+1)
	out = append(out, u)
	out = append(out, c...)

	logging.LogMerge(kindOf(u), u.EntityID(), false, len(out))
	return out
}

// IndexOf returns the index of the first element with the given id, or -1.
func IndexOf[E garage.Entity](c []E, id string) int {
	for i, e := range c {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

// Find returns the first element with the given id.
func Find[E garage.Entity](c []E, id string) (E, bool) {
	if i := IndexOf(c, id); i >= 0 {
		return c[i], true
	}
	var zero E
	return zero, false
}

func kindOf(e garage.Entity) string {
	switch e.(type) {
	case garage.Vehicle:
		return string(garage.KindVehicle)
	case garage.Profile:
		return string(garage.KindProfile)
	case garage.Settings:
		return string(garage.KindSettings)
	case garage.Post:
		return string(garage.KindPost)
	default:
		return "entity"
	}
}
