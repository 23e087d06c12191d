// Package store persists small user-facing values (setting toggles, range
// positions, option indexes) across power cycles, keyed by the stable 16-bit
// ids the settings model derives.
package store

// Store is the persistence contract the menu runtime writes through. A miss
// is not an error: the getters return the supplied default. Implementations
// are written to from the main loop only and need no locking.
type Store interface {
	Exists(id uint16) bool
	GetBool(id uint16, def bool) bool
	GetInt(id uint16, def uint8) uint8
	PutBool(id uint16, v bool)
	PutInt(id uint16, v uint8)
	Remove(id uint16)
}
