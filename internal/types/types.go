// internal/types/types.go
package types

// EntityID identifies an entity or projectile in the registry. IDs are never reused.
type EntityID uint64

// NoEntity is the zero ID; the registry never hands it out.
const NoEntity EntityID = 0
