package types

// EntityID identifies an entity in the entity registry.
type EntityID string
