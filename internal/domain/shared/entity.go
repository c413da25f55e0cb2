package shared

import "time"

// SystemActor is recorded in audit fields when no authenticated actor is known
const SystemActor = "system"

// AuditedEntity provides identity, soft-delete state and audit metadata
// shared by every partner record. ID is zero until the store assigns it.
type AuditedEntity struct {
	ID        uint
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// NewAuditedEntity creates an active, unsaved entity stamped by actor
func NewAuditedEntity(actor string) AuditedEntity {
	e := AuditedEntity{Active: true}
	e.MarkCreated(actor)
	return e
}

// MarkCreated stamps creation metadata. It must only be called before the
// first save; CreatedAt is immutable afterwards.
func (e *AuditedEntity) MarkCreated(actor string) {
	actor = normalizeActor(actor)
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.CreatedBy = actor
	e.UpdatedBy = actor
}

// IsNew reports whether the entity has not been persisted yet
func (e *AuditedEntity) IsNew() bool {
	return e.ID == 0
}

// IsActive reports whether the entity is not soft-deleted
func (e *AuditedEntity) IsActive() bool {
	return e.Active
}

// Touch records a mutation by actor. UpdatedAt always moves forward,
// even when the wall clock has not advanced past the previous value.
func (e *AuditedEntity) Touch(actor string) {
	now := time.Now()
	if !now.After(e.UpdatedAt) {
		now = e.UpdatedAt.Add(time.Microsecond)
	}
	e.UpdatedAt = now
	e.UpdatedBy = normalizeActor(actor)
}

// Deactivate soft-deletes the entity
func (e *AuditedEntity) Deactivate(actor string) {
	e.Active = false
	e.Touch(actor)
}

// Activate restores a soft-deleted entity
func (e *AuditedEntity) Activate(actor string) {
	e.Active = true
	e.Touch(actor)
}

// ToggleStatus flips the active flag
func (e *AuditedEntity) ToggleStatus(actor string) {
	e.Active = !e.Active
	e.Touch(actor)
}

func normalizeActor(actor string) string {
	if actor == "" {
		return SystemActor
	}
	return actor
}
