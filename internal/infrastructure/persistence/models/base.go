package models

import (
	"time"

	"github.com/erp/crm/internal/domain/shared"
)

// AuditModel provides identity, soft-delete and audit columns for all models.
// It maps to the domain's AuditedEntity. Timestamps are written explicitly by
// the domain, so GORM's automatic time tracking is disabled.
type AuditModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	CreatedBy string    `gorm:"type:varchar(50);not null"`
	UpdatedBy string    `gorm:"type:varchar(50);not null"`
}

// ToDomain converts AuditModel to domain AuditedEntity
func (m *AuditModel) ToDomain() shared.AuditedEntity {
	return shared.AuditedEntity{
		ID:        m.ID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
	}
}

// FromDomainAuditedEntity populates AuditModel from domain AuditedEntity
func (m *AuditModel) FromDomainAuditedEntity(e shared.AuditedEntity) {
	m.ID = e.ID
	m.Active = e.Active
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
	m.CreatedBy = e.CreatedBy
	m.UpdatedBy = e.UpdatedBy
}

// ImmutableColumns are never rewritten when an existing row is updated
var ImmutableColumns = []string{"id", "created_at", "created_by"}

// All returns every model, in migration order
func All() []any {
	return []any{
		&CustomerModel{},
		&EmployeeModel{},
		&SupplierModel{},
	}
}
