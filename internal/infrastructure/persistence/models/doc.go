// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Structure:
// - base.go: AuditModel shared by every table
// - partner.go: Customer, Employee and Supplier models
package models
