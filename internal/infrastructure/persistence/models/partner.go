package models

import (
	"github.com/erp/crm/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AuditModel
	FirstName string  `gorm:"column:firstname;type:varchar(50);not null"`
	LastName  string  `gorm:"column:lastname;type:varchar(50);not null"`
	Email     string  `gorm:"type:varchar(100);not null;index:idx_customer_email"`
	Phone     *string `gorm:"type:varchar(20)"`
	Address   *string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		AuditedEntity: m.AuditModel.ToDomain(),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAuditedEntity(c.AuditedEntity)
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	AuditModel
	FirstName string          `gorm:"column:firstname;type:varchar(50);not null"`
	LastName  string          `gorm:"column:lastname;type:varchar(50);not null"`
	Email     string          `gorm:"type:varchar(100);not null;index:idx_employee_email"`
	Position  *string         `gorm:"type:varchar(100)"`
	Salary    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *partner.Employee {
	return &partner.Employee{
		AuditedEntity: m.AuditModel.ToDomain(),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Position:      m.Position,
		Salary:        m.Salary,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *partner.Employee) {
	m.FromDomainAuditedEntity(e.AuditedEntity)
	m.FirstName = e.FirstName
	m.LastName = e.LastName
	m.Email = e.Email
	m.Position = e.Position
	m.Salary = e.Salary
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee entity.
func EmployeeModelFromDomain(e *partner.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	AuditModel
	Name        string  `gorm:"type:varchar(100);not null;index:idx_supplier_name"`
	ContactName *string `gorm:"type:varchar(100)"`
	Email       *string `gorm:"type:varchar(100)"`
	Phone       *string `gorm:"type:varchar(20)"`
	Address     *string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		AuditedEntity: m.AuditModel.ToDomain(),
		Name:          m.Name,
		ContactName:   m.ContactName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAuditedEntity(s.AuditedEntity)
	m.Name = s.Name
	m.ContactName = s.ContactName
	m.Email = s.Email
	m.Phone = s.Phone
	m.Address = s.Address
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}
