package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// User representa un usuario del sistema (cliente, empleado o administrador).
type User struct {
	ID           string
	Name         string
	Email        string // único
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Address      string
	Role         string // admin, employee, customer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
