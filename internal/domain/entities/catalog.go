package entities

import "github.com/shopspring/decimal"

// UserRole mirrors the restaurant staff roles.

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleCajero   UserRole = "CAJERO"
	UserRoleMesero   UserRole = "MESERO"
	UserRoleCocinero UserRole = "COCINERO"
	UserRoleCliente  UserRole = "CLIENTE"
)

// User is resolved from the user directory; this service never writes it.
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

// Product is resolved from the catalog. Price is the current catalog price.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
