package gormrepository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PedidoModel is the pedidos row. PaymentID is NULL until a payment is recorded.
type PedidoModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	UsuarioID string          `gorm:"size:36;index;not null"`
	Estado    string          `gorm:"size:20;index;not null"`
	PaymentID *string         `gorm:"size:36"`
	Items     []LineItemModel `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PedidoModel) TableName() string { return "pedidos" }

type MesaOrdenModel struct {
	ID         string          `gorm:"primaryKey;size:36"`
	NumeroMesa int             `gorm:"not null"`
	MeseroID   string          `gorm:"size:36;index;not null"`
	Estado     string          `gorm:"size:20;index;not null"`
	PaymentID  *string         `gorm:"size:36"`
	Items      []LineItemModel `gorm:"foreignKey:MesaOrdenID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (MesaOrdenModel) TableName() string { return "mesas_ordenes" }

// LineItemModel belongs to exactly one of a pedido or a mesa orden.
type LineItemModel struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	PedidoID       *string         `gorm:"size:36;index"`
	MesaOrdenID    *string         `gorm:"size:36;index"`
	Posicion       int             `gorm:"not null"`
	ProductoID     string          `gorm:"size:36;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (LineItemModel) TableName() string { return "lineas_orden" }

// PagoModel carries one nullable unique reference per order kind, so each order has at most
// one payment row.
type PagoModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	PedidoID    *string         `gorm:"size:36;uniqueIndex"`
	MesaOrdenID *string         `gorm:"size:36;uniqueIndex"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago  string          `gorm:"size:20;not null"`
	FechaPago   time.Time       `gorm:"index"`
}

func (PagoModel) TableName() string { return "pagos" }

// CarritoModel keeps ActiveUserID set only while the cart is active; its unique index is the
// one-active-cart-per-user constraint.
type CarritoModel struct {
	ID           string         `gorm:"primaryKey;size:36"`
	UsuarioID    string         `gorm:"size:36;index;not null"`
	ActiveUserID *string        `gorm:"size:36;uniqueIndex"`
	Items        datatypes.JSON `gorm:"not null"`
	Activo       bool           `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CarritoModel) TableName() string { return "carritos" }

type ProductoModel struct {
	ID     string          `gorm:"primaryKey;size:36"`
	Nombre string          `gorm:"size:120;not null"`
	Precio decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (ProductoModel) TableName() string { return "productos" }

type UsuarioModel struct {
	ID     string `gorm:"primaryKey;size:36"`
	Nombre string `gorm:"size:120;not null"`
	Rol    string `gorm:"size:20;not null"`
}

func (UsuarioModel) TableName() string { return "usuarios" }

// AutoMigrate creates or updates every table used by the service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PedidoModel{},
		&MesaOrdenModel{},
		&LineItemModel{},
		&PagoModel{},
		&CarritoModel{},
		&ProductoModel{},
		&UsuarioModel{},
	)
}
