package gormrepository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// PaymentGormRepository is the payment ledger in MySQL. The order row's payment_id column is
// written in the same transaction as the payment.
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func orderModel(kind entities.OrderKind) (any, error) {
	switch kind {
	case entities.OrderKindPedido:
		return &PedidoModel{}, nil
	case entities.OrderKindMesaOrden:
		return &MesaOrdenModel{}, nil
	}
	return nil, fmt.Errorf("unknown order kind %q", kind)
}

// chargeOrder links paymentID to an unpaid order observed in change.From.
func chargeOrder(tx *gorm.DB, model any, orderID, paymentID string, change interfaces.StatusChange) *gorm.DB {
	return tx.Model(model).
		Where("id = ? AND estado = ? AND payment_id IS NULL", orderID, change.From).
		Updates(map[string]any{"estado": change.To, "payment_id": paymentID, "updated_at": time.Now().UTC()})
}

// releaseOrder unlinks paymentID and moves the order to change.To.
func releaseOrder(tx *gorm.DB, model any, orderID, paymentID string, change interfaces.StatusChange) *gorm.DB {
	return tx.Model(model).
		Where("id = ? AND estado = ? AND payment_id = ?", orderID, change.From, paymentID).
		Updates(map[string]any{"estado": change.To, "payment_id": nil, "updated_at": time.Now().UTC()})
}

func (r *PaymentGormRepository) Record(ctx context.Context, p entities.Payment, charge interfaces.StatusChange) (entities.Payment, error) {
	if err := p.Validate(); err != nil {
		return entities.Payment{}, err
	}
	model, err := orderModel(p.Kind())
	if err != nil {
		return entities.Payment{}, err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toPagoModel(p)
		if err := tx.Create(&row).Error; err != nil {
			return translateErr(err)
		}
		return guarded(chargeOrder(tx, model, p.OrderID(), p.ID, charge))
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) Delete(ctx context.Context, p entities.Payment, revert interfaces.StatusChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guarded(tx.Where("id = ?", p.ID).Delete(&PagoModel{})); err != nil {
			return err
		}
		if revert == (interfaces.StatusChange{}) {
			return nil
		}
		model, err := orderModel(p.Kind())
		if err != nil {
			return err
		}
		return guarded(releaseOrder(tx, model, p.OrderID(), p.ID, revert))
	})
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m PagoModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPagoModel(m), nil
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]entities.Payment, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *PaymentGormRepository) ListByPedidoID(ctx context.Context, pedidoID string) ([]entities.Payment, error) {
	return r.find(r.db.WithContext(ctx).Where("pedido_id = ?", pedidoID))
}

func (r *PaymentGormRepository) ListByMesaOrdenID(ctx context.Context, mesaOrdenID string) ([]entities.Payment, error) {
	return r.find(r.db.WithContext(ctx).Where("mesa_orden_id = ?", mesaOrdenID))
}

func (r *PaymentGormRepository) find(q *gorm.DB) ([]entities.Payment, error) {
	var models []PagoModel
	if err := q.Order("fecha_pago ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(models))
	for _, m := range models {
		out = append(out, fromPagoModel(m))
	}
	return out, nil
}

func (r *PaymentGormRepository) ExistsForOrder(ctx context.Context, kind entities.OrderKind, orderID string) (bool, error) {
	column := "pedido_id"
	if kind == entities.OrderKindMesaOrden {
		column = "mesa_orden_id"
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&PagoModel{}).Where(column+" = ?", orderID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func toPagoModel(p entities.Payment) PagoModel {
	return PagoModel{
		ID:          p.ID,
		PedidoID:    optional(p.PedidoID),
		MesaOrdenID: optional(p.MesaOrdenID),
		Monto:       p.Amount,
		MetodoPago:  string(p.Method),
		FechaPago:   p.PaidAt,
	}
}

func fromPagoModel(m PagoModel) entities.Payment {
	return entities.Payment{
		ID:          m.ID,
		PedidoID:    deref(m.PedidoID),
		MesaOrdenID: deref(m.MesaOrdenID),
		Amount:      m.Monto,
		Method:      entities.PaymentMethod(m.MetodoPago),
		PaidAt:      m.FechaPago,
	}
}
