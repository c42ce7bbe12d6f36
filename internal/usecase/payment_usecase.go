package usecase

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// RecordPaymentCommand settles one order.
type RecordPaymentCommand struct {
	Kind    entities.OrderKind
	OrderID string
	Amount  decimal.Decimal
	Method  entities.PaymentMethod
}

// IPaymentUseCase is the payment ledger.
//
// Requested behavior:
//   - At most one payment per order; recording it charges the order in the same write.
//   - Cancelled orders can't be paid.
//   - Deleting a payment puts the order back to its pre-charge status.

type IPaymentUseCase interface {
	Record(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByPedidoID(ctx context.Context, pedidoID string) ([]entities.Payment, error)
	ListByMesaOrdenID(ctx context.Context, mesaOrdenID string) ([]entities.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	pedidos interfaces.IPedidoRepository
	mesas   interfaces.IMesaOrdenRepository
	log     *logrus.Logger
	newID   func() string
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	pedidos interfaces.IPedidoRepository,
	mesas interfaces.IMesaOrdenRepository,
	logger *logrus.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:    repo,
		pedidos: pedidos,
		mesas:   mesas,
		log:     logger,
		newID:   uuid.NewString,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// billedOrder is the part of an order the ledger cares about.
type billedOrder struct {
	kind      entities.OrderKind
	id        string
	status    string
	paymentID string
	cancelled bool
	// charged is the status the order takes once paid.
	charged string
	// reverted is the status the order goes back to when its payment is removed.
	reverted string
}

func (u *PaymentUseCase) loadOrder(ctx context.Context, kind entities.OrderKind, id string) (billedOrder, error) {
	switch kind {
	case entities.OrderKindPedido:
		p, err := u.pedidos.GetByID(ctx, id)
		if err != nil {
			return billedOrder{}, err
		}
		if p.ID == "" {
			return billedOrder{}, fmt.Errorf("%w %s", ErrPedidoNotFound, id)
		}
		charged := entities.PedidoStatusCobrado
		if p.Status == entities.PedidoStatusEntregado {
			charged = p.Status
		}
		return billedOrder{
			kind:      kind,
			id:        p.ID,
			status:    string(p.Status),
			paymentID: p.PaymentID,
			cancelled: p.Status == entities.PedidoStatusCancelado,
			charged:   string(charged),
			reverted:  string(entities.PedidoStatusPreparado),
		}, nil
	case entities.OrderKindMesaOrden:
		m, err := u.mesas.GetByID(ctx, id)
		if err != nil {
			return billedOrder{}, err
		}
		if m.ID == "" {
			return billedOrder{}, fmt.Errorf("%w %s", ErrMesaOrdenNotFound, id)
		}
		charged := entities.MesaOrdenStatusCobrado
		if m.Status == entities.MesaOrdenStatusPagado {
			charged = m.Status
		}
		return billedOrder{
			kind:      kind,
			id:        m.ID,
			status:    string(m.Status),
			paymentID: m.PaymentID,
			cancelled: m.Status == entities.MesaOrdenStatusCancelado,
			charged:   string(charged),
			reverted:  string(entities.MesaOrdenStatusEntregado),
		}, nil
	}
	return billedOrder{}, fmt.Errorf("%w: unknown order kind %q", ErrInvalidID, kind)
}

func (u *PaymentUseCase) Record(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error) {
	if !cmd.Amount.IsPositive() {
		return entities.Payment{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, cmd.Amount)
	}
	if !entities.IsWholeCents(cmd.Amount) {
		return entities.Payment{}, fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidAmount, cmd.Amount, entities.MoneyScale)
	}
	if !cmd.Method.Valid() {
		return entities.Payment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, cmd.Method)
	}

	p := entities.Payment{
		ID:     u.newID(),
		Amount: cmd.Amount,
		Method: cmd.Method,
		PaidAt: u.now(),
	}
	orderID := strings.TrimSpace(cmd.OrderID)
	switch cmd.Kind {
	case entities.OrderKindPedido:
		p.PedidoID = orderID
	case entities.OrderKindMesaOrden:
		p.MesaOrdenID = orderID
	}
	if err := p.Validate(); err != nil {
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	order, err := u.loadOrder(ctx, cmd.Kind, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	ev := orderEvent{action: "charge", kind: order.kind, id: order.id, from: order.status, to: order.charged}

	if err := u.checkChargeable(ctx, order); err != nil {
		ev.log(u.log, err)
		return entities.Payment{}, err
	}

	created, err := u.repo.Record(ctx, p, interfaces.StatusChange{From: order.status, To: order.charged})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		err = u.explainChargeConflict(ctx, order)
	}
	ev.log(u.log, err)
	if err != nil {
		return entities.Payment{}, err
	}
	return created, nil
}

func (u *PaymentUseCase) checkChargeable(ctx context.Context, order billedOrder) error {
	if order.paymentID != "" {
		return fmt.Errorf("%w: %s %s", ErrAlreadyPaid, order.kind, order.id)
	}
	paid, err := u.repo.ExistsForOrder(ctx, order.kind, order.id)
	if err != nil {
		return err
	}
	if paid {
		return fmt.Errorf("%w: %s %s", ErrAlreadyPaid, order.kind, order.id)
	}
	if order.cancelled {
		return fmt.Errorf("%w: %s %s", ErrOrderCancelled, order.kind, order.id)
	}
	return nil
}

// explainChargeConflict re-reads the order after a lost conditional write.
func (u *PaymentUseCase) explainChargeConflict(ctx context.Context, observed billedOrder) error {
	current, err := u.loadOrder(ctx, observed.kind, observed.id)
	if err != nil {
		return err
	}
	if current.cancelled {
		return fmt.Errorf("%w: %s %s", ErrOrderCancelled, current.kind, current.id)
	}
	if current.paymentID != "" {
		return fmt.Errorf("%w: %s %s", ErrAlreadyPaid, current.kind, current.id)
	}
	return fmt.Errorf("%w: %s %s left status %s", ErrConcurrentModification, current.kind, current.id, observed.status)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, fmt.Errorf("%w: empty payment id", ErrInvalidID)
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, fmt.Errorf("%w %s", ErrPaymentNotFound, id)
	}
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	return u.repo.List(ctx)
}

// ListByPedidoID lists the payments of an existing pedido.
func (u *PaymentUseCase) ListByPedidoID(ctx context.Context, pedidoID string) ([]entities.Payment, error) {
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return nil, fmt.Errorf("%w: empty pedido id", ErrInvalidID)
	}
	if _, err := u.loadOrder(ctx, entities.OrderKindPedido, pedidoID); err != nil {
		return nil, err
	}
	return u.repo.ListByPedidoID(ctx, pedidoID)
}

func (u *PaymentUseCase) ListByMesaOrdenID(ctx context.Context, mesaOrdenID string) ([]entities.Payment, error) {
	mesaOrdenID = strings.TrimSpace(mesaOrdenID)
	if mesaOrdenID == "" {
		return nil, fmt.Errorf("%w: empty mesa orden id", ErrInvalidID)
	}
	return u.repo.ListByMesaOrdenID(ctx, mesaOrdenID)
}

// Delete removes the payment and reverts its order without consulting the transition table.
func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var revert interfaces.StatusChange
	order, err := u.loadOrder(ctx, p.Kind(), p.OrderID())
	switch {
	case errors.Is(err, ErrReferenceNotFound):
		u.log.WithFields(logrus.Fields{"payment_id": p.ID, "order_id": p.OrderID()}).
			Warn("payment references a missing order, deleting payment only")
	case err != nil:
		return err
	default:
		revert = interfaces.StatusChange{From: order.status, To: order.reverted}
	}

	ev := orderEvent{action: "revert", kind: p.Kind(), id: p.OrderID(), from: revert.From, to: revert.To}
	err = u.repo.Delete(ctx, p, revert)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		err = fmt.Errorf("%w: %s %s left status %s", ErrConcurrentModification, p.Kind(), p.OrderID(), revert.From)
	}
	ev.log(u.log, err)
	return err
}
