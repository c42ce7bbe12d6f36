package usecase

//go:generate mockgen -source=pedido_usecase.go -destination=../adapter/http/handlers/mocks/pedido_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// IPedidoUseCase manages app orders.
//
// Requested behavior:
//   - Orders are created PENDIENTE with prices frozen from the catalog.
//   - Status only moves along PedidoStateMachine.
//   - Lines can be replaced until the order is charged or terminal.
//   - Deletion is refused once charged, terminal, or paid.

type IPedidoUseCase interface {
	Create(ctx context.Context, userID string, lines []entities.LineSpec) (entities.Pedido, error)
	GetByID(ctx context.Context, id string) (entities.Pedido, error)
	List(ctx context.Context) ([]entities.Pedido, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Pedido, error)
	ListByStatus(ctx context.Context, status entities.PedidoStatus) ([]entities.Pedido, error)
	ListKitchen(ctx context.Context) ([]entities.Pedido, error)
	UpdateStatus(ctx context.Context, id string, target entities.PedidoStatus) (entities.Pedido, error)
	UpdateLines(ctx context.Context, id string, lines []entities.LineSpec) (entities.Pedido, error)
	Delete(ctx context.Context, id string) error
}

type PedidoUseCase struct {
	repo     interfaces.IPedidoRepository
	payments interfaces.IPaymentRepository
	lines    lineBuilder
	log      *logrus.Logger
	newID    func() string
	now      func() time.Time
}

var _ IPedidoUseCase = (*PedidoUseCase)(nil)

func NewPedidoUseCase(
	repo interfaces.IPedidoRepository,
	payments interfaces.IPaymentRepository,
	users interfaces.IUserDirectory,
	catalog interfaces.IProductCatalog,
	logger *logrus.Logger,
) *PedidoUseCase {
	return &PedidoUseCase{
		repo:     repo,
		payments: payments,
		lines:    lineBuilder{users: users, catalog: catalog},
		log:      logger,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PedidoUseCase) Create(ctx context.Context, userID string, lines []entities.LineSpec) (entities.Pedido, error) {
	if err := validateLineSpecs(lines); err != nil {
		return entities.Pedido{}, err
	}
	user, err := u.lines.resolveUser(ctx, userID)
	if err != nil {
		return entities.Pedido{}, err
	}
	items, err := u.lines.snapshot(ctx, lines)
	if err != nil {
		return entities.Pedido{}, err
	}
	return u.repo.Create(ctx, newPendingPedido(u.newID(), user.ID, items, u.now()))
}

// newPendingPedido assembles a fresh PENDIENTE order. Cart conversion builds its order here too.
func newPendingPedido(id, userID string, items []entities.LineItem, at time.Time) entities.Pedido {
	return entities.Pedido{
		ID:        id,
		UserID:    userID,
		Status:    entities.PedidoStatusPendiente,
		Items:     items,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func (u *PedidoUseCase) GetByID(ctx context.Context, id string) (entities.Pedido, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pedido{}, fmt.Errorf("%w: empty pedido id", ErrInvalidID)
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if p.ID == "" {
		return entities.Pedido{}, fmt.Errorf("%w %s", ErrPedidoNotFound, id)
	}
	return p, nil
}

func (u *PedidoUseCase) List(ctx context.Context) ([]entities.Pedido, error) {
	return u.repo.List(ctx)
}

func (u *PedidoUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Pedido, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidID)
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *PedidoUseCase) ListByStatus(ctx context.Context, status entities.PedidoStatus) ([]entities.Pedido, error) {
	if !entities.PedidoStateMachine.Known(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return u.repo.ListByStatus(ctx, status)
}

// ListKitchen returns the orders the kitchen still has to work on.
func (u *PedidoUseCase) ListKitchen(ctx context.Context) ([]entities.Pedido, error) {
	return u.repo.ListByStatus(ctx, entities.PedidoKitchenStatuses...)
}

func (u *PedidoUseCase) UpdateStatus(ctx context.Context, id string, target entities.PedidoStatus) (entities.Pedido, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	ev := orderEvent{action: "transition", kind: entities.OrderKindPedido, id: p.ID, from: string(p.Status), to: string(target)}

	next, err := entities.PedidoStateMachine.Transition(p.Status, target)
	if err != nil {
		ev.log(u.log, err)
		return entities.Pedido{}, err
	}
	updated, err := u.repo.UpdateStatus(ctx, p.ID, p.Status, next)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		err = fmt.Errorf("%w: pedido %s left status %s", ErrConcurrentModification, p.ID, p.Status)
	}
	ev.log(u.log, err)
	if err != nil {
		return entities.Pedido{}, err
	}
	return updated, nil
}

// UpdateLines replaces every line of the order and re-snapshots prices.
func (u *PedidoUseCase) UpdateLines(ctx context.Context, id string, lines []entities.LineSpec) (entities.Pedido, error) {
	if err := validateLineSpecs(lines); err != nil {
		return entities.Pedido{}, err
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if !p.Editable() {
		return entities.Pedido{}, fmt.Errorf("%w: pedido %s is %s and can't be edited", ErrInvalidTransition, p.ID, p.Status)
	}
	items, err := u.lines.snapshot(ctx, lines)
	if err != nil {
		return entities.Pedido{}, err
	}
	updated, err := u.repo.ReplaceItems(ctx, p.ID, p.Status, items)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Pedido{}, fmt.Errorf("%w: pedido %s left status %s", ErrConcurrentModification, p.ID, p.Status)
	}
	return updated, err
}

func (u *PedidoUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Deletable() {
		return fmt.Errorf("%w: pedido %s is %s", ErrTerminalStateConflict, p.ID, p.Status)
	}
	paid, err := u.payments.ExistsForOrder(ctx, entities.OrderKindPedido, p.ID)
	if err != nil {
		return err
	}
	if paid {
		return fmt.Errorf("%w: pedido %s has a payment", ErrTerminalStateConflict, p.ID)
	}
	err = u.repo.Delete(ctx, p.ID, p.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return fmt.Errorf("%w: pedido %s left status %s", ErrConcurrentModification, p.ID, p.Status)
	}
	return err
}
