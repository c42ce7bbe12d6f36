package usecase

//go:generate mockgen -source=mesa_orden_usecase.go -destination=../adapter/http/handlers/mocks/mesa_orden_usecase_mock.go -package=mocks

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

// CreateMesaOrdenCommand is the input of a new table order.
type CreateMesaOrdenCommand struct {
	TableNumber int
	WaiterID    string
	Lines       []entities.LineSpec
}

// MesaOrdenEdit carries the fields to replace; nil means unchanged.
type MesaOrdenEdit struct {
	TableNumber *int
	Lines       []entities.LineSpec
}

// IMesaOrdenUseCase manages orders taken by waiters for a table.
//
// Requested behavior:
//   - Status only moves along MesaOrdenStateMachine.
//   - Cancel is an administrative override outside the transition table.
//   - Table number and lines are frozen once charged.

type IMesaOrdenUseCase interface {
	Create(ctx context.Context, cmd CreateMesaOrdenCommand) (entities.MesaOrden, error)
	GetByID(ctx context.Context, id string) (entities.MesaOrden, error)
	List(ctx context.Context) ([]entities.MesaOrden, error)
	ListByWaiter(ctx context.Context, waiterID string) ([]entities.MesaOrden, error)
	UpdateStatus(ctx context.Context, id string, target entities.MesaOrdenStatus) (entities.MesaOrden, error)
	Update(ctx context.Context, id string, edit MesaOrdenEdit) (entities.MesaOrden, error)
	Cancel(ctx context.Context, id string) (entities.MesaOrden, error)
	Delete(ctx context.Context, id string) error
}

type MesaOrdenUseCase struct {
	repo     interfaces.IMesaOrdenRepository
	payments interfaces.IPaymentRepository
	lines    lineBuilder
	log      *logrus.Logger
	newID    func() string
	now      func() time.Time
}

var _ IMesaOrdenUseCase = (*MesaOrdenUseCase)(nil)

func NewMesaOrdenUseCase(
	repo interfaces.IMesaOrdenRepository,
	payments interfaces.IPaymentRepository,
	users interfaces.IUserDirectory,
	catalog interfaces.IProductCatalog,
	logger *logrus.Logger,
) *MesaOrdenUseCase {
	return &MesaOrdenUseCase{
		repo:     repo,
		payments: payments,
		lines:    lineBuilder{users: users, catalog: catalog},
		log:      logger,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *MesaOrdenUseCase) Create(ctx context.Context, cmd CreateMesaOrdenCommand) (entities.MesaOrden, error) {
	if err := validateLineSpecs(cmd.Lines); err != nil {
		return entities.MesaOrden{}, err
	}
	if cmd.TableNumber <= 0 {
		return entities.MesaOrden{}, fmt.Errorf("%w: got %d", ErrInvalidTableNumber, cmd.TableNumber)
	}
	waiter, err := u.lines.resolveUser(ctx, cmd.WaiterID)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	items, err := u.lines.snapshot(ctx, cmd.Lines)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	now := u.now()
	return u.repo.Create(ctx, entities.MesaOrden{
		ID:          u.newID(),
		TableNumber: cmd.TableNumber,
		WaiterID:    waiter.ID,
		Status:      entities.MesaOrdenStatusPendiente,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *MesaOrdenUseCase) GetByID(ctx context.Context, id string) (entities.MesaOrden, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MesaOrden{}, fmt.Errorf("%w: empty mesa orden id", ErrInvalidID)
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	if m.ID == "" {
		return entities.MesaOrden{}, fmt.Errorf("%w %s", ErrMesaOrdenNotFound, id)
	}
	return m, nil
}

func (u *MesaOrdenUseCase) List(ctx context.Context) ([]entities.MesaOrden, error) {
	return u.repo.List(ctx)
}

func (u *MesaOrdenUseCase) ListByWaiter(ctx context.Context, waiterID string) ([]entities.MesaOrden, error) {
	waiterID = strings.TrimSpace(waiterID)
	if waiterID == "" {
		return nil, fmt.Errorf("%w: empty waiter id", ErrInvalidID)
	}
	return u.repo.ListByWaiterID(ctx, waiterID)
}

func (u *MesaOrdenUseCase) UpdateStatus(ctx context.Context, id string, target entities.MesaOrdenStatus) (entities.MesaOrden, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	ev := orderEvent{action: "transition", kind: entities.OrderKindMesaOrden, id: m.ID, from: string(m.Status), to: string(target)}

	next, err := entities.MesaOrdenStateMachine.Transition(m.Status, target)
	if err != nil {
		ev.log(u.log, err)
		return entities.MesaOrden{}, err
	}
	return u.moveTo(ctx, ev, m, next)
}

// Cancel moves the order to CANCELADO while it is neither charged nor terminal.
func (u *MesaOrdenUseCase) Cancel(ctx context.Context, id string) (entities.MesaOrden, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	ev := orderEvent{action: "cancel", kind: entities.OrderKindMesaOrden, id: m.ID, from: string(m.Status), to: string(entities.MesaOrdenStatusCancelado)}
	if !m.Cancellable() {
		err = fmt.Errorf("%w: mesa orden %s is %s and can't be cancelled", ErrInvalidTransition, m.ID, m.Status)
		ev.log(u.log, err)
		return entities.MesaOrden{}, err
	}
	return u.moveTo(ctx, ev, m, entities.MesaOrdenStatusCancelado)
}

func (u *MesaOrdenUseCase) moveTo(ctx context.Context, ev orderEvent, m entities.MesaOrden, next entities.MesaOrdenStatus) (entities.MesaOrden, error) {
	updated, err := u.repo.UpdateStatus(ctx, m.ID, m.Status, next)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		err = fmt.Errorf("%w: mesa orden %s left status %s", ErrConcurrentModification, m.ID, m.Status)
	}
	ev.log(u.log, err)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	return updated, nil
}

func (u *MesaOrdenUseCase) Update(ctx context.Context, id string, edit MesaOrdenEdit) (entities.MesaOrden, error) {
	if edit.Lines != nil {
		if err := validateLineSpecs(edit.Lines); err != nil {
			return entities.MesaOrden{}, err
		}
	}
	if edit.TableNumber != nil && *edit.TableNumber <= 0 {
		return entities.MesaOrden{}, fmt.Errorf("%w: got %d", ErrInvalidTableNumber, *edit.TableNumber)
	}
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.MesaOrden{}, err
	}
	if !m.Editable() {
		return entities.MesaOrden{}, fmt.Errorf("%w: mesa orden %s is %s and can't be edited", ErrInvalidTransition, m.ID, m.Status)
	}
	if edit.TableNumber == nil && edit.Lines == nil {
		return m, nil
	}

	observed := m.Status
	if edit.TableNumber != nil {
		m.TableNumber = *edit.TableNumber
	}
	if edit.Lines != nil {
		if m.Items, err = u.lines.snapshot(ctx, edit.Lines); err != nil {
			return entities.MesaOrden{}, err
		}
	}
	m.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, m, observed)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.MesaOrden{}, fmt.Errorf("%w: mesa orden %s left status %s", ErrConcurrentModification, m.ID, observed)
	}
	return updated, err
}

func (u *MesaOrdenUseCase) Delete(ctx context.Context, id string) error {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.Deletable() {
		return fmt.Errorf("%w: mesa orden %s is %s", ErrTerminalStateConflict, m.ID, m.Status)
	}
	paid, err := u.payments.ExistsForOrder(ctx, entities.OrderKindMesaOrden, m.ID)
	if err != nil {
		return err
	}
	if paid {
		return fmt.Errorf("%w: mesa orden %s has a payment", ErrTerminalStateConflict, m.ID)
	}
	err = u.repo.Delete(ctx, m.ID, m.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return fmt.Errorf("%w: mesa orden %s left status %s", ErrConcurrentModification, m.ID, m.Status)
	}
	return err
}
