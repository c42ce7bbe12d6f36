package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
	mock_interfaces "github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces/mocks"
)

type pedidoMocks struct {
	repo     *mock_interfaces.MockIPedidoRepository
	payments *mock_interfaces.MockIPaymentRepository
	users    *mock_interfaces.MockIUserDirectory
	catalog  *mock_interfaces.MockIProductCatalog
}

func newPedidoUseCaseForTest(t *testing.T) (*PedidoUseCase, pedidoMocks, func() []string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := pedidoMocks{
		repo:     mock_interfaces.NewMockIPedidoRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		users:    mock_interfaces.NewMockIUserDirectory(ctrl),
		catalog:  mock_interfaces.NewMockIProductCatalog(ctrl),
	}
	logger, hook := newTestLogger()
	uc := NewPedidoUseCase(m.repo, m.payments, m.users, m.catalog, logger)
	uc.newID = sequentialIDs("ped-1")
	uc.now = func() time.Time { return fixedNow }
	outcomes := func() []string {
		var out []string
		for _, e := range hook.AllEntries() {
			if o, ok := e.Data["outcome"].(string); ok {
				out = append(out, o)
			}
		}
		return out
	}
	return uc, m, outcomes
}

func TestPedidoUseCase_Create(t *testing.T) {
	t.Run("empty lines", func(t *testing.T) {
		uc, _, _ := newPedidoUseCaseForTest(t)
		_, err := uc.Create(context.Background(), "user-1", nil)
		if !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("non positive quantity names the product", func(t *testing.T) {
		uc, _, _ := newPedidoUseCaseForTest(t)
		_, err := uc.Create(context.Background(), "user-1", []entities.LineSpec{
			{ProductID: "prod-a", Quantity: 2},
			{ProductID: "prod-b", Quantity: 0},
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
		if !strings.Contains(err.Error(), "prod-b") {
			t.Fatalf("expected error to name prod-b, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.users.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.Create(context.Background(), "ghost", []entities.LineSpec{{ProductID: "prod-a", Quantity: 1}})
		if !errors.Is(err, ErrUserNotFound) || !errors.Is(err, ErrReferenceNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("unknown product persists nothing", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), "prod-a").Return(productA(), nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), "prod-x").Return(entities.Product{}, nil)

		_, err := uc.Create(context.Background(), "user-1", []entities.LineSpec{
			{ProductID: "prod-a", Quantity: 1},
			{ProductID: "prod-x", Quantity: 1},
		})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("snapshots prices and totals 13.00", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		book := priceBook{"prod-a": productA(), "prod-b": productB()}
		uc.lines.catalog = book
		uc.newID = sequentialIDs("ped-1", "ped-2")

		stored := map[string]entities.Pedido{}
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil).Times(2)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Pedido) (entities.Pedido, error) {
			stored[p.ID] = p
			return p, nil
		}).Times(2)
		m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.Pedido, error) {
			return stored[id], nil
		})

		lines := []entities.LineSpec{
			{ProductID: "prod-a", Quantity: 2},
			{ProductID: "prod-b", Quantity: 1},
		}
		p, err := uc.Create(context.Background(), "user-1", lines)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if p.ID != "ped-1" || p.Status != entities.PedidoStatusPendiente || !p.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected pedido: %+v", p)
		}
		if !p.Total().Equal(price("13.00")) {
			t.Fatalf("expected total 13.00, got %s", p.Total())
		}

		book.reprice("prod-a", "7.00")

		again, err := uc.GetByID(context.Background(), "ped-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !again.Total().Equal(price("13.00")) || !again.Items[0].UnitPrice.Equal(price("5.00")) {
			t.Fatalf("expected frozen prices, got %+v", again.Items)
		}

		next, err := uc.Create(context.Background(), "user-1", lines)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if next.ID != "ped-2" || !next.Total().Equal(price("17.00")) {
			t.Fatalf("expected new pedido at current prices totalling 17.00, got %s", next.Total())
		}
	})

	t.Run("catalog price with fractions of a cent", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		book := priceBook{"prod-a": productA()}
		book.reprice("prod-a", "5.005")
		uc.lines.catalog = book
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.Create(context.Background(), "user-1", []entities.LineSpec{{ProductID: "prod-a", Quantity: 1}})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestPedidoUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _, _ := newPedidoUseCaseForTest(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-9").Return(entities.Pedido{}, nil)
		if _, err := uc.GetByID(context.Background(), "ped-9"); !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("storage error propagates", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{}, errors.New("db"))
		if _, err := uc.GetByID(context.Background(), "ped-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPedidoUseCase_Lists(t *testing.T) {
	t.Run("kitchen queue", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().
			ListByStatus(gomock.Any(), entities.PedidoStatusPendiente, entities.PedidoStatusPreparando).
			Return([]entities.Pedido{{ID: "ped-1"}}, nil)

		got, err := uc.ListKitchen(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("expected one pedido, got %v (%v)", got, err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _, _ := newPedidoUseCaseForTest(t)
		if _, err := uc.ListByStatus(context.Background(), "LISTO"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("by status", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().ListByStatus(gomock.Any(), entities.PedidoStatusCobrado).Return(nil, nil)
		if _, err := uc.ListByStatus(context.Background(), entities.PedidoStatusCobrado); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("by user", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Pedido{{ID: "ped-1"}, {ID: "ped-2"}}, nil)
		got, err := uc.ListByUser(context.Background(), "user-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("expected two pedidos, got %v (%v)", got, err)
		}
	})
}

func TestPedidoUseCase_UpdateStatus(t *testing.T) {
	t.Run("non edge is rejected and state untouched", func(t *testing.T) {
		uc, m, outcomes := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPendiente}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ped-1", entities.PedidoStatusEntregado)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if got := outcomes(); len(got) != 1 || got[0] != outcomeRejected {
			t.Fatalf("expected one rejected event, got %v", got)
		}
	})

	t.Run("terminal source", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCancelado}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "ped-1", entities.PedidoStatusPendiente); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("applied", func(t *testing.T) {
		uc, m, outcomes := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCobrado}, nil)
		m.repo.EXPECT().
			UpdateStatus(gomock.Any(), "ped-1", entities.PedidoStatusCobrado, entities.PedidoStatusEntregado).
			Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusEntregado}, nil)

		p, err := uc.UpdateStatus(context.Background(), "ped-1", entities.PedidoStatusEntregado)
		if err != nil || p.Status != entities.PedidoStatusEntregado {
			t.Fatalf("expected ENTREGADO, got %v (%v)", p.Status, err)
		}
		if got := outcomes(); len(got) != 1 || got[0] != outcomeApplied {
			t.Fatalf("expected one applied event, got %v", got)
		}
	})

	t.Run("lost conditional write", func(t *testing.T) {
		uc, m, outcomes := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPendiente}, nil)
		m.repo.EXPECT().
			UpdateStatus(gomock.Any(), "ped-1", entities.PedidoStatusPendiente, entities.PedidoStatusPreparando).
			Return(entities.Pedido{}, interfaces.ErrConditionFailed)

		if _, err := uc.UpdateStatus(context.Background(), "ped-1", entities.PedidoStatusPreparando); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
		if got := outcomes(); len(got) != 1 || got[0] != outcomeConflict {
			t.Fatalf("expected one conflict event, got %v", got)
		}
	})
}

func TestPedidoUseCase_UpdateLines(t *testing.T) {
	t.Run("charged order can't be edited", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCobrado}, nil)

		_, err := uc.UpdateLines(context.Background(), "ped-1", []entities.LineSpec{{ProductID: "prod-a", Quantity: 1}})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("edit never empties the order", func(t *testing.T) {
		uc, _, _ := newPedidoUseCaseForTest(t)
		if _, err := uc.UpdateLines(context.Background(), "ped-1", []entities.LineSpec{}); !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("replaces all lines with current prices", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{
			ID:     "ped-1",
			Status: entities.PedidoStatusPreparando,
			Items:  []entities.LineItem{{ProductID: "prod-a", Quantity: 2, UnitPrice: price("5.00")}},
		}, nil)
		repriced := productB()
		repriced.Price = price("4.50")
		m.catalog.EXPECT().GetByID(gomock.Any(), "prod-b").Return(repriced, nil)
		m.repo.EXPECT().
			ReplaceItems(gomock.Any(), "ped-1", entities.PedidoStatusPreparando, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _ entities.PedidoStatus, items []entities.LineItem) (entities.Pedido, error) {
				return entities.Pedido{ID: id, Status: entities.PedidoStatusPreparando, Items: items}, nil
			})

		p, err := uc.UpdateLines(context.Background(), "ped-1", []entities.LineSpec{{ProductID: "prod-b", Quantity: 3}})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(p.Items) != 1 || !p.Total().Equal(price("13.50")) {
			t.Fatalf("expected single repriced line, got %+v", p.Items)
		}
	})
}

func TestPedidoUseCase_Delete(t *testing.T) {
	t.Run("charged order", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCobrado}, nil)

		if err := uc.Delete(context.Background(), "ped-1"); !errors.Is(err, ErrTerminalStateConflict) {
			t.Fatalf("expected ErrTerminalStateConflict, got %v", err)
		}
	})

	t.Run("terminal order", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusEntregado}, nil)

		if err := uc.Delete(context.Background(), "ped-1"); !errors.Is(err, ErrTerminalStateConflict) {
			t.Fatalf("expected ErrTerminalStateConflict, got %v", err)
		}
	})

	t.Run("payment still references the order", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPreparado}, nil)
		m.payments.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "ped-1"); !errors.Is(err, ErrTerminalStateConflict) {
			t.Fatalf("expected ErrTerminalStateConflict, got %v", err)
		}
	})

	t.Run("pending order is removed", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPendiente}, nil)
		m.payments.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "ped-1", entities.PedidoStatusPendiente).Return(nil)

		if err := uc.Delete(context.Background(), "ped-1"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("status moved before delete", func(t *testing.T) {
		uc, m, _ := newPedidoUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPendiente}, nil)
		m.payments.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "ped-1", entities.PedidoStatusPendiente).Return(interfaces.ErrConditionFailed)

		if err := uc.Delete(context.Background(), "ped-1"); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}
