package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
	mock_interfaces "github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces/mocks"
)

type paymentMocks struct {
	repo    *mock_interfaces.MockIPaymentRepository
	pedidos *mock_interfaces.MockIPedidoRepository
	mesas   *mock_interfaces.MockIMesaOrdenRepository
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentMocks, func() []string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		pedidos: mock_interfaces.NewMockIPedidoRepository(ctrl),
		mesas:   mock_interfaces.NewMockIMesaOrdenRepository(ctrl),
	}
	logger, hook := newTestLogger()
	uc := NewPaymentUseCase(m.repo, m.pedidos, m.mesas, logger)
	uc.newID = sequentialIDs("pay-1")
	uc.now = func() time.Time { return fixedNow }
	actions := func() []string {
		var out []string
		for _, e := range hook.AllEntries() {
			if e.Data["action"] != nil {
				out = append(out, e.Data["action"].(string)+":"+e.Data["outcome"].(string))
			}
		}
		return out
	}
	return uc, m, actions
}

func pedidoPayment(amount string) RecordPaymentCommand {
	return RecordPaymentCommand{
		Kind:    entities.OrderKindPedido,
		OrderID: "ped-1",
		Amount:  price(amount),
		Method:  entities.PaymentMethodEfectivo,
	}
}

func TestPaymentUseCase_Record_Validations(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		if _, err := uc.Record(context.Background(), pedidoPayment("0")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		if _, err := uc.Record(context.Background(), pedidoPayment("-1.50")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("fractions of a cent", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		if _, err := uc.Record(context.Background(), pedidoPayment("0.004")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := uc.Record(context.Background(), pedidoPayment("12.999")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("trailing zeros are whole cents", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPreparado}, nil)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.StatusChange) (entities.Payment, error) {
				return p, nil
			})

		p, err := uc.Record(context.Background(), pedidoPayment("13.000"))
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !p.Amount.Equal(price("13")) {
			t.Fatalf("expected amount 13, got %s", p.Amount)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		cmd := pedidoPayment("10")
		cmd.Method = "BITCOIN"
		if _, err := uc.Record(context.Background(), cmd); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("no order reference", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		cmd := pedidoPayment("10")
		cmd.OrderID = " "
		if _, err := uc.Record(context.Background(), cmd); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{}, nil)
		if _, err := uc.Record(context.Background(), pedidoPayment("10")); !errors.Is(err, ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_Record_Pedido(t *testing.T) {
	t.Run("already paid leaves state unchanged", func(t *testing.T) {
		uc, m, actions := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPreparado}, nil)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(true, nil)

		if _, err := uc.Record(context.Background(), pedidoPayment("13.00")); !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
		if got := actions(); len(got) != 1 || got[0] != "charge:conflict" {
			t.Fatalf("expected charge conflict event, got %v", got)
		}
	})

	t.Run("linked payment id counts as paid", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCobrado, PaymentID: "pay-0"}, nil)

		if _, err := uc.Record(context.Background(), pedidoPayment("13.00")); !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("cancelled order", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCancelado}, nil)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)

		if _, err := uc.Record(context.Background(), pedidoPayment("13.00")); !errors.Is(err, ErrOrderCancelled) {
			t.Fatalf("expected ErrOrderCancelled, got %v", err)
		}
	})

	t.Run("charges the order in the same write", func(t *testing.T) {
		uc, m, actions := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPreparado}, nil)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().
			Record(gomock.Any(), gomock.Any(), interfaces.StatusChange{From: "PREPARADO", To: "COBRADO"}).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.StatusChange) (entities.Payment, error) {
				return p, nil
			})

		p, err := uc.Record(context.Background(), pedidoPayment("13.00"))
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if p.ID != "pay-1" || p.PedidoID != "ped-1" || p.MesaOrdenID != "" || !p.PaidAt.Equal(fixedNow) {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if got := actions(); len(got) != 1 || got[0] != "charge:applied" {
			t.Fatalf("expected charge applied event, got %v", got)
		}
	})

	t.Run("delivered order keeps its status", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusEntregado}, nil)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().
			Record(gomock.Any(), gomock.Any(), interfaces.StatusChange{From: "ENTREGADO", To: "ENTREGADO"}).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.StatusChange) (entities.Payment, error) {
				return p, nil
			})

		if _, err := uc.Record(context.Background(), pedidoPayment("13.00")); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("concurrent payment wins the race", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		gomock.InOrder(
			m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPreparado}, nil),
			m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCobrado, PaymentID: "pay-0"}, nil),
		)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrConditionFailed)

		if _, err := uc.Record(context.Background(), pedidoPayment("13.00")); !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("order cancelled during the charge", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		gomock.InOrder(
			m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusPreparado}, nil),
			m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusCancelado}, nil),
		)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindPedido, "ped-1").Return(false, nil)
		m.repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrConditionFailed)

		if _, err := uc.Record(context.Background(), pedidoPayment("13.00")); !errors.Is(err, ErrOrderCancelled) {
			t.Fatalf("expected ErrOrderCancelled, got %v", err)
		}
	})
}

func TestPaymentUseCase_Record_MesaOrden(t *testing.T) {
	t.Run("settled table keeps pagado", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.mesas.EXPECT().GetByID(gomock.Any(), "mesa-1").Return(entities.MesaOrden{ID: "mesa-1", Status: entities.MesaOrdenStatusPagado}, nil)
		m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindMesaOrden, "mesa-1").Return(false, nil)
		m.repo.EXPECT().
			Record(gomock.Any(), gomock.Any(), interfaces.StatusChange{From: "PAGADO", To: "PAGADO"}).
			DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.StatusChange) (entities.Payment, error) {
				return p, nil
			})

		_, err := uc.Record(context.Background(), RecordPaymentCommand{
			Kind:    entities.OrderKindMesaOrden,
			OrderID: "mesa-1",
			Amount:  price("22.40"),
			Method:  entities.PaymentMethodEfectivo,
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	uc, m, _ := newPaymentUseCaseForTest(t)
	m.mesas.EXPECT().GetByID(gomock.Any(), "mesa-1").Return(entities.MesaOrden{ID: "mesa-1", Status: entities.MesaOrdenStatusEntregado}, nil)
	m.repo.EXPECT().ExistsForOrder(gomock.Any(), entities.OrderKindMesaOrden, "mesa-1").Return(false, nil)
	m.repo.EXPECT().
		Record(gomock.Any(), gomock.Any(), interfaces.StatusChange{From: "ENTREGADO", To: "COBRADO"}).
		DoAndReturn(func(_ context.Context, p entities.Payment, _ interfaces.StatusChange) (entities.Payment, error) {
			return p, nil
		})

	p, err := uc.Record(context.Background(), RecordPaymentCommand{
		Kind:    entities.OrderKindMesaOrden,
		OrderID: "mesa-1",
		Amount:  price("22.40"),
		Method:  entities.PaymentMethodTarjetaCredito,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if p.MesaOrdenID != "mesa-1" || p.PedidoID != "" || p.Kind() != entities.OrderKindMesaOrden {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestPaymentUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-9").Return(entities.Payment{}, nil)
		if err := uc.Delete(context.Background(), "pay-9"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("reverts pedido to preparado even after delivery", func(t *testing.T) {
		uc, m, actions := newPaymentUseCaseForTest(t)
		pay := entities.Payment{ID: "pay-1", PedidoID: "ped-1", Amount: price("13.00"), Method: entities.PaymentMethodEfectivo}
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pay, nil)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1", Status: entities.PedidoStatusEntregado, PaymentID: "pay-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), pay, interfaces.StatusChange{From: "ENTREGADO", To: "PREPARADO"}).Return(nil)

		if err := uc.Delete(context.Background(), "pay-1"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got := actions(); len(got) != 1 || got[0] != "revert:applied" {
			t.Fatalf("expected revert applied event, got %v", got)
		}
	})

	t.Run("reverts mesa orden to entregado", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		pay := entities.Payment{ID: "pay-2", MesaOrdenID: "mesa-1", Amount: price("8"), Method: entities.PaymentMethodTransferencia}
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-2").Return(pay, nil)
		m.mesas.EXPECT().GetByID(gomock.Any(), "mesa-1").Return(entities.MesaOrden{ID: "mesa-1", Status: entities.MesaOrdenStatusCobrado, PaymentID: "pay-2"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), pay, interfaces.StatusChange{From: "COBRADO", To: "ENTREGADO"}).Return(nil)

		if err := uc.Delete(context.Background(), "pay-2"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("reverts paid mesa orden to entregado", func(t *testing.T) {
		uc, m, actions := newPaymentUseCaseForTest(t)
		pay := entities.Payment{ID: "pay-4", MesaOrdenID: "mesa-2", Amount: price("30"), Method: entities.PaymentMethodEfectivo}
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-4").Return(pay, nil)
		m.mesas.EXPECT().GetByID(gomock.Any(), "mesa-2").Return(entities.MesaOrden{ID: "mesa-2", Status: entities.MesaOrdenStatusPagado, PaymentID: "pay-4"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), pay, interfaces.StatusChange{From: "PAGADO", To: "ENTREGADO"}).Return(nil)

		if err := uc.Delete(context.Background(), "pay-4"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got := actions(); len(got) != 1 || got[0] != "revert:applied" {
			t.Fatalf("expected revert applied event, got %v", got)
		}
	})

	t.Run("orphan payment is removed alone", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		pay := entities.Payment{ID: "pay-3", PedidoID: "ped-gone", Amount: price("1"), Method: entities.PaymentMethodEfectivo}
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-3").Return(pay, nil)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-gone").Return(entities.Pedido{}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), pay, interfaces.StatusChange{}).Return(nil)

		if err := uc.Delete(context.Background(), "pay-3"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListByPedidoID(t *testing.T) {
	t.Run("pedido must exist", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-9").Return(entities.Pedido{}, nil)
		if _, err := uc.ListByPedidoID(context.Background(), "ped-9"); !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("lists", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "ped-1").Return(entities.Pedido{ID: "ped-1"}, nil)
		m.repo.EXPECT().ListByPedidoID(gomock.Any(), "ped-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)
		got, err := uc.ListByPedidoID(context.Background(), "ped-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("expected one payment, got %v (%v)", got, err)
		}
	})
}
