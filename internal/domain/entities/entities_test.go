package entities

import (
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineItemsTotal(t *testing.T) {
	items := []LineItem{
		{ProductID: "a", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		{ProductID: "b", Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")},
	}
	p := Pedido{Items: items}
	if !p.Total().Equal(decimal.RequireFromString("13.00")) {
		t.Fatalf("expected 13.00, got %s", p.Total())
	}
	m := MesaOrden{Items: items}
	if !m.Total().Equal(decimal.RequireFromString("13")) {
		t.Fatalf("expected 13, got %s", m.Total())
	}
	if !LineItemsTotal(nil).IsZero() {
		t.Fatalf("expected zero total for no items")
	}
}

func TestPedido_Guards(t *testing.T) {
	cases := []struct {
		status    PedidoStatus
		paymentID string
		deletable bool
		editable  bool
	}{
		{PedidoStatusPendiente, "", true, true},
		{PedidoStatusPreparando, "", true, true},
		{PedidoStatusPreparado, "", true, true},
		{PedidoStatusPreparado, "pay-1", false, true},
		{PedidoStatusCobrado, "", false, false},
		{PedidoStatusEntregado, "", false, false},
		{PedidoStatusCancelado, "", false, false},
	}
	for _, tc := range cases {
		p := Pedido{Status: tc.status, PaymentID: tc.paymentID}
		if p.Deletable() != tc.deletable {
			t.Fatalf("%s (payment=%q): expected deletable=%v", tc.status, tc.paymentID, tc.deletable)
		}
		if p.Editable() != tc.editable {
			t.Fatalf("%s: expected editable=%v", tc.status, tc.editable)
		}
	}
}

func TestMesaOrden_Guards(t *testing.T) {
	cases := []struct {
		status      MesaOrdenStatus
		deletable   bool
		cancellable bool
	}{
		{MesaOrdenStatusPendiente, true, true},
		{MesaOrdenStatusListo, true, true},
		{MesaOrdenStatusEntregado, true, true},
		{MesaOrdenStatusCobrado, false, false},
		{MesaOrdenStatusPagado, false, false},
		{MesaOrdenStatusCancelado, false, false},
	}
	for _, tc := range cases {
		m := MesaOrden{Status: tc.status}
		if m.Deletable() != tc.deletable {
			t.Fatalf("%s: expected deletable=%v", tc.status, tc.deletable)
		}
		if m.Cancellable() != tc.cancellable {
			t.Fatalf("%s: expected cancellable=%v", tc.status, tc.cancellable)
		}
	}
	if (MesaOrden{Status: MesaOrdenStatusEntregado, PaymentID: "pay-1"}).Deletable() {
		t.Fatalf("orders with a payment must not be deletable")
	}
}

func TestPayment_Validate(t *testing.T) {
	if err := (Payment{}).Validate(); !errors.Is(err, ErrPaymentWithoutOrder) {
		t.Fatalf("expected ErrPaymentWithoutOrder, got %v", err)
	}
	if err := (Payment{PedidoID: "p", MesaOrdenID: "m"}).Validate(); !errors.Is(err, ErrPaymentWithTwoOrders) {
		t.Fatalf("expected ErrPaymentWithTwoOrders, got %v", err)
	}

	p := Payment{PedidoID: "p"}
	if err := p.Validate(); err != nil || p.Kind() != OrderKindPedido || p.OrderID() != "p" {
		t.Fatalf("unexpected pedido payment: kind=%s id=%s err=%v", p.Kind(), p.OrderID(), err)
	}
	m := Payment{MesaOrdenID: "m"}
	if err := m.Validate(); err != nil || m.Kind() != OrderKindMesaOrden || m.OrderID() != "m" {
		t.Fatalf("unexpected mesa payment: kind=%s id=%s err=%v", m.Kind(), m.OrderID(), err)
	}
	if (Payment{PedidoID: "p", MesaOrdenID: "m"}).Kind() != "" {
		t.Fatalf("expected empty kind for invalid reference")
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodEfectivo, PaymentMethodTarjetaCredito, PaymentMethodTransferencia} {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	if PaymentMethod("BITCOIN").Valid() {
		t.Fatalf("expected unknown method to be invalid")
	}
}

func TestCart_AddItemMerges(t *testing.T) {
	n := 0
	newID := func() string {
		n++
		return "item-" + strconv.Itoa(n)
	}

	var c Cart
	first := c.AddItem("prod-1", 2, newID)
	second := c.AddItem("prod-2", 1, newID)
	merged := c.AddItem("prod-1", 3, newID)

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %+v", c.Items)
	}
	if merged.ID != first.ID || merged.Quantity != 5 {
		t.Fatalf("expected merge into %s with qty 5, got %+v", first.ID, merged)
	}
	if c.FindItem(second.ID) != 1 || c.FindItem("missing") != -1 {
		t.Fatalf("unexpected FindItem result")
	}

	specs := c.LineSpecs()
	if len(specs) != 2 || specs[0] != (LineSpec{ProductID: "prod-1", Quantity: 5}) {
		t.Fatalf("unexpected specs: %+v", specs)
	}
}
