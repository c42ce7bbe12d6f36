package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/greikol4321-hub/Restaurante/internal/adapter/http/handlers/mocks"
	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
)

func newCartRouter(t *testing.T) (*gin.Engine, *mocks.MockICartUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.POST("/v1/carritos", h.GetOrCreate)
	r.GET("/v1/carritos/usuario/:usuario_id", h.GetActive)
	r.GET("/v1/carritos/:id/items", h.ListItems)
	r.POST("/v1/carritos/:id/items", h.AddItem)
	r.PUT("/v1/carritos/:id/items/:item_id", h.UpdateItem)
	r.DELETE("/v1/carritos/:id/items/:item_id", h.RemoveItem)
	r.DELETE("/v1/carritos/:id/vaciar", h.Clear)
	r.PUT("/v1/carritos/:id/convertir-pedido", h.ConvertToPedido)
	return r, uc
}

func activeCart() entities.Cart {
	return entities.Cart{ID: "c1", UserID: "u1", Active: true, Items: []entities.CartItem{{ID: "i1", ProductID: "a", Quantity: 2}}}
}

func TestCartHandler_GetOrCreate(t *testing.T) {
	t.Run("missing usuario_id", func(t *testing.T) {
		r, _ := newCartRouter(t)

		if w := serve(r, http.MethodPost, "/v1/carritos", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().GetOrCreate(gomock.Any(), "u1").Return(entities.Cart{}, usecase.ErrUserNotFound)

		if w := serve(r, http.MethodPost, "/v1/carritos", `{"usuario_id":"u1"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().GetOrCreate(gomock.Any(), "u1").Return(activeCart(), nil)

		w := serve(r, http.MethodPost, "/v1/carritos", `{"usuario_id":"u1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["activo"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCartHandler_Items(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().AddItem(gomock.Any(), "c1", "a", 2).Return(activeCart(), nil)

		if w := serve(r, http.MethodPost, "/v1/carritos/c1/items", `{"producto_id":"a","cantidad":2}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add to inactive cart", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().AddItem(gomock.Any(), "c1", "a", 1).Return(entities.Cart{}, usecase.ErrCartInactive)

		if w := serve(r, http.MethodPost, "/v1/carritos/c1/items", `{"producto_id":"a","cantidad":1}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update quantity of unknown item", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().UpdateItemQuantity(gomock.Any(), "c1", "i9", 3).Return(entities.Cart{}, usecase.ErrCartItemNotFound)

		if w := serve(r, http.MethodPut, "/v1/carritos/c1/items/i9", `{"cantidad":3}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().RemoveItem(gomock.Any(), "c1", "i1").Return(entities.Cart{ID: "c1", Active: true}, nil)

		if w := serve(r, http.MethodDelete, "/v1/carritos/c1/items/i1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().ListItems(gomock.Any(), "c1").Return(activeCart().Items, nil)

		if w := serve(r, http.MethodGet, "/v1/carritos/c1/items", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Clear(gomock.Any(), "c1").Return(entities.Cart{ID: "c1", Active: true}, nil)

		if w := serve(r, http.MethodDelete, "/v1/carritos/c1/vaciar", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_ConvertToPedido(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().ConvertToPedido(gomock.Any(), "c1").Return(entities.Pedido{}, usecase.ErrCartEmpty)

		if w := serve(r, http.MethodPut, "/v1/carritos/c1/convertir-pedido", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().ConvertToPedido(gomock.Any(), "c1").Return(entities.Pedido{ID: "p1", UserID: "u1", Status: entities.PedidoStatusPendiente}, nil)

		w := serve(r, http.MethodPut, "/v1/carritos/c1/convertir-pedido", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "p1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
