package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greikol4321-hub/Restaurante/internal/usecase"
	"github.com/greikol4321-hub/Restaurante/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// writeError records err on the context for the request logger and writes the envelope.
func writeError(c *gin.Context, err error, appErr *pkg.AppError) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the kinds shared by every aggregate. ok is false for unknown errors.
func mapCommonError(err error) (appErr *pkg.AppError, ok bool) {
	switch {
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrMesaOrdenNotFound):
		return pkg.NewDomainErrorSimple("MESA_ORDEN_NOT_FOUND", "Mesa orden not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrReferenceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be greater than zero", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Order must have at least one line", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Order was modified concurrently, retry", http.StatusConflict), true
	}
	return nil, false
}

func mapOrderError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTableNumber):
		return pkg.NewDomainErrorSimple("INVALID_TABLE_NUMBER", "Table number must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTerminalStateConflict):
		return pkg.NewDomainErrorSimple("TERMINAL_STATE_CONFLICT", "Order can no longer be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero with at most two decimals", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Order already has a payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Order is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapCartError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartInactive):
		return pkg.NewDomainErrorSimple("CART_INACTIVE", "Cart is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Cart is empty", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
