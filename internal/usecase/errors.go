package usecase

import (
	"errors"
	"fmt"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

var (
	ErrReferenceNotFound = errors.New("reference not found")
	ErrUserNotFound      = fmt.Errorf("%w: user", ErrReferenceNotFound)
	ErrProductNotFound   = fmt.Errorf("%w: product", ErrReferenceNotFound)
	ErrPedidoNotFound    = fmt.Errorf("%w: pedido", ErrReferenceNotFound)
	ErrMesaOrdenNotFound = fmt.Errorf("%w: mesa orden", ErrReferenceNotFound)
	ErrPaymentNotFound   = fmt.Errorf("%w: payment", ErrReferenceNotFound)

	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrInvalidTableNumber = errors.New("table number must be greater than zero")
	ErrEmptyOrder         = errors.New("order must have at least one line")

	ErrInvalidTransition      = entities.ErrInvalidTransition
	ErrTerminalStateConflict  = errors.New("order can no longer be deleted")
	ErrConcurrentModification = errors.New("order was modified concurrently")

	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrAlreadyPaid          = errors.New("order already has a payment")
	ErrOrderCancelled       = errors.New("order is cancelled")

	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartInactive     = errors.New("cart is not active")
	ErrCartEmpty        = errors.New("cart is empty")
)
