package usecase

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

const (
	outcomeApplied  = "applied"
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
	outcomeFailed   = "failed"
)

// orderEvent is the diagnostic record emitted around every state change of an order.
type orderEvent struct {
	action string
	kind   entities.OrderKind
	id     string
	from   string
	to     string
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeApplied
	case errors.Is(err, ErrConcurrentModification), errors.Is(err, ErrAlreadyPaid):
		return outcomeConflict
	case isDomainError(err):
		return outcomeRejected
	}
	return outcomeFailed
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrReferenceNotFound, ErrInvalidID, ErrInvalidStatus, ErrInvalidQuantity, ErrInvalidTableNumber,
		ErrEmptyOrder, ErrInvalidTransition, ErrTerminalStateConflict, ErrInvalidAmount,
		ErrInvalidPaymentMethod, ErrOrderCancelled, ErrCartInactive, ErrCartEmpty,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e orderEvent) log(logger *logrus.Logger, err error) {
	outcome := outcomeOf(err)
	entry := logger.WithFields(logrus.Fields{
		"action":     e.action,
		"order_kind": e.kind,
		"order_id":   e.id,
		"from_state": e.from,
		"to_state":   e.to,
		"outcome":    outcome,
	})
	switch outcome {
	case outcomeApplied:
		entry.Info("order state changed")
	case outcomeFailed:
		entry.WithError(err).Error("order state change failed")
	default:
		entry.WithError(err).Warn("order state change refused")
	}
}
