package statemachine

import (
	"errors"

	"restaurant-ordering-api/models"
)

// orderChain is the authoritative order lifecycle. Each state maps to the
// only state it may advance to; entregado is terminal.
var orderChain = map[models.OrderStatus]models.OrderStatus{
	models.StatusPendiente: models.StatusCocinando,
	models.StatusCocinando: models.StatusEntregado,
}

// ErrOrderDelivered is returned when advancing a terminal order
var ErrOrderDelivered = errors.New("order already delivered: entregado is a terminal state")

// NormalizeOrderStatus maps any unrecognized stored value to pendiente,
// matching how unknown statuses have always been displayed and advanced.
func NormalizeOrderStatus(status models.OrderStatus) models.OrderStatus {
	switch status {
	case models.StatusPendiente, models.StatusCocinando, models.StatusEntregado:
		return status
	default:
		return models.StatusPendiente
	}
}

// NextOrderStatus computes the single valid successor of the current
// state. The progression never skips and never goes backward, so the
// caller supplies no target state.
func NextOrderStatus(current models.OrderStatus) (models.OrderStatus, error) {
	next, ok := orderChain[NormalizeOrderStatus(current)]
	if !ok {
		return "", ErrOrderDelivered
	}
	return next, nil
}

// OrderIsActive reports whether an order belongs in the active view
// rather than the history view.
func OrderIsActive(status models.OrderStatus) bool {
	return NormalizeOrderStatus(status) != models.StatusEntregado
}
