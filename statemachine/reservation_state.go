package statemachine

import (
	"errors"

	"restaurant-ordering-api/models"
)

// Transition defines a valid reservation state change and who performs it
type Transition struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor string // "admin" or "owner"
}

// validTransitions is the authoritative reservation state machine: every
// resolution is reachable from pendiente and nothing leaves a resolution.
var validTransitions = []Transition{
	{From: models.ReservationPendiente, To: models.ReservationAceptado, Actor: "admin"},
	{From: models.ReservationPendiente, To: models.ReservationRechazado, Actor: "admin"},
	{From: models.ReservationPendiente, To: models.ReservationCancelado, Actor: "owner"},
}

type transitionKey struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransitionReservation checks if a given actor can move a reservation
// from one state to another
func CanTransitionReservation(from, to models.ReservationStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'",
	)
}

// ReservationIsPending reports whether a reservation still awaits review
func ReservationIsPending(status models.ReservationStatus) bool {
	return status == models.ReservationPendiente
}
