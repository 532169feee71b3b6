package statemachine

import (
	"errors"

	"quickbite-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

// validTransitions is the authoritative state machine definition.
// Admin order cancellation is an override handled separately and is not
// listed here; it always lands in cancelled and is idempotent.
var validTransitions = []Transition{
	// Restaurant hands the order off, or a delivery person accepts it
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: models.RoleRestaurant},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: models.RoleDelivery},
	// Delivery person completes the drop-off
	{From: models.StatusOutForDelivery, To: models.StatusCompleted, Actor: models.RoleDelivery},
	// A preparing order can still be cancelled
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: models.RoleCustomer},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: models.RoleRestaurant},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: models.RoleAdmin},
	// Admin parks an order on a new date
	{From: models.StatusPreparing, To: models.StatusRescheduled, Actor: models.RoleAdmin},
	{From: models.StatusRescheduled, To: models.StatusCancelled, Actor: models.RoleAdmin},
	{From: models.StatusRescheduled, To: models.StatusCancelled, Actor: models.RoleCustomer},
	// Kitchen picks a rescheduled order back up
	{From: models.StatusRescheduled, To: models.StatusPreparing, Actor: models.RoleRestaurant},
	{From: models.StatusRescheduled, To: models.StatusPreparing, Actor: models.RoleAdmin},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// IsTerminal reports whether no actor can leave the given state
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusCompleted || status == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for role '" + string(actor) + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
