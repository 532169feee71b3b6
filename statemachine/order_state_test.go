package statemachine

import (
	"testing"

	"quickbite-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_AllowedPaths(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusOutForDelivery, models.RoleRestaurant))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusOutForDelivery, models.RoleDelivery))
	assert.NoError(t, CanTransition(models.StatusOutForDelivery, models.StatusCompleted, models.RoleDelivery))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusCancelled, models.RoleCustomer))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusRescheduled, models.RoleAdmin))
	assert.NoError(t, CanTransition(models.StatusRescheduled, models.StatusPreparing, models.RoleRestaurant))
}

func TestCanTransition_RejectsWrongActor(t *testing.T) {
	err := CanTransition(models.StatusOutForDelivery, models.StatusCompleted, models.RoleCustomer)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "customer")

	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusRescheduled, models.RoleRestaurant))
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusCompleted, models.RoleDelivery))
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, from := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		for _, actor := range []models.UserRole{models.RoleAdmin, models.RoleCustomer, models.RoleRestaurant, models.RoleDelivery} {
			assert.Error(t, CanTransition(from, models.StatusPreparing, actor))
		}
	}
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPreparing))
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPreparing)
	assert.ElementsMatch(t, []models.OrderStatus{
		models.StatusOutForDelivery,
		models.StatusCancelled,
		models.StatusRescheduled,
	}, nexts)

	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}
