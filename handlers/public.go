package handlers

import (
	"net/http"

	"quickbite-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo exposes the order lifecycle for docs and clients
// @Summary Order lifecycle state machine
// @Tags public
// @Success 200 {object} map[string]interface{}
// @Router /state-machine [get]
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"completed", "cancelled"},
		"description":     "Order lifecycle state machine",
	})
}
