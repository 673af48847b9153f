package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serverName    = "expense-mcp-server"
	serverVersion = "2.0.0"
)

func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"name":    serverName,
		"version": serverVersion,
		"features": []string{
			"Transactions (add/edit/delete/search)",
			"Account transfers",
			"Account balances (calculated)",
			"Budget management",
			"Spending analytics",
			"Recurring transactions tracking",
			"Shared expenses and settlements",
		},
	})
}

func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"server":  serverName,
		"version": serverVersion,
	})
}
