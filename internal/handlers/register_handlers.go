// Package handlers wires the HTTP surface: the JSON-RPC tool endpoint plus
// the health and info routes.
package handlers

import (
	"github.com/expensemcp/expense_mcp_app/internal/core/services"
	"github.com/expensemcp/expense_mcp_app/internal/mcp"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, container services.ServicesContainer) {
	r.GET("/", getHome)
	r.GET("/health", getHealth)

	dispatcher := mcp.NewDispatcher(container)
	registerMCPRoutes(r, dispatcher, mcp.ServerInfo{
		Name:    serverName,
		Version: serverVersion,
	})
}
