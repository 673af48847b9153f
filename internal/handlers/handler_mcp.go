package handlers

import (
	"log/slog"
	"net/http"

	"github.com/expensemcp/expense_mcp_app/internal/mcp"
	"github.com/expensemcp/expense_mcp_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mcpHandler serves the JSON-RPC tool-calling endpoint.
type mcpHandler struct {
	dispatcher *mcp.Dispatcher
	serverInfo mcp.ServerInfo
}

func newMCPHandler(dispatcher *mcp.Dispatcher, serverInfo mcp.ServerInfo) *mcpHandler {
	return &mcpHandler{
		dispatcher: dispatcher,
		serverInfo: serverInfo,
	}
}

// registerMCPRoutes registers the tool-calling endpoint.
func registerMCPRoutes(r *gin.Engine, dispatcher *mcp.Dispatcher, serverInfo mcp.ServerInfo) {
	h := newMCPHandler(dispatcher, serverInfo)
	r.POST("/mcp", h.handleRPC)
}

// handleRPC processes one JSON-RPC request. Requests without an id are
// notifications and get an empty 202; everything else is answered with a
// JSON-RPC response body, including protocol-level errors.
func (h *mcpHandler) handleRPC(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req mcp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("malformed rpc request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, mcp.NewErrorResponse(nil, mcp.CodeInternalError, err.Error()))
		return
	}

	if req.IsNotification() {
		c.Status(http.StatusAccepted)
		return
	}

	switch req.Method {
	case "initialize":
		sessionID := uuid.NewString()
		c.Header("Mcp-Session-Id", sessionID)
		logger.Info("session initialized", slog.String("session_id", sessionID))
		c.JSON(http.StatusOK, mcp.NewResponse(req.ID, mcp.InitializeResult{
			ProtocolVersion: mcp.ProtocolVersion,
			ServerInfo:      h.serverInfo,
		}))

	case "tools/list":
		c.JSON(http.StatusOK, mcp.NewResponse(req.ID, mcp.ToolsListResult{Tools: mcp.ToolCatalog()}))

	case "tools/call":
		result, err := h.dispatcher.CallTool(c.Request.Context(), req.Params.Name, req.Params.Arguments)
		if err != nil {
			logger.Error("tool call error", slog.String("tool", req.Params.Name), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, mcp.NewErrorResponse(req.ID, mcp.CodeInternalError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, mcp.NewResponse(req.ID, result))

	default:
		c.JSON(http.StatusOK, mcp.NewErrorResponse(req.ID, mcp.CodeMethodNotFound, "Method not found: "+req.Method))
	}
}
