package services

import (
	portssvc "github.com/expensemcp/expense_mcp_app/internal/core/ports/services"
)

// ServicesContainer bundles every service facade the tool dispatcher needs.
type ServicesContainer struct {
	Transaction portssvc.TransactionSvcFacade
	Summary     portssvc.SummarySvcFacade
	Budget      portssvc.BudgetSvcFacade
	Category    portssvc.CategorySvcFacade
	Recurring   portssvc.RecurringSvcFacade
	Sharing     portssvc.SharingSvcFacade
}
