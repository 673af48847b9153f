package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/services"
	"github.com/expensemcp/expense_mcp_app/internal/dto"
	"github.com/expensemcp/expense_mcp_app/internal/middleware"
	"github.com/go-playground/validator/v10"
)

// Dispatcher routes tools/call requests to the service layer. Arguments are
// decoded and validated here so services only ever see well-formed requests.
type Dispatcher struct {
	services services.ServicesContainer
	validate *validator.Validate
}

// NewDispatcher creates a dispatcher over the given service container.
func NewDispatcher(container services.ServicesContainer) *Dispatcher {
	return &Dispatcher{
		services: container,
		validate: validator.New(),
	}
}

// decodeArgs unmarshals tool arguments into a request struct and runs its
// validate tags. Failures wrap apperrors.ErrValidation so they surface as
// tool-level error payloads rather than protocol errors.
func decodeArgs[T any](d *Dispatcher, raw json.RawMessage) (T, error) {
	var req T
	if len(raw) == 0 {
		return req, fmt.Errorf("%w: no arguments provided", apperrors.ErrValidation)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := d.validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return req, nil
}

// CallTool executes one named tool. Expected failures (bad input, missing
// resources, upstream rejections) come back as error payloads inside the
// tool result; only unexpected failures return a non-nil error, which the
// transport maps to a JSON-RPC internal error.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args json.RawMessage) (ToolResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("tool called", slog.String("tool", name))

	result, err := d.dispatch(ctx, name, args)
	if err == nil {
		return result, nil
	}
	if payload, expected := toolErrorPayload(err); expected {
		logger.Warn("tool call failed", slog.String("tool", name), slog.String("error", err.Error()))
		return textResult(payload)
	}
	return ToolResult{}, err
}

// toolErrorPayload maps expected failures to the structured error payload
// tool callers receive. Unexpected failures (including reconciliation
// defects) are not mapped; they escalate to the protocol layer.
func toolErrorPayload(err error) (dto.ErrorResult, bool) {
	var accountErr *apperrors.AccountNotFoundError
	if errors.As(err, &accountErr) {
		return dto.ErrorResult{
			Error:             fmt.Sprintf("Account '%s' not found", accountErr.Name),
			AvailableAccounts: accountErr.Available,
		}, true
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrUpstream):
		return dto.ErrorResult{Error: err.Error()}, true
	}
	return dto.ErrorResult{}, false
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args json.RawMessage) (ToolResult, error) {
	switch name {
	case "add_transaction":
		req, err := decodeArgs[dto.AddTransactionRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Transaction.AddTransaction(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "transfer_between_accounts":
		req, err := decodeArgs[dto.TransferRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Transaction.Transfer(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_account_balance":
		req, err := decodeArgs[dto.GetBalanceRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Transaction.GetBalances(ctx, req.AccountName)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_transactions":
		req, err := decodeArgs[dto.ListTransactionsRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Transaction.ListTransactions(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "edit_transaction":
		req, err := decodeArgs[dto.EditTransactionRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		updated, err := d.services.Transaction.EditTransaction(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{
			"success":     true,
			"message":     "Transaction updated successfully",
			"transaction": updated,
		})

	case "delete_transaction":
		req, err := decodeArgs[dto.DeleteTransactionRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		if err := d.services.Transaction.DeleteTransaction(ctx, req.TransactionID); err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{
			"success": true,
			"message": "Transaction deleted successfully",
		})

	case "get_summary":
		req, err := decodeArgs[dto.SummaryRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Summary.GetSummary(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "compare_spending":
		req, err := decodeArgs[dto.CompareSpendingRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Summary.CompareSpending(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "set_budget":
		req, err := decodeArgs[dto.SetBudgetRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Budget.SetBudget(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_budget_status":
		req, err := decodeArgs[dto.GetBudgetStatusRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Budget.GetBudgetStatus(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_categories":
		req, err := decodeArgs[dto.GetCategoriesRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Category.ListCategories(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_recurring_due":
		req, err := decodeArgs[dto.GetRecurringDueRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Recurring.GetRecurringDue(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_friend_balances":
		result, err := d.services.Sharing.GetFriendBalances(ctx)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "add_shared_expense":
		req, err := decodeArgs[dto.AddSharedExpenseRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Sharing.AddSharedExpense(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "update_shared_expense":
		req, err := decodeArgs[dto.UpdateSharedExpenseRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		result, err := d.services.Sharing.UpdateSharedExpense(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(result)

	case "get_shared_expense":
		req, err := decodeArgs[dto.GetSharedExpenseRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		expense, err := d.services.Sharing.GetSharedExpense(ctx, req.ExpenseID)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{"expense": expense})

	case "list_shared_expenses":
		req, err := decodeArgs[dto.ListSharedExpensesRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		expenses, err := d.services.Sharing.ListSharedExpenses(ctx, req)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{
			"count":    len(expenses),
			"expenses": expenses,
		})

	case "delete_shared_expense":
		req, err := decodeArgs[dto.DeleteSharedExpenseRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		if err := d.services.Sharing.DeleteSharedExpense(ctx, req.ExpenseID); err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{
			"success": true,
			"message": "Shared expense deleted",
		})

	case "settle_debt":
		req, err := decodeArgs[dto.SettleDebtRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		if err := d.services.Sharing.SettleDebt(ctx, req); err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recorded settlement of %s to friend %d", req.Amount.StringFixed(2), req.FriendID),
		})

	case "get_shared_groups":
		groups, err := d.services.Sharing.ListGroups(ctx)
		if err != nil {
			return ToolResult{}, err
		}
		if groups == nil {
			groups = []domain.SharedGroup{}
		}
		return textResult(map[string]any{"groups": groups})

	case "get_shared_categories":
		categories, err := d.services.Sharing.ListSharedCategories(ctx)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{"categories": categories})

	case "get_currencies":
		currencies, err := d.services.Sharing.ListCurrencies(ctx)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{"currencies": currencies})

	case "get_notifications":
		req, err := decodeArgs[dto.GetNotificationsRequest](d, args)
		if err != nil {
			return ToolResult{}, err
		}
		notifications, err := d.services.Sharing.ListNotifications(ctx, req.Limit)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(map[string]any{"notifications": notifications})
	}

	return ToolResult{}, fmt.Errorf("unknown tool: %s", name)
}
