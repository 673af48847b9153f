package mcp

// ToolCatalog returns the declared tool set served by tools/list. Order is
// stable so clients see a deterministic catalog.
func ToolCatalog() []Tool {
	return []Tool{
		{
			Name:        "add_transaction",
			Description: "Record a new income or expense transaction. Use this when user mentions spending money or receiving money.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"type":           {Type: "string", Enum: []string{"income", "expense"}, Description: "Type of transaction"},
					"amount":         {Type: "number", Description: "Transaction amount in INR"},
					"category":       {Type: "string", Description: "Category like Food & Dining, Rent, Salary, etc."},
					"account_name":   {Type: "string", Description: "Name of account used (e.g., 'HDFC Credit Card', 'Cash')"},
					"date":           {Type: "string", Description: "Transaction date. Can be 'today', 'yesterday', or YYYY-MM-DD. Default: today"},
					"description":    {Type: "string", Description: "Optional notes about the transaction"},
					"payment_method": {Type: "string", Enum: []string{"upi", "card", "cash", "netbanking", "wallet"}, Description: "How payment was made"},
					"tags":           {Type: "array", Items: &Property{Type: "string"}, Description: "Optional tags for flexible categorization"},
				},
				Required: []string{"type", "amount", "category", "account_name"},
			},
		},
		{
			Name:        "transfer_between_accounts",
			Description: "Transfer money between accounts (e.g., paying credit card from bank account, moving to savings). This is NOT income or expense.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"from_account": {Type: "string", Description: "Account to transfer from"},
					"to_account":   {Type: "string", Description: "Account to transfer to"},
					"amount":       {Type: "number", Description: "Amount to transfer"},
					"date":         {Type: "string", Description: "Transfer date (default: today)"},
					"description":  {Type: "string", Description: "Optional notes (e.g., 'Credit card payment')"},
				},
				Required: []string{"from_account", "to_account", "amount"},
			},
		},
		{
			Name:        "get_account_balance",
			Description: "Get current balance of one or all accounts. Balance is calculated from all transactions.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"account_name": {Type: "string", Description: "Specific account name, or omit to get all accounts"},
				},
			},
		},
		{
			Name:        "get_transactions",
			Description: "Get transaction history with optional filters.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"from_date":    {Type: "string", Description: "Start date (YYYY-MM-DD)"},
					"to_date":      {Type: "string", Description: "End date (YYYY-MM-DD)"},
					"type":         {Type: "string", Enum: []string{"income", "expense", "transfer"}, Description: "Filter by transaction type"},
					"category":     {Type: "string", Description: "Filter by category"},
					"account_name": {Type: "string", Description: "Filter by account"},
					"search":       {Type: "string", Description: "Search in description and category"},
					"limit":        {Type: "number", Description: "Number of transactions to return (default: 20)"},
				},
			},
		},
		{
			Name:        "edit_transaction",
			Description: "Edit an existing transaction. User must provide transaction ID.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"transaction_id": {Type: "string", Description: "UUID of the transaction to edit"},
					"amount":         {Type: "number", Description: "New amount"},
					"category":       {Type: "string", Description: "New category"},
					"description":    {Type: "string", Description: "New description"},
					"date":           {Type: "string", Description: "New date"},
				},
				Required: []string{"transaction_id"},
			},
		},
		{
			Name:        "delete_transaction",
			Description: "Delete a transaction. User must provide transaction ID.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"transaction_id": {Type: "string", Description: "UUID of the transaction to delete"},
				},
				Required: []string{"transaction_id"},
			},
		},
		{
			Name:        "get_summary",
			Description: "Get financial summary and analytics for a period.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"period":    {Type: "string", Enum: []string{"this_month", "last_month", "this_year", "custom"}, Description: "Time period for summary"},
					"from_date": {Type: "string", Description: "Start date for custom period"},
					"to_date":   {Type: "string", Description: "End date for custom period"},
				},
				Required: []string{"period"},
			},
		},
		{
			Name:        "compare_spending",
			Description: "Compare spending between two periods (e.g., this month vs last month).",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"period1": {Type: "string", Enum: []string{"this_month", "last_month"}, Description: "First period to compare"},
					"period2": {Type: "string", Enum: []string{"this_month", "last_month"}, Description: "Second period to compare"},
				},
				Required: []string{"period1", "period2"},
			},
		},
		{
			Name:        "set_budget",
			Description: "Set monthly budget for a category.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"category": {Type: "string", Description: "Category name"},
					"amount":   {Type: "number", Description: "Budget limit amount"},
					"month":    {Type: "string", Description: "Month in YYYY-MM format (default: current month)"},
				},
				Required: []string{"category", "amount"},
			},
		},
		{
			Name:        "get_budget_status",
			Description: "Check budget status for current or specific month.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"month":    {Type: "string", Description: "Month in YYYY-MM format (default: current month)"},
					"category": {Type: "string", Description: "Specific category, or omit for all categories"},
				},
			},
		},
		{
			Name:        "get_categories",
			Description: "Get list of available categories.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"type": {Type: "string", Enum: []string{"income", "expense"}, Description: "Filter by type"},
				},
			},
		},
		{
			Name:        "get_recurring_due",
			Description: "Get upcoming recurring transactions that are due soon.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"days_ahead": {Type: "number", Description: "Look ahead this many days (default: 7)"},
				},
			},
		},
		{
			Name:        "get_friend_balances",
			Description: "Get who owes whom across all friends on the shared-expense service, netted per currency.",
			InputSchema: Schema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "add_shared_expense",
			Description: "Add an expense split equally between you and friends on the shared-expense service.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"cost":          {Type: "number", Description: "Total cost of the expense"},
					"description":   {Type: "string", Description: "What the expense was for"},
					"participants":  {Type: "array", Items: &Property{Type: "number"}, Description: "Friend IDs sharing the expense (you are always included)"},
					"payer_id":      {Type: "number", Description: "Who paid. Default: you"},
					"currency_code": {Type: "string", Description: "Currency code (default: INR)"},
					"group_id":      {Type: "number", Description: "Optional group to file the expense under"},
					"date":          {Type: "string", Description: "Expense date. Can be 'today', 'yesterday', or YYYY-MM-DD. Default: today"},
				},
				Required: []string{"cost", "description", "participants"},
			},
		},
		{
			Name:        "update_shared_expense",
			Description: "Update a shared expense, re-splitting it equally between the given participants.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"expense_id":    {Type: "number", Description: "ID of the expense to update"},
					"cost":          {Type: "number", Description: "New total cost"},
					"description":   {Type: "string", Description: "New description"},
					"participants":  {Type: "array", Items: &Property{Type: "number"}, Description: "Friend IDs sharing the expense (you are always included)"},
					"payer_id":      {Type: "number", Description: "Who paid. Default: you"},
					"currency_code": {Type: "string", Description: "Currency code (default: INR)"},
					"group_id":      {Type: "number", Description: "Optional group to file the expense under"},
					"date":          {Type: "string", Description: "New expense date"},
				},
				Required: []string{"expense_id", "cost", "description", "participants"},
			},
		},
		{
			Name:        "get_shared_expense",
			Description: "Get one shared expense by ID, including per-person shares.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"expense_id": {Type: "number", Description: "ID of the expense"},
				},
				Required: []string{"expense_id"},
			},
		},
		{
			Name:        "list_shared_expenses",
			Description: "List shared expenses, optionally filtered by group, friend, or date range.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"group_id":     {Type: "number", Description: "Filter by group"},
					"friend_id":    {Type: "number", Description: "Filter by friend"},
					"dated_after":  {Type: "string", Description: "Only expenses after this date (YYYY-MM-DD)"},
					"dated_before": {Type: "string", Description: "Only expenses before this date (YYYY-MM-DD)"},
					"limit":        {Type: "number", Description: "Maximum number of expenses to return"},
				},
			},
		},
		{
			Name:        "delete_shared_expense",
			Description: "Delete a shared expense by ID.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"expense_id": {Type: "number", Description: "ID of the expense to delete"},
				},
				Required: []string{"expense_id"},
			},
		},
		{
			Name:        "settle_debt",
			Description: "Record a settlement payment from you to a friend.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"friend_id":     {Type: "number", Description: "Friend being paid"},
					"amount":        {Type: "number", Description: "Amount paid"},
					"currency_code": {Type: "string", Description: "Currency code (default: INR)"},
				},
				Required: []string{"friend_id", "amount"},
			},
		},
		{
			Name:        "get_shared_groups",
			Description: "List your groups on the shared-expense service.",
			InputSchema: Schema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "get_shared_categories",
			Description: "List the expense categories defined by the shared-expense service.",
			InputSchema: Schema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "get_currencies",
			Description: "List the currencies the shared-expense service supports.",
			InputSchema: Schema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "get_notifications",
			Description: "Get recent activity from the shared-expense service.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"limit": {Type: "number", Description: "Maximum number of notifications to return"},
				},
			},
		},
	}
}
