package domain

// Category is a named grouping for transactions, scoped to income or expense.
type Category struct {
	Name     string          `json:"name"`
	Type     TransactionType `json:"type"` // income or expense
	IsActive bool            `json:"isActive"`
}
