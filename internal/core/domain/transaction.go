package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a transaction as income, expense, or a transfer
// between two accounts.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// Transaction is an immutable ledger record affecting one account. A transfer
// is a single record carrying both the source and destination account
// references, not a double-entry pair.
type Transaction struct {
	TransactionID       string          `json:"transactionID"` // Primary Key (UUID)
	Date                string          `json:"date"`          // Canonical YYYY-MM-DD
	Type                TransactionType `json:"type"`
	Amount              decimal.Decimal `json:"amount"` // Always positive; sign is derived from Type
	Category            string          `json:"category"`
	AccountID           string          `json:"accountID"`           // FK -> Account.AccountID (Not Null)
	TransferToAccountID string          `json:"transferToAccountID"` // Set only for transfers
	TransferID          string          `json:"transferID"`          // Groups the two legs of a transfer
	Description         string          `json:"description"`         // Nullable
	PaymentMethod       string          `json:"paymentMethod"`       // upi, card, cash, netbanking, wallet
	Tags                []string        `json:"tags"`                // Optional free-form tags
}

// TransactionFilter captures the predicate filters the storage collaborator
// supports when listing transactions.
type TransactionFilter struct {
	FromDate string
	ToDate   string
	Type     TransactionType
	Category string
	Limit    int
}

// TransactionUpdate carries a partial field overwrite for an existing
// transaction. Nil fields are left untouched.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *string
}
