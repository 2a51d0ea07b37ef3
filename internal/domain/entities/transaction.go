package entities

// Transaction directions.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a finance entry, optionally attached to a project.
type Transaction struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Type      string  `json:"type,omitempty"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency,omitempty"`
	Category  string  `json:"category,omitempty"`
	ProjectID string  `json:"project_id,omitempty"`
	Date      string  `json:"date,omitempty"`
}

func (t Transaction) RecordID() string { return t.ID }
