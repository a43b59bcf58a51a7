package moneybox

import (
	"fmt"

	"github.com/google/uuid"
)

// TransactionType is a typed string for the two directions money can flow.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// BoxID identifies one of the two tracked boxes.
type BoxID string

const (
	Personal BoxID = "personal"
	Firm     BoxID = "firm"
)

// ParseBoxID parses a string into a BoxID.
func ParseBoxID(s string) (BoxID, error) {
	switch BoxID(s) {
	case Personal:
		return Personal, nil
	case Firm:
		return Firm, nil
	default:
		return "", fmt.Errorf("unknown box: %q", s)
	}
}

// Name returns the display name of the box ("Personal" or "Firm").
func (b BoxID) Name() string {
	switch b {
	case Personal:
		return "Personal"
	case Firm:
		return "Firm"
	default:
		return string(b)
	}
}

// Transaction is one immutable record in a box's ledger. It can be removed
// but never edited.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	BillID      string          `json:"billId,omitempty"` // set when the record settles a bill
}

// NewTransaction creates a transaction with a fresh unique id.
func NewTransaction(date Date, description string, amount Money, category string, typ TransactionType) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        typ,
	}
}
