package moneybox

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Frequency is how often a bill recurs. It is recorded for display only:
// paying a bill does not regenerate it.
type Frequency string

const (
	Weekly   Frequency = "weekly"
	Monthly  Frequency = "monthly"
	Annually Frequency = "annually"
)

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	case Annually:
		return Annually, nil
	default:
		return "", fmt.Errorf("unknown frequency: %q", s)
	}
}

// Bill is a recurring obligation. IsPaid goes false to true exactly once.
type Bill struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	DueDate     Date      `json:"dueDate"`
	Category    string    `json:"category"`
	IsPaid      bool      `json:"isPaid"`
	Frequency   Frequency `json:"frequency"`
}

// BillBook owns the bill collection, most recent first.
type BillBook struct {
	bills []Bill
}

// NewBillBook creates an empty bill book.
func NewBillBook() *BillBook {
	return &BillBook{bills: make([]Bill, 0)}
}

// Add validates and prepends a new unpaid bill.
func (b *BillBook) Add(description string, amount Money, dueDate Date, category string, freq Frequency) (Bill, error) {
	if description == "" {
		return Bill{}, ErrEmptyDescription
	}
	if !amount.IsPositive() {
		return Bill{}, ErrBadAmount
	}
	bill := Bill{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Category:    category,
		Frequency:   freq,
	}
	b.bills = append([]Bill{bill}, b.bills...)
	return bill, nil
}

// Find returns a copy of the bill with the given id. It reports whether the
// bill exists; mutating the copy never touches the book.
func (b *BillBook) Find(id string) (Bill, bool) {
	if bill := b.find(id); bill != nil {
		return *bill, true
	}
	return Bill{}, false
}

// find returns a pointer into the collection, for internal mutation only.
func (b *BillBook) find(id string) *Bill {
	for i := range b.bills {
		if b.bills[i].ID == id {
			return &b.bills[i]
		}
	}
	return nil
}

// markPaid flips the bill to paid. It reports whether the bill transitioned;
// an already-paid or unknown bill is a no-op. Settlement (recording the
// matching expense) is composed at the Book level so both effects stay atomic.
func (b *BillBook) markPaid(id string) (Bill, bool) {
	bill := b.find(id)
	if bill == nil || bill.IsPaid {
		return Bill{}, false
	}
	bill.IsPaid = true
	return *bill, true
}

// Bills returns the collection, most recent first. The slice is a copy.
func (b *BillBook) Bills() []Bill {
	return slices.Clone(b.bills)
}

// Unpaid returns the unpaid bills, most recent first.
func (b *BillBook) Unpaid() []Bill {
	var out []Bill
	for _, bill := range b.bills {
		if !bill.IsPaid {
			out = append(out, bill)
		}
	}
	return out
}

// setBills replaces the whole collection, for decoding.
func (b *BillBook) setBills(bills []Bill) {
	b.bills = bills
}
