package moneybox

import (
	"errors"
	"slices"
)

// Validation failures at the mutation boundary. The mutation does not happen;
// nothing else changes.
var (
	ErrEmptyDescription = errors.New("description is empty")
	ErrBadAmount        = errors.New("amount must be a positive number")
)

// Ledger owns the transactions of one box, most recent first.
type Ledger struct {
	box          BoxID
	transactions []Transaction
}

// NewLedger creates an empty ledger for the given box.
func NewLedger(box BoxID) *Ledger {
	return &Ledger{box: box, transactions: make([]Transaction, 0)}
}

// Box returns the box this ledger belongs to.
func (l *Ledger) Box() BoxID { return l.box }

// Add validates and prepends a new transaction. On validation failure the
// ledger is left untouched.
func (l *Ledger) Add(date Date, description string, amount Money, category string, typ TransactionType) (Transaction, error) {
	if description == "" {
		return Transaction{}, ErrEmptyDescription
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrBadAmount
	}
	if date.IsZero() {
		date = Today()
	}
	tx := NewTransaction(date, description, amount, category, typ)
	l.insert(tx)
	return tx, nil
}

// insert prepends an already-built transaction.
func (l *Ledger) insert(tx Transaction) {
	l.transactions = append([]Transaction{tx}, l.transactions...)
}

// Remove deletes the transaction with the given id. It reports whether a
// record was removed; removing an unknown id is a no-op.
func (l *Ledger) Remove(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Transactions returns the records, most recent first. The slice is a copy.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Summary is the pure aggregate of a ledger.
type Summary struct {
	Income   Money
	Expenses Money
	Balance  Money
}

// Summary recomputes income, expenses and balance from scratch. It is a pure
// function of the current collection and independent of record order.
func (l *Ledger) Summary() Summary {
	var income, expenses Money
	for _, tx := range l.transactions {
		switch tx.Type {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return Summary{Income: income, Expenses: expenses, Balance: income.Sub(expenses)}
}

// setTransactions replaces the whole collection, for decoding.
func (l *Ledger) setTransactions(txs []Transaction) {
	l.transactions = txs
}
