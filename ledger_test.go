package moneybox

import (
	"errors"
	"testing"
)

func usd(v float64) Money { return M(v, "USD") }

func TestLedger_Add_Validation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      Money
		wantErr     error
	}{
		{"valid", "Salary", usd(1000), nil},
		{"empty description", "", usd(10), ErrEmptyDescription},
		{"zero amount", "Coffee", usd(0), ErrBadAmount},
		{"negative amount", "Coffee", usd(-3), ErrBadAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(Personal)
			_, err := l.Add(MustParse("2025-06-01"), tt.description, tt.amount, "General", Income)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			wantLen := 0
			if tt.wantErr == nil {
				wantLen = 1
			}
			// A rejected add must leave the ledger untouched.
			if l.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", l.Len(), wantLen)
			}
		})
	}
}

func TestLedger_Add_PrependsNewestFirst(t *testing.T) {
	l := NewLedger(Personal)
	first, _ := l.Add(MustParse("2025-06-01"), "First", usd(10), "General", Expense)
	second, _ := l.Add(MustParse("2025-06-02"), "Second", usd(20), "General", Expense)

	txs := l.Transactions()
	if len(txs) != 2 {
		t.Fatalf("Len() = %d, want 2", len(txs))
	}
	if txs[0].ID != second.ID || txs[1].ID != first.ID {
		t.Errorf("transactions not most-recent-first: got %q then %q", txs[0].Description, txs[1].Description)
	}
	if first.ID == second.ID {
		t.Errorf("ids are not unique: %q", first.ID)
	}
}

func TestLedger_Summary(t *testing.T) {
	tests := []struct {
		name    string
		entries []struct {
			amount float64
			typ    TransactionType
		}
		income   float64
		expenses float64
		balance  float64
	}{
		{
			name: "mixed",
			entries: []struct {
				amount float64
				typ    TransactionType
			}{{1000, Income}, {1300, Expense}, {200, Income}},
			income:   1200,
			expenses: 1300,
			balance:  -100,
		},
		{
			name: "only income",
			entries: []struct {
				amount float64
				typ    TransactionType
			}{{50, Income}, {25.5, Income}},
			income:   75.5,
			expenses: 0,
			balance:  75.5,
		},
		{
			name:     "empty",
			income:   0,
			expenses: 0,
			balance:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(Firm)
			for _, e := range tt.entries {
				if _, err := l.Add(Today(), "x", usd(e.amount), "General", e.typ); err != nil {
					t.Fatalf("Add: %v", err)
				}
			}
			s := l.Summary()
			if !s.Income.Equal(usd(tt.income)) && !(s.Income.IsZero() && tt.income == 0) {
				t.Errorf("Income = %v, want %v", s.Income, tt.income)
			}
			if !s.Expenses.Equal(usd(tt.expenses)) && !(s.Expenses.IsZero() && tt.expenses == 0) {
				t.Errorf("Expenses = %v, want %v", s.Expenses, tt.expenses)
			}
			if !s.Balance.Equal(usd(tt.balance)) && !(s.Balance.IsZero() && tt.balance == 0) {
				t.Errorf("Balance = %v, want %v", s.Balance, tt.balance)
			}
		})
	}
}

func TestLedger_Summary_OrderIndependent(t *testing.T) {
	a := NewLedger(Personal)
	a.Add(Today(), "Salary", usd(1000), "General", Income)
	a.Add(Today(), "Rent", usd(800), "Housing", Expense)

	b := NewLedger(Personal)
	b.Add(Today(), "Rent", usd(800), "Housing", Expense)
	b.Add(Today(), "Salary", usd(1000), "General", Income)

	sa, sb := a.Summary(), b.Summary()
	if !sa.Balance.Equal(sb.Balance) || !sa.Income.Equal(sb.Income) || !sa.Expenses.Equal(sb.Expenses) {
		t.Errorf("summary depends on order: %+v vs %+v", sa, sb)
	}
}

func TestLedger_Remove(t *testing.T) {
	l := NewLedger(Personal)
	tx1, _ := l.Add(Today(), "Keep", usd(10), "General", Expense)
	tx2, _ := l.Add(Today(), "Drop", usd(20), "General", Expense)

	if !l.Remove(tx2.ID) {
		t.Fatal("Remove(existing) = false, want true")
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if l.Transactions()[0].ID != tx1.ID {
		t.Errorf("wrong transaction removed: kept %q", l.Transactions()[0].Description)
	}

	// Removing an unknown id is a no-op.
	if l.Remove("nope") {
		t.Error("Remove(unknown) = true, want false")
	}
	if l.Len() != 1 {
		t.Errorf("no-op removal changed the ledger: Len() = %d", l.Len())
	}
}
