package renderer

import (
	"strings"
	"testing"

	moneybox "github.com/firaseth/Money-Box"
)

func usd(v float64) moneybox.Money { return moneybox.M(v, "USD") }

func TestTransactions(t *testing.T) {
	txs := []moneybox.Transaction{
		moneybox.NewTransaction(moneybox.MustParse("2025-06-02"), "Rent", usd(1300), "Housing", moneybox.Expense),
		moneybox.NewTransaction(moneybox.MustParse("2025-06-01"), "Salary", usd(1000), "General", moneybox.Income),
	}

	md := Transactions(moneybox.Personal, txs, false)
	if !strings.Contains(md, "# Personal Transactions") {
		t.Error("missing title")
	}
	if !strings.Contains(md, "Rent") || !strings.Contains(md, "Salary") {
		t.Error("missing rows")
	}
	if !strings.Contains(md, "+$1,000.00") {
		t.Errorf("income not rendered with a plus sign:\n%s", md)
	}
	if !strings.Contains(md, "-$1,300.00") {
		t.Errorf("expense not rendered with a minus sign:\n%s", md)
	}
}

func TestTransactions_Empty(t *testing.T) {
	md := Transactions(moneybox.Firm, nil, false)
	if !strings.Contains(md, "No transactions yet") {
		t.Errorf("empty ledger placeholder missing:\n%s", md)
	}
}

func TestTransactions_PrivacyMasksAmounts(t *testing.T) {
	txs := []moneybox.Transaction{
		moneybox.NewTransaction(moneybox.MustParse("2025-06-01"), "Salary", usd(1000), "General", moneybox.Income),
	}
	md := Transactions(moneybox.Personal, txs, true)
	if strings.Contains(md, "1,000") || strings.Contains(md, "1000") {
		t.Errorf("privacy mode leaked an amount:\n%s", md)
	}
	if !strings.Contains(md, "••••") {
		t.Errorf("privacy mode mask missing:\n%s", md)
	}
}

func TestSummary(t *testing.T) {
	s := moneybox.Summary{Income: usd(1000), Expenses: usd(1300), Balance: usd(-300)}
	md := Summary(moneybox.Personal, s, false)
	for _, want := range []string{"$1,000.00", "$1,300.00", "-$300.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestBills_Status(t *testing.T) {
	today := moneybox.MustParse("2025-06-02")
	bills := []moneybox.Bill{
		{ID: "a", Description: "AWS", Amount: usd(50), DueDate: moneybox.MustParse("2025-06-04"), Category: "Infra", Frequency: moneybox.Monthly},
		{ID: "b", Description: "Rent", Amount: usd(900), DueDate: moneybox.MustParse("2025-06-01"), Category: "Housing", Frequency: moneybox.Monthly},
		{ID: "c", Description: "Domain", Amount: usd(12), DueDate: moneybox.MustParse("2025-05-01"), Category: "Infra", Frequency: moneybox.Annually, IsPaid: true},
	}
	md := Bills(bills, today, false)
	if !strings.Contains(md, "due in 2d") {
		t.Errorf("missing due-soon status:\n%s", md)
	}
	if !strings.Contains(md, "overdue") {
		t.Errorf("missing overdue status:\n%s", md)
	}
	if !strings.Contains(md, "| paid |") {
		t.Errorf("missing paid status:\n%s", md)
	}
}

func TestNotifications_UnreadBold(t *testing.T) {
	n := moneybox.Notification{Type: moneybox.NotifyAlert, Title: "Personal Budget Alert", Message: "over budget"}
	md := Notifications([]moneybox.Notification{n})
	if !strings.Contains(md, "**Personal Budget Alert**") {
		t.Errorf("unread notification not bold:\n%s", md)
	}

	n.IsRead = true
	md = Notifications([]moneybox.Notification{n})
	if strings.Contains(md, "**Personal Budget Alert**") {
		t.Errorf("read notification rendered bold:\n%s", md)
	}
}
