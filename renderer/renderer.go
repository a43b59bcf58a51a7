// Package renderer turns budgeting state into markdown for the terminal.
// Rendering consults the privacy flag: with privacy mode on, every monetary
// figure is masked. Masking is display-only.
package renderer

import (
	"fmt"
	"strings"

	moneybox "github.com/firaseth/Money-Box"
)

// money renders an amount, masked when privacy mode is on.
func money(m moneybox.Money, privacy bool) string {
	if privacy {
		return m.Masked()
	}
	return m.String()
}

// signed renders an amount with its direction sign, masked when privacy mode is on.
func signed(tx moneybox.Transaction, privacy bool) string {
	sign := "-"
	if tx.Type == moneybox.Income {
		sign = "+"
	}
	if privacy {
		return sign + tx.Amount.Masked()
	}
	return sign + tx.Amount.String()
}

// Summary renders the three aggregate figures of one box.
func Summary(box moneybox.BoxID, s moneybox.Summary, privacy bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Budget\n\n", box.Name())
	fmt.Fprintf(&b, "| Total Income | Total Expenses | Net Balance |\n")
	fmt.Fprintf(&b, "|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", money(s.Income, privacy), money(s.Expenses, privacy), money(s.Balance, privacy))
	return b.String()
}

// Transactions renders a box's ledger as a markdown table, most recent first.
func Transactions(box moneybox.BoxID, txs []moneybox.Transaction, privacy bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Transactions\n\n", box.Name())
	if len(txs) == 0 {
		b.WriteString("No transactions yet. Start your first box!\n")
		return b.String()
	}
	b.WriteString("| Date | Description | Category | Amount | ID |\n")
	b.WriteString("|---|---|---|---:|---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Description, tx.Category, signed(tx, privacy), tx.ID)
	}
	return b.String()
}

// Bills renders the bill book as a markdown table, with due-in day counts.
func Bills(bills []moneybox.Bill, today moneybox.Date, privacy bool) string {
	var b strings.Builder
	b.WriteString("# Bills\n\n")
	if len(bills) == 0 {
		b.WriteString("No bills tracked.\n")
		return b.String()
	}
	b.WriteString("| Due | Description | Category | Amount | Frequency | Status | ID |\n")
	b.WriteString("|---|---|---|---:|---|---|---|\n")
	for _, bill := range bills {
		status := "unpaid"
		if bill.IsPaid {
			status = "paid"
		} else if days := today.DaysUntil(bill.DueDate); days < 0 {
			status = "overdue"
		} else if days <= 3 {
			status = fmt.Sprintf("due in %dd", days)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			bill.DueDate, bill.Description, bill.Category, money(bill.Amount, privacy),
			bill.Frequency, status, bill.ID)
	}
	return b.String()
}

// Notifications renders the feed, most recent first. Unread entries are bold.
func Notifications(list []moneybox.Notification) string {
	var b strings.Builder
	b.WriteString("# Notifications\n\n")
	if len(list) == 0 {
		b.WriteString("All quiet.\n")
		return b.String()
	}
	for _, n := range list {
		title := n.Title
		if !n.IsRead {
			title = "**" + title + "**"
		}
		fmt.Fprintf(&b, "- %s [%s] %s: %s\n", n.Date.Format("2006-01-02 15:04"), n.Type, title, n.Message)
	}
	return b.String()
}

// Report renders the whole book in one markdown document: both boxes, the
// bill book and the unread notifications.
func Report(book *moneybox.Book, today moneybox.Date) string {
	privacy := book.Security().PrivacyMode
	var b strings.Builder
	b.WriteString("# MoneyBox Report\n\n")
	for _, box := range []moneybox.BoxID{moneybox.Personal, moneybox.Firm} {
		s := book.Summary(box)
		fmt.Fprintf(&b, "## %s Box\n\n", box.Name())
		fmt.Fprintf(&b, "| Total Income | Total Expenses | Net Balance |\n")
		fmt.Fprintf(&b, "|---:|---:|---:|\n")
		fmt.Fprintf(&b, "| %s | %s | %s |\n\n", money(s.Income, privacy), money(s.Expenses, privacy), money(s.Balance, privacy))
	}
	if unpaid := book.Bills().Unpaid(); len(unpaid) > 0 {
		b.WriteString("## Upcoming Bills\n\n")
		for _, bill := range unpaid {
			due := fmt.Sprintf("due %s", bill.DueDate)
			if days := today.DaysUntil(bill.DueDate); days < 0 {
				due = fmt.Sprintf("overdue since %s", bill.DueDate)
			} else if days == 0 {
				due = "due today"
			}
			fmt.Fprintf(&b, "- %s: %s (%s) %s\n", bill.Description, money(bill.Amount, privacy), bill.Category, due)
		}
		b.WriteString("\n")
	}
	if unread := book.Notifications().Unread(); unread > 0 {
		fmt.Fprintf(&b, "## Notifications (%d unread)\n\n", unread)
		for _, n := range book.Notifications().List() {
			if n.IsRead {
				continue
			}
			fmt.Fprintf(&b, "- [%s] %s: %s\n", n.Type, n.Title, n.Message)
		}
	}
	return b.String()
}
