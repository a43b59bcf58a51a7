package moneybox

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// drawdownRatio is the fraction of income a balance may fall below (negated)
// before a budget alert fires.
var drawdownRatio = decimal.NewFromFloat(0.20)

// EvaluateAlerts re-runs the alert rules against the current state and
// appends any notifications that are not already present for today. It is a
// pure re-evaluation: running it any number of times within one calendar day
// produces the same feed. It reports how many notifications were created.
func EvaluateAlerts(book *Book, now time.Time) int {
	created := 0

	// Budget drawdown rule, per box.
	for _, box := range []BoxID{Personal, Firm} {
		s := book.Summary(box)
		if !s.Income.IsPositive() {
			continue
		}
		threshold := s.Income.Scale(drawdownRatio).Neg()
		if s.Balance.LessThan(threshold) {
			title := fmt.Sprintf("%s Budget Alert", box.Name())
			msg := fmt.Sprintf("Your %s balance is %s, more than 20%% below your income.", box.Name(), s.Balance.String())
			if book.notifications.Notify(NotifyAlert, title, msg, now) {
				created++
			}
		}
	}

	// Bill due rule, per unpaid bill within the next three days.
	today := DateOf(now)
	for _, bill := range book.bills.Unpaid() {
		days := today.DaysUntil(bill.DueDate)
		if days < 0 || days > 3 {
			continue
		}
		title := fmt.Sprintf("Bill Due Soon: %s", bill.Description)
		var msg string
		switch days {
		case 0:
			msg = fmt.Sprintf("%s (%s) is due today.", bill.Description, bill.Amount.String())
		case 1:
			msg = fmt.Sprintf("%s (%s) is due in 1 day.", bill.Description, bill.Amount.String())
		default:
			msg = fmt.Sprintf("%s (%s) is due in %d days.", bill.Description, bill.Amount.String(), days)
		}
		if book.notifications.Notify(NotifyBill, title, msg, now) {
			created++
		}
	}

	return created
}
