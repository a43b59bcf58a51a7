package moneybox

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/firaseth/Money-Box/store"
)

// Store keys, one per persisted collection. They mirror the browser-era
// storage layout so an exported state file stays recognizable.
const (
	KeyPersonalTx    = "personal_tx"
	KeyFirmTx        = "firm_tx"
	KeyBills         = "bills"
	KeyNotifications = "notifications"
	KeySecurity      = "security"
	KeyTheme         = "theme"
)

// Book is the application state root: both ledgers, the bill book, the
// notification feed, the security gate and the theme preference. All mutation
// goes through Book methods, which write through to the store and re-run the
// alert rules.
type Book struct {
	personal      *Ledger
	firm          *Ledger
	bills         *BillBook
	notifications *Notifications
	security      Security
	theme         string

	store    store.Store
	currency string
	clock    func() time.Time
}

// NewBook creates an empty book persisted through s. Amounts default to the
// given currency.
func NewBook(s store.Store, currency string) *Book {
	return &Book{
		personal:      NewLedger(Personal),
		firm:          NewLedger(Firm),
		bills:         NewBillBook(),
		notifications: NewNotifications(),
		store:         s,
		currency:      currency,
		clock:         time.Now,
	}
}

// Currency returns the book's default currency code.
func (b *Book) Currency() string { return b.currency }

// Ledger returns the ledger for the given box.
func (b *Book) Ledger(box BoxID) *Ledger {
	if box == Firm {
		return b.firm
	}
	return b.personal
}

// Bills returns the bill book.
func (b *Book) Bills() *BillBook { return b.bills }

// Notifications returns the notification feed.
func (b *Book) Notifications() *Notifications { return b.notifications }

// Security returns the security gate.
func (b *Book) Security() *Security { return &b.security }

// Theme returns the persisted theme preference.
func (b *Book) Theme() string { return b.theme }

// Summary returns the pure aggregate of the given box.
func (b *Book) Summary(box BoxID) Summary { return b.Ledger(box).Summary() }

// gate refuses any data operation while the book is locked.
func (b *Book) gate() error {
	if b.security.IsLocked {
		return ErrLocked
	}
	return nil
}

// AddTransaction validates and records a transaction in the given box, then
// re-evaluates the alert rules.
func (b *Book) AddTransaction(box BoxID, date Date, description string, amount Money, category string, typ TransactionType) (Transaction, error) {
	if err := b.gate(); err != nil {
		return Transaction{}, err
	}
	tx, err := b.Ledger(box).Add(date, description, amount, category, typ)
	if err != nil {
		return Transaction{}, err
	}
	b.persist(ledgerKey(box), b.Ledger(box).Transactions())
	b.react()
	return tx, nil
}

// RemoveTransaction removes a transaction by id from the given box. Removing
// an unknown id is a no-op.
func (b *Book) RemoveTransaction(box BoxID, id string) (bool, error) {
	if err := b.gate(); err != nil {
		return false, err
	}
	removed := b.Ledger(box).Remove(id)
	if removed {
		b.persist(ledgerKey(box), b.Ledger(box).Transactions())
		b.react()
	}
	return removed, nil
}

// AddBill validates and records a new unpaid bill, then re-evaluates the
// alert rules (the bill may already be due within the alert window).
func (b *Book) AddBill(description string, amount Money, dueDate Date, category string, freq Frequency) (Bill, error) {
	if err := b.gate(); err != nil {
		return Bill{}, err
	}
	bill, err := b.bills.Add(description, amount, dueDate, category, freq)
	if err != nil {
		return Bill{}, err
	}
	b.persist(KeyBills, b.bills.Bills())
	b.react()
	return bill, nil
}

// PayBill settles a bill: it records the matching expense in the target box
// and flips the bill to paid, as one operation. Paying an already-paid bill
// is a no-op and returns no transaction. The expense is recorded first; the
// bill is only flipped once the expense exists, so a failure leaves the
// system unchanged.
func (b *Book) PayBill(id string, box BoxID) (*Transaction, error) {
	if err := b.gate(); err != nil {
		return nil, err
	}
	bill, ok := b.bills.Find(id)
	if !ok {
		return nil, fmt.Errorf("unknown bill %q", id)
	}
	if bill.IsPaid {
		return nil, nil
	}

	// The bill was validated on Add, so the settlement record is valid by
	// construction: build it directly and insert, then flip the bill. Doing
	// the insert first means a failed flip (unreachable after the checks
	// above) can still be rolled back by removing the record.
	tx := NewTransaction(DateOf(b.clock()), "Bill Payment: "+bill.Description, bill.Amount, bill.Category, Expense)
	tx.BillID = bill.ID
	b.Ledger(box).insert(tx)

	if _, ok := b.bills.markPaid(id); !ok {
		b.Ledger(box).Remove(tx.ID)
		return nil, fmt.Errorf("bill %q could not be marked paid", bill.Description)
	}

	b.persist(ledgerKey(box), b.Ledger(box).Transactions())
	b.persist(KeyBills, b.bills.Bills())
	b.react()
	return &tx, nil
}

// ClearNotifications marks the whole feed read.
func (b *Book) ClearNotifications() {
	b.notifications.ClearAll()
	b.persist(KeyNotifications, b.notifications.List())
}

// SetPIN sets the gate pin (exactly 4 digits).
func (b *Book) SetPIN(pin string) error {
	if err := b.security.SetPIN(pin); err != nil {
		return err
	}
	b.persist(KeySecurity, &b.security)
	return nil
}

// Lock engages the pin gate.
func (b *Book) Lock() error {
	if err := b.security.Lock(); err != nil {
		return err
	}
	b.persist(KeySecurity, &b.security)
	return nil
}

// Unlock disengages the pin gate if the candidate matches.
func (b *Book) Unlock(candidate string) error {
	if err := b.security.Unlock(candidate); err != nil {
		return err
	}
	b.persist(KeySecurity, &b.security)
	return nil
}

// TogglePrivacy flips privacy mode and returns the new value.
func (b *Book) TogglePrivacy() bool {
	on := b.security.TogglePrivacy()
	b.persist(KeySecurity, &b.security)
	return on
}

// SetTheme records the presentation theme preference.
func (b *Book) SetTheme(theme string) {
	b.theme = theme
	b.persist(KeyTheme, &theme)
}

// react re-runs the alert rules and persists the feed when it changed.
func (b *Book) react() {
	if EvaluateAlerts(b, b.clock()) > 0 {
		b.persist(KeyNotifications, b.notifications.List())
	}
}

// persist writes one collection through to the store. A write failure is
// logged and otherwise ignored: in-memory state stays authoritative for the
// rest of the session.
func (b *Book) persist(key string, v any) {
	if b.store == nil {
		return
	}
	if err := b.store.Set(key, v); err != nil {
		logrus.WithError(err).WithField("key", key).Error("could not persist state")
	}
}

func ledgerKey(box BoxID) string {
	if box == Firm {
		return KeyFirmTx
	}
	return KeyPersonalTx
}

// Load reads the whole book state from the store and re-runs the alert
// rules: a bill can drift into its due window between sessions with no
// mutation at all. Missing keys yield empty collections, so loading from an
// empty store returns a fresh book.
func Load(s store.Store, currency string) (*Book, error) {
	b := NewBook(s, currency)

	var personal, firm []Transaction
	if _, err := s.Get(KeyPersonalTx, &personal); err != nil {
		return nil, fmt.Errorf("could not load personal transactions: %w", err)
	}
	if _, err := s.Get(KeyFirmTx, &firm); err != nil {
		return nil, fmt.Errorf("could not load firm transactions: %w", err)
	}
	b.personal.setTransactions(personal)
	b.firm.setTransactions(firm)

	var bills []Bill
	if _, err := s.Get(KeyBills, &bills); err != nil {
		return nil, fmt.Errorf("could not load bills: %w", err)
	}
	b.bills.setBills(bills)

	var notifications []Notification
	if _, err := s.Get(KeyNotifications, &notifications); err != nil {
		return nil, fmt.Errorf("could not load notifications: %w", err)
	}
	b.notifications.setList(notifications)

	if _, err := s.Get(KeySecurity, &b.security); err != nil {
		return nil, fmt.Errorf("could not load security settings: %w", err)
	}
	if _, err := s.Get(KeyTheme, &b.theme); err != nil {
		return nil, fmt.Errorf("could not load theme: %w", err)
	}

	b.react()
	return b, nil
}
