// Package moneybox provides the state and rules of a dual budgeting book: a
// personal box and a firm box, each with its own transaction ledger, plus
// recurring bills, a notification feed and a PIN gate. It is designed to be
// local-first: every collection is persisted as a plain JSON entry in a
// key-value store, so users keep full control over their data.
//
// The core functionalities include:
//   - Ledger Management: Recording and removing income and expense
//     transactions per box, with summaries (income, expenses, balance)
//     recomputed as a pure function of the collection.
//   - Bill Tracking: Recording recurring obligations and settling them, which
//     atomically records the matching expense in a ledger.
//   - Alerting: Re-evaluating budget drawdown and bill due-date rules after
//     every mutation, de-duplicating notifications per calendar day.
//   - Security Gate: A 4-digit PIN lock and a privacy display mode. The gate
//     blocks interaction, not access: the data is not encrypted.
//   - Data Persistence: Write-through of every collection to a store, keyed
//     per collection, so reloading yields an identical book.
//
// This package serves as the foundational logic for the `mbx` command-line
// tool.
package moneybox
