// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of money movement a [Transaction] records.
type TransactionType string

const (
	Expense  TransactionType = "expense"
	Income   TransactionType = "income"
	Transfer TransactionType = "transfer"
)

// Valid reports whether t is one of the known transaction kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case Expense, Income, Transfer:
		return true
	}
	return false
}

// Transaction is the unit of synchronization between the local store and the
// remote store.
//
// ID is generated on the client and never reassigned. UpdatedAt drives
// last-writer-wins conflict resolution; a zero UpdatedAt means the record has
// no comparable timestamp and loses against any record that has one.
//
// The JSON form is the one persisted in the local document store.
type Transaction struct {
	// ID is the globally unique, client-generated identifier.
	ID string `json:"id"`

	// Type is expense, income or transfer.
	Type TransactionType `json:"type"`

	// Amount is a non-negative magnitude; the direction is implied by Type.
	Amount decimal.Decimal `json:"amount"`

	// CategoryID references a [Category].
	CategoryID string `json:"categoryId"`

	// AccountID references the source [Account].
	AccountID string `json:"accountId"`

	// ToAccountID references the destination [Account]. Set if and only if
	// Type is [Transfer].
	ToAccountID *string `json:"toAccountId,omitempty"`

	// Date is the calendar day the transaction happened on.
	Date Date `json:"date"`

	// Note is optional free text.
	Note *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTimestamp reports whether the record carries a comparable update
// timestamp.
func (t Transaction) HasTimestamp() bool {
	return !t.UpdatedAt.IsZero()
}

// IsTransfer reports whether the transaction moves money between accounts.
func (t Transaction) IsTransfer() bool {
	return t.Type == Transfer
}

// TouchesAccount reports whether accountID is the source or the destination
// of the transaction.
func (t Transaction) TouchesAccount(accountID string) bool {
	if t.AccountID == accountID {
		return true
	}
	return t.ToAccountID != nil && *t.ToAccountID == accountID
}

// Clone returns a deep copy of t so that callers may mutate the optional
// fields without aliasing the original.
func (t Transaction) Clone() Transaction {
	c := t
	if t.ToAccountID != nil {
		v := *t.ToAccountID
		c.ToAccountID = &v
	}
	if t.Note != nil {
		v := *t.Note
		c.Note = &v
	}
	return c
}

// CloneTransactions deep-copies a slice of transactions.
func CloneTransactions(src []Transaction) []Transaction {
	if src == nil {
		return nil
	}
	dst := make([]Transaction, 0, len(src))
	for _, tx := range src {
		dst = append(dst, tx.Clone())
	}
	return dst
}
