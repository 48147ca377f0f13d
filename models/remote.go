// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteTransactionRow is the shape of a transaction in the remote store.
// Category and account names are denormalized into the row so that other
// devices and reports can render it without the local lookup tables.
type RemoteTransactionRow struct {
	ID           string          `json:"id" db:"id"`
	OwnerID      string          `json:"owner_id" db:"owner_id"`
	Type         TransactionType `json:"type" db:"type"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	CategoryID   string          `json:"category_id" db:"category_id"`
	CategoryName *string         `json:"category_name" db:"category_name"`
	AccountID    string          `json:"account_id" db:"account_id"`
	AccountName  *string         `json:"account_name" db:"account_name"`
	ToAccountID  *string         `json:"to_account_id" db:"to_account_id"`
	Note         *string         `json:"note" db:"note"`
	Date         Date            `json:"date" db:"date"`
	CreatedAt    *time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at" db:"updated_at"`
}

// Transaction converts a remote row back to the local shape. The
// denormalized names and the owner id are dropped; a missing timestamp
// becomes the zero time, which the merge treats as older than anything.
func (r RemoteTransactionRow) Transaction() Transaction {
	tx := Transaction{
		ID:          r.ID,
		Type:        r.Type,
		Amount:      r.Amount,
		CategoryID:  r.CategoryID,
		AccountID:   r.AccountID,
		ToAccountID: r.ToAccountID,
		Date:        r.Date,
		Note:        r.Note,
	}
	if r.CreatedAt != nil {
		tx.CreatedAt = r.CreatedAt.UTC()
	}
	if r.UpdatedAt != nil {
		tx.UpdatedAt = r.UpdatedAt.UTC()
	}
	return tx
}

// NameLookup resolves display names for denormalization.
type NameLookup struct {
	categories map[string]string
	accounts   map[string]string
}

// NewNameLookup indexes the given categories and accounts by id.
func NewNameLookup(categories []Category, accounts []Account) NameLookup {
	l := NameLookup{
		categories: make(map[string]string, len(categories)),
		accounts:   make(map[string]string, len(accounts)),
	}
	for _, c := range categories {
		l.categories[c.ID] = c.Name
	}
	for _, a := range accounts {
		l.accounts[a.ID] = a.Name
	}
	return l
}

// ToRemoteRow denormalizes tx for ownerID. Unknown category or account ids
// produce a nil name rather than an error.
func (l NameLookup) ToRemoteRow(tx Transaction, ownerID string) RemoteTransactionRow {
	row := RemoteTransactionRow{
		ID:          tx.ID,
		OwnerID:     ownerID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		CategoryID:  tx.CategoryID,
		AccountID:   tx.AccountID,
		ToAccountID: tx.ToAccountID,
		Note:        tx.Note,
		Date:        tx.Date,
	}
	if name, ok := l.categories[tx.CategoryID]; ok {
		row.CategoryName = &name
	}
	if name, ok := l.accounts[tx.AccountID]; ok {
		row.AccountName = &name
	}
	if !tx.CreatedAt.IsZero() {
		t := tx.CreatedAt
		row.CreatedAt = &t
	}
	if !tx.UpdatedAt.IsZero() {
		t := tx.UpdatedAt
		row.UpdatedAt = &t
	}
	return row
}

// ToRemoteRows denormalizes every transaction in txs.
func (l NameLookup) ToRemoteRows(txs []Transaction, ownerID string) []RemoteTransactionRow {
	rows := make([]RemoteTransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, l.ToRemoteRow(tx, ownerID))
	}
	return rows
}
