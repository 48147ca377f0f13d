// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType describes what kind of money container an [Account] is.
type AccountType string

const (
	CashAccount    AccountType = "cash"
	BankAccount    AccountType = "bank"
	CardAccount    AccountType = "card"
	SavingsAccount AccountType = "savings"
)

func (t AccountType) Valid() bool {
	switch t {
	case CashAccount, BankAccount, CardAccount, SavingsAccount:
		return true
	}
	return false
}

// Account is a money container. Accounts are local-only: they are never
// pushed to the remote store, only their display names travel inside
// denormalized transaction rows.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// DefaultAccounts is the account set a fresh local store is seeded with.
func DefaultAccounts(now time.Time) []Account {
	return []Account{
		{ID: "acc-cash", Name: "Cash", Type: CashAccount, InitialBalance: decimal.Zero, CreatedAt: now},
		{ID: "acc-bank", Name: "Bank", Type: BankAccount, InitialBalance: decimal.Zero, CreatedAt: now},
	}
}
