// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// State is the session state of a [Ledger].
type State int

const (
	Uninitialized State = iota
	LocalLoaded
	GuestMode
	SyncingFirstTime
	Synced
	Syncing
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case LocalLoaded:
		return "local_loaded"
	case GuestMode:
		return "guest_mode"
	case SyncingFirstTime:
		return "syncing_first_time"
	case Synced:
		return "synced"
	case Syncing:
		return "syncing"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the ledger's in-memory collections.
type Snapshot struct {
	Transactions []models.Transaction
	Accounts     []models.Account
	Categories   []models.Category
}

// ledgerState is the authoritative in-memory view. It is changed only by
// apply.
type ledgerState struct {
	transactions []models.Transaction
	accounts     []models.Account
	categories   []models.Category
}

// command is one change to ledgerState. The set of variants is closed.
type command interface {
	isCommand()
}

type loadCommand struct {
	transactions []models.Transaction
	accounts     []models.Account
	categories   []models.Category
}

type replaceTransactionsCommand struct{ transactions []models.Transaction }

type putTransactionCommand struct{ tx models.Transaction }

type removeTransactionCommand struct{ id string }

type putAccountCommand struct{ account models.Account }

// removeAccountCommand also drops every transaction touching the account.
type removeAccountCommand struct{ id string }

type putCategoryCommand struct{ category models.Category }

type removeCategoryCommand struct{ id string }

func (loadCommand) isCommand()                {}
func (replaceTransactionsCommand) isCommand() {}
func (putTransactionCommand) isCommand()      {}
func (removeTransactionCommand) isCommand()   {}
func (putAccountCommand) isCommand()          {}
func (removeAccountCommand) isCommand()       {}
func (putCategoryCommand) isCommand()         {}
func (removeCategoryCommand) isCommand()      {}

func (s *ledgerState) apply(cmd command) {
	switch c := cmd.(type) {
	case loadCommand:
		s.transactions = models.CloneTransactions(c.transactions)
		s.accounts = slices.Clone(c.accounts)
		s.categories = slices.Clone(c.categories)

	case replaceTransactionsCommand:
		s.transactions = models.CloneTransactions(c.transactions)

	case putTransactionCommand:
		if i := slices.IndexFunc(s.transactions, func(t models.Transaction) bool { return t.ID == c.tx.ID }); i >= 0 {
			s.transactions[i] = c.tx.Clone()
			return
		}
		s.transactions = append(s.transactions, c.tx.Clone())

	case removeTransactionCommand:
		s.transactions = slices.DeleteFunc(s.transactions, func(t models.Transaction) bool { return t.ID == c.id })

	case putAccountCommand:
		if i := slices.IndexFunc(s.accounts, func(a models.Account) bool { return a.ID == c.account.ID }); i >= 0 {
			s.accounts[i] = c.account
			return
		}
		s.accounts = append(s.accounts, c.account)

	case removeAccountCommand:
		s.accounts = slices.DeleteFunc(s.accounts, func(a models.Account) bool { return a.ID == c.id })
		s.transactions = slices.DeleteFunc(s.transactions, func(t models.Transaction) bool { return t.TouchesAccount(c.id) })

	case putCategoryCommand:
		if i := slices.IndexFunc(s.categories, func(cat models.Category) bool { return cat.ID == c.category.ID }); i >= 0 {
			s.categories[i] = c.category
			return
		}
		s.categories = append(s.categories, c.category)

	case removeCategoryCommand:
		s.categories = slices.DeleteFunc(s.categories, func(cat models.Category) bool { return cat.ID == c.id })
	}
}

func (s *ledgerState) transaction(id string) (models.Transaction, bool) {
	i := slices.IndexFunc(s.transactions, func(t models.Transaction) bool { return t.ID == id })
	if i < 0 {
		return models.Transaction{}, false
	}
	return s.transactions[i].Clone(), true
}

func (s *ledgerState) snapshot() Snapshot {
	return Snapshot{
		Transactions: models.CloneTransactions(s.transactions),
		Accounts:     slices.Clone(s.accounts),
		Categories:   slices.Clone(s.categories),
	}
}
