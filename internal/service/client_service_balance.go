// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// AccountBalance is the initial balance of account plus income and incoming
// transfers, minus expenses and outgoing transfers. A transfer from an
// account to itself nets to zero.
func AccountBalance(account models.Account, txs []models.Transaction) decimal.Decimal {
	balance := account.InitialBalance
	for _, tx := range txs {
		balance = balance.Add(delta(account.ID, tx))
	}
	return balance
}

// Balances computes [AccountBalance] for every account, keyed by id.
func Balances(accounts []models.Account, txs []models.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		out[a.ID] = a.InitialBalance
	}
	for _, tx := range txs {
		if balance, ok := out[tx.AccountID]; ok {
			out[tx.AccountID] = balance.Add(delta(tx.AccountID, tx))
		}
		if tx.ToAccountID == nil || *tx.ToAccountID == tx.AccountID {
			continue
		}
		if balance, ok := out[*tx.ToAccountID]; ok {
			out[*tx.ToAccountID] = balance.Add(delta(*tx.ToAccountID, tx))
		}
	}
	return out
}

func delta(accountID string, tx models.Transaction) decimal.Decimal {
	d := decimal.Zero
	switch tx.Type {
	case models.Income:
		if tx.AccountID == accountID {
			d = d.Add(tx.Amount)
		}
	case models.Expense:
		if tx.AccountID == accountID {
			d = d.Sub(tx.Amount)
		}
	case models.Transfer:
		if tx.AccountID == accountID {
			d = d.Sub(tx.Amount)
		}
		if tx.ToAccountID != nil && *tx.ToAccountID == accountID {
			d = d.Add(tx.Amount)
		}
	}
	return d
}
