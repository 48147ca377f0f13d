// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ledger-sync/models"
)

// MergeTransactions combines local and remote records by id with
// last-writer-wins on UpdatedAt. Ties go to remote. A record without a
// timestamp loses to any record that has one. Duplicate ids inside one
// input are folded with the same rule.
//
// The result is in no particular order.
func MergeTransactions(local, remote []models.Transaction) []models.Transaction {
	byID := make(map[string]models.Transaction, len(local)+len(remote))

	for _, tx := range local {
		if cur, ok := byID[tx.ID]; ok && !newerOrEqual(tx, cur) {
			continue
		}
		byID[tx.ID] = tx.Clone()
	}
	for _, tx := range remote {
		if cur, ok := byID[tx.ID]; ok && !newerOrEqual(tx, cur) {
			continue
		}
		byID[tx.ID] = tx.Clone()
	}

	merged := make([]models.Transaction, 0, len(byID))
	for _, tx := range byID {
		merged = append(merged, tx)
	}
	return merged
}

// newerOrEqual reports whether candidate should replace current.
func newerOrEqual(candidate, current models.Transaction) bool {
	switch {
	case !candidate.HasTimestamp():
		return !current.HasTimestamp()
	case !current.HasTimestamp():
		return true
	default:
		return !candidate.UpdatedAt.Before(current.UpdatedAt)
	}
}

type mergeEngine struct{}

// NewMergeEngine returns the [TransactionMerger] backed by
// [MergeTransactions].
func NewMergeEngine() TransactionMerger {
	return mergeEngine{}
}

func (mergeEngine) Merge(local, remote []models.Transaction) []models.Transaction {
	return MergeTransactions(local, remote)
}
