// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id", "owner_id", "type", "amount",
	"category_id", "category_name", "account_id", "account_name",
	"to_account_id", "note", "date", "created_at", "updated_at",
}

// upsertTransactionSuffix keeps the newer row and never crosses owners.
const upsertTransactionSuffix = `ON CONFLICT (id) DO UPDATE SET
	type = EXCLUDED.type,
	amount = EXCLUDED.amount,
	category_id = EXCLUDED.category_id,
	category_name = EXCLUDED.category_name,
	account_id = EXCLUDED.account_id,
	account_name = EXCLUDED.account_name,
	to_account_id = EXCLUDED.to_account_id,
	note = EXCLUDED.note,
	date = EXCLUDED.date,
	created_at = COALESCE(transactions.created_at, EXCLUDED.created_at),
	updated_at = EXCLUDED.updated_at
WHERE transactions.owner_id = EXCLUDED.owner_id
	AND transactions.updated_at <= EXCLUDED.updated_at`

// transactionRepository is the Postgres implementation of
// [TransactionRepository].
type transactionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{db: db, logger: logger}
}

func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.RemoteTransactionRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("date DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.ListByOwner").Str("owner_id", ownerID).Msg("failed to select transactions")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.RemoteTransactionRow, 0, 64)
	for rows.Next() {
		var row models.RemoteTransactionRow
		if err := rows.Scan(
			&row.ID, &row.OwnerID, &row.Type, &row.Amount,
			&row.CategoryID, &row.CategoryName, &row.AccountID, &row.AccountName,
			&row.ToAccountID, &row.Note, &row.Date, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "transactionRepository.ListByOwner").Str("owner_id", ownerID).Msg("failed to scan transaction")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "transactionRepository.ListByOwner").Str("owner_id", ownerID).Msg("row iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// Upsert forces every row onto ownerID before writing.
func (r *transactionRepository) Upsert(ctx context.Context, ownerID string, rows ...models.RemoteTransactionRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	insert := r.db.builder().Insert(transactionsTable).Columns(transactionColumns...)
	for _, row := range rows {
		insert = insert.Values(
			row.ID, ownerID, row.Type, row.Amount,
			row.CategoryID, row.CategoryName, row.AccountID, row.AccountName,
			row.ToAccountID, row.Note, row.Date, row.CreatedAt, row.UpdatedAt,
		)
	}

	query, args, err := insert.Suffix(upsertTransactionSuffix).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.Upsert").Str("owner_id", ownerID).Int("rows", len(rows)).Msg("failed to upsert transactions")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return 0, ErrProfileNotFound
		}
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	written, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "transactionRepository.Upsert").Str("owner_id", ownerID).
		Int("rows", len(rows)).Int64("written", written).Msg("transactions upserted")
	return written, nil
}

func (r *transactionRepository) Delete(ctx context.Context, ownerID string, ids ...string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(transactionsTable).
		Where(sq.Eq{"owner_id": ownerID, "id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.Delete").Str("owner_id", ownerID).Int("ids", len(ids)).Msg("failed to delete transactions")
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return deleted, nil
}

// OwnerOf returns the owner of transaction id. ok is false when no such row
// exists.
func (r *transactionRepository) OwnerOf(ctx context.Context, id string) (string, bool, error) {
	query, args, err := r.db.builder().
		Select("owner_id").
		From(transactionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ownerID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&ownerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "transactionRepository.OwnerOf").Str("id", id).Msg("failed to look up owner")
		return "", false, r.wrap(ErrExecutingQuery, err)
	}
	return ownerID, true, nil
}

// wrap tags transient Postgres failures with ErrTemporarilyUnavailable.
func (r *transactionRepository) wrap(kind, err error) error {
	if r.db.retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrTemporarilyUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
