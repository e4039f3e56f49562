// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

// invoiceRepository is the SQL implementation of [InvoiceRepository].
//
// Writes that touch the header and the items run inside one *sql.Tx with a
// deferred Rollback, so any failure leaves both tables unchanged.
type invoiceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewInvoiceRepository constructs an [InvoiceRepository] backed by db.
func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateInvoice inserts the header, then every item with the new invoice id.
// The returned invoice carries the generated ids and timestamps.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.CreateInvoice").Msg("failed to begin transaction")
		return models.Invoice{}, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now()
	query, args, err := buildInsertInvoiceQuery(r.builder, invoice, now)
	if err != nil {
		return models.Invoice{}, err
	}

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&invoice.ID); err != nil {
		log.Err(err).Str("func", "invoiceRepository.CreateInvoice").Msg("failed to insert invoice")
		return models.Invoice{}, r.wrap(ErrExecutingStatement, err)
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if invoice.Items, err = r.insertItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.CreateInvoice").
			Int64("invoice_id", invoice.ID).
			Msg("failed to insert invoice items")
		return models.Invoice{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "invoiceRepository.CreateInvoice").Msg("failed to commit transaction")
		return models.Invoice{}, r.wrap(ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "invoiceRepository.CreateInvoice").
		Int64("invoice_id", invoice.ID).
		Int("items_count", len(invoice.Items)).
		Msg("invoice created")

	return invoice, nil
}

// GetInvoices returns every invoice with its items using two queries: one
// for the headers and one batched IN query for all items.
func (r *invoiceRepository) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectInvoicesQuery(r.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.GetInvoices").Msg("failed to query invoices")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0, 50)
	for rows.Next() {
		invoice, scanErr := scanInvoice(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "invoiceRepository.GetInvoices").Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		invoices = append(invoices, invoice)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "invoiceRepository.GetInvoices").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]int64, len(invoices))
	for i := range invoices {
		ids[i] = invoices[i].ID
	}

	itemsByInvoice, err := r.selectItems(ctx, r.DB, ids...)
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.GetInvoices").Msg("failed to load invoice items")
		return nil, err
	}

	for i := range invoices {
		if items, ok := itemsByInvoice[invoices[i].ID]; ok {
			invoices[i].Items = items
		}
	}

	return invoices, nil
}

// GetInvoiceByID returns one invoice with its items or [ErrInvoiceNotFound].
func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error) {
	invoice, err := r.getInvoice(ctx, r.DB, id)
	if err != nil && !errors.Is(err, ErrInvoiceNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "invoiceRepository.GetInvoiceByID").
			Int64("invoice_id", id).
			Msg("failed to get invoice")
	}
	return invoice, err
}

// UpdateInvoice rewrites every header column, then replaces the item set:
// all existing items are deleted and the submitted ones inserted.
func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.UpdateInvoice").Msg("failed to begin transaction")
		return models.Invoice{}, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildUpdateInvoiceQuery(r.builder, invoice, r.now())
	if err != nil {
		return models.Invoice{}, err
	}

	if err = r.execAffectingInvoice(ctx, tx, query, args); err != nil {
		if !errors.Is(err, ErrInvoiceNotFound) {
			log.Err(err).
				Str("func", "invoiceRepository.UpdateInvoice").
				Int64("invoice_id", invoice.ID).
				Msg("failed to update invoice")
		}
		return models.Invoice{}, err
	}

	query, args, err = buildDeleteItemsQuery(r.builder, invoice.ID)
	if err != nil {
		return models.Invoice{}, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.UpdateInvoice").
			Int64("invoice_id", invoice.ID).
			Msg("failed to delete previous invoice items")
		return models.Invoice{}, r.wrap(ErrExecutingStatement, err)
	}

	if _, err = r.insertItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.UpdateInvoice").
			Int64("invoice_id", invoice.ID).
			Msg("failed to insert invoice items")
		return models.Invoice{}, err
	}

	updated, err := r.getInvoice(ctx, tx, invoice.ID)
	if err != nil {
		return models.Invoice{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "invoiceRepository.UpdateInvoice").Msg("failed to commit transaction")
		return models.Invoice{}, r.wrap(ErrCommitingTransaction, commitErr)
	}

	return updated, nil
}

// UpdateInvoiceStatus changes only the status label and updated_at.
func (r *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.UpdateInvoiceStatus").Msg("failed to begin transaction")
		return models.Invoice{}, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildUpdateInvoiceStatusQuery(r.builder, id, status, r.now())
	if err != nil {
		return models.Invoice{}, err
	}

	if err = r.execAffectingInvoice(ctx, tx, query, args); err != nil {
		if !errors.Is(err, ErrInvoiceNotFound) {
			log.Err(err).
				Str("func", "invoiceRepository.UpdateInvoiceStatus").
				Int64("invoice_id", id).
				Msg("failed to update invoice status")
		}
		return models.Invoice{}, err
	}

	updated, err := r.getInvoice(ctx, tx, id)
	if err != nil {
		return models.Invoice{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "invoiceRepository.UpdateInvoiceStatus").Msg("failed to commit transaction")
		return models.Invoice{}, r.wrap(ErrCommitingTransaction, commitErr)
	}

	return updated, nil
}

// DeleteInvoice checks existence, then deletes the items followed by the
// header row.
func (r *invoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.DeleteInvoice").Msg("failed to begin transaction")
		return r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildInvoiceExistsQuery(r.builder, id)
	if err != nil {
		return err
	}

	var found int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvoiceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "invoiceRepository.DeleteInvoice").Int64("invoice_id", id).Msg("failed to check invoice")
		return r.wrap(ErrExecutingQuery, err)
	}

	for _, build := range []func() (string, []any, error){
		func() (string, []any, error) { return buildDeleteItemsQuery(r.builder, id) },
		func() (string, []any, error) { return buildDeleteInvoiceQuery(r.builder, id) },
	} {
		query, args, err = build()
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "invoiceRepository.DeleteInvoice").Int64("invoice_id", id).Msg("failed to delete invoice")
			return r.wrap(ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "invoiceRepository.DeleteInvoice").Msg("failed to commit transaction")
		return r.wrap(ErrCommitingTransaction, commitErr)
	}

	log.Info().Str("func", "invoiceRepository.DeleteInvoice").Int64("invoice_id", id).Msg("invoice deleted")
	return nil
}

// execAffectingInvoice runs an UPDATE and maps zero affected rows to
// [ErrInvoiceNotFound].
func (r *invoiceRepository) execAffectingInvoice(ctx context.Context, tx *sql.Tx, query string, args []any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return r.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

func (r *invoiceRepository) insertItems(ctx context.Context, tx *sql.Tx, invoiceID int64, items []models.InvoiceItem) ([]models.InvoiceItem, error) {
	saved := make([]models.InvoiceItem, 0, len(items))

	for _, item := range items {
		item.InvoiceID = invoiceID

		query, args, err := buildInsertItemQuery(r.builder, item)
		if err != nil {
			return nil, err
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, r.wrap(ErrExecutingStatement, err)
		}

		saved = append(saved, item)
	}

	return saved, nil
}

func (r *invoiceRepository) getInvoice(ctx context.Context, q queryer, id int64) (models.Invoice, error) {
	query, args, err := buildSelectInvoiceByIDQuery(r.builder, id)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice, err := scanInvoice(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if err != nil {
		return models.Invoice{}, r.wrap(ErrScanningRow, err)
	}

	itemsByInvoice, err := r.selectItems(ctx, q, id)
	if err != nil {
		return models.Invoice{}, err
	}
	if items, ok := itemsByInvoice[id]; ok {
		invoice.Items = items
	}

	return invoice, nil
}

// selectItems loads the items of the given invoices grouped by invoice id.
func (r *invoiceRepository) selectItems(ctx context.Context, q queryer, ids ...int64) (map[int64][]models.InvoiceItem, error) {
	query, args, err := buildSelectItemsQuery(r.builder, ids...)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	itemsByInvoice := make(map[int64][]models.InvoiceItem, len(ids))
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.ItemDescription,
			&item.ItemQuantity,
			&item.ItemPrice,
			&item.ItemTotal,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		itemsByInvoice[item.InvoiceID] = append(itemsByInvoice[item.InvoiceID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return itemsByInvoice, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads one row shaped like invoiceColumns. Items start empty,
// never nil, so they encode as [].
func scanInvoice(row rowScanner) (models.Invoice, error) {
	var (
		invoice models.Invoice
		status  string
	)

	err := row.Scan(
		&invoice.ID,
		&invoice.BillFromStreetAddress,
		&invoice.BillFromCity,
		&invoice.BillFromPostcode,
		&invoice.BillFromCountry,
		&invoice.BillToName,
		&invoice.BillToEmail,
		&invoice.BillToStreetAddress,
		&invoice.BillToCity,
		&invoice.BillToPostcode,
		&invoice.BillToCountry,
		&invoice.InvoiceDate,
		&invoice.PaymentTerms,
		&invoice.ProjectDescription,
		&status,
		&invoice.InvoiceTotal,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice.Status = models.InvoiceStatus(status)
	invoice.Items = []models.InvoiceItem{}

	return invoice, nil
}
