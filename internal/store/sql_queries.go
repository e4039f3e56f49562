// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

const (
	usersTable        = "users"
	invoicesTable     = "invoices"
	invoiceItemsTable = "invoice_items"
	sessionTable      = "session"
)

var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"email_confirmation_token",
	"email_confirmed",
	"profile_image_url",
	"created_at",
}

// invoiceHeaderColumns are the client-writable invoice columns, in the order
// returned by invoiceHeaderValues.
var invoiceHeaderColumns = []string{
	"bill_from_street_address",
	"bill_from_city",
	"bill_from_postcode",
	"bill_from_country",
	"bill_to_name",
	"bill_to_email",
	"bill_to_street_address",
	"bill_to_city",
	"bill_to_postcode",
	"bill_to_country",
	"invoice_date",
	"payment_terms",
	"project_description",
	"status",
	"invoice_total",
}

var invoiceColumns = append(append([]string{"id"}, invoiceHeaderColumns...), "created_at", "updated_at")

var invoiceItemColumns = []string{
	"id",
	"invoice_id",
	"item_description",
	"item_quantity",
	"item_price",
	"item_total",
}

func invoiceHeaderValues(invoice models.Invoice) []any {
	return []any{
		invoice.BillFromStreetAddress,
		invoice.BillFromCity,
		invoice.BillFromPostcode,
		invoice.BillFromCountry,
		invoice.BillToName,
		invoice.BillToEmail,
		invoice.BillToStreetAddress,
		invoice.BillToCity,
		invoice.BillToPostcode,
		invoice.BillToCountry,
		invoice.InvoiceDate,
		invoice.PaymentTerms,
		invoice.ProjectDescription,
		string(invoice.Status),
		invoice.InvoiceTotal,
	}
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.EmailConfirmationToken,
			user.EmailConfirmed,
			user.ProfileImageURL,
			user.CreatedAt,
		))
}

// buildFindUserByLoginQuery ranks an exact email match above a username
// match, so a username shaped like someone else's email never wins.
func buildFindUserByLoginQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{sq.Eq{"email": identifier}, sq.Eq{"username": identifier}}).
		OrderByClause("CASE WHEN email = ? THEN 0 ELSE 1 END", identifier).
		OrderBy("created_at").
		Limit(1))
}

func buildConfirmEmailQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return toSQL(b.Update(usersTable).
		Set("email_confirmed", true).
		Set("email_confirmation_token", nil).
		Where(sq.Eq{"email_confirmation_token": token, "email_confirmed": false}).
		Suffix("RETURNING id"))
}

// ── sessions ─────────────────────────────────────────────────────────────────

func buildInsertSessionQuery(b sq.StatementBuilderType, sid string, sess []byte, expire time.Time) (string, []any, error) {
	return toSQL(b.Insert(sessionTable).
		Columns("sid", "sess", "expire").
		Values(sid, sess, expire))
}

func buildFindSessionQuery(b sq.StatementBuilderType, sid string, now time.Time) (string, []any, error) {
	return toSQL(b.Select("sid", "sess", "expire").
		From(sessionTable).
		Where(sq.Eq{"sid": sid}).
		Where(sq.Gt{"expire": now}))
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, sid string) (string, []any, error) {
	return toSQL(b.Delete(sessionTable).Where(sq.Eq{"sid": sid}))
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return toSQL(b.Delete(sessionTable).Where(sq.LtOrEq{"expire": now}))
}

// ── invoices ─────────────────────────────────────────────────────────────────

func buildSelectInvoicesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(invoiceColumns...).
		From(invoicesTable).
		OrderBy("id"))
}

func buildSelectInvoiceByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select(invoiceColumns...).
		From(invoicesTable).
		Where(sq.Eq{"id": id}))
}

// buildSelectItemsQuery loads the items of every invoice in ids with one
// IN clause.
func buildSelectItemsQuery(b sq.StatementBuilderType, ids ...int64) (string, []any, error) {
	return toSQL(b.Select(invoiceItemColumns...).
		From(invoiceItemsTable).
		Where(sq.Eq{"invoice_id": ids}).
		OrderBy("invoice_id", "id"))
}

func buildInsertInvoiceQuery(b sq.StatementBuilderType, invoice models.Invoice, now time.Time) (string, []any, error) {
	values := append(invoiceHeaderValues(invoice), now, now)
	return toSQL(b.Insert(invoicesTable).
		Columns(append(append([]string{}, invoiceHeaderColumns...), "created_at", "updated_at")...).
		Values(values...).
		Suffix("RETURNING id"))
}

func buildUpdateInvoiceQuery(b sq.StatementBuilderType, invoice models.Invoice, now time.Time) (string, []any, error) {
	set := make(map[string]any, len(invoiceHeaderColumns)+1)
	for i, v := range invoiceHeaderValues(invoice) {
		set[invoiceHeaderColumns[i]] = v
	}
	set["updated_at"] = now

	return toSQL(b.Update(invoicesTable).
		SetMap(set).
		Where(sq.Eq{"id": invoice.ID}))
}

func buildUpdateInvoiceStatusQuery(b sq.StatementBuilderType, id int64, status models.InvoiceStatus, now time.Time) (string, []any, error) {
	return toSQL(b.Update(invoicesTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}))
}

func buildInvoiceExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select("id").From(invoicesTable).Where(sq.Eq{"id": id}))
}

func buildDeleteInvoiceQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Delete(invoicesTable).Where(sq.Eq{"id": id}))
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.InvoiceItem) (string, []any, error) {
	return toSQL(b.Insert(invoiceItemsTable).
		Columns(invoiceItemColumns[1:]...).
		Values(item.InvoiceID, item.ItemDescription, item.ItemQuantity, item.ItemPrice, item.ItemTotal).
		Suffix("RETURNING id"))
}

func buildDeleteItemsQuery(b sq.StatementBuilderType, invoiceID int64) (string, []any, error) {
	return toSQL(b.Delete(invoiceItemsTable).Where(sq.Eq{"invoice_id": invoiceID}))
}
