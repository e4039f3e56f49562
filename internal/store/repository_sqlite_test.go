// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

func countRows(t *testing.T, s *Storages, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSQLite_InvoiceLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.InvoiceRepository

	created, err := repo.CreateInvoice(ctx, sampleInvoice())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, 2, countRows(t, s, invoiceItemsTable))

	got, err := repo.GetInvoiceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.00", got.InvoiceTotal.String())
	require.Len(t, got.Items, 2)
	assert.Equal(t, "20.00", got.Items[0].ItemTotal.String())
	assert.Equal(t, "Email Design", got.Items[1].ItemDescription)
	assert.True(t, got.InvoiceDate.Equal(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)))

	replacement := got
	replacement.ProjectDescription = "Rebrand"
	replacement.InvoiceTotal = models.MustMoney("0.30")
	replacement.Items = []models.InvoiceItem{
		{ItemDescription: "Logo", ItemQuantity: 3, ItemPrice: models.MustMoney("0.10"), ItemTotal: models.MustMoney("0.30")},
	}

	updated, err := repo.UpdateInvoice(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Rebrand", updated.ProjectDescription)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Logo", updated.Items[0].ItemDescription)
	assert.Equal(t, "0.30", updated.InvoiceTotal.String())
	assert.Equal(t, 1, countRows(t, s, invoiceItemsTable))

	paid, err := repo.UpdateInvoiceStatus(ctx, created.ID, models.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, paid.Status)
	assert.Len(t, paid.Items, 1)

	require.NoError(t, repo.DeleteInvoice(ctx, created.ID))
	_, err = repo.GetInvoiceByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrInvoiceNotFound)
	assert.Equal(t, 0, countRows(t, s, invoiceItemsTable))
}

func TestSQLite_GetInvoicesGroupsItems(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	empty := sampleInvoice()
	empty.Items = nil
	empty.InvoiceTotal = models.MustMoney("0")

	first, err := s.InvoiceRepository.CreateInvoice(ctx, sampleInvoice())
	require.NoError(t, err)
	second, err := s.InvoiceRepository.CreateInvoice(ctx, empty)
	require.NoError(t, err)

	invoices, err := s.InvoiceRepository.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, first.ID, invoices[0].ID)
	assert.Len(t, invoices[0].Items, 2)
	assert.Equal(t, second.ID, invoices[1].ID)
	assert.NotNil(t, invoices[1].Items)
	assert.Empty(t, invoices[1].Items)
}

func TestSQLite_MissingInvoiceLeavesTablesUnchanged(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.InvoiceRepository.CreateInvoice(ctx, sampleInvoice())
	require.NoError(t, err)

	ghost := sampleInvoice()
	ghost.ID = 9999

	_, err = s.InvoiceRepository.UpdateInvoice(ctx, ghost)
	require.ErrorIs(t, err, ErrInvoiceNotFound)
	_, err = s.InvoiceRepository.UpdateInvoiceStatus(ctx, 9999, models.StatusPaid)
	require.ErrorIs(t, err, ErrInvoiceNotFound)
	require.ErrorIs(t, s.InvoiceRepository.DeleteInvoice(ctx, 9999), ErrInvoiceNotFound)

	assert.Equal(t, 1, countRows(t, s, invoicesTable))
	assert.Equal(t, 2, countRows(t, s, invoiceItemsTable))
}

func TestSQLite_NegativeQuantityRollsBackHeader(t *testing.T) {
	s := newSQLiteStorages(t)

	bad := sampleInvoice()
	bad.Items[1].ItemQuantity = -1

	_, err := s.InvoiceRepository.CreateInvoice(context.Background(), bad)
	require.Error(t, err)

	assert.Equal(t, 0, countRows(t, s, invoicesTable))
	assert.Equal(t, 0, countRows(t, s, invoiceItemsTable))
}

func TestSQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.UserRepository

	user := sampleUser()
	_, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	dup := sampleUser()
	dup.UserID = "0190a0e4-0000-7000-8000-000000000002"
	dup.Username = "impostor"
	_, err = repo.CreateUser(ctx, dup)
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, 1, countRows(t, s, usersTable))

	byEmail, err := repo.FindUserByLogin(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byEmail.UserID)
	assert.False(t, byEmail.EmailConfirmed)
	require.NotNil(t, byEmail.EmailConfirmationToken)

	byName, err := repo.FindUserByLogin(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byName.UserID)

	_, err = repo.FindUserByLogin(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrNoUserWasFound)

	require.NoError(t, repo.ConfirmEmail(ctx, *user.EmailConfirmationToken))
	require.ErrorIs(t, repo.ConfirmEmail(ctx, *user.EmailConfirmationToken), ErrInvalidConfirmationToken)

	confirmed, err := repo.FindUserByLogin(ctx, user.Email)
	require.NoError(t, err)
	assert.True(t, confirmed.EmailConfirmed)
	assert.Nil(t, confirmed.EmailConfirmationToken)
}

func TestSQLite_FindUserByLogin_EmailBeatsUsername(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.UserRepository

	older := sampleUser()
	older.UserID = "0190a0e4-0000-7000-8000-00000000000a"
	older.Username = "owner@example.com"
	older.Email = "squatter@example.com"
	older.CreatedAt = fixedNow.Add(-time.Hour)
	_, err := repo.CreateUser(ctx, older)
	require.NoError(t, err)

	owner := sampleUser()
	owner.UserID = "0190a0e4-0000-7000-8000-00000000000b"
	owner.Username = "owner"
	owner.Email = "owner@example.com"
	_, err = repo.CreateUser(ctx, owner)
	require.NoError(t, err)

	found, err := repo.FindUserByLogin(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, found.UserID)
	assert.Equal(t, "owner@example.com", found.Email)
}

func TestSQLite_Sessions(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.SessionRepository

	live := models.Session{ID: "live", Data: models.SessionData{UserID: "u1", Email: "a@b.c"}, ExpiresAt: fixedNow.Add(time.Hour)}
	stale := models.Session{ID: "stale", Data: models.SessionData{UserID: "u2"}, ExpiresAt: fixedNow.Add(-time.Minute)}
	require.NoError(t, repo.CreateSession(ctx, live))
	require.NoError(t, repo.CreateSession(ctx, stale))

	found, err := repo.FindSession(ctx, "live", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "u1", found.Data.UserID)
	assert.True(t, found.ExpiresAt.Equal(fixedNow.Add(time.Hour)))

	_, err = repo.FindSession(ctx, "stale", fixedNow)
	require.ErrorIs(t, err, ErrSessionNotFound)

	removed, err := repo.DeleteExpiredSessions(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.DeleteSession(ctx, "live"))
	_, err = repo.FindSession(ctx, "live", fixedNow)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
