// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver:         config.DriverSQLite,
		DSN:            filepath.Join(t.TempDir(), "store.db"),
		MaxOpenConns:   1,
		ConnectTimeout: 2 * time.Second,
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleInvoice() models.Invoice {
	return models.Invoice{
		BillFromStreetAddress: "19 Union Terrace",
		BillFromCity:          "London",
		BillFromPostcode:      "E1 3EZ",
		BillFromCountry:       "United Kingdom",
		BillToName:            "Alex Grim",
		BillToEmail:           "alexgrim@mail.com",
		BillToStreetAddress:   "84 Church Way",
		BillToCity:            "Bradford",
		BillToPostcode:        "BD1 9PB",
		BillToCountry:         "United Kingdom",
		InvoiceDate:           time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		PaymentTerms:          "Net 30 Days",
		ProjectDescription:    "Graphic Design",
		Status:                models.StatusPending,
		InvoiceTotal:          models.MustMoney("25.00"),
		Items: []models.InvoiceItem{
			{ItemDescription: "Banner Design", ItemQuantity: 2, ItemPrice: models.MustMoney("10.00"), ItemTotal: models.MustMoney("20.00")},
			{ItemDescription: "Email Design", ItemQuantity: 1, ItemPrice: models.MustMoney("5.00"), ItemTotal: models.MustMoney("5.00")},
		},
	}
}

// invoiceRowValues returns a row matching invoiceColumns for sqlmock.
func invoiceRowValues(id int64, inv models.Invoice) []driver.Value {
	return []driver.Value{
		id,
		inv.BillFromStreetAddress, inv.BillFromCity, inv.BillFromPostcode, inv.BillFromCountry,
		inv.BillToName, inv.BillToEmail, inv.BillToStreetAddress, inv.BillToCity, inv.BillToPostcode, inv.BillToCountry,
		inv.InvoiceDate, inv.PaymentTerms, inv.ProjectDescription, string(inv.Status), inv.InvoiceTotal.String(),
		fixedNow, fixedNow,
	}
}
