// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// InvoiceStatus is the lifecycle label of an invoice. Values are stored as
// plain strings; any label may replace any other.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Invoice is a bill with its line items. InvoiceTotal is always derived from
// Items and recomputed on every write.
type Invoice struct {
	ID int64 `json:"id"`

	BillFromStreetAddress string `json:"bill_from_street_address"`
	BillFromCity          string `json:"bill_from_city"`
	BillFromPostcode      string `json:"bill_from_postcode"`
	BillFromCountry       string `json:"bill_from_country"`

	BillToName          string `json:"bill_to_name"`
	BillToEmail         string `json:"bill_to_email"`
	BillToStreetAddress string `json:"bill_to_street_address"`
	BillToCity          string `json:"bill_to_city"`
	BillToPostcode      string `json:"bill_to_postcode"`
	BillToCountry       string `json:"bill_to_country"`

	InvoiceDate        time.Time     `json:"invoice_date"`
	PaymentTerms       string        `json:"payment_terms"`
	ProjectDescription string        `json:"project_description"`
	Status             InvoiceStatus `json:"status"`
	InvoiceTotal       Money         `json:"invoice_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []InvoiceItem `json:"items"`
}

// DateLayout is the wire format of InvoiceDate.
const DateLayout = "2006-01-02"

// MarshalJSON renders InvoiceDate as a calendar date.
func (i Invoice) MarshalJSON() ([]byte, error) {
	type alias Invoice
	aux := struct {
		alias
		InvoiceDate string `json:"invoice_date"`
	}{alias: alias(i)}

	if !i.InvoiceDate.IsZero() {
		aux.InvoiceDate = i.InvoiceDate.Format(DateLayout)
	}
	if aux.Items == nil {
		aux.Items = []InvoiceItem{}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON accepts InvoiceDate either as a calendar date or as an
// RFC 3339 timestamp. An empty string leaves the date zero. Unknown keys,
// including those of items, are rejected.
func (i *Invoice) UnmarshalJSON(b []byte) error {
	type alias Invoice
	aux := struct {
		*alias
		InvoiceDate string `json:"invoice_date"`
	}{alias: (*alias)(i)}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}

	i.InvoiceDate = time.Time{}
	if aux.InvoiceDate == "" {
		return nil
	}

	if d, err := time.Parse(DateLayout, aux.InvoiceDate); err == nil {
		i.InvoiceDate = d
		return nil
	}
	d, err := time.Parse(time.RFC3339, aux.InvoiceDate)
	if err != nil {
		return fmt.Errorf("invalid invoice_date %q", aux.InvoiceDate)
	}
	i.InvoiceDate = d.UTC()
	return nil
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one billable line of an invoice.
type InvoiceItem struct {
	ID              int64  `json:"id"`
	InvoiceID       int64  `json:"invoice_id"`
	ItemDescription string `json:"item_description"`
	ItemQuantity    int    `json:"item_quantity"`
	ItemPrice       Money  `json:"item_price"`
	ItemTotal       Money  `json:"item_total"`
}

// TableName returns the name of the database table
// associated with the InvoiceItem model.
func (i InvoiceItem) TableName() string {
	return "invoice_items"
}

// StatusUpdate is the body of the status endpoint.
type StatusUpdate struct {
	Status InvoiceStatus `json:"status"`
}
