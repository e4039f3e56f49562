// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrUsernameHasAt      = errors.New("username must not contain '@'")
	ErrUsernameTooLong    = errors.New("username is too long")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrEmptyLogin         = errors.New("email or username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyToken         = errors.New("token is required")
	ErrEmptyBillToName    = errors.New("bill_to_name is required")
	ErrInvalidBillToEmail = errors.New("bill_to_email must be a valid email address")
	ErrEmptyInvoiceDate   = errors.New("invoice_date is required")
	ErrEmptyPaymentTerms  = errors.New("payment_terms is required")
	ErrInvalidStatus      = errors.New("status must be one of draft, pending, paid")
	ErrEmptyDescription   = errors.New("item_description is required")
	ErrNegativeQuantity   = errors.New("item_quantity must not be negative")
	ErrNegativePrice      = errors.New("item_price must not be negative")
	ErrPriceTooPrecise    = errors.New("item_price must have at most 2 decimal places")
	ErrQuantityTooLarge   = errors.New("item_quantity is too large")
	ErrAmountTooLarge     = errors.New("invoice amounts must be below 10000000000")
)
