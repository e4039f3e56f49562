// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MailMessage is a plain-text email handed to the mail adapter.
type MailMessage struct {
	To      string
	Subject string
	Text    string
}
