// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// Contact form limits.
const (
	MaxContactNameLength    = 120
	MaxContactEmailLength   = 254
	MaxContactMessageLength = 5000
)

// textSanitizer strips every HTML element from visitor input.
var textSanitizer = bluemonday.StrictPolicy()

// ContactSubmission is a visitor message as received.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ValidationError lists the invalid fields of a submission with a message
// for each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid contact message: " + strings.Join(parts, "; ")
}

// ContactStore persists contact messages.
type ContactStore interface {
	CreateContactMessage(ctx context.Context, m store.ContactMessage) (store.ContactMessage, error)
}

// ContactService validates and stores visitor messages.
type ContactService struct {
	store  ContactStore
	logger *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(s ContactStore, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{store: s, logger: logger}
}

// Submit cleans and validates sub and stores it under a fresh public
// reference. Invalid input yields a *ValidationError.
func (s *ContactService) Submit(ctx context.Context, sub ContactSubmission) (store.ContactMessage, error) {
	msg := store.ContactMessage{
		Ref:     uuid.NewString(),
		Name:    clean(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Message: clean(sub.Message),
	}
	if err := validateContact(msg); err != nil {
		return store.ContactMessage{}, err
	}

	saved, err := s.store.CreateContactMessage(ctx, msg)
	if err != nil {
		return store.ContactMessage{}, fmt.Errorf("saving contact message: %w", err)
	}
	s.logger.Info("contact message received", "category", model.EventCategoryContact, "ref", saved.Ref)
	return saved, nil
}

func validateContact(m store.ContactMessage) error {
	fields := make(map[string]string)

	switch {
	case m.Name == "":
		fields["name"] = "Name is required"
	case utf8.RuneCountInString(m.Name) > MaxContactNameLength:
		fields["name"] = fmt.Sprintf("Name must be at most %d characters", MaxContactNameLength)
	}

	switch {
	case m.Email == "":
		fields["email"] = "Email is required"
	case len(m.Email) > MaxContactEmailLength:
		fields["email"] = "Invalid email address"
	default:
		addr, err := mail.ParseAddress(m.Email)
		if err != nil || addr.Address != m.Email {
			fields["email"] = "Invalid email address"
		}
	}

	switch {
	case m.Message == "":
		fields["message"] = "Message is required"
	case utf8.RuneCountInString(m.Message) > MaxContactMessageLength:
		fields["message"] = fmt.Sprintf("Message must be at most %d characters", MaxContactMessageLength)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// clean strips markup and surrounding whitespace. Entities produced by the
// sanitizer are decoded so stored text stays plain.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(textSanitizer.Sanitize(s)))
}
