// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/service"
)

// ContactResponse acknowledges a stored contact message.
type ContactResponse struct {
	Ref       string    `json:"ref"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact accepts a visitor message as JSON.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactSubmission
	if !DecodeJSON(w, r, &req) {
		return
	}

	msg, err := h.contact.Submit(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			WriteValidationError(w, verr.Fields)
			return
		}
		h.logger.Error("saving contact message failed", "category", model.EventCategoryContact, "error", err)
		WriteInternalError(w, "Failed to save message")
		return
	}
	WriteJSON(w, http.StatusCreated, ContactResponse{Ref: msg.Ref, CreatedAt: msg.CreatedAt})
}
