// Package handler exposes the wizard over HTTP. It is a thin layer: routing,
// decoding and auth live here, every state transition lives in the service.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nocflow/internal/platform/middleware"
	"nocflow/internal/wizard/models"
	"nocflow/internal/wizard/registry"
	"nocflow/internal/wizard/service"
	dErrors "nocflow/pkg/domain-errors"
	"nocflow/pkg/platform/httputil"
	"nocflow/pkg/requestcontext"
)

// Service is the wizard surface the handler depends on.
type Service interface {
	Wizard(ctx context.Context, applicantID string) *service.Wizard
}

// Handler wires the wizard endpoints to the wizard service.
type Handler struct {
	service   Service
	logger    *slog.Logger
	validator middleware.TokenValidator
	policy    AttachmentPolicy
}

// Option configures a Handler.
type Option func(*Handler)

// WithAttachmentPolicy overrides the default upload policy.
func WithAttachmentPolicy(p AttachmentPolicy) Option {
	return func(h *Handler) { h.policy = p }
}

// New constructs a wizard handler with its dependencies.
func New(svc Service, logger *slog.Logger, validator middleware.TokenValidator, opts ...Option) *Handler {
	h := &Handler{
		service:   svc,
		logger:    logger,
		validator: validator,
		policy:    DefaultPolicy(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Register mounts the wizard endpoints under /noc/wizard. Every route
// requires an authenticated applicant.
func (h *Handler) Register(r chi.Router) {
	wr := chi.NewRouter()
	wr.Use(middleware.RequireAuth(h.validator, h.logger))

	wr.Get("/", h.handleState)
	wr.Get("/sections", h.handleSections)
	wr.Put("/sections/{id}/fields/{key}", h.handleUpdateField)
	wr.Post("/sections/{id}/attachments/{key}", h.handleUploadAttachment)
	wr.Post("/continue", h.handleContinue)
	wr.Post("/back", h.handleBack)
	wr.Post("/jump/{id}", h.handleJump)
	wr.Get("/preview", h.handlePreview)
	wr.Get("/notification", h.handleGetNotification)
	wr.Delete("/notification", h.handleDismissNotification)

	r.Mount("/noc/wizard", wr)
}

// wizard resolves the authenticated applicant's wizard. RequireAuth
// guarantees the applicant ID is present; the nil branch only fires on a
// misconfigured middleware chain.
func (h *Handler) wizard(w http.ResponseWriter, r *http.Request) (*service.Wizard, bool) {
	ctx := r.Context()
	applicantID := requestcontext.ApplicantID(ctx)
	if applicantID == "" {
		h.logger.ErrorContext(ctx, "applicant ID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return nil, false
	}
	return h.service.Wizard(ctx, applicantID), true
}

// handleState handles GET /noc/wizard.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stateResponse(wiz.Snapshot()))
}

// handleSections handles GET /noc/wizard/sections. The schema is fixed at
// compile time, so no wizard lookup is needed.
func (h *Handler) handleSections(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, SectionsResponse{Sections: registry.Sections()})
}

// handleUpdateField handles PUT /noc/wizard/sections/{id}/fields/{key}.
func (h *Handler) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateFieldRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	sectionID := models.SectionID(chi.URLParam(r, "id"))
	key := chi.URLParam(r, "key")
	if err := wiz.UpdateField(sectionID, key, models.TextValue(req.Value)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUploadAttachment handles POST /noc/wizard/sections/{id}/attachments/{key}.
// The file arrives as the "file" part of a multipart form; an optional
// "last_modified" part carries the file's RFC 3339 modification time.
func (h *Handler) handleUploadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAttachmentBytes+(1<<16))
	if err := r.ParseMultipartForm(maxAttachmentBytes); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "attachment exceeds the upload limit or is not valid multipart"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "multipart form must carry a \"file\" part"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if err := h.policy.Check(header.Filename, mimeType, header.Size); err != nil {
		httputil.WriteError(w, err)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.ErrorContext(ctx, "attachment read failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to read attachment"))
		return
	}

	lastModified := time.Now().UTC()
	if raw := r.FormValue("last_modified"); raw != "" {
		if parsed, perr := time.Parse(time.RFC3339, raw); perr == nil {
			lastModified = parsed
		}
	}

	att := &models.Attachment{
		Name:           header.Filename,
		SizeBytes:      int64(len(content)),
		MIMEType:       mimeType,
		LastModifiedAt: lastModified,
		Content:        content,
	}

	sectionID := models.SectionID(chi.URLParam(r, "id"))
	key := chi.URLParam(r, "key")
	if err := wiz.UpdateField(sectionID, key, models.AttachmentValue(att)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, AttachmentResponse{
		Name:      att.Name,
		SizeBytes: att.SizeBytes,
		MIMEType:  att.MIMEType,
	})
}

// handleContinue handles POST /noc/wizard/continue. Validation failures are
// a normal outcome of the flow and come back in the result body, not as an
// error envelope.
func (h *Handler) handleContinue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	result, err := wiz.SaveAndContinue(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "save and continue failed",
			"request_id", requestcontext.RequestID(ctx),
			"applicant_id", requestcontext.ApplicantID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// handleBack handles POST /noc/wizard/back.
func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	wiz.GoBack()
	httputil.WriteJSON(w, http.StatusOK, stateResponse(wiz.Snapshot()))
}

// handleJump handles POST /noc/wizard/jump/{id}.
func (h *Handler) handleJump(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	if err := wiz.JumpTo(models.SectionID(chi.URLParam(r, "id"))); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stateResponse(wiz.Snapshot()))
}

// handlePreview handles GET /noc/wizard/preview.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PreviewResponse{Sections: wiz.Preview()})
}

// handleGetNotification handles GET /noc/wizard/notification. No live
// notification reads as 204.
func (h *Handler) handleGetNotification(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	n := wiz.Notification()
	if n == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, notificationResponse(*n))
}

// handleDismissNotification handles DELETE /noc/wizard/notification.
func (h *Handler) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	wiz.DismissNotification()
	w.WriteHeader(http.StatusNoContent)
}
