package testutil

import (
	"net/http"

	"nocflow/pkg/requestcontext"
)

// WithApplicant adds an applicant identity to the request context,
// simulating what the auth middleware does for authenticated requests.
func WithApplicant(req *http.Request, applicantID string) *http.Request {
	ctx := requestcontext.WithApplicantID(req.Context(), applicantID)
	return req.WithContext(ctx)
}

// WithSession adds both applicant and session IDs to the request context.
func WithSession(req *http.Request, applicantID, sessionID string) *http.Request {
	ctx := requestcontext.WithApplicantID(req.Context(), applicantID)
	ctx = requestcontext.WithSessionID(ctx, sessionID)
	return req.WithContext(ctx)
}
