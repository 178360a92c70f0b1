package handler

import (
	dErrors "nocflow/pkg/domain-errors"
)

// UpdateFieldRequest is the HTTP request body for
// PUT /noc/wizard/sections/{id}/fields/{key}. An empty value clears the
// field.
type UpdateFieldRequest struct {
	Value string `json:"value"`
}

// Validate implements httputil.Validatable.
func (r *UpdateFieldRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Value) > 10000 {
		return dErrors.New(dErrors.CodeValidation, "value must be at most 10000 characters")
	}
	return nil
}
