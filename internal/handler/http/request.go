package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/MKhiriev/court-fund/models"
	"github.com/go-chi/chi/v5"
)

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

// callerID returns the user ID of the identity stored by auth.
func callerID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoIdentity
	}
	return userID, nil
}

// parseServiceFeeFilter reads court_id, status, month and due_before from the
// query string. due_before accepts RFC 3339 or a plain YYYY-MM-DD date.
func parseServiceFeeFilter(query url.Values) (models.ServiceFeeFilter, error) {
	var filter models.ServiceFeeFilter

	if raw := query.Get("court_id"); raw != "" {
		courtID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || courtID <= 0 {
			return models.ServiceFeeFilter{}, fmt.Errorf("%w: court_id=%q", ErrInvalidQueryParam, raw)
		}
		filter.CourtID = courtID
	}

	filter.Status = models.FeeStatus(query.Get("status"))
	filter.Month = query.Get("month")

	if raw := query.Get("due_before"); raw != "" {
		dueBefore, err := parseTime(raw)
		if err != nil {
			return models.ServiceFeeFilter{}, fmt.Errorf("%w: due_before=%q", ErrInvalidQueryParam, raw)
		}
		filter.DueBefore = &dueBefore
	}

	return filter, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}
