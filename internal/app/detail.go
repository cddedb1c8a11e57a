package app

import (
	"context"
	"strconv"
	"strings"

	"propdash/internal/adapters/observability"
	"propdash/internal/domain"
)

// FetchDetail loads one full property record for the detail page. The
// page keeps no state between requests, so this is a plain helper rather
// than a panel; error wording still matches the rest of the dashboard.
func FetchDetail(ctx context.Context, b domain.PropertyBackend, rawID string) (*domain.PropertyDetail, string) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		observability.ObservePanel("detail", "validation")
		return nil, "Property ID must be a number"
	}
	resp, err := b.GetProperty(ctx, id)
	if err != nil {
		observability.ObservePanel("detail", "error")
		return nil, displayError(err, "")
	}
	observability.ObservePanel("detail", "ok")
	return &resp.Property, ""
}
