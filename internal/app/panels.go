// Package app holds the panel services behind the dashboard pages. Each
// panel owns its own form fields, busy flag, last result, and last error;
// panels never share state with each other. A submit validates locally,
// issues at most one backend call, and replaces the previous result
// wholesale; fetched records are never mutated.
package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"propdash/internal/domain"
)

// Panels wires one instance of every panel to the same backend port.
type Panels struct {
	List      *ListPanel
	Compare   *ComparePanel
	Search    *SearchPanel
	Predict   *PredictPanel
	Recommend *RecommendPanel
}

func NewPanels(b domain.PropertyBackend) *Panels {
	return &Panels{
		List:      NewListPanel(b),
		Compare:   NewComparePanel(b),
		Search:    NewSearchPanel(b),
		Predict:   NewPredictPanel(b),
		Recommend: NewRecommendPanel(b),
	}
}

// panelCore is the lifecycle state every panel shares: a busy flag while
// its single in-flight call settles, and the last error as one display
// string. The mutex guards against concurrent page requests; the design
// expects one in-flight call per panel, enforced by tryBegin.
type panelCore struct {
	mu   sync.Mutex
	busy bool
	err  string
}

// tryBegin marks the panel busy unless a call is already in flight.
func (c *panelCore) tryBegin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	c.err = ""
	return true
}

// endBusy clears the busy flag. Deferred right after tryBegin so the flag
// drops on every exit path, panics included.
func (c *panelCore) endBusy() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

const networkErrMsg = "Network error: could not reach the property service"

// displayError flattens a backend error into the single string a panel
// shows. Only callers passing a notFound message give 404 special wording;
// everywhere else a 404 reads as a plain status failure. The per-endpoint
// unevenness is deliberate and matches the product's message surface.
func displayError(err error, notFound string) string {
	if errors.Is(err, domain.ErrNotFound) {
		if notFound != "" {
			return notFound
		}
		return fmt.Sprintf("Request failed with status %d", 404)
	}
	var se *domain.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("Request failed with status %d", se.Code)
	}
	return networkErrMsg
}

// ---- form field parsing ----
//
// Raw form values stay strings on the panel (what the user typed survives
// a failed validation); parsing produces either a value or the literal
// message the panel displays.

func requireText(raw, label string) (string, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", label + " is required"
	}
	return v, ""
}

func parseFloatField(raw, label string, min, max float64) (float64, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, label + " is required"
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, label + " must be a number"
	}
	if f < min || f > max {
		return 0, fmt.Sprintf("%s must be between %v and %v", label, min, max)
	}
	return f, ""
}

func parseIntField(raw, label string, min, max int) (int, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, label + " is required"
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, label + " must be a whole number"
	}
	if n < min || n > max {
		return 0, fmt.Sprintf("%s must be between %d and %d", label, min, max)
	}
	return n, ""
}
