package app

import (
	"context"
	"strconv"
	"strings"

	"propdash/internal/adapters/observability"
	"propdash/internal/compare"
	"propdash/internal/domain"
)

const compareNotFoundMsg = "Property ID not found"

type CompareForm struct {
	ID1 string
	ID2 string
}

// parse validates the form locally; a non-empty message means no network
// call happens at all.
func (f CompareForm) parse() (domain.CompareRequest, string) {
	var req domain.CompareRequest
	if strings.TrimSpace(f.ID1) == "" || strings.TrimSpace(f.ID2) == "" {
		return req, "Both property IDs are required"
	}
	id1, err := strconv.ParseInt(strings.TrimSpace(f.ID1), 10, 64)
	if err != nil {
		return req, "Property IDs must be numbers"
	}
	id2, err := strconv.ParseInt(strings.TrimSpace(f.ID2), 10, 64)
	if err != nil {
		return req, "Property IDs must be numbers"
	}
	if id1 == id2 {
		return req, "Please choose two different properties"
	}
	req.ID1, req.ID2 = id1, id2
	return req, ""
}

// CompareResult pairs the fetched records with the locally derived
// verdict report and the backend's own numeric summary.
type CompareResult struct {
	First   domain.PropertyDetail
	Second  domain.PropertyDetail
	Summary map[string]float64
	Report  compare.Report
}

type ComparePanel struct {
	panelCore
	backend domain.PropertyBackend
	form    CompareForm
	result  *CompareResult
}

func NewComparePanel(b domain.PropertyBackend) *ComparePanel {
	return &ComparePanel{backend: b}
}

func (p *ComparePanel) Submit(ctx context.Context, form CompareForm) {
	p.mu.Lock()
	if p.busy {
		// trigger is disabled while a call is in flight; a racing submit
		// is dropped without touching form or result
		p.mu.Unlock()
		return
	}
	p.form = form
	p.mu.Unlock()

	req, msg := form.parse()
	if msg != "" {
		observability.ObservePanel("compare", "validation")
		p.mu.Lock()
		p.err, p.result = msg, nil
		p.mu.Unlock()
		return
	}
	if !p.tryBegin() {
		return
	}
	defer p.endBusy()

	resp, err := p.backend.CompareByID(ctx, req.ID1, req.ID2)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.result = nil
		p.err = displayError(err, compareNotFoundMsg)
		observability.ObservePanel("compare", "error")
		return
	}
	p.result = &CompareResult{
		First:   resp.Property1,
		Second:  resp.Property2,
		Summary: resp.ComparisonSummary,
		Report:  compare.Compare(resp.Property1, resp.Property2),
	}
	observability.ObservePanel("compare", "ok")
}

func (p *ComparePanel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = CompareForm{}
	p.result = nil
	p.err = ""
}

type CompareView struct {
	Form   CompareForm
	Busy   bool
	Err    string
	Result *CompareResult
}

func (p *ComparePanel) View() CompareView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return CompareView{Form: p.form, Busy: p.busy, Err: p.err, Result: p.result}
}
