package app

import (
	"context"
	"strings"

	"propdash/internal/adapters/observability"
	"propdash/internal/domain"
)

const (
	budgetMin = 1
	budgetMax = 100_000_000
)

type SearchForm struct {
	Location    string
	Budget      string
	Preferences string
}

func (f SearchForm) parse() (domain.SearchRequest, string) {
	var req domain.SearchRequest
	loc, msg := requireText(f.Location, "Location")
	if msg != "" {
		return req, msg
	}
	budget, msg := parseFloatField(f.Budget, "Budget", budgetMin, budgetMax)
	if msg != "" {
		return req, msg
	}
	req.Location = loc
	req.Budget = budget
	req.Preferences = strings.TrimSpace(f.Preferences)
	return req, ""
}

type SearchPanel struct {
	panelCore
	backend domain.PropertyBackend
	form    SearchForm
	result  *domain.ListResponse
}

func NewSearchPanel(b domain.PropertyBackend) *SearchPanel {
	return &SearchPanel{backend: b}
}

func (p *SearchPanel) Submit(ctx context.Context, form SearchForm) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return
	}
	p.form = form
	p.mu.Unlock()

	req, msg := form.parse()
	if msg != "" {
		observability.ObservePanel("search", "validation")
		p.mu.Lock()
		p.err, p.result = msg, nil
		p.mu.Unlock()
		return
	}
	if !p.tryBegin() {
		return
	}
	defer p.endBusy()

	resp, err := p.backend.FindProperties(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.result = nil
		p.err = displayError(err, "")
		observability.ObservePanel("search", "error")
		return
	}
	p.result = &resp
	observability.ObservePanel("search", "ok")
}

func (p *SearchPanel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = SearchForm{}
	p.result = nil
	p.err = ""
}

type SearchView struct {
	Form   SearchForm
	Busy   bool
	Err    string
	Result *domain.ListResponse
}

func (p *SearchPanel) View() SearchView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return SearchView{Form: p.form, Busy: p.busy, Err: p.err, Result: p.result}
}
