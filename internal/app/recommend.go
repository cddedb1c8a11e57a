package app

import (
	"context"

	"propdash/internal/adapters/observability"
	"propdash/internal/domain"
)

type RecommendForm struct {
	Budget      string
	MinBedrooms string
}

func (f RecommendForm) parse() (domain.RecommendRequest, string) {
	var req domain.RecommendRequest
	budget, msg := parseFloatField(f.Budget, "Budget", budgetMin, budgetMax)
	if msg != "" {
		return req, msg
	}
	beds, msg := parseIntField(f.MinBedrooms, "Minimum bedrooms", 0, 20)
	if msg != "" {
		return req, msg
	}
	req.UserBudget = budget
	req.UserMinBedrooms = beds
	return req, ""
}

type RecommendPanel struct {
	panelCore
	backend domain.PropertyBackend
	form    RecommendForm
	result  *domain.RecommendResponse
}

func NewRecommendPanel(b domain.PropertyBackend) *RecommendPanel {
	return &RecommendPanel{backend: b}
}

func (p *RecommendPanel) Submit(ctx context.Context, form RecommendForm) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return
	}
	p.form = form
	p.mu.Unlock()

	req, msg := form.parse()
	if msg != "" {
		observability.ObservePanel("recommend", "validation")
		p.mu.Lock()
		p.err, p.result = msg, nil
		p.mu.Unlock()
		return
	}
	if !p.tryBegin() {
		return
	}
	defer p.endBusy()

	resp, err := p.backend.Recommend(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.result = nil
		p.err = displayError(err, "")
		observability.ObservePanel("recommend", "error")
		return
	}
	p.result = &resp
	observability.ObservePanel("recommend", "ok")
}

func (p *RecommendPanel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = RecommendForm{}
	p.result = nil
	p.err = ""
}

type RecommendView struct {
	Form   RecommendForm
	Busy   bool
	Err    string
	Result *domain.RecommendResponse
}

func (p *RecommendPanel) View() RecommendView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return RecommendView{Form: p.form, Busy: p.busy, Err: p.err, Result: p.result}
}
