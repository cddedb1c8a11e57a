package app

import (
	"context"

	"propdash/internal/adapters/observability"
	"propdash/internal/domain"
)

type PredictForm struct {
	Location  string
	SqFt      string
	Bedrooms  string
	Bathrooms string
	YearBuilt string
}

func (f PredictForm) parse() (domain.PredictRequest, string) {
	var req domain.PredictRequest
	loc, msg := requireText(f.Location, "Location")
	if msg != "" {
		return req, msg
	}
	sqft, msg := parseFloatField(f.SqFt, "Size (sqft)", 100, 50_000)
	if msg != "" {
		return req, msg
	}
	beds, msg := parseIntField(f.Bedrooms, "Bedrooms", 0, 20)
	if msg != "" {
		return req, msg
	}
	baths, msg := parseFloatField(f.Bathrooms, "Bathrooms", 0, 20)
	if msg != "" {
		return req, msg
	}
	year, msg := parseIntField(f.YearBuilt, "Year built", 1800, 2100)
	if msg != "" {
		return req, msg
	}
	req.Location = loc
	req.SqFt = sqft
	req.Bedrooms = beds
	req.Bathrooms = baths
	req.YearBuilt = year
	return req, ""
}

type PredictPanel struct {
	panelCore
	backend domain.PropertyBackend
	form    PredictForm
	result  *domain.PredictResponse
}

func NewPredictPanel(b domain.PropertyBackend) *PredictPanel {
	return &PredictPanel{backend: b}
}

func (p *PredictPanel) Submit(ctx context.Context, form PredictForm) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return
	}
	p.form = form
	p.mu.Unlock()

	req, msg := form.parse()
	if msg != "" {
		observability.ObservePanel("predict", "validation")
		p.mu.Lock()
		p.err, p.result = msg, nil
		p.mu.Unlock()
		return
	}
	if !p.tryBegin() {
		return
	}
	defer p.endBusy()

	resp, err := p.backend.Predict(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.result = nil
		p.err = displayError(err, "")
		observability.ObservePanel("predict", "error")
		return
	}
	p.result = &resp
	observability.ObservePanel("predict", "ok")
}

func (p *PredictPanel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = PredictForm{}
	p.result = nil
	p.err = ""
}

type PredictView struct {
	Form   PredictForm
	Busy   bool
	Err    string
	Result *domain.PredictResponse
}

func (p *PredictPanel) View() PredictView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PredictView{Form: p.form, Busy: p.busy, Err: p.err, Result: p.result}
}
