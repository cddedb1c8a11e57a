package app

import (
	"context"

	"propdash/internal/adapters/observability"
	"propdash/internal/domain"
)

// ListPanel shows the full property listing. It has no form; its only
// action is a refresh.
type ListPanel struct {
	panelCore
	backend domain.PropertyBackend
	loaded  bool
	result  *domain.ListResponse
}

func NewListPanel(b domain.PropertyBackend) *ListPanel {
	return &ListPanel{backend: b}
}

// EnsureLoaded fetches the listing once, the first time the page renders.
func (p *ListPanel) EnsureLoaded(ctx context.Context) {
	p.mu.Lock()
	done := p.loaded
	p.mu.Unlock()
	if !done {
		p.Refresh(ctx)
	}
}

func (p *ListPanel) Refresh(ctx context.Context) {
	if !p.tryBegin() {
		return
	}
	defer p.endBusy()

	resp, err := p.backend.ListProperties(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = true
	if err != nil {
		p.result = nil
		p.err = displayError(err, "")
		observability.ObservePanel("list", "error")
		return
	}
	p.result = &resp
	observability.ObservePanel("list", "ok")
}

func (p *ListPanel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
	p.result = nil
	p.err = ""
}

type ListView struct {
	Busy   bool
	Err    string
	Result *domain.ListResponse
}

func (p *ListPanel) View() ListView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ListView{Busy: p.busy, Err: p.err, Result: p.result}
}
