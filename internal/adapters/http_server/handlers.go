package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"propdash/internal/app"
	"propdash/internal/domain"
)

type Handlers struct {
	Panels  *app.Panels
	Backend domain.PropertyBackend

	r *Renderer
}

func (s *Server) MountHandlers(h *Handlers) {
	if h.r == nil {
		h.r = NewRenderer()
	}

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Get("/", h.home)

	s.mux.Get("/properties", h.propertiesPage)
	s.mux.Post("/properties/refresh", h.propertiesRefresh)
	s.mux.Post("/properties/reset", h.propertiesReset)
	s.mux.Get("/properties/{id}", h.propertyDetail)

	s.mux.Get("/compare", h.comparePage)
	s.mux.Post("/compare", h.compareSubmit)
	s.mux.Post("/compare/reset", h.compareReset)

	s.mux.Get("/search", h.searchPage)
	s.mux.Post("/search", h.searchSubmit)
	s.mux.Post("/search/reset", h.searchReset)

	s.mux.Get("/prediction", h.predictionPage)
	s.mux.Post("/prediction", h.predictionSubmit)
	s.mux.Post("/prediction/reset", h.predictionReset)

	s.mux.Get("/recommendation", h.recommendationPage)
	s.mux.Post("/recommendation", h.recommendationSubmit)
	s.mux.Post("/recommendation/reset", h.recommendationReset)
}

// Submits follow POST-redirect-GET so a browser refresh never resubmits
// a form; the panel keeps the outcome until the redirected GET renders it.

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	h.r.render(w, "home", pageData{Title: "Home", Active: "home"})
}

// ---- list ----

func (h *Handlers) propertiesPage(w http.ResponseWriter, r *http.Request) {
	h.Panels.List.EnsureLoaded(r.Context())
	h.r.render(w, "properties", pageData{Title: "Properties", Active: "properties", V: h.Panels.List.View()})
}

func (h *Handlers) propertiesRefresh(w http.ResponseWriter, r *http.Request) {
	h.Panels.List.Refresh(r.Context())
	http.Redirect(w, r, "/properties", http.StatusSeeOther)
}

func (h *Handlers) propertiesReset(w http.ResponseWriter, r *http.Request) {
	h.Panels.List.Reset()
	http.Redirect(w, r, "/properties", http.StatusSeeOther)
}

// ---- detail ----

type detailView struct {
	Err      string
	Property *domain.PropertyDetail
}

func (h *Handlers) propertyDetail(w http.ResponseWriter, r *http.Request) {
	p, errMsg := app.FetchDetail(r.Context(), h.Backend, chi.URLParam(r, "id"))
	h.r.render(w, "property", pageData{Title: "Property", Active: "properties", V: detailView{Err: errMsg, Property: p}})
}

// ---- compare ----

func (h *Handlers) comparePage(w http.ResponseWriter, r *http.Request) {
	h.r.render(w, "compare", pageData{Title: "Compare", Active: "compare", V: h.Panels.Compare.View()})
}

func (h *Handlers) compareSubmit(w http.ResponseWriter, r *http.Request) {
	h.Panels.Compare.Submit(r.Context(), app.CompareForm{
		ID1: r.FormValue("id1"),
		ID2: r.FormValue("id2"),
	})
	http.Redirect(w, r, "/compare", http.StatusSeeOther)
}

func (h *Handlers) compareReset(w http.ResponseWriter, r *http.Request) {
	h.Panels.Compare.Reset()
	http.Redirect(w, r, "/compare", http.StatusSeeOther)
}

// ---- search ----

func (h *Handlers) searchPage(w http.ResponseWriter, r *http.Request) {
	h.r.render(w, "search", pageData{Title: "Search", Active: "search", V: h.Panels.Search.View()})
}

func (h *Handlers) searchSubmit(w http.ResponseWriter, r *http.Request) {
	h.Panels.Search.Submit(r.Context(), app.SearchForm{
		Location:    r.FormValue("location"),
		Budget:      r.FormValue("budget"),
		Preferences: r.FormValue("preferences"),
	})
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}

func (h *Handlers) searchReset(w http.ResponseWriter, r *http.Request) {
	h.Panels.Search.Reset()
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}

// ---- prediction ----

func (h *Handlers) predictionPage(w http.ResponseWriter, r *http.Request) {
	h.r.render(w, "prediction", pageData{Title: "Price prediction", Active: "prediction", V: h.Panels.Predict.View()})
}

func (h *Handlers) predictionSubmit(w http.ResponseWriter, r *http.Request) {
	h.Panels.Predict.Submit(r.Context(), app.PredictForm{
		Location:  r.FormValue("location"),
		SqFt:      r.FormValue("sqft"),
		Bedrooms:  r.FormValue("bedrooms"),
		Bathrooms: r.FormValue("bathrooms"),
		YearBuilt: r.FormValue("year_built"),
	})
	http.Redirect(w, r, "/prediction", http.StatusSeeOther)
}

func (h *Handlers) predictionReset(w http.ResponseWriter, r *http.Request) {
	h.Panels.Predict.Reset()
	http.Redirect(w, r, "/prediction", http.StatusSeeOther)
}

// ---- recommendation ----

func (h *Handlers) recommendationPage(w http.ResponseWriter, r *http.Request) {
	h.r.render(w, "recommendation", pageData{Title: "Recommendations", Active: "recommendation", V: h.Panels.Recommend.View()})
}

func (h *Handlers) recommendationSubmit(w http.ResponseWriter, r *http.Request) {
	h.Panels.Recommend.Submit(r.Context(), app.RecommendForm{
		Budget:      r.FormValue("budget"),
		MinBedrooms: r.FormValue("min_bedrooms"),
	})
	http.Redirect(w, r, "/recommendation", http.StatusSeeOther)
}

func (h *Handlers) recommendationReset(w http.ResponseWriter, r *http.Request) {
	h.Panels.Recommend.Reset()
	http.Redirect(w, r, "/recommendation", http.StatusSeeOther)
}
