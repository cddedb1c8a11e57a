package httpserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home", "properties", "property", "compare", "search", "prediction", "recommendation",
}

// Renderer holds one parsed template set per page, each sharing layout.html.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": money,
		"num":   num,
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(
			template.New("layout.html").Funcs(funcs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return &Renderer{pages: pages}
}

// pageData is what every template receives: chrome fields plus the
// panel's view snapshot under V.
type pageData struct {
	Title  string
	Active string
	V      any
}

func (rn *Renderer) render(w http.ResponseWriter, page string, data pageData) {
	t, ok := rn.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown template page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	// Render to a buffer first so a template error never emits half a page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("template render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("page", page).Msg("write page body failed")
	}
}

// money renders a price as whole dollars with thousands grouping.
func money(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + "$" + string(out)
}

// num prints a float without trailing zeros, rounding to two decimals.
func num(v float64) string {
	r := math.Round(v*100) / 100
	return fmt.Sprintf("%v", r)
}
