// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

// Page template names.
const (
	PageOverview = "overview.html"
	PageTour     = "tour.html"
	PageLogin    = "login.html"
	PageSignup   = "signup.html"
	PageAccount  = "account.html"
	PageError    = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"month": func(t time.Time) string {
		return t.Format("January 2006")
	},
	"firstWord": func(s string) string {
		if fields := strings.Fields(s); len(fields) > 0 {
			return fields[0]
		}
		return s
	},
	"firstOr": func(dates []time.Time) *time.Time {
		if len(dates) == 0 {
			return nil
		}
		return &dates[0]
	},
	"stars": func(rating float64) []bool {
		stars := make([]bool, 5)
		for i := range stars {
			stars[i] = rating >= float64(i+1)
		}
		return stars
	},
}

// Templates parses every page. It panics on a malformed template, which
// can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
