package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in Markdown input is escaped; WithUnsafe is not set.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

var templateFuncs = template.FuncMap{
	"markdown": func(p *string) template.HTML {
		if p == nil {
			return ""
		}
		return renderMarkdown(*p)
	},
	"text":  display,
	"lower": strings.ToLower,
	"statusClass": func(s string) string {
		return "status-" + strings.ReplaceAll(strings.ToLower(s), " ", "-")
	},
	"tableView": func(t Table, link string, approve bool, ret string, csrf template.HTML) tableView {
		return tableView{Table: t, Link: link, Approve: approve, Return: ret, CSRF: csrf}
	},
}

// tableView is the argument of the shared "table" template.
type tableView struct {
	Table
	Link    string // Detail link prefix; empty for no link
	Approve bool
	Return  string
	CSRF    template.HTML
}

// templateSet holds one parsed template per page, each combined with the
// shared layout.
type templateSet struct {
	pages map[string]*template.Template
}

func loadTemplates() (*templateSet, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	ts := &templateSet{pages: make(map[string]*template.Template)}
	for _, file := range files {
		name := path.Base(file)
		if name == "layout.html" {
			continue
		}
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		ts.pages[name] = tmpl
	}
	return ts, nil
}

func (ts *templateSet) render(w io.Writer, name string, data any) error {
	tmpl, ok := ts.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.Execute(w, data)
}
