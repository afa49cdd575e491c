// Package renderer turns fund tables and search results into Markdown or CSV.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/brfunds"
)

//go:embed templates/*.md
var templates embed.FS

// RenderTable renders a table to a Markdown string, one row per date.
func RenderTable(t *brfunds.Table, opts Options) string {
	partials := map[string]string{
		"table_row": "table_row.md",
	}
	return renderTemplate("table", "table.md", partials, NewTableView(t, opts))
}

// RenderSearch renders search results to a Markdown string.
func RenderSearch(funds []brfunds.FundSummary) string {
	rows := make([]brfunds.FundSummary, len(funds))
	for i, f := range funds {
		rows[i] = brfunds.FundSummary{ID: f.ID, CNPJ: escape(f.CNPJ), Name: escape(f.Name)}
	}
	return renderTemplate("search", "search.md", nil, rows)
}

// escape protects the cell separator.
func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
