// Package renderer renders conversion results as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/bilag"
)

//go:embed templates/*.md
var embedded embed.FS

var templates, _ = fs.Sub(embedded, "templates")

// Currency of the amounts in the Dinero import.
const Currency = "DKK"

// PreviewRenderOptions holds configuration for rendering a preview.
type PreviewRenderOptions struct {
	SkipEntries bool // Do not render the entries section.
}

// Preview is a conversion result ready to be rendered.
type Preview struct {
	Source  string // name of the converted export.
	Summary bilag.Summary
	Entries []bilag.Entry
}

// Kinds lists the transaction kinds in the summary table.
func (p *Preview) Kinds() []bilag.Kind { return bilag.Kinds() }

// RenderPreview renders the Preview struct to a markdown string.
func RenderPreview(p *Preview, opts PreviewRenderOptions) string {
	partials := map[string]string{
		"preview_title":   "preview_title.md",
		"preview_summary": "preview_summary.md",
		"preview_entries": "preview_entries.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipEntries {
		partials["preview_entries"] = ""
	}
	return renderTemplate("preview", "preview.md", partials, p)
}

// Kr formats an amount in Danish kroner.
func Kr(a bilag.Amount) string {
	cur := money.GetCurrency(Currency)
	minor := a.Decimal().Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, Currency).Display()
}

var funcs = template.FuncMap{
	"kr": Kr,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
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
