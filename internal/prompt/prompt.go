package prompt

import (
	"bytes"
	"fmt"
	"strings"

	"homecalc/internal/registry"
	"homecalc/internal/util/jsonutil"
)

// Field describes a single output field in a declared shape.
type Field struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

// Turn is one rendered conversation turn, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Builder assembles a sectioned prompt. Instructional sections are
// written as plain text; caller-controlled text must go through
// JSONSection so it stays structurally separated from the instructions.
type Builder struct {
	buf bytes.Buffer
}

// Section appends a [TITLE] block. Empty bodies are skipped.
func (b *Builder) Section(title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	b.buf.WriteString("[")
	b.buf.WriteString(title)
	b.buf.WriteString("]\n")
	b.buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.buf.WriteString("\n")
	}
	b.buf.WriteString("\n")
}

// JSONSection appends a section whose body is the JSON encoding of v.
// Encoding neutralizes caller text: whatever it contains, it remains a
// quoted JSON value and cannot open or close a section.
func (b *Builder) JSONSection(title string, v any) {
	enc, err := jsonutil.MarshalNoEscapeIndent(v)
	if err != nil {
		enc = []byte("null")
	}
	b.Section(title, string(enc))
}

// String returns the composed prompt.
func (b *Builder) String() string {
	return strings.TrimSpace(b.buf.String()) + "\n"
}

// FormatList renders items as a dash list.
func FormatList(items []string) string {
	var buf strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&buf, "- %s\n", item)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// FormatFields renders output fields with type and optionality.
func FormatFields(fields []Field) string {
	var buf strings.Builder
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		req := "optional"
		if f.Required {
			req = "required"
		}
		if f.Description != "" {
			fmt.Fprintf(&buf, "- %s (%s, %s): %s\n", name, f.Type, req, f.Description)
		} else {
			fmt.Fprintf(&buf, "- %s (%s, %s)\n", name, f.Type, req)
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// FormatCatalogDescriptions renders the catalog as "name: description"
// lines in registry order.
func FormatCatalogDescriptions(cals []registry.Calculator) string {
	var buf strings.Builder
	for _, c := range cals {
		fmt.Fprintf(&buf, "- %s: %s\n", c.Name, c.Description)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// FormatCatalogSlugs renders the catalog as "name (slug)" lines.
func FormatCatalogSlugs(cals []registry.Calculator) string {
	var buf strings.Builder
	for _, c := range cals {
		fmt.Fprintf(&buf, "- %s (slug: %s)\n", c.Name, c.Slug)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// FormatHistory renders alternating role-labeled turns as a JSON array.
// History content is caller-controlled, so it is encoded rather than
// inlined.
func FormatHistory(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}
	enc, err := jsonutil.MarshalNoEscapeIndent(turns)
	if err != nil {
		return ""
	}
	return string(enc)
}
