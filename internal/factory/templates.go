package factory

import (
	"bytes"
	"strings"
	"text/template"

	declerrors "github.com/toyz/paramdecl/internal/errors"
)

// templateRegistry holds the source templates by name
type templateRegistry struct {
	templates map[string]string
}

func newTemplateRegistry() *templateRegistry {
	registry := &templateRegistry{
		templates: make(map[string]string),
	}
	registry.registerConstructorTemplates()
	registry.registerAliasTemplates()
	return registry
}

// Get retrieves a template by name
func (tr *templateRegistry) Get(name string) (string, bool) {
	tmpl, exists := tr.templates[name]
	return tmpl, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *templateRegistry) MustGet(name string) string {
	tmpl, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return tmpl
}

func (tr *templateRegistry) registerConstructorTemplates() {
	tr.templates["constructors"] = `// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

import "{{.LocationImport}}"
{{range .Constructors}}
// {{.Name}}Options holds the parameters accepted by {{.Name}}.
type {{.Name}}Options struct {
{{- range $i, $f := .Fields}}
{{if $i}}
{{end}}{{comment "\t" $f.Doc}}	{{$f.Name}} {{$f.Type}} ` + "`{{$f.Tag}}`" + `
{{- end}}
}

{{comment "" .Summary}}func {{.Name}}(opts {{.Name}}Options) *location.Param {
	return build("{{.Name}}", opts)
}
{{end}}`
}

func (tr *templateRegistry) registerAliasTemplates() {
	tr.templates["aliases"] = `// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
{{range .Imports}}import "{{.}}"
{{end}}{{end}}{{range .Aliases}}
{{comment "" .Doc}}type {{.Name}} = {{.Type}}
{{end}}`
}

// comment renders lines as a // comment block, one line each
func comment(indent string, lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(indent)
		b.WriteString("//")
		if line != "" {
			b.WriteString(" ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	funcMap := template.FuncMap{
		"comment": comment,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", declerrors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", declerrors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}
