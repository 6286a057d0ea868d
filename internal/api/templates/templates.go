// Package templates contém as páginas HTML do site, embutidas no binário.
package templates

import (
	"embed"
	"html/template"

	"github.com/seguros-online/app-simulacao/internal/utils"
)

//go:embed *.html
var files embed.FS

// Funcs são as funções disponíveis nos templates.
var Funcs = template.FuncMap{
	"linkCategoria": func(cat any) string {
		return utils.LinkCategoria("/simulacao", toString(cat))
	},
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case interface{ String() string }:
		return s.String()
	}
	return ""
}

// Load interpreta todos os templates embutidos. Chaves em falta nos mapas
// (erros por campo) resultam em texto vazio.
func Load() (*template.Template, error) {
	return template.New("site").Option("missingkey=zero").Funcs(Funcs).ParseFS(files, "*.html")
}
