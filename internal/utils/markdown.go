package utils

import (
	stdhtml "html"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	politicaConteudo = bluemonday.UGCPolicy()
	politicaTexto    = bluemonday.StrictPolicy()
)

// RenderMarkdown converte Markdown em HTML sanitizado, pronto a inserir num template.
func RenderMarkdown(texto string) template.HTML {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.NofollowLinks,
	})

	bruto := markdown.ToHTML([]byte(texto), p, renderer)
	limpo := politicaConteudo.SanitizeBytes(bruto)

	return template.HTML(strings.TrimSpace(string(limpo)))
}

// SanitizarTexto remove qualquer marcação de texto livre submetido por visitantes.
// O resultado é texto simples; o escape fica a cargo de quem o apresenta.
func SanitizarTexto(texto string) string {
	return strings.TrimSpace(stdhtml.UnescapeString(politicaTexto.Sanitize(texto)))
}
