package site

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/utils"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var ErrConteudoInvalido = errors.New("conteúdo do site inválido")

// Slide é um diapositivo do slideshow da página inicial.
type Slide struct {
	Titulo    string           `yaml:"titulo"`
	Subtitulo string           `yaml:"subtitulo"`
	Imagem    string           `yaml:"imagem"`
	CTA       string           `yaml:"cta"`
	Categoria models.Categoria `yaml:"categoria"`
	Link      string           `yaml:"-"`
}

// FAQItem é uma pergunta frequente; a resposta é escrita em Markdown.
type FAQItem struct {
	Pergunta     string        `yaml:"pergunta"`
	Resposta     string        `yaml:"resposta"`
	RespostaHTML template.HTML `yaml:"-"`
	Ancora       string        `yaml:"-"`
}

type NavLink struct {
	Rotulo string `yaml:"rotulo"`
	Href   string `yaml:"href"`
}

// Seccao identifica uma secção da página usada no destaque da navegação.
type Seccao struct {
	ID     string `yaml:"id"`
	Titulo string `yaml:"titulo"`
}

type Produto struct {
	Categoria models.Categoria `yaml:"categoria"`
	Descricao string           `yaml:"descricao"`
	Nome      string           `yaml:"-"`
	Link      string           `yaml:"-"`
}

type Contacto struct {
	Telefone string `yaml:"telefone"`
	Email    string `yaml:"email"`
	Morada   string `yaml:"morada"`
	Horario  string `yaml:"horario"`
}

// Content agrupa o conteúdo editável do site.
type Content struct {
	Empresa  string    `yaml:"empresa"`
	Contacto Contacto  `yaml:"contacto"`
	Nav      []NavLink `yaml:"nav"`
	Seccoes  []Seccao  `yaml:"seccoes"`
	Slides   []Slide   `yaml:"slides"`
	Produtos []Produto `yaml:"produtos"`
	FAQ      []FAQItem `yaml:"faq"`
}

// LoadContent lê o conteúdo do ficheiro indicado ou, com path vazio, o conteúdo embutido.
func LoadContent(path string) (*Content, error) {
	if strings.TrimSpace(path) == "" {
		return ParseContent(defaultContent)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler conteúdo %s: %w", path, err)
	}
	return ParseContent(data)
}

// DefaultContent devolve o conteúdo embutido.
func DefaultContent() *Content {
	c, err := ParseContent(defaultContent)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseContent interpreta o YAML, valida as categorias referidas e prepara
// os campos derivados (HTML das respostas, âncoras e links de simulação).
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConteudoInvalido, err)
	}
	if len(c.Slides) == 0 {
		return nil, fmt.Errorf("%w: sem slides", ErrConteudoInvalido)
	}

	for i := range c.Slides {
		s := &c.Slides[i]
		if s.Categoria == "" {
			continue
		}
		cat, err := models.ParseCategoria(string(s.Categoria))
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrConteudoInvalido, i, err)
		}
		s.Categoria = cat
		s.Link = utils.LinkCategoria("/simulacao", string(cat))
	}

	for i := range c.Produtos {
		p := &c.Produtos[i]
		cat, err := models.ParseCategoria(string(p.Categoria))
		if err != nil {
			return nil, fmt.Errorf("%w: produto %d: %v", ErrConteudoInvalido, i, err)
		}
		p.Categoria = cat
		p.Nome = cat.Nome()
		p.Link = utils.LinkCategoria("/simulacao", string(cat))
	}

	usadas := map[string]int{}
	for i := range c.FAQ {
		f := &c.FAQ[i]
		f.RespostaHTML = utils.RenderMarkdown(f.Resposta)
		ancora := utils.GerarAncora(f.Pergunta)
		if n := usadas[ancora]; n > 0 {
			ancora = fmt.Sprintf("%s-%d", ancora, n+1)
		}
		usadas[utils.GerarAncora(f.Pergunta)]++
		f.Ancora = ancora
	}

	return &c, nil
}

// SectionIDs devolve os identificadores das secções pela ordem da página.
func (c *Content) SectionIDs() []string {
	ids := make([]string, 0, len(c.Seccoes))
	for _, s := range c.Seccoes {
		ids = append(ids, s.ID)
	}
	return ids
}
