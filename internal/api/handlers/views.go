package handlers

import (
	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/seguros-online/app-simulacao/internal/site"
)

// pageView regista os pedidos de apresentação do controlador para serem
// traduzidos em atributos HTML: scroll até ao formulário e foco no campo com erro.
// A tab ativa é lida de Controller.Tabs.
type pageView struct {
	scrollToForm bool
	revealField  string
}

func (v *pageView) RevealTab(models.Categoria) {}
func (v *pageView) ScrollToForm()              { v.scrollToForm = true }
func (v *pageView) RevealField(id string)      { v.revealField = id }

type fieldView struct {
	quote.Field
	Value     string
	Error     string
	Visible   bool
	Autofocus bool
}

type panelView struct {
	Categoria models.Categoria
	Active    bool
	Fields    []fieldView
}

// formBlock é um grupo de campos partilhados ou, com Panels preenchido, o
// conjunto dos painéis de categoria, pela ordem do formulário.
type formBlock struct {
	Fields []fieldView
	Panels []panelView
}

type formView struct {
	ID               string
	Action           string
	Title            string
	Tabbed           bool
	Tabs             []quote.TabState
	Categoria        models.Categoria
	HasCategoryField bool
	Blocks           []formBlock
	Status           models.Status
	ScrollToForm     bool
}

func buildFormView(ctrl *quote.Controller, view *pageView, action string) formView {
	schema := ctrl.Schema()
	values := ctrl.Values()
	errs := ctrl.Errors()
	active := ctrl.ActiveCategory()

	toView := func(f quote.Field) fieldView {
		return fieldView{
			Field:     f,
			Value:     values[f.ID],
			Error:     errs[f.ID],
			Visible:   f.InPanel(active),
			Autofocus: view != nil && view.revealField == f.ID,
		}
	}

	var blocks []formBlock
	var shared []fieldView
	panelsDone := false
	for _, f := range schema.Fields() {
		if f.Kind == quote.KindHidden {
			continue
		}
		if f.Shared() {
			shared = append(shared, toView(f))
			continue
		}
		if panelsDone {
			continue
		}
		if len(shared) > 0 {
			blocks = append(blocks, formBlock{Fields: shared})
			shared = nil
		}
		var panels []panelView
		for _, cat := range models.Categorias() {
			p := panelView{Categoria: cat, Active: cat == active}
			for _, pf := range schema.PanelFields(cat) {
				if renderPanel(pf, active) == cat {
					p.Fields = append(p.Fields, toView(pf))
				}
			}
			panels = append(panels, p)
		}
		blocks = append(blocks, formBlock{Panels: panels})
		panelsDone = true
	}
	if len(shared) > 0 {
		blocks = append(blocks, formBlock{Fields: shared})
	}

	return formView{
		ID:               schema.ID,
		Action:           action,
		Title:            ctrl.Title(),
		Tabbed:           schema.Tabbed(),
		Tabs:             ctrl.Tabs(),
		Categoria:        active,
		HasCategoryField: schema.Has(quote.CategoryFieldID),
		Blocks:           blocks,
		Status:           ctrl.Status(),
		ScrollToForm:     view != nil && view.scrollToForm,
	}
}

// renderPanel escolhe o único painel onde um campo partilhado por várias
// categorias é desenhado: o ativo, se lhe pertencer, ou o primeiro da lista.
func renderPanel(f quote.Field, active models.Categoria) models.Categoria {
	if f.InPanel(active) {
		return active
	}
	return f.Panels[0]
}

// homeView são os dados da página inicial.
type homeView struct {
	PageTitle     string
	Content       *site.Content
	MenuOpen      bool
	Slide         int
	PrevSlide     int
	NextSlide     int
	FAQOpen       int
	Contact       models.ContactoRequest
	ContactErrors map[string]string
	ContactSent   bool
	ContactFailed string
}

type simulacaoView struct {
	PageTitle string
	Content   *site.Content
	MenuOpen  bool
	Form      formView
}
