package quote

import "github.com/seguros-online/app-simulacao/internal/models"

// View recebe os pedidos de apresentação do controlador (mostrar a tab ativa,
// levar o visitante até ao formulário ou até um campo com erro).
// Os métodos são chamados com o controlador bloqueado e não devem voltar a chamá-lo.
type View interface {
	RevealTab(cat models.Categoria)
	ScrollToForm()
	RevealField(id string)
}

// NopView ignora todos os pedidos de apresentação.
type NopView struct{}

func (NopView) RevealTab(models.Categoria) {}
func (NopView) ScrollToForm()              {}
func (NopView) RevealField(string)         {}

// ScrollOptions controla se a mudança de categoria leva a página até ao formulário.
type ScrollOptions struct {
	Scroll bool
}

// TabState descreve uma tab de categoria para apresentação.
type TabState struct {
	Categoria models.Categoria
	Nome      string
	Active    bool
}
