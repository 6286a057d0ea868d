package site

// Accordion mantém no máximo um item aberto.
type Accordion struct {
	total int
	open  int
}

func NewAccordion(total int) *Accordion {
	return &Accordion{total: total, open: -1}
}

// Toggle abre o item i fechando os restantes, ou fecha-o se já estava aberto.
// Índices fora do intervalo são ignorados.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.total {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// Open devolve o índice do item aberto, ou -1.
func (a *Accordion) Open() int {
	return a.open
}

func (a *Accordion) CloseAll() {
	a.open = -1
}
