package site

import "math"

const (
	// ActiveSectionOffset é somado ao scroll ao decidir a secção ativa.
	ActiveSectionOffset = 100
	// HeaderScrollThreshold é o scroll a partir do qual o cabeçalho fica compacto.
	HeaderScrollThreshold = 100
	// FormScrollGap é a folga extra abaixo do cabeçalho ao levar a página até ao formulário.
	FormScrollGap = 14
	// MinFormScrollDelta é a distância mínima para valer a pena fazer scroll.
	MinFormScrollDelta = 80
)

// Menu é o estado do menu de navegação móvel.
type Menu struct {
	open bool
}

func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

func (m *Menu) Close() {
	m.open = false
}

func (m *Menu) IsOpen() bool {
	return m.open
}

// LinkClicked fecha o menu depois de escolher um link.
func (m *Menu) LinkClicked() {
	m.open = false
}

// ClickOutside fecha o menu quando o clique não foi nem na navegação nem no botão.
func (m *Menu) ClickOutside(insideNav, onToggle bool) {
	if !insideNav && !onToggle && m.open {
		m.open = false
	}
}

// SectionBox é a posição vertical de uma secção da página.
type SectionBox struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection devolve a secção que contém scrollY + ActiveSectionOffset.
// Se várias contiverem o ponto, vence a última; sem nenhuma devolve "".
func ActiveSection(scrollY float64, sections []SectionBox) string {
	pos := scrollY + ActiveSectionOffset
	active := ""
	for _, s := range sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			active = s.ID
		}
	}
	return active
}

// ScrollTarget devolve a posição de scroll para um link interno, descontando o cabeçalho fixo.
func ScrollTarget(offsetTop, headerHeight float64) float64 {
	return offsetTop - headerHeight
}

// HeaderScrolled indica se o cabeçalho deve passar ao estado compacto.
func HeaderScrolled(pageY float64) bool {
	return pageY > HeaderScrollThreshold
}

// FormScrollTarget calcula o destino do scroll até ao formulário de simulação.
// rectTop é a posição do formulário relativa à janela. scroll é false quando a
// página já está a menos de MinFormScrollDelta do destino.
func FormScrollTarget(rectTop, pageY, headerHeight float64) (y float64, scroll bool) {
	y = math.Max(0, rectTop+pageY-(headerHeight+FormScrollGap))
	return y, math.Abs(pageY-y) > MinFormScrollDelta
}
