package models

import (
	"errors"

	"github.com/seguros-online/app-simulacao/internal/constants"
	"github.com/seguros-online/app-simulacao/internal/utils"
)

// ErrCategoriaInvalida é devolvido quando um valor não corresponde a nenhuma categoria conhecida.
var ErrCategoriaInvalida = errors.New("categoria inválida")

// Categoria identifica uma linha de produto e determina o painel ativo do formulário.
type Categoria string

const (
	CategoriaAuto      Categoria = "auto"
	CategoriaMoto      Categoria = "moto"
	CategoriaAcidentes Categoria = "acidentes"
	CategoriaSaude     Categoria = "saude"
	CategoriaVida      Categoria = "vida"
	CategoriaHab       Categoria = "hab"
	CategoriaPPR       Categoria = "ppr"
	CategoriaRC        Categoria = "rc"
)

// CategoriaPadrao é a categoria ativa quando nada mais a determina.
const CategoriaPadrao = CategoriaAuto

// Categorias devolve todas as categorias pela ordem das tabs.
func Categorias() []Categoria {
	lista := make([]Categoria, 0, len(constants.CategoriasValidas))
	for _, c := range constants.CategoriasValidas {
		lista = append(lista, Categoria(c))
	}
	return lista
}

// Valida indica se o valor pertence ao conjunto fechado de categorias.
func (c Categoria) Valida() bool {
	for _, v := range constants.CategoriasValidas {
		if string(c) == v {
			return true
		}
	}
	return false
}

// Titulo devolve o título do formulário para a categoria.
func (c Categoria) Titulo() string {
	if titulo, ok := constants.TitulosCategoria[string(c)]; ok {
		return titulo
	}
	return constants.TituloPadrao
}

// Nome devolve o rótulo curto usado nas tabs.
func (c Categoria) Nome() string {
	if nome, ok := constants.NomesCategoria[string(c)]; ok {
		return nome
	}
	return string(c)
}

func (c Categoria) String() string {
	return string(c)
}

// ParseCategoria resolve um valor externo (query string, campo escondido, API) numa categoria.
// Aceita diferenças de maiúsculas, acentos e as formas por extenso mais comuns.
func ParseCategoria(valor string) (Categoria, error) {
	chave := utils.NormalizarChave(valor)
	if chave == "" {
		return "", ErrCategoriaInvalida
	}
	if alias, ok := constants.AliasesCategoria[chave]; ok {
		chave = alias
	}

	c := Categoria(chave)
	if !c.Valida() {
		return "", ErrCategoriaInvalida
	}
	return c, nil
}
