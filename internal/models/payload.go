package models

import "sort"

// Payload é o mapeamento plano nome → valor enviado para o endpoint de leads.
type Payload map[string]string

// Chaves devolve os nomes dos campos ordenados, útil para saída determinística.
func (p Payload) Chaves() []string {
	chaves := make([]string, 0, len(p))
	for k := range p {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)
	return chaves
}

// Clone devolve uma cópia independente do payload.
func (p Payload) Clone() Payload {
	c := make(Payload, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}
