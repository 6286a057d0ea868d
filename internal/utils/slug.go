package utils

import (
	"regexp"
	"strings"
)

// MaxAncoraLength limita o tamanho das âncoras geradas para secções e perguntas.
const MaxAncoraLength = 60

var naoAlfanumerico = regexp.MustCompile(`[^a-z0-9]+`)

// GerarAncora cria um identificador kebab-case adequado para atributos id e links #.
// Exemplo: "Como é calculado o prémio?" -> "como-e-calculado-o-premio"
func GerarAncora(texto string) string {
	ancora := strings.ToLower(RemoverAcentos(texto))
	ancora = naoAlfanumerico.ReplaceAllString(ancora, "-")
	ancora = strings.Trim(ancora, "-")

	if len(ancora) > MaxAncoraLength {
		ancora = ancora[:MaxAncoraLength]
		if ultimo := strings.LastIndex(ancora, "-"); ultimo > 0 {
			ancora = ancora[:ultimo]
		}
	}
	return ancora
}
