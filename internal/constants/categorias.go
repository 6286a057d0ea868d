package constants

// CategoriasValidas contém as linhas de produto disponíveis no formulário de simulação,
// na ordem em que as tabs são apresentadas.
var CategoriasValidas = []string{
	"auto",
	"moto",
	"acidentes",
	"saude",
	"vida",
	"hab",
	"ppr",
	"rc",
}

// TituloPadrao é usado quando a categoria não tem título próprio.
const TituloPadrao = "Pedido de Simulação"

// TitulosCategoria associa cada categoria ao título apresentado no topo do formulário.
var TitulosCategoria = map[string]string{
	"auto":      "Pedido de Simulação — Auto",
	"moto":      "Pedido de Simulação — Moto",
	"acidentes": "Pedido de Simulação — Acidentes Pessoais",
	"saude":     "Pedido de Simulação — Saúde",
	"vida":      "Pedido de Simulação — Vida Risco",
	"hab":       "Pedido de Simulação — Multirriscos Habitação",
	"ppr":       "Pedido de Simulação — PPR",
	"rc":        "Pedido de Simulação — Responsabilidade Civil Geral",
}

// NomesCategoria são os rótulos curtos usados nas tabs e nos cartões da página inicial.
var NomesCategoria = map[string]string{
	"auto":      "Auto",
	"moto":      "Moto",
	"acidentes": "Acidentes Pessoais",
	"saude":     "Saúde",
	"vida":      "Vida Risco",
	"hab":       "Habitação",
	"ppr":       "PPR",
	"rc":        "Responsabilidade Civil",
}

// AliasesCategoria aceita formas por extenso (já normalizadas, sem acentos) vindas de links externos.
var AliasesCategoria = map[string]string{
	"automovel":              "auto",
	"motociclo":              "moto",
	"acidentes pessoais":     "acidentes",
	"vida risco":             "vida",
	"habitacao":              "hab",
	"multirriscos":           "hab",
	"multirriscos habitacao": "hab",
	"responsabilidade civil": "rc",
}
