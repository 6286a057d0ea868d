package quote

import (
	"fmt"

	"github.com/seguros-online/app-simulacao/internal/models"
)

// Identificadores dos formulários suportados.
const (
	FormIDTabbed = "autoQuoteForm"
	FormIDLegacy = "quoteForm"
)

// CategoryFieldID é o campo escondido que espelha a categoria ativa.
const CategoryFieldID = "categoria"

// Schema é a lista ordenada de campos de um formulário. A ordem é a do
// documento e determina qual o primeiro campo com erro.
type Schema struct {
	ID     string
	fields []Field
	index  map[string]int
}

// NewSchema constrói um schema, recusando identificadores repetidos.
func NewSchema(id string, fields ...Field) (*Schema, error) {
	s := &Schema{
		ID:     id,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.ID == "" {
			return nil, fmt.Errorf("schema %s: campo sem identificador", id)
		}
		if _, dup := s.index[f.ID]; dup {
			return nil, fmt.Errorf("schema %s: campo %q repetido", id, f.ID)
		}
		for _, p := range f.Panels {
			if !p.Valida() {
				return nil, fmt.Errorf("schema %s: campo %q: %w: %q", id, f.ID, ErrInvalidCategory, p)
			}
		}
		s.index[f.ID] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

func mustSchema(id string, fields ...Field) *Schema {
	s, err := NewSchema(id, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields devolve uma cópia dos campos pela ordem do documento.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field procura um campo pelo identificador.
func (s *Schema) Field(id string) (Field, bool) {
	i, ok := s.index[id]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Has indica se o schema contém o campo.
func (s *Schema) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Tabbed indica se o formulário tem painéis por categoria.
func (s *Schema) Tabbed() bool {
	for _, f := range s.fields {
		if !f.Shared() {
			return true
		}
	}
	return false
}

// SharedFields devolve os campos visíveis em todas as categorias (exceto escondidos).
func (s *Schema) SharedFields() []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Shared() && f.Kind != KindHidden {
			out = append(out, f)
		}
	}
	return out
}

// PanelFields devolve os campos específicos do painel da categoria.
func (s *Schema) PanelFields(cat models.Categoria) []Field {
	var out []Field
	for _, f := range s.fields {
		if !f.Shared() && f.InPanel(cat) {
			out = append(out, f)
		}
	}
	return out
}

// FieldIDs devolve os identificadores dos campos visíveis na categoria.
func (s *Schema) FieldIDs(cat models.Categoria) []string {
	var out []string
	for _, f := range s.fields {
		if f.Kind != KindHidden && f.InPanel(cat) {
			out = append(out, f.ID)
		}
	}
	return out
}

func panels(cats ...models.Categoria) []models.Categoria {
	return cats
}

func opts(pairs ...string) []Choice {
	out := make([]Choice, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Choice{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

var (
	capitalOptions = opts(
		"25000", "25 000 €",
		"50000", "50 000 €",
		"100000", "100 000 €",
		"250000", "250 000 €",
	)
	simNaoOptions = opts("nao", "Não", "sim", "Sim")
)

// DefaultSchema devolve o formulário de simulação com tabs por categoria.
func DefaultSchema() *Schema {
	auto, moto := models.CategoriaAuto, models.CategoriaMoto
	return mustSchema(FormIDTabbed,
		Field{ID: CategoryFieldID, Kind: KindHidden, Default: string(models.CategoriaPadrao)},

		Field{ID: "nome", Label: "Nome completo", Kind: KindText, Required: true, Placeholder: "Nome e apelido"},
		Field{ID: "email", Label: "Email", Kind: KindEmail, Required: true, Placeholder: "nome@exemplo.pt"},
		Field{ID: "telemovel", Label: "Telemóvel", Kind: KindTel, Required: true, Placeholder: "912 345 678"},
		Field{ID: "nif", Label: "NIF", Kind: KindText, Placeholder: "123456789"},
		Field{ID: "codigo_postal", Label: "Código postal", Kind: KindText, Required: true, Placeholder: "1234-567"},
		Field{ID: "data_nascimento", Label: "Data de nascimento", Kind: KindDate, Required: true,
			Panels: panels(auto, moto, models.CategoriaAcidentes, models.CategoriaSaude, models.CategoriaVida, models.CategoriaPPR)},

		Field{ID: "auto_matricula", Label: "Matrícula", Kind: KindText, Required: true, Panels: panels(auto), Placeholder: "AA-00-AA"},
		Field{ID: "auto_marca", Label: "Marca", Kind: KindText, Required: true, Panels: panels(auto)},
		Field{ID: "auto_modelo", Label: "Modelo", Kind: KindText, Panels: panels(auto)},
		Field{ID: "auto_data_matricula", Label: "Data da matrícula", Kind: KindDate, Required: true, Panels: panels(auto)},
		Field{ID: "data_carta", Label: "Data da carta de condução", Kind: KindDate, Required: true, Panels: panels(auto, moto)},
		Field{ID: "auto_cobertura", Label: "Cobertura", Kind: KindSelect, Required: true, Panels: panels(auto),
			Options: opts("terceiros", "Responsabilidade civil", "danos_proprios", "Danos próprios")},
		Field{ID: "auto_inicio", Label: "Início do seguro", Kind: KindDate, Required: true, Panels: panels(auto)},

		Field{ID: "moto_matricula", Label: "Matrícula", Kind: KindText, Required: true, Panels: panels(moto), Placeholder: "00-AA-00"},
		Field{ID: "moto_marca", Label: "Marca", Kind: KindText, Panels: panels(moto)},
		Field{ID: "moto_cilindrada", Label: "Cilindrada", Kind: KindSelect, Required: true, Panels: panels(moto),
			Options: opts("ate_125", "Até 125 cc", "125_500", "125 a 500 cc", "mais_500", "Mais de 500 cc")},
		Field{ID: "moto_data_matricula", Label: "Data da matrícula", Kind: KindDate, Required: true, Panels: panels(moto)},
		Field{ID: "moto_inicio", Label: "Início do seguro", Kind: KindDate, Required: true, Panels: panels(moto)},

		Field{ID: "acidentes_profissao", Label: "Profissão", Kind: KindText, Required: true, Panels: panels(models.CategoriaAcidentes)},
		Field{ID: "acidentes_capital", Label: "Capital", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaAcidentes),
			Options: capitalOptions},

		Field{ID: "saude_pessoas", Label: "Pessoas a segurar", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaSaude),
			Options: opts("1", "1", "2", "2", "3", "3", "4", "4 ou mais")},
		Field{ID: "saude_plano", Label: "Plano", Kind: KindSelect, Panels: panels(models.CategoriaSaude),
			Options: opts("base", "Base", "intermedio", "Intermédio", "completo", "Completo")},

		Field{ID: "vida_capital", Label: "Capital", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaVida),
			Options: capitalOptions},
		Field{ID: "vida_fumador", Label: "Fumador", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaVida),
			Options: simNaoOptions},
		Field{ID: "vida_credito", Label: "Associado a crédito habitação", Kind: KindSelect, Panels: panels(models.CategoriaVida),
			Options: simNaoOptions},

		Field{ID: "hab_tipo", Label: "Tipo de imóvel", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaHab),
			Options: opts("apartamento", "Apartamento", "moradia", "Moradia")},
		Field{ID: "hab_morada", Label: "Morada do imóvel", Kind: KindText, Required: true, Panels: panels(models.CategoriaHab)},
		Field{ID: "hab_area", Label: "Área (m²)", Kind: KindText, Panels: panels(models.CategoriaHab)},
		Field{ID: "hab_ano", Label: "Ano de construção", Kind: KindText, Panels: panels(models.CategoriaHab)},

		Field{ID: "ppr_valor", Label: "Contribuição pretendida (€)", Kind: KindText, Required: true, Panels: panels(models.CategoriaPPR)},
		Field{ID: "ppr_periodicidade", Label: "Periodicidade", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaPPR),
			Options: opts("mensal", "Mensal", "anual", "Anual", "unica", "Entrega única")},
		Field{ID: "ppr_perfil", Label: "Perfil de risco", Kind: KindSelect, Panels: panels(models.CategoriaPPR),
			Options: opts("conservador", "Conservador", "moderado", "Moderado", "dinamico", "Dinâmico")},

		Field{ID: "rc_atividade", Label: "Atividade", Kind: KindText, Required: true, Panels: panels(models.CategoriaRC)},
		Field{ID: "rc_empresa", Label: "Empresa", Kind: KindText, Panels: panels(models.CategoriaRC)},
		Field{ID: "rc_capital", Label: "Capital", Kind: KindSelect, Required: true, Panels: panels(models.CategoriaRC),
			Options: capitalOptions},

		Field{ID: "mensagem", Label: "Observações", Kind: KindTextarea},
		Field{ID: "consentimento", Label: "Autorizo o contacto para efeitos desta simulação.", Kind: KindCheckbox, Required: true},
	)
}

// LegacySchema devolve o formulário antigo, só de automóvel e sem tabs.
func LegacySchema() *Schema {
	return mustSchema(FormIDLegacy,
		Field{ID: "nome", Label: "Nome completo", Kind: KindText, Required: true},
		Field{ID: "email", Label: "Email", Kind: KindEmail, Required: true},
		Field{ID: "telemovel", Label: "Telemóvel", Kind: KindTel, Required: true},
		Field{ID: "nif", Label: "NIF", Kind: KindText},
		Field{ID: "codigo_postal", Label: "Código postal", Kind: KindText, Required: true},
		Field{ID: "data_nascimento", Label: "Data de nascimento", Kind: KindDate, Required: true},
		Field{ID: "data_carta", Label: "Data da carta de condução", Kind: KindDate, Required: true},
		Field{ID: "matricula", Label: "Matrícula", Kind: KindText, Required: true},
		Field{ID: "marca", Label: "Marca", Kind: KindText},
		Field{ID: "modelo", Label: "Modelo", Kind: KindText},
		Field{ID: "data_matricula", Label: "Data da matrícula", Kind: KindDate},
		Field{ID: "inicio_seguro", Label: "Início do seguro", Kind: KindDate, Required: true},
		Field{ID: "mensagem", Label: "Observações", Kind: KindTextarea},
	)
}

// SchemaByID devolve o schema correspondente ao identificador do formulário.
func SchemaByID(id string) (*Schema, bool) {
	switch id {
	case FormIDTabbed:
		return DefaultSchema(), true
	case FormIDLegacy:
		return LegacySchema(), true
	}
	return nil, false
}
