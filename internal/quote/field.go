package quote

import "github.com/seguros-online/app-simulacao/internal/models"

// Kind é o tipo de controlo de um campo do formulário.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
	KindHidden   Kind = "hidden"
	KindCheckbox Kind = "checkbox"
)

// Event identifica o evento que dispara a validação em tempo real de um campo.
type Event string

const (
	EventInput  Event = "input"
	EventChange Event = "change"
)

// ParseEvent converte o nome do evento; valores desconhecidos valem EventInput.
func ParseEvent(s string) Event {
	if Event(s) == EventChange {
		return EventChange
	}
	return EventInput
}

// Choice é uma opção de um campo select.
type Choice struct {
	Value string
	Label string
}

// Field descreve um campo do formulário e a sua pertença aos painéis de categoria.
// Um campo sem painéis é partilhado por todas as categorias.
type Field struct {
	ID          string
	Name        string
	Label       string
	Kind        Kind
	Required    bool
	Panels      []models.Categoria
	Default     string
	Placeholder string
	Options     []Choice
}

// InputName devolve o nome com que o campo entra no payload.
func (f Field) InputName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// Shared indica se o campo pertence a todas as categorias.
func (f Field) Shared() bool {
	return len(f.Panels) == 0
}

// InPanel indica se o campo pertence ao painel da categoria.
func (f Field) InPanel(cat models.Categoria) bool {
	if f.Shared() {
		return true
	}
	for _, p := range f.Panels {
		if p == cat {
			return true
		}
	}
	return false
}

// TriggerEvent devolve o evento que dispara a validação em tempo real:
// change para datas e selects, input para os restantes.
func (f Field) TriggerEvent() Event {
	if f.Kind == KindDate || f.Kind == KindSelect {
		return EventChange
	}
	return EventInput
}
