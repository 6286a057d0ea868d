package models

// EstadoFormulario representa o estado da zona de status do formulário.
type EstadoFormulario string

const (
	EstadoInativo EstadoFormulario = "idle"
	EstadoAEnviar EstadoFormulario = "submitting"
	EstadoSucesso EstadoFormulario = "success"
	EstadoErro    EstadoFormulario = "error"
)

// Classe devolve a classe CSS aplicada à zona de status, além de "form-status".
func (e EstadoFormulario) Classe() string {
	switch e {
	case EstadoSucesso:
		return "success"
	case EstadoErro:
		return "error"
	default:
		return ""
	}
}

// Status agrupa o estado e o texto mostrado ao visitante.
type Status struct {
	Estado   EstadoFormulario `json:"estado"`
	Mensagem string           `json:"mensagem"`
}

// Classes devolve o atributo class completo da zona de status.
func (s Status) Classes() string {
	if c := s.Estado.Classe(); c != "" {
		return "form-status " + c
	}
	return "form-status"
}

// Mensagens mostradas na zona de status.
const (
	MensagemCorrigirCampos = "Por favor, corrija os campos assinalados."
	MensagemAEnviar        = "A enviar…"
	MensagemSucesso        = "Pedido enviado com sucesso. Vamos contactar o mais breve possível."
	MensagemFalhaEnvio     = "Não foi possível enviar agora. Tente novamente ou contacte-nos."
)
