package models

// SimulacaoResponse é a resposta do endpoint de submissão de pedidos de simulação.
type SimulacaoResponse struct {
	Estado    EstadoFormulario  `json:"estado"`
	Mensagem  string            `json:"mensagem"`
	Categoria Categoria         `json:"categoria"`
	Titulo    string            `json:"titulo"`
	PedidoID  string            `json:"pedido_id,omitempty"`
	Erros     map[string]string `json:"erros,omitempty"`
}

// CampoRequest representa um pedido de validação em tempo real de um único campo.
type CampoRequest struct {
	Campo     string `json:"campo" validate:"required,max=64"`
	Valor     string `json:"valor" validate:"max=2000"`
	Categoria string `json:"categoria" validate:"omitempty,max=64"`
	Evento    string `json:"evento" validate:"omitempty,oneof=input change"`
}

// CampoResponse devolve o erro (ou a ausência dele) para o campo validado.
type CampoResponse struct {
	Campo   string `json:"campo"`
	Valido  bool   `json:"valido"`
	Erro    string `json:"erro,omitempty"`
	Visivel bool   `json:"visivel"`
}

// CategoriaInfo descreve uma categoria e os campos do seu painel.
type CategoriaInfo struct {
	Chave  Categoria `json:"chave"`
	Nome   string    `json:"nome"`
	Titulo string    `json:"titulo"`
	Campos []string  `json:"campos"`
	Link   string    `json:"link"`
}

// CategoriasResponse lista as categorias e os campos partilhados por todas.
type CategoriasResponse struct {
	Categorias        []CategoriaInfo `json:"categorias"`
	CamposPartilhados []string        `json:"campos_partilhados"`
	Padrao            Categoria       `json:"padrao"`
}
