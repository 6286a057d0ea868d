package models

import "strings"

// ContactoRequest representa uma mensagem do formulário de contacto geral.
type ContactoRequest struct {
	Nome     string `json:"nome" form:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" form:"email" validate:"required,email_simples,max=254"`
	Telefone string `json:"telefone" form:"phone" validate:"omitempty,telefone,max=32"`
	Mensagem string `json:"mensagem" form:"message" validate:"required,min=10,max=4000"`
}

// Normalizar remove espaços nas extremidades de todos os campos.
func (r *ContactoRequest) Normalizar() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.TrimSpace(r.Email)
	r.Telefone = strings.TrimSpace(r.Telefone)
	r.Mensagem = strings.TrimSpace(r.Mensagem)
}

// MensagensValidacao associa campo.tag a mensagens específicas do formulário de contacto.
func (ContactoRequest) MensagensValidacao() map[string]string {
	return map[string]string{
		"nome":         "Digite o nome completo!",
		"email":        "Email inválido!",
		"telefone":     "Telefone inválido!",
		"mensagem":     "Por favor, digite uma mensagem (mínimo 10 caracteres).",
		"mensagem.max": "A mensagem é demasiado longa.",
	}
}

// Payload converte o pedido no formato plano enviado ao endpoint de contactos.
func (r ContactoRequest) Payload() Payload {
	p := Payload{
		"nome":     r.Nome,
		"email":    r.Email,
		"mensagem": r.Mensagem,
		"origem":   "contacto",
	}
	if r.Telefone != "" {
		p["telefone"] = r.Telefone
	}
	return p
}

// ContactoResponse é a resposta do endpoint de contacto.
type ContactoResponse struct {
	OK       bool              `json:"ok"`
	Mensagem string            `json:"mensagem,omitempty"`
	Erros    map[string]string `json:"erros,omitempty"`
}
