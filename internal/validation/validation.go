// Package validation regista no go-playground/validator as regras de formato
// portuguesas usadas pelos formulários e traduz os erros para mensagens por campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/seguros-online/app-simulacao/internal/utils"
)

var (
	contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contactPhoneRegex = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

// MinContactPhoneDigits é o mínimo de dígitos num telefone de contacto.
const MinContactPhoneDigits = 9

// Messager é implementado por pedidos com mensagens próprias por campo.
// As chaves são "campo" ou "campo.tag".
type Messager interface {
	MensagensValidacao() map[string]string
}

var defaultMessages = map[string]string{
	"required":      quote.MsgRequired,
	"email_simples": "Email inválido.",
	"telefone":      "Telefone inválido.",
	"nif":           quote.MsgNIF,
	"telemovel_pt":  quote.MsgTelemovel,
	"codigo_postal": quote.MsgCodigoPostal,
	"matricula_pt":  quote.MsgMatricula,
	"min_palavras":  quote.MsgNome,
	"categoria":     "Categoria inválida.",
	"oneof":         "Valor não permitido.",
}

// Validator envolve um *validator.Validate com as regras registadas.
type Validator struct {
	validate *validator.Validate
}

// New cria um Validator com as tags nif, telemovel_pt, codigo_postal,
// matricula_pt, min_palavras, telefone, email_simples e categoria.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("nif", stringRule(quote.IsNIFValid)))
	must(v.RegisterValidation("telemovel_pt", stringRule(quote.IsPhonePTValid)))
	must(v.RegisterValidation("codigo_postal", stringRule(quote.IsPostalPTValid)))
	must(v.RegisterValidation("matricula_pt", stringRule(quote.IsMatriculaPTValid)))
	must(v.RegisterValidation("telefone", stringRule(IsContactPhoneValid)))
	must(v.RegisterValidation("email_simples", stringRule(contactEmailRegex.MatchString)))
	must(v.RegisterValidation("categoria", stringRule(func(s string) bool {
		_, err := models.ParseCategoria(s)
		return err == nil
	})))
	must(v.RegisterValidation("min_palavras", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil || n < 1 {
			n = 2
		}
		return quote.IsMinWords(fl.Field().String(), n)
	}))

	return &Validator{validate: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func stringRule(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fn(strings.TrimSpace(fl.Field().String()))
	}
}

// IsContactPhoneValid aceita dígitos, espaços, hífens, + e parênteses, com
// pelo menos MinContactPhoneDigits dígitos.
func IsContactPhoneValid(phone string) bool {
	return contactPhoneRegex.MatchString(phone) && len(utils.ApenasDigitos(phone)) >= MinContactPhoneDigits
}

// Struct valida s e devolve o erro do validator sem tradução.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Var valida um valor isolado contra uma tag.
func (v *Validator) Var(value any, tag string) error {
	return v.validate.Var(value, tag)
}

// Validate valida s e devolve as mensagens por campo, ou nil se for válido.
func (v *Validator) Validate(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var custom map[string]string
	if m, ok := s.(Messager); ok {
		custom = m.MensagensValidacao()
	}
	return FieldErrors(err, custom)
}

// FieldErrors converte o erro do validator num mapa campo → mensagem.
// Só a primeira falha de cada campo é mantida.
func FieldErrors(err error, custom map[string]string) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(fe, custom)
	}
	return out
}

func message(fe validator.FieldError, custom map[string]string) string {
	if msg, ok := custom[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := custom[fe.Field()]; ok {
		return msg
	}
	if msg, ok := defaultMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("Mínimo de %s caracteres.", fe.Param())
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres.", fe.Param())
	}
	return "Valor inválido."
}
