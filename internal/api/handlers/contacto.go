package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	middlewares "github.com/seguros-online/app-simulacao/internal/middleware"
	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/observability"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/seguros-online/app-simulacao/internal/site"
	"github.com/seguros-online/app-simulacao/internal/utils"
	"github.com/seguros-online/app-simulacao/internal/validation"
	"go.uber.org/zap"
)

// Mensagens do formulário de contacto.
const (
	MensagemContactoEnviado = "Mensagem enviada! Responderemos o mais breve possível."
	MensagemContactoFalhou  = "Não foi possível enviar a mensagem. Tente novamente mais tarde."
)

var errContactoInvalido = errors.New("contacto inválido")

// ContactoHandler recebe mensagens do formulário de contacto e reencaminha-as
// para CONTACT_ENDPOINT. Sem endpoint a mensagem é aceite e apenas registada.
type ContactoHandler struct {
	forwarder quote.Submitter
	validator *validation.Validator
	content   *site.Content
	logger    *zap.Logger
}

func NewContactoHandler(forwarder quote.Submitter, content *site.Content, logger *zap.Logger) *ContactoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactoHandler{
		forwarder: forwarder,
		validator: validation.New(),
		content:   content,
		logger:    logger,
	}
}

// processar valida, limpa e reencaminha o pedido. Devolve os erros por campo
// quando o pedido é inválido.
func (h *ContactoHandler) processar(ctx context.Context, c *gin.Context, req *models.ContactoRequest) (map[string]string, error) {
	req.Normalizar()
	if errs := h.validator.Validate(*req); errs != nil {
		return errs, errContactoInvalido
	}

	req.Nome = utils.SanitizarTexto(req.Nome)
	req.Mensagem = utils.SanitizarTexto(req.Mensagem)

	payload := req.Payload()
	payload["pedido_id"] = uuid.NewString()

	logger := h.logger.With(
		zap.String("pedido_id", payload["pedido_id"]),
		zap.String("request_id", middlewares.GetRequestID(c)),
	)

	if _, nop := h.forwarder.(quote.NopSubmitter); nop || h.forwarder == nil {
		logger.Info("contacto recebido sem endpoint configurado")
		return nil, nil
	}
	if err := h.forwarder.Submit(ctx, payload); err != nil {
		logger.Error("falha ao reencaminhar contacto", zap.Error(err))
		_ = c.Error(err)
		observability.CaptureError(err, map[string]string{
			"form":       "contacto",
			"pedido_id":  payload["pedido_id"],
			"request_id": middlewares.GetRequestID(c),
		})
		return nil, err
	}
	logger.Info("contacto reencaminhado")
	return nil, nil
}

// Enviar godoc
// @Summary Envia uma mensagem de contacto
// @Description Valida a mensagem (nome, email, telefone opcional, mensagem com 10 ou mais caracteres) e reencaminha-a
// @Tags contacto
// @Accept json
// @Produce json
// @Param contacto body models.ContactoRequest true "Mensagem de contacto"
// @Success 200 {object} models.ContactoResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} models.ContactoResponse
// @Failure 502 {object} models.ContactoResponse
// @Router /api/v1/contacto [post]
func (h *ContactoHandler) Enviar(c *gin.Context) {
	var req models.ContactoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	errs, err := h.processar(c.Request.Context(), c, &req)
	switch {
	case errors.Is(err, errContactoInvalido):
		c.JSON(http.StatusUnprocessableEntity, models.ContactoResponse{Erros: errs})
	case err != nil:
		c.JSON(http.StatusBadGateway, models.ContactoResponse{Mensagem: MensagemContactoFalhou})
	default:
		c.JSON(http.StatusOK, models.ContactoResponse{OK: true, Mensagem: MensagemContactoEnviado})
	}
}

// Formulario trata o POST /contacto da página inicial e volta a desenhá-la.
func (h *ContactoHandler) Formulario(c *gin.Context) {
	var req models.ContactoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Pedido inválido")
		return
	}

	v := newHomeView(c, h.content)
	errs, err := h.processar(c.Request.Context(), c, &req)

	status := http.StatusOK
	switch {
	case errors.Is(err, errContactoInvalido):
		status = http.StatusUnprocessableEntity
		v.Contact = req
		v.ContactErrors = errs
	case err != nil:
		status = http.StatusBadGateway
		v.Contact = req
		v.ContactFailed = MensagemContactoFalhou
	default:
		v.ContactSent = true
	}

	c.HTML(status, "home.html", v)
}
