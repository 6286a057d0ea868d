package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	middlewares "github.com/seguros-online/app-simulacao/internal/middleware"
	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/observability"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/seguros-online/app-simulacao/internal/site"
	"github.com/seguros-online/app-simulacao/internal/utils"
	"github.com/seguros-online/app-simulacao/internal/validation"
	"go.uber.org/zap"
)

// SimulacaoHandler serve o formulário de simulação (páginas e API JSON).
type SimulacaoHandler struct {
	submitter quote.Submitter
	validator *validation.Validator
	content   *site.Content
	logger    *zap.Logger
	baseURL   string
	now       func() time.Time
}

func NewSimulacaoHandler(submitter quote.Submitter, content *site.Content, logger *zap.Logger, baseURL string) *SimulacaoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulacaoHandler{
		submitter: submitter,
		validator: validation.New(),
		content:   content,
		logger:    logger,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

func (h *SimulacaoHandler) newController(c *gin.Context, schema *quote.Schema, view quote.View) *quote.Controller {
	opts := []quote.Option{
		quote.WithSubmitter(h.submitter),
		quote.WithClock(h.now),
		quote.WithLogger(h.logger.With(zap.String("request_id", middlewares.GetRequestID(c)))),
	}
	if view != nil {
		opts = append(opts, quote.WithView(view))
	}
	return quote.New(schema, opts...)
}

// schemaFromQuery escolhe o formulário pelo parâmetro "formulario" (autoQuoteForm por omissão).
func schemaFromQuery(c *gin.Context) (*quote.Schema, bool) {
	id := c.Query("formulario")
	if id == "" {
		return quote.DefaultSchema(), true
	}
	return quote.SchemaByID(id)
}

// Categorias godoc
// @Summary Lista as categorias de seguro
// @Description Devolve as categorias, os campos específicos de cada painel e os campos partilhados do formulário de simulação
// @Tags simulacao
// @Produce json
// @Success 200 {object} models.CategoriasResponse
// @Router /api/v1/categorias [get]
func (h *SimulacaoHandler) Categorias(c *gin.Context) {
	schema := quote.DefaultSchema()

	resp := models.CategoriasResponse{Padrao: models.CategoriaPadrao}
	for _, f := range schema.SharedFields() {
		resp.CamposPartilhados = append(resp.CamposPartilhados, f.ID)
	}
	for _, cat := range models.Categorias() {
		info := models.CategoriaInfo{
			Chave:  cat,
			Nome:   cat.Nome(),
			Titulo: cat.Titulo(),
			Link:   utils.LinkCategoria(h.baseURL+"/simulacao", string(cat)),
		}
		for _, f := range schema.PanelFields(cat) {
			info.Campos = append(info.Campos, f.ID)
		}
		resp.Categorias = append(resp.Categorias, info)
	}

	c.JSON(http.StatusOK, resp)
}

// Submeter godoc
// @Summary Submete um pedido de simulação
// @Description Valida os campos visíveis da categoria e envia o pedido para o endpoint configurado. Sem endpoint o pedido é aceite localmente.
// @Tags simulacao
// @Accept json
// @Produce json
// @Param pedido body map[string]string true "Campos do formulário (nome → valor)"
// @Param cat query string false "Categoria (auto, moto, acidentes, saude, vida, hab, ppr, rc)"
// @Param formulario query string false "Formulário (autoQuoteForm ou quoteForm)"
// @Success 200 {object} models.SimulacaoResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} models.SimulacaoResponse
// @Failure 502 {object} models.SimulacaoResponse
// @Router /api/v1/simulacao [post]
func (h *SimulacaoHandler) Submeter(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	schema, ok := schemaFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulário desconhecido: " + c.Query("formulario")})
		return
	}

	ctrl := h.newController(c, schema, nil)
	if ignored := ctrl.Load(body); len(ignored) > 0 {
		h.logger.Debug("campos ignorados", zap.Strings("campos", ignored))
	}
	ctrl.Init(c.Query("cat"))

	res, err := ctrl.Submit(c.Request.Context())
	resp := models.SimulacaoResponse{
		Estado:    res.Status.Estado,
		Mensagem:  res.Status.Mensagem,
		Categoria: res.Categoria,
		Titulo:    res.Categoria.Titulo(),
		PedidoID:  res.PedidoID,
		Erros:     res.Errors,
	}

	c.JSON(h.statusFor(c, err, res), resp)
}

// statusFor traduz o resultado da submissão em código HTTP e reporta falhas de envio.
func (h *SimulacaoHandler) statusFor(c *gin.Context, err error, res quote.Result) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, quote.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		_ = c.Error(err)
		observability.CaptureError(err, map[string]string{
			"form":       "simulacao",
			"categoria":  string(res.Categoria),
			"pedido_id":  res.PedidoID,
			"request_id": middlewares.GetRequestID(c),
		})
		return http.StatusBadGateway
	}
}

// ValidarCampo godoc
// @Summary Valida um campo em tempo real
// @Description Aplica a regra de formato de um único campo, como no evento input/change do formulário. Campos vazios ou fora do painel ativo são válidos.
// @Tags simulacao
// @Accept json
// @Produce json
// @Param campo body models.CampoRequest true "Campo a validar"
// @Success 200 {object} models.CampoResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/v1/simulacao/campo [post]
func (h *SimulacaoHandler) ValidarCampo(c *gin.Context) {
	var req models.CampoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if errs := h.validator.Validate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou", "details": errs})
		return
	}

	schema, ok := schemaFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulário desconhecido: " + c.Query("formulario")})
		return
	}
	field, ok := schema.Field(req.Campo)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campo desconhecido: " + req.Campo})
		return
	}

	ctrl := h.newController(c, schema, nil)
	if req.Categoria != "" {
		cat, err := models.ParseCategoria(req.Categoria)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria inválida: " + req.Categoria})
			return
		}
		_ = ctrl.SetActiveCategory(cat, quote.ScrollOptions{})
	}
	_ = ctrl.SetValue(field.ID, req.Valor)

	ev := field.TriggerEvent()
	if req.Evento != "" {
		ev = quote.ParseEvent(req.Evento)
	}
	msg, _ := ctrl.HandleFieldEvent(field.ID, ev)

	c.JSON(http.StatusOK, models.CampoResponse{
		Campo:   field.ID,
		Valido:  msg == "",
		Erro:    msg,
		Visivel: ctrl.Visible(field.ID),
	})
}

// Pagina devolve o handler da página do formulário; ?cat= pré-seleciona a categoria.
func (h *SimulacaoHandler) Pagina(schemaID, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		schema, _ := quote.SchemaByID(schemaID)
		view := &pageView{}
		ctrl := h.newController(c, schema, view)
		ctrl.Init(c.Query("cat"))

		h.render(c, http.StatusOK, ctrl, view, action)
	}
}

// Formulario trata a submissão do formulário sem JavaScript e volta a desenhar a página.
func (h *SimulacaoHandler) Formulario(schemaID, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.String(http.StatusBadRequest, "Pedido inválido")
			return
		}
		values := make(map[string]string, len(c.Request.PostForm))
		for k, v := range c.Request.PostForm {
			if len(v) > 0 {
				values[k] = v[0]
			}
		}

		schema, _ := quote.SchemaByID(schemaID)
		view := &pageView{}
		ctrl := h.newController(c, schema, view)
		ctrl.Load(values)
		ctrl.Init(c.Query("cat"))

		res, err := ctrl.Submit(c.Request.Context())
		h.render(c, h.statusFor(c, err, res), ctrl, view, action)
	}
}

func (h *SimulacaoHandler) render(c *gin.Context, status int, ctrl *quote.Controller, view *pageView, action string) {
	form := buildFormView(ctrl, view, action)
	c.HTML(status, "simulacao.html", simulacaoView{
		PageTitle: form.Title,
		Content:   h.content,
		MenuOpen:  c.Query("menu") == "1",
		Form:      form,
	})
}
