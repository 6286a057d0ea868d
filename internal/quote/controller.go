package quote

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seguros-online/app-simulacao/internal/models"
	"go.uber.org/zap"
)

// Option configura um Controller.
type Option func(*Controller)

// WithSubmitter define o destino dos pedidos. nil ou NopSubmitter equivalem a
// não ter endpoint configurado.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) {
		if _, nop := s.(NopSubmitter); nop {
			s = nil
		}
		c.submitter = s
	}
}

func WithView(v View) Option {
	return func(c *Controller) {
		if v != nil {
			c.view = v
		}
	}
}

// WithClock substitui o relógio usado nas regras de datas.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDGenerator substitui o gerador do identificador do pedido.
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// Result resume o resultado de uma submissão.
type Result struct {
	Status    models.Status
	Categoria models.Categoria
	PedidoID  string
	Payload   models.Payload
	Errors    map[string]string
}

// Controller guarda o estado de um formulário de simulação: categoria ativa,
// valores, erros por campo e status. É seguro para uso concorrente.
type Controller struct {
	mu sync.Mutex

	schema    *Schema
	submitter Submitter
	view      View
	now       func() time.Time
	newID     func() string
	logger    *zap.Logger

	active     models.Categoria
	values     map[string]string
	errors     map[string]string
	status     models.Status
	submitting bool
}

// New cria um controlador para o schema (DefaultSchema se nil), com a
// categoria por omissão ativa e os campos nos valores iniciais.
func New(schema *Schema, opts ...Option) *Controller {
	if schema == nil {
		schema = DefaultSchema()
	}
	c := &Controller{
		schema: schema,
		view:   NopView{},
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zap.NewNop(),
		active: models.CategoriaPadrao,
		errors: map[string]string{},
		status: models.Status{Estado: models.EstadoInativo},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetLocked()
	return c
}

func (c *Controller) Schema() *Schema {
	return c.schema
}

// HasEndpoint indica se as submissões saem para a rede.
func (c *Controller) HasEndpoint() bool {
	return c.submitter != nil
}

// Init escolhe a categoria inicial: o parâmetro cat se for válido, depois o
// valor do campo escondido, depois a categoria já ativa. Só o parâmetro cat
// pede que a página seja levada até ao formulário.
func (c *Controller) Init(queryCat string) models.Categoria {
	c.mu.Lock()
	defer c.mu.Unlock()

	initial := c.active
	fromQuery := false
	if cat, err := models.ParseCategoria(queryCat); err == nil {
		initial = cat
		fromQuery = true
	} else if cat, err := models.ParseCategoria(c.values[CategoryFieldID]); err == nil {
		initial = cat
	}

	c.setActiveLocked(initial, ScrollOptions{})
	if fromQuery {
		c.view.ScrollToForm()
	}
	return initial
}

// SetActiveCategory ativa a categoria: atualiza o campo escondido, limpa erros
// e status e mostra a tab. Uma categoria inválida é recusada sem alterar o estado.
func (c *Controller) SetActiveCategory(cat models.Categoria, o ScrollOptions) error {
	if !cat.Valida() {
		return ErrInvalidCategory
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setActiveLocked(cat, o)
	return nil
}

// SelectCategory resolve o valor recebido de uma tab e ativa-o com scroll.
func (c *Controller) SelectCategory(raw string) (models.Categoria, error) {
	cat, err := models.ParseCategoria(raw)
	if err != nil {
		return "", ErrInvalidCategory
	}
	return cat, c.SetActiveCategory(cat, ScrollOptions{Scroll: true})
}

func (c *Controller) setActiveLocked(cat models.Categoria, o ScrollOptions) {
	c.active = cat
	if c.schema.Has(CategoryFieldID) {
		c.values[CategoryFieldID] = string(cat)
	}
	c.errors = map[string]string{}
	c.status = models.Status{Estado: models.EstadoInativo}

	c.view.RevealTab(cat)
	if o.Scroll {
		c.view.ScrollToForm()
	}
}

func (c *Controller) ActiveCategory() models.Categoria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Title devolve o título do formulário para a categoria ativa.
func (c *Controller) Title() string {
	return c.ActiveCategory().Titulo()
}

// Tabs devolve o estado de todas as tabs; exatamente uma está ativa.
func (c *Controller) Tabs() []TabState {
	active := c.ActiveCategory()
	cats := models.Categorias()
	tabs := make([]TabState, 0, len(cats))
	for _, cat := range cats {
		tabs = append(tabs, TabState{Categoria: cat, Nome: cat.Nome(), Active: cat == active})
	}
	return tabs
}

// SetValue altera o valor de um campo. Escrever no campo escondido da
// categoria ativa essa categoria (sem scroll); um valor inválido é recusado
// com ErrInvalidCategory.
func (c *Controller) SetValue(id, value string) error {
	if !c.schema.Has(id) {
		return ErrUnknownField
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setValueLocked(id, value)
}

func (c *Controller) setValueLocked(id, value string) error {
	if id != CategoryFieldID {
		c.values[id] = value
		return nil
	}
	cat, err := models.ParseCategoria(value)
	if err != nil {
		return ErrInvalidCategory
	}
	c.setActiveLocked(cat, ScrollOptions{})
	return nil
}

func (c *Controller) Value(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[id]
}

// Values devolve uma cópia dos valores atuais.
func (c *Controller) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Load copia os valores recebidos para os campos conhecidos e devolve os
// nomes que não pertencem ao formulário. A categoria segue as regras de
// SetValue; um valor inválido é ignorado.
func (c *Controller) Load(values map[string]string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var unknown []string
	for k, v := range values {
		if !c.schema.Has(k) {
			unknown = append(unknown, k)
			continue
		}
		_ = c.setValueLocked(k, v)
	}
	return unknown
}

// Reset repõe os valores iniciais de todos os campos. Não altera a categoria
// ativa, que continua espelhada no campo escondido.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.values = make(map[string]string, len(c.schema.fields))
	for _, f := range c.schema.fields {
		c.values[f.ID] = f.Default
	}
	if c.schema.Has(CategoryFieldID) {
		c.values[CategoryFieldID] = string(c.active)
	}
}

// Visible indica se o campo pertence ao painel ativo ou é partilhado.
// Campos escondidos nunca são visíveis.
func (c *Controller) Visible(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleLocked(id)
}

func (c *Controller) visibleLocked(id string) bool {
	f, ok := c.schema.Field(id)
	if !ok || f.Kind == KindHidden {
		return false
	}
	return f.InPanel(c.active)
}

func (c *Controller) today() time.Time {
	return StartOfDay(c.now())
}

// Validate valida os campos visíveis, anota os erros e normaliza telemóvel,
// NIF e matrícula. Devolve true se o formulário estiver válido.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller) validateLocked() bool {
	c.errors = map[string]string{}
	c.status = models.Status{Estado: models.EstadoInativo}
	ok := true

	for _, f := range c.schema.fields {
		if !f.Required || !c.visibleLocked(f.ID) {
			continue
		}
		if strings.TrimSpace(c.values[f.ID]) == "" {
			ok = false
			c.errors[f.ID] = MsgRequired
		}
	}

	for _, r := range Rules(c.today()) {
		if !c.visibleLocked(r.Field) {
			continue
		}
		v := strings.TrimSpace(c.values[r.Field])
		if v == "" {
			continue
		}
		if !r.Check(v) {
			ok = false
			c.errors[r.Field] = r.Message
		}
	}

	for _, cr := range CrossRules() {
		if !c.visibleLocked(cr.Field) || !c.visibleLocked(cr.DependsOn) {
			continue
		}
		v := strings.TrimSpace(c.values[cr.Field])
		other := strings.TrimSpace(c.values[cr.DependsOn])
		if msg, valid := cr.Check(v, other); !valid {
			ok = false
			c.errors[cr.Field] = msg
		}
	}

	c.normalizeLocked()
	return ok
}

func (c *Controller) normalizeLocked() {
	for _, id := range []string{"telemovel", "nif"} {
		if c.visibleLocked(id) {
			c.values[id] = OnlyDigits(c.values[id])
		}
	}
	for _, id := range MatriculaFields {
		if c.visibleLocked(id) {
			c.values[id] = strings.ToUpper(strings.TrimSpace(c.values[id]))
		}
	}
}

// Errors devolve uma cópia dos erros por campo.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorsCopyLocked()
}

func (c *Controller) errorsCopyLocked() map[string]string {
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Error devolve a mensagem de erro do campo, vazia se não houver.
func (c *Controller) Error(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[id]
}

// FirstError devolve o primeiro campo com erro pela ordem do formulário.
func (c *Controller) FirstError() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.firstErrorLocked()
}

func (c *Controller) firstErrorLocked() (string, bool) {
	for _, f := range c.schema.fields {
		if _, ok := c.errors[f.ID]; ok {
			return f.ID, true
		}
	}
	return "", false
}

// HandleFieldEvent aplica a validação em tempo real a um campo. Só o erro desse
// campo é alterado; o status fica intacto. Eventos que não são o gatilho do
// campo, campos invisíveis e campos sem regra de formato são ignorados.
func (c *Controller) HandleFieldEvent(id string, ev Event) (string, error) {
	f, ok := c.schema.Field(id)
	if !ok {
		return "", ErrUnknownField
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ev != f.TriggerEvent() || !c.visibleLocked(id) {
		return c.errors[id], nil
	}
	rule, ok := RuleFor(id, c.today())
	if !ok {
		return c.errors[id], nil
	}

	v := strings.TrimSpace(c.values[id])
	if v == "" || rule.Check(v) {
		delete(c.errors, id)
		return "", nil
	}
	c.errors[id] = rule.LiveMessage
	return rule.LiveMessage, nil
}

// Payload constrói o mapeamento enviado ao endpoint a partir de todos os campos.
func (c *Controller) Payload() models.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payloadLocked()
}

func (c *Controller) payloadLocked() models.Payload {
	p := make(models.Payload, len(c.schema.fields)+2)
	for _, f := range c.schema.fields {
		v := c.values[f.ID]
		if f.Kind == KindCheckbox && v == "" {
			continue
		}
		p[f.InputName()] = v
	}

	for _, k := range []string{"nif", "telemovel"} {
		if p[k] != "" {
			p[k] = OnlyDigits(p[k])
		}
	}
	for _, id := range MatriculaFields {
		if m := strings.TrimSpace(p[id]); m != "" {
			p["matricula_normalizada"] = strings.ToUpper(m)
			break
		}
	}
	if p[CategoryFieldID] == "" {
		p[CategoryFieldID] = string(c.active)
	}
	return p
}

// Status devolve o estado atual da zona de status.
func (c *Controller) Status() models.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submitting indica se há um envio em curso.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Submit valida e envia o formulário.
//
// Com erros, o status passa a erro, o primeiro campo com erro é mostrado e
// devolve ErrValidation. Sem endpoint o envio é dado como feito de imediato.
// Em caso de sucesso os campos são repostos e a categoria é reaplicada sem
// scroll; em caso de falha os valores ficam intactos e o erro identifica
// ErrSubmitFailed. Enquanto um envio estiver em curso, novas chamadas devolvem
// ErrSubmissionInFlight sem alterar o estado.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Result{}, ErrSubmissionInFlight
	}

	c.status = models.Status{Estado: models.EstadoInativo}
	if !c.validateLocked() {
		c.status = models.Status{Estado: models.EstadoErro, Mensagem: models.MensagemCorrigirCampos}
		if first, ok := c.firstErrorLocked(); ok {
			c.view.RevealField(first)
		}
		res := c.resultLocked()
		c.mu.Unlock()

		c.logger.Info("simulação com campos inválidos",
			zap.String("form", c.schema.ID),
			zap.String("categoria", string(res.Categoria)),
			zap.Int("erros", len(res.Errors)),
		)
		return res, ErrValidation
	}

	payload := c.payloadLocked()
	pedidoID := c.newID()
	payload["pedido_id"] = pedidoID

	cat := c.active

	if c.submitter != nil {
		c.status = models.Status{Estado: models.EstadoAEnviar, Mensagem: models.MensagemAEnviar}
		c.submitting = true
		submitter := c.submitter
		c.mu.Unlock()

		start := time.Now()
		sendErr := submitter.Submit(ctx, payload)

		c.mu.Lock()
		c.submitting = false
		if sendErr != nil {
			c.status = models.Status{Estado: models.EstadoErro, Mensagem: models.MensagemFalhaEnvio}
			res := c.resultLocked()
			res.PedidoID = pedidoID
			res.Payload = payload
			c.mu.Unlock()

			c.logger.Warn("falha no envio da simulação",
				zap.String("pedido_id", pedidoID),
				zap.String("categoria", string(cat)),
				zap.Duration("duracao", time.Since(start)),
				zap.Error(sendErr),
			)
			return res, asSubmitFailure(sendErr)
		}
	}

	c.resetLocked()
	c.setActiveLocked(cat, ScrollOptions{})
	c.status = models.Status{Estado: models.EstadoSucesso, Mensagem: models.MensagemSucesso}
	res := c.resultLocked()
	res.PedidoID = pedidoID
	res.Payload = payload
	c.mu.Unlock()

	c.logger.Info("simulação enviada",
		zap.String("pedido_id", pedidoID),
		zap.String("categoria", string(cat)),
		zap.Bool("endpoint", c.submitter != nil),
	)
	return res, nil
}

func (c *Controller) resultLocked() Result {
	return Result{
		Status:    c.status,
		Categoria: c.active,
		Errors:    c.errorsCopyLocked(),
	}
}
