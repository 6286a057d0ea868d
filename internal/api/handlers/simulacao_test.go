package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriasListsEveryCategory(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	rec := srv.get("/api/v1/categorias")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CategoriasResponse
	decodeJSON(t, rec, &resp)

	require.Len(t, resp.Categorias, len(models.Categorias()))
	assert.Equal(t, models.CategoriaAuto, resp.Padrao)
	assert.Equal(t, models.CategoriaAuto, resp.Categorias[0].Chave)
	assert.Equal(t, "https://seguros.test/simulacao?cat=auto#simulacao", resp.Categorias[0].Link)
	assert.Contains(t, resp.Categorias[0].Campos, "auto_matricula")
	assert.Contains(t, resp.Categorias[0].Campos, "data_carta")
	assert.Contains(t, resp.CamposPartilhados, "nome")
	assert.NotContains(t, resp.CamposPartilhados, "categoria")
}

func TestSubmeterValidWithoutEndpoint(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao", validAutoRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulacaoResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.EstadoSucesso, resp.Estado)
	assert.Equal(t, models.MensagemSucesso, resp.Mensagem)
	assert.Equal(t, models.CategoriaAuto, resp.Categoria)
	assert.Equal(t, models.CategoriaAuto.Titulo(), resp.Titulo)
	assert.NotEmpty(t, resp.PedidoID)
	assert.Empty(t, resp.Erros)
}

func TestSubmeterForwardsNormalizedPayload(t *testing.T) {
	sub := &recordingSubmitter{}
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao", validAutoRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulacaoResponse
	decodeJSON(t, rec, &resp)

	got := sub.last(t)
	want := models.Payload{
		"categoria":             "auto",
		"nome":                  "Maria Silva",
		"email":                 "maria@exemplo.pt",
		"telemovel":             "912345678",
		"nif":                   "123456789",
		"codigo_postal":         "1234-567",
		"data_nascimento":       "1990-01-01",
		"auto_matricula":        "AA-12-BB",
		"matricula_normalizada": "AA-12-BB",
		"auto_marca":            "Renault",
		"auto_data_matricula":   "2015-03-10",
		"data_carta":            "2008-05-01",
		"auto_cobertura":        "terceiros",
		"auto_inicio":           "2024-07-01",
		"consentimento":         "sim",
		"pedido_id":             resp.PedidoID,
	}
	for k, v := range got {
		if v == "" {
			delete(got, k)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload (-want +got):\n%s", diff)
	}
}

func TestSubmeterQueryCategoryWins(t *testing.T) {
	sub := &recordingSubmitter{}
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao?cat=sa%C3%BAde", validAutoRequest())
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.SimulacaoResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.CategoriaSaude, resp.Categoria)
	assert.Equal(t, models.EstadoErro, resp.Estado)
	assert.Equal(t, quote.MsgRequired, resp.Erros["saude_pessoas"])
	assert.NotContains(t, resp.Erros, "auto_matricula")
	assert.Zero(t, sub.count())
}

func TestSubmeterValidationErrors(t *testing.T) {
	sub := &recordingSubmitter{}
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	body := validAutoRequest()
	body["nome"] = "Maria"
	body["telemovel"] = "812345678"
	delete(body, "auto_marca")

	rec := srv.postJSON(t, "/api/v1/simulacao", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.SimulacaoResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.EstadoErro, resp.Estado)
	assert.Equal(t, models.MensagemCorrigirCampos, resp.Mensagem)
	assert.Equal(t, quote.MsgNome, resp.Erros["nome"])
	assert.Equal(t, quote.MsgTelemovel, resp.Erros["telemovel"])
	assert.Equal(t, quote.MsgRequired, resp.Erros["auto_marca"])
	assert.Empty(t, resp.PedidoID)
	assert.Zero(t, sub.count())
}

func TestSubmeterForwardFailure(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("connection refused")}
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao", validAutoRequest())
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.SimulacaoResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.EstadoErro, resp.Estado)
	assert.Equal(t, models.MensagemFalhaEnvio, resp.Mensagem)
	assert.Equal(t, 1, sub.count())
}

func TestSubmeterBadRequests(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao", []int{1, 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.postJSON(t, "/api/v1/simulacao?formulario=outro", validAutoRequest())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmeterLegacyForm(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao?formulario=quoteForm", map[string]string{
		"nome":          "Maria Silva",
		"email":         "maria@exemplo.pt",
		"telemovel":     "912345678",
		"codigo_postal": "1234-567",
		"inicio_seguro": "2024-06-01",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.SimulacaoResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, quote.MsgInicio, resp.Erros["inicio_seguro"])
}

func TestValidarCampo(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	tests := []struct {
		name    string
		body    models.CampoRequest
		valido  bool
		erro    string
		visivel bool
	}{
		{"telemóvel inválido", models.CampoRequest{Campo: "telemovel", Valor: "812"}, false, quote.LiveMsgTelemovel, true},
		{"telemóvel válido", models.CampoRequest{Campo: "telemovel", Valor: "912 345 678"}, true, "", true},
		{"vazio é válido", models.CampoRequest{Campo: "codigo_postal", Valor: ""}, true, "", true},
		{"data com evento change", models.CampoRequest{Campo: "auto_inicio", Valor: "2024-06-01"}, false, quote.LiveMsgFuturo, true},
		{"data com evento input ignorado", models.CampoRequest{Campo: "auto_inicio", Valor: "2024-06-01", Evento: "input"}, true, "", true},
		{"fora do painel ativo", models.CampoRequest{Campo: "auto_matricula", Valor: "xx", Categoria: "vida"}, true, "", false},
		{"painel indicado", models.CampoRequest{Campo: "moto_matricula", Valor: "xx", Categoria: "Moto"}, false, quote.LiveMsgMatricula, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.postJSON(t, "/api/v1/simulacao/campo", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp models.CampoResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.body.Campo, resp.Campo)
			assert.Equal(t, tt.valido, resp.Valido)
			assert.Equal(t, tt.erro, resp.Erro)
			assert.Equal(t, tt.visivel, resp.Visivel)
		})
	}
}

func TestValidarCampoErrors(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	rec := srv.postJSON(t, "/api/v1/simulacao/campo", models.CampoRequest{Campo: "desconhecido"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.postJSON(t, "/api/v1/simulacao/campo", models.CampoRequest{Campo: "nome", Evento: "blur"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "evento")

	rec = srv.postJSON(t, "/api/v1/simulacao/campo", models.CampoRequest{Campo: "nome", Categoria: "barcos"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.postJSON(t, "/api/v1/simulacao/campo", models.CampoRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaginaPreselectsCategoryFromQuery(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	rec := srv.get("/simulacao?cat=moto")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)

	assert.Equal(t, models.CategoriaMoto.Titulo(), strings.TrimSpace(doc.Find("#formTitle").Text()))
	val, _ := doc.Find("#autoQuoteForm input[name=categoria]").Attr("value")
	assert.Equal(t, "moto", val)
	assert.Equal(t, 1, doc.Find(".quote-cat.active").Length())
	cat, _ := doc.Find(".quote-cat.active").Attr("data-category")
	assert.Equal(t, "moto", cat)
	panel, _ := doc.Find(".category-panel.active").Attr("data-category-panel")
	assert.Equal(t, "moto", panel)
	assert.Equal(t, 1, doc.Find("[data-scroll-to-form]").Length())

	// campos partilhados entre painéis aparecem uma única vez
	assert.Equal(t, 1, doc.Find("#data_carta").Length())
	assert.Equal(t, 1, doc.Find("#data_nascimento").Length())
	assert.Equal(t, 1, doc.Find(".category-panel.active #data_carta").Length())
}

func TestPaginaWithoutQueryDefaultsToAuto(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	doc := parseHTML(t, srv.get("/simulacao?cat=barcos"))

	val, _ := doc.Find("input[name=categoria]").Attr("value")
	assert.Equal(t, "auto", val)
	assert.Equal(t, 0, doc.Find("[data-scroll-to-form]").Length())
	assert.Equal(t, "form-status", doc.Find("#formStatus").AttrOr("class", ""))
}

func TestFormularioInvalidRendersErrors(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	values := validAutoRequest()
	values["codigo_postal"] = "1234567"
	values["categoria"] = "auto"

	rec := srv.postForm("/simulacao", toForm(values))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc := parseHTML(t, rec)

	status := doc.Find("#formStatus")
	assert.Equal(t, "form-status error", status.AttrOr("class", ""))
	assert.Equal(t, models.MensagemCorrigirCampos, strings.TrimSpace(status.Text()))
	assert.Equal(t, quote.MsgCodigoPostal, strings.TrimSpace(doc.Find(`[data-error-for="codigo_postal"]`).Text()))

	_, focused := doc.Find("#codigo_postal").Attr("autofocus")
	assert.True(t, focused)
	assert.Equal(t, "Maria Silva", doc.Find("#nome").AttrOr("value", ""))
}

func TestFormularioSuccessResetsFields(t *testing.T) {
	sub := &recordingSubmitter{}
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	values := validAutoRequest()
	values["categoria"] = "auto"

	rec := srv.postForm("/simulacao", toForm(values))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)

	assert.Equal(t, "form-status success", doc.Find("#formStatus").AttrOr("class", ""))
	assert.Equal(t, "", doc.Find("#nome").AttrOr("value", ""))
	assert.Equal(t, "auto", doc.Find("input[name=categoria]").AttrOr("value", ""))
	assert.Equal(t, 0, doc.Find("[data-scroll-to-form]").Length())
	assert.Equal(t, "Maria Silva", sub.last(t)["nome"])
}

func TestFormularioFailureKeepsFields(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("HTTP 500")}
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	rec := srv.postForm("/simulacao", toForm(validAutoRequest()))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	doc := parseHTML(t, rec)

	assert.Equal(t, models.MensagemFalhaEnvio, strings.TrimSpace(doc.Find("#formStatus").Text()))
	assert.Equal(t, "Maria Silva", doc.Find("#nome").AttrOr("value", ""))
}

func TestLegacyPageHasNoTabs(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	doc := parseHTML(t, srv.get("/simulacao/auto"))

	assert.Equal(t, 1, doc.Find("form#quoteForm").Length())
	assert.Equal(t, 0, doc.Find(".quote-cat").Length())
	assert.Equal(t, 0, doc.Find("input[name=categoria]").Length())
	assert.Equal(t, 1, doc.Find("#inicio_seguro").Length())
}

func TestStatusFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSimulacaoHandler(quote.NopSubmitter{}, nil, nil, "")

	tests := []struct {
		name      string
		err       error
		expected  int
		ginErrors int
	}{
		{"sucesso", nil, http.StatusOK, 0},
		{"validação", fmt.Errorf("pedido: %w", quote.ErrValidation), http.StatusUnprocessableEntity, 0},
		{"falha de envio", fmt.Errorf("%w: HTTP 500", quote.ErrSubmitFailed), http.StatusBadGateway, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/simulacao", nil)

			got := h.statusFor(c, tt.err, quote.Result{Categoria: models.CategoriaAuto})

			assert.Equal(t, tt.expected, got)
			assert.Len(t, c.Errors, tt.ginErrors)
		})
	}
}

func TestSubmeterConcurrentRequestsDoNotBlockEachOther(t *testing.T) {
	arrived := make(chan struct{}, 2)
	release := make(chan struct{})
	sub := quote.SubmitterFunc(func(ctx context.Context, _ models.Payload) error {
		arrived <- struct{}{}
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	srv := newTestServer(t, sub, quote.NopSubmitter{})

	body, err := json.Marshal(validAutoRequest())
	require.NoError(t, err)

	codes := make(chan int, 2)
	for i := 0; i < 2; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/simulacao", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			codes <- srv.do(req).Code
		}()
	}

	for i := 0; i < 2; i++ {
		select {
		case <-arrived:
		case <-time.After(2 * time.Second):
			close(release)
			t.Fatal("os dois pedidos deviam chegar ao envio em simultâneo")
		}
	}
	close(release)

	assert.Equal(t, http.StatusOK, <-codes)
	assert.Equal(t, http.StatusOK, <-codes)
}
