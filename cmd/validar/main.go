package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/quote"
)

// Resultado é a saída de "validar" em modo -json.
type Resultado struct {
	Formulario string            `json:"formulario"`
	Categoria  models.Categoria  `json:"categoria"`
	Titulo     string            `json:"titulo"`
	Valido     bool              `json:"valido"`
	Erros      []ErroCampo       `json:"erros,omitempty"`
	Ignorados  []string          `json:"ignorados,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
}

type ErroCampo struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(w, "Uso: validar <comando> [opções]\n\n")
		fmt.Fprintf(w, "Comandos disponíveis:\n")
		fmt.Fprintf(w, "  validar     Valida um pedido de simulação em JSON (campo → valor)\n")
		fmt.Fprintf(w, "  categorias  Lista as categorias e os campos de cada painel\n")
		fmt.Fprintf(w, "\nOpções:\n")
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
}

// run devolve 0 quando o pedido é válido, 1 quando tem erros e 2 em erros de utilização.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cat := fs.String("cat", "", "Categoria (auto, moto, ...); tem prioridade sobre o campo categoria do pedido")
	arquivo := fs.String("arquivo", "-", "Ficheiro JSON com o pedido; - lê da entrada padrão")
	formulario := fs.String("formulario", quote.FormIDTabbed, "Formulário: autoQuoteForm ou quoteForm")
	hoje := fs.String("hoje", "", "Data de referência AAAA-MM-DD para as regras de datas (default: hoje)")
	jsonOutput := fs.Bool("json", false, "Saída em formato JSON")
	fs.Usage = usage(stderr, fs)

	if len(args) < 1 {
		fs.Usage()
		return 2
	}
	command := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		fs.Usage()
		return 2
	}

	schema, ok := quote.SchemaByID(*formulario)
	if !ok {
		fmt.Fprintf(stderr, "Formulário desconhecido: %s\n", *formulario)
		return 2
	}

	switch command {
	case "categorias":
		cmdCategorias(stdout, schema, *jsonOutput)
		return 0
	case "validar":
	default:
		fmt.Fprintf(stderr, "Comando desconhecido: %s\n\n", command)
		fs.Usage()
		return 2
	}

	now := time.Now
	if *hoje != "" {
		ref, ok := quote.ParseDate(*hoje, time.Local)
		if !ok {
			fmt.Fprintf(stderr, "Data inválida em -hoje: %s\n", *hoje)
			return 2
		}
		now = func() time.Time { return ref }
	}

	values, err := lerPedido(*arquivo, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Erro ao ler pedido: %v\n", err)
		return 2
	}

	res := validar(schema, values, *cat, now)
	if *jsonOutput {
		printJSON(stdout, res)
	} else {
		printTexto(stdout, res)
	}
	if !res.Valido {
		return 1
	}
	return 0
}

func lerPedido(arquivo string, stdin io.Reader) (map[string]string, error) {
	var r io.Reader = stdin
	if arquivo != "-" {
		f, err := os.Open(arquivo)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var values map[string]string
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("JSON inválido (esperado objeto campo → texto): %w", err)
	}
	if values == nil {
		return nil, errors.New("pedido vazio")
	}
	return values, nil
}

func validar(schema *quote.Schema, values map[string]string, cat string, now func() time.Time) Resultado {
	ctrl := quote.New(schema, quote.WithClock(now))
	ignorados := ctrl.Load(values)
	sort.Strings(ignorados)
	categoria := ctrl.Init(cat)

	res := Resultado{
		Formulario: schema.ID,
		Categoria:  categoria,
		Titulo:     ctrl.Title(),
		Valido:     ctrl.Validate(),
		Ignorados:  ignorados,
	}

	errs := ctrl.Errors()
	for _, f := range schema.Fields() {
		if msg, ok := errs[f.ID]; ok {
			res.Erros = append(res.Erros, ErroCampo{Campo: f.ID, Mensagem: msg})
		}
	}
	if res.Valido {
		res.Payload = ctrl.Payload()
	}
	return res
}

func cmdCategorias(w io.Writer, schema *quote.Schema, jsonOutput bool) {
	type categoria struct {
		Chave  models.Categoria `json:"chave"`
		Titulo string           `json:"titulo"`
		Campos []string         `json:"campos"`
	}

	var lista []categoria
	for _, c := range models.Categorias() {
		lista = append(lista, categoria{Chave: c, Titulo: c.Titulo(), Campos: schema.FieldIDs(c)})
	}

	if jsonOutput {
		printJSON(w, lista)
		return
	}
	for _, c := range lista {
		fmt.Fprintf(w, "%-10s %s\n", c.Chave, c.Titulo)
		for _, id := range c.Campos {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	}
}

func printTexto(w io.Writer, res Resultado) {
	fmt.Fprintf(w, "Formulário: %s\n", res.Formulario)
	fmt.Fprintf(w, "Categoria:  %s (%s)\n", res.Categoria, res.Titulo)
	for _, id := range res.Ignorados {
		fmt.Fprintf(w, "Ignorado:   %s\n", id)
	}
	if res.Valido {
		fmt.Fprintln(w, "Pedido válido.")
		return
	}
	fmt.Fprintf(w, "%s\n", models.MensagemCorrigirCampos)
	for _, e := range res.Erros {
		fmt.Fprintf(w, "  %-22s %s\n", e.Campo, e.Mensagem)
	}
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "Erro ao serializar JSON: %v\n", err)
	}
}
