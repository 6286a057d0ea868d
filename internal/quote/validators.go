package quote

import (
	"regexp"
	"strings"
	"time"

	"github.com/seguros-online/app-simulacao/internal/utils"
)

// DateLayout é o formato dos campos de data (valor de um input type="date").
const DateLayout = "2006-01-02"

var (
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	phonePTRegex    = regexp.MustCompile(`^9\d{8}$`)
	postalPTRegex   = regexp.MustCompile(`^\d{4}-\d{3}$`)
	nifRegex        = regexp.MustCompile(`^\d{9}$`)
	matriculaRegex  = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	matriculaLayout = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{2}$`), // AA00AA
		regexp.MustCompile(`^\d{2}[A-Z]{2}\d{2}$`),    // 00AA00
		regexp.MustCompile(`^[A-Z]{2}\d{2}\d{2}$`),    // AA0000
		regexp.MustCompile(`^\d{2}\d{2}[A-Z]{2}$`),    // 0000AA
	}
)

// OnlyDigits remove tudo o que não é dígito.
func OnlyDigits(s string) string {
	return utils.ApenasDigitos(s)
}

func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}

// IsPhonePTValid aceita telemóveis portugueses: 9 dígitos começados por 9,
// ignorando espaços, hífens e outros separadores.
func IsPhonePTValid(phone string) bool {
	return phonePTRegex.MatchString(OnlyDigits(phone))
}

func IsPostalPTValid(cp string) bool {
	return postalPTRegex.MatchString(strings.TrimSpace(cp))
}

// IsNIFValid valida o dígito de controlo (módulo 11) de um NIF.
// Os 8 primeiros dígitos são ponderados de 9 a 2; se o resto for 0 ou 1
// o dígito de controlo é 0, caso contrário 11 - resto.
func IsNIFValid(nif string) bool {
	n := OnlyDigits(nif)
	if !nifRegex.MatchString(n) {
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(n[i]-'0') * (9 - i)
	}

	mod := sum % 11
	check := 0
	if mod >= 2 {
		check = 11 - mod
	}
	return int(n[8]-'0') == check
}

// NormalizeMatricula devolve a matrícula em maiúsculas, sem espaços nem hífens.
func NormalizeMatricula(m string) string {
	m = utils.RemoverEspacos(strings.ToUpper(strings.TrimSpace(m)))
	return strings.ReplaceAll(m, "-", "")
}

// IsMatriculaPTValid aceita os quatro formatos posicionais de matrícula em uso
// (AA-00-AA, 00-AA-00, AA-00-00 e 00-00-AA), com ou sem separadores.
func IsMatriculaPTValid(m string) bool {
	normalized := NormalizeMatricula(m)
	if !matriculaRegex.MatchString(normalized) {
		return false
	}
	for _, p := range matriculaLayout {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

func IsMinWords(text string, minWords int) bool {
	return len(strings.Fields(text)) >= minWords
}

// ParseDate interpreta uma data AAAA-MM-DD à meia-noite no fuso indicado.
// Valores vazios ou mal formados devolvem ok=false.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// StartOfDay zera a hora de t, mantendo o fuso.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsPastDate indica se a data é estritamente anterior a hoje.
func IsPastDate(value string, today time.Time) bool {
	today = StartOfDay(today)
	d, ok := ParseDate(value, today.Location())
	if !ok {
		return false
	}
	return d.Before(today)
}

// IsTodayOrFuture indica se a data é hoje ou posterior.
func IsTodayOrFuture(value string, today time.Time) bool {
	today = StartOfDay(today)
	d, ok := ParseDate(value, today.Location())
	if !ok {
		return false
	}
	return !d.Before(today)
}
