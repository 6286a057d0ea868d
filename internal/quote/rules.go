package quote

import "time"

// Mensagens de validação.
const (
	MsgRequired         = "Preenchimento obrigatório."
	MsgNome             = "Indique pelo menos nome e apelido."
	MsgCodigoPostal     = "Código postal inválido (ex: 1234-567)."
	MsgNIF              = "NIF inválido (dígito de controlo)."
	MsgTelemovel        = "Telemóvel inválido (9 dígitos, começa por 9)."
	MsgEmail            = "Email inválido."
	MsgNascimento       = "A data de nascimento tem de ser no passado."
	MsgDataMatricula    = "A data da matrícula tem de ser no passado."
	MsgDataCarta        = "A data da carta tem de ser no passado."
	MsgInicio           = "A data de início deve ser hoje ou no futuro."
	MsgMatricula        = "Matrícula inválida (formatos PT comuns)."
	MsgCartaAntesNasc   = "A data da carta não pode ser anterior à data de nascimento."
	MsgCartaMuitoCedo   = "Data da carta parece muito cedo (verifique)."
	LiveMsgNome         = "Indique nome e apelido."
	LiveMsgCodigoPostal = "Ex: 1234-567"
	LiveMsgNIF          = "NIF inválido."
	LiveMsgTelemovel    = "Telemóvel inválido."
	LiveMsgMatricula    = "Matrícula inválida."
	LiveMsgPassado      = "Tem de ser no passado."
	LiveMsgFuturo       = "Hoje ou futuro."
)

// MinDrivingAge é a idade mínima, em anos, para a data da carta.
const MinDrivingAge = 16

// MatriculaFields são as variantes do campo de matrícula, consoante o formulário.
var MatriculaFields = []string{"matricula", "auto_matricula", "moto_matricula"}

// Predicate avalia o valor já aparado de um campo.
type Predicate func(value string) bool

// Rule associa um campo a um predicado de formato. Message é usada na
// validação completa e LiveMessage na validação em tempo real.
type Rule struct {
	Field       string
	Check       Predicate
	Message     string
	LiveMessage string
}

// Rules devolve a tabela de regras de formato pela ordem de avaliação.
// As regras de datas usam today como referência.
func Rules(today time.Time) []Rule {
	past := func(v string) bool { return IsPastDate(v, today) }
	future := func(v string) bool { return IsTodayOrFuture(v, today) }
	minTwo := func(v string) bool { return IsMinWords(v, 2) }

	return []Rule{
		{Field: "nome", Check: minTwo, Message: MsgNome, LiveMessage: LiveMsgNome},
		{Field: "codigo_postal", Check: IsPostalPTValid, Message: MsgCodigoPostal, LiveMessage: LiveMsgCodigoPostal},
		{Field: "nif", Check: IsNIFValid, Message: MsgNIF, LiveMessage: LiveMsgNIF},
		{Field: "telemovel", Check: IsPhonePTValid, Message: MsgTelemovel, LiveMessage: LiveMsgTelemovel},
		{Field: "email", Check: IsEmailValid, Message: MsgEmail, LiveMessage: MsgEmail},

		{Field: "data_nascimento", Check: past, Message: MsgNascimento, LiveMessage: LiveMsgPassado},
		{Field: "data_matricula", Check: past, Message: MsgDataMatricula, LiveMessage: LiveMsgPassado},
		{Field: "data_carta", Check: past, Message: MsgDataCarta, LiveMessage: LiveMsgPassado},
		{Field: "inicio_seguro", Check: future, Message: MsgInicio, LiveMessage: LiveMsgFuturo},

		{Field: "matricula", Check: IsMatriculaPTValid, Message: MsgMatricula, LiveMessage: LiveMsgMatricula},
		{Field: "auto_matricula", Check: IsMatriculaPTValid, Message: MsgMatricula, LiveMessage: LiveMsgMatricula},
		{Field: "moto_matricula", Check: IsMatriculaPTValid, Message: MsgMatricula, LiveMessage: LiveMsgMatricula},

		{Field: "auto_data_matricula", Check: past, Message: MsgDataMatricula, LiveMessage: LiveMsgPassado},
		{Field: "auto_inicio", Check: future, Message: MsgInicio, LiveMessage: LiveMsgFuturo},
		{Field: "moto_data_matricula", Check: past, Message: MsgDataMatricula, LiveMessage: LiveMsgPassado},
		{Field: "moto_inicio", Check: future, Message: MsgInicio, LiveMessage: LiveMsgFuturo},
	}
}

// RuleFor devolve a regra de formato do campo, se existir.
func RuleFor(field string, today time.Time) (Rule, bool) {
	for _, r := range Rules(today) {
		if r.Field == field {
			return r, true
		}
	}
	return Rule{}, false
}

// CrossRule valida um campo em função de outro.
type CrossRule struct {
	Field     string
	DependsOn string
	Check     func(value, other string) (msg string, ok bool)
}

// CrossRules devolve as regras entre campos, avaliadas depois das regras de formato.
func CrossRules() []CrossRule {
	return []CrossRule{
		{Field: "data_carta", DependsOn: "data_nascimento", Check: CheckCartaNascimento},
	}
}

// CheckCartaNascimento exige que a carta seja posterior ao nascimento e não
// anterior ao dia em que o condutor fez MinDrivingAge anos. Datas ilegíveis
// ou em falta não são avaliadas.
func CheckCartaNascimento(carta, nascimento string) (string, bool) {
	dc, okC := ParseDate(carta, time.Local)
	dn, okN := ParseDate(nascimento, time.Local)
	if !okC || !okN {
		return "", true
	}
	if !dc.After(dn) {
		return MsgCartaAntesNasc, false
	}
	if dc.Before(dn.AddDate(MinDrivingAge, 0, 0)) {
		return MsgCartaMuitoCedo, false
	}
	return "", true
}
