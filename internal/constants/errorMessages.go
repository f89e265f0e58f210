package constants

const (
	StatusError = "Error"
)

// APIStatus is the top-level status string of the JSON envelope
type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

const (
	// Same message for unknown user and wrong password, so usernames
	// cannot be enumerated through the login endpoint.
	MsgInvalidCredentials = "Usuário ou senha inválidos"

	MsgUnauthenticated    = "Não autenticado"
	MsgForbidden          = "Acesso negado"
	MsgInvalidCsrf        = "Token CSRF inválido ou ausente"
	MsgNotFound           = "Registro não encontrado"
	MsgInternalError      = "Erro interno do servidor"
	MsgValidationFailed   = "Dados inválidos"
	MsgLoanLinkedExpense  = "Despesa vinculada a empréstimo não pode ser alterada diretamente"
	MsgBulletinPublished  = "Boletim publicado"
	MsgExportUnsupported  = "Formato de exportação não suportado"
	MsgPdfExportStub      = "Exportação em PDF ainda não disponível"
)

// Placeholder values written into auto-created member records. The pastoral
// staff completes these fields later; the UI treats them as "needs follow-up".
const (
	PlaceholderText        = "A preencher"
	PlaceholderEmailDomain = "pendente.com"
	PlaceholderBirthDate   = "2000-01-01"
)
