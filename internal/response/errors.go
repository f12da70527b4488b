package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_TAKEN"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidOption  ErrCode = "INVALID_OPTION"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound     ErrCode = "NOT_FOUND"
	ErrExamNotFound ErrCode = "EXAM_NOT_FOUND"
	// ErrAttemptNotFound covers both a missing attempt and an attempt
	// owned by someone else: the two cases are deliberately
	// indistinguishable so attempt IDs of other users do not leak.
	ErrAttemptNotFound ErrCode = "ATTEMPT_NOT_FOUND"

	// ─── Attempt lifecycle ─────────────────────────────────────────────
	ErrEmptyQuestionSet       ErrCode = "EMPTY_QUESTION_SET"
	ErrQuestionNotInAttempt   ErrCode = "QUESTION_NOT_IN_ATTEMPT"
	ErrAttemptAlreadyFinished ErrCode = "ATTEMPT_ALREADY_FINISHED"
	ErrAttemptNotFinished     ErrCode = "ATTEMPT_NOT_FINISHED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "E-mail ou senha incorretos."
	case ErrEmailTaken:
		return "Já existe uma conta com este e-mail."
	case ErrSessionInvalidated:
		return "Sua sessão expirou. Faça login novamente."
	case ErrTokenRequired:
		return "Token de autenticação é obrigatório."
	case ErrTokenInvalid:
		return "Token de autenticação inválido."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Falha na validação. Verifique os dados enviados."
	case ErrInvalidID:
		return "Formato de ID inválido."
	case ErrInvalidOption:
		return "Alternativa inválida. Escolha entre A e E."
	case ErrInvalidPayload:
		return "Corpo da requisição inválido."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Recurso não encontrado."
	case ErrExamNotFound:
		return "Prova não encontrada."
	case ErrAttemptNotFound:
		return "Tentativa não encontrada."

	// ─── Attempt lifecycle ─────────────────────────────────────────────
	case ErrEmptyQuestionSet:
		return "Nenhuma questão encontrada para esta tentativa."
	case ErrQuestionNotInAttempt:
		return "Esta questão não faz parte da tentativa."
	case ErrAttemptAlreadyFinished:
		return "Tentativa já finalizada. As respostas não podem mais ser alteradas."
	case ErrAttemptNotFinished:
		return "Finalize a tentativa antes de ver a revisão."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Muitas requisições. Tente novamente em instantes."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocorreu um erro interno no servidor."
	default:
		return "Ocorreu um erro inesperado."
	}
}
