package goaltracking

import "errors"

var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("período inicial e final da meta são obrigatórios")
	ErrInvalidPeriod       = errors.New("período da meta inválido: início posterior ao fim")

	// Erros de consulta
	ErrGoalNotFound = errors.New("meta não encontrada")

	// Erros de infraestrutura. Uma falha do banco durante a verificação de
	// cobertura nunca é tratada como "sem meta vigente".
	ErrStoreUnavailable = errors.New("erro ao consultar o banco de metas")
)
