package selling

import "errors"

var (
	// Erros de validação (sem efeitos colaterais no banco)
	ErrMissingRequiredData = errors.New("data, valor, cliente e produto são obrigatórios")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	// Erros do workflow de admissão
	ErrCoverageRequired   = errors.New("é necessária uma meta vigente para registrar a venda")
	ErrGoalCreationFailed = errors.New("falha ao criar a meta rápida")

	// Erros de consulta
	ErrSaleNotFound = errors.New("venda não encontrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
