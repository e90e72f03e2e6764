package domain

type Sale struct {
	ID          int     `json:"id"`
	Date        Date    `json:"date"`
	Amount      float64 `json:"amount"`
	ClientID    int     `json:"client"`
	ProductID   int     `json:"product"`
	ExecutiveID *int    `json:"executive,omitempty"`
	ChannelID   *int    `json:"channel,omitempty"`
}

// SaleRecord é uma venda da listagem, com os nomes das entidades
// relacionadas já resolvidos por LEFT JOIN.
type SaleRecord struct {
	Sale
	ClientName    *string `json:"client_name,omitempty"`
	ProductName   *string `json:"product_name,omitempty"`
	ExecutiveName *string `json:"executive_name,omitempty"`
	ChannelName   *string `json:"channel_name,omitempty"`
}

// MissingGoalDecision é a decisão do chamador quando não há meta vigente
// cobrindo a venda: criar uma meta rápida ou desistir da admissão.
type MissingGoalDecision string

const (
	MissingGoalCreate MissingGoalDecision = "create"
	MissingGoalSkip   MissingGoalDecision = "skip"
)

// SaleInput carrega os dados brutos de admissão de uma venda. Campos
// ponteiro distinguem "ausente" de "zero".
type SaleInput struct {
	Date          *Date
	Amount        *float64
	ClientID      *int
	ProductID     *int
	ExecutiveID   *int
	ChannelID     *int
	OnMissingGoal MissingGoalDecision
}

// SaleFilter são os filtros opcionais da listagem de vendas
type SaleFilter struct {
	ClientID    *int
	ProductID   *int
	ExecutiveID *int
	DateFrom    *Date
	DateTo      *Date
	Query       string
	Limit       uint64
	Offset      uint64
}
