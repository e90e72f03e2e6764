package domain

import "time"

// Goal é a meta de vendas de um executivo para uma categoria de produto
// dentro de um período fechado [PeriodStart, PeriodEnd].
type Goal struct {
	ID             int      `json:"id"`
	PeriodStart    Date     `json:"period_start"`
	PeriodEnd      Date     `json:"period_end"`
	TargetQuantity *int     `json:"target_quantity,omitempty"`
	TargetAmount   *float64 `json:"target_amount,omitempty"`
	Weight         *int     `json:"weight,omitempty"`
	ExecutiveID    *int     `json:"executive,omitempty"`
	CategoryID     *int     `json:"category,omitempty"`
}

// Covers informa se a data cai dentro do período da meta (bordas inclusas)
func (g *Goal) Covers(date Date) bool {
	return !date.Before(g.PeriodStart.Time) && !date.After(g.PeriodEnd.Time)
}

// CoverageResult é o resultado da verificação de meta vigente
type CoverageResult struct {
	Exists bool  `json:"exists"`
	Goal   *Goal `json:"goal"`
}

// GoalProgress é o avanço apurado de uma meta a partir das vendas registradas
type GoalProgress struct {
	GoalID           int       `json:"goal"`
	AttainedQuantity int       `json:"attained_quantity"`
	AttainedAmount   float64   `json:"attained_amount"`
	ComputedAt       time.Time `json:"computed_at"`
}
