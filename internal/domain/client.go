package domain

type Client struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"`
	ExecutiveID *int   `json:"executive,omitempty"`
}
