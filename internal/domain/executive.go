package domain

type Executive struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
