package domain

type Channel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
