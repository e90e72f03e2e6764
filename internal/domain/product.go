package domain

// Product referencia a categoria apenas pelo id; categorias não são
// modeladas como entidade própria.
type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID *int   `json:"category,omitempty"`
}
