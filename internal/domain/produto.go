package domain

type Produto struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
	Preco     float64 `json:"preco"`
	Categoria *string `json:"categoria"`
}
