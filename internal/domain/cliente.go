package domain

// Cliente is the relational-store client record. Telefone and Morada are
// nullable columns, hence the pointers.
type Cliente struct {
	ID       int64   `json:"id"`
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Telefone *string `json:"telefone"`
	Morada   *string `json:"morada"`
}
