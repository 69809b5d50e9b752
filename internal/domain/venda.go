package domain

import "time"

// Venda is a sale header. Itens is only filled on detail reads and on
// creation; list reads leave it nil so it stays out of the JSON output.
type Venda struct {
	ID        int64       `json:"id"`
	ClienteID int64       `json:"cliente_id"`
	Data      time.Time   `json:"data"`
	Total     float64     `json:"total"`
	Itens     []ItemVenda `json:"itens,omitempty"`
}

// ItemVenda is one sale line: a product reference with the quantity and the
// unit price the caller charged at sale time.
type ItemVenda struct {
	ProdutoID     int64   `json:"produto_id"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

// ComputeTotal sums quantidade times preco_unitario over the submitted
// items. Unit prices are taken as given, never re-read from the catalog.
func ComputeTotal(itens []ItemVenda) float64 {
	var total float64
	for _, item := range itens {
		total += float64(item.Quantidade) * item.PrecoUnitario
	}
	return total
}
