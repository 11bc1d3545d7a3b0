// Package query constrói predicados de filtro e o ranking de melhores
// ofertas, de forma neutra em relação ao store.
package query

import (
	"fmt"
	"strings"

	"amzdeals/internal/model"
)

// Filter são os critérios opcionais de busca. Critério ausente não impõe
// restrição; os presentes compõem por AND.
type Filter struct {
	Category    string   // match exato, case-insensitive (ancorado)
	Brand       string   // substring, case-insensitive
	MinPrice    *float64 // faixa inclusiva
	MaxPrice    *float64
	MinRating   *float64
	MinDiscount *float64
}

// ToSQL gera a cláusula WHERE parametrizada começando em $startIndex,
// no estilo de query dinâmica usado pelos repositórios.
func (f Filter) ToSQL(startIndex int) (string, []any) {
	var clauses []string
	var params []any
	idx := startIndex

	if f.Category != "" {
		// ILIKE sem curinga = igualdade ancorada case-insensitive
		clauses = append(clauses, fmt.Sprintf("category ILIKE $%d", idx))
		params = append(params, f.Category)
		idx++
	}
	if f.Brand != "" {
		clauses = append(clauses, fmt.Sprintf("brand ILIKE $%d", idx))
		params = append(params, "%"+f.Brand+"%")
		idx++
	}
	if f.MinPrice != nil {
		clauses = append(clauses, fmt.Sprintf("price >= $%d", idx))
		params = append(params, *f.MinPrice)
		idx++
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("price <= $%d", idx))
		params = append(params, *f.MaxPrice)
		idx++
	}
	if f.MinRating != nil {
		clauses = append(clauses, fmt.Sprintf("rating >= $%d", idx))
		params = append(params, *f.MinRating)
		idx++
	}
	if f.MinDiscount != nil {
		clauses = append(clauses, fmt.Sprintf("discount_pct >= $%d", idx))
		params = append(params, *f.MinDiscount)
		idx++
	}

	if len(clauses) == 0 {
		return "1=1", nil
	}
	return strings.Join(clauses, " AND "), params
}

// Matches avalia o predicado em memória com a mesma semântica do SQL:
// campo ausente nunca satisfaz um critério de limiar presente.
func (f Filter) Matches(p model.Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(f.Brand)) {
		return false
	}
	if f.MinPrice != nil && (p.Price == nil || *p.Price < *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && (p.Price == nil || *p.Price > *f.MaxPrice) {
		return false
	}
	if f.MinRating != nil && (p.Rating == nil || *p.Rating < *f.MinRating) {
		return false
	}
	if f.MinDiscount != nil && (p.DiscountPct == nil || *p.DiscountPct < *f.MinDiscount) {
		return false
	}
	return true
}
