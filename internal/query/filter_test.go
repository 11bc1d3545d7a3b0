package query

import (
	"reflect"
	"testing"

	"amzdeals/internal/model"
)

func f(v float64) *float64 { return &v }

func TestFilterMatchesCategoryAnchored(t *testing.T) {
	filter := Filter{Category: "Electronics"}

	if !filter.Matches(model.Product{Category: "electronics"}) {
		t.Error("match ancorado deveria ignorar caixa")
	}
	if filter.Matches(model.Product{Category: "Electronics & Accessories"}) {
		t.Error("match de categoria é a string inteira, não substring")
	}
	if filter.Matches(model.Product{}) {
		t.Error("categoria vazia não satisfaz critério presente")
	}
}

func TestFilterMatchesBrandSubstring(t *testing.T) {
	filter := Filter{Brand: "sony"}

	if !filter.Matches(model.Product{Brand: "Sony Corp"}) {
		t.Error("brand é substring case-insensitive")
	}
	if filter.Matches(model.Product{Brand: "Samsung"}) {
		t.Error("Samsung não contém sony")
	}
}

func TestFilterMatchesThresholdsExcludeAbsent(t *testing.T) {
	filter := Filter{MinPrice: f(10), MaxPrice: f(100), MinRating: f(4), MinDiscount: f(5)}

	price := 50.0
	rating := 4.5
	disc := 10.0
	full := model.Product{Price: &price, Rating: &rating, DiscountPct: &disc}
	if !filter.Matches(full) {
		t.Error("registro dentro das faixas deveria passar")
	}

	// qualquer campo ausente exclui quando há critério de limiar
	noPrice := full
	noPrice.Price = nil
	if filter.Matches(noPrice) {
		t.Error("price ausente com faixa de preço presente deveria excluir")
	}

	cheap := full
	low := 5.0
	cheap.Price = &low
	if filter.Matches(cheap) {
		t.Error("abaixo do min_price")
	}
}

func TestFilterMatchesEmptyFilterAcceptsAll(t *testing.T) {
	if !(Filter{}).Matches(model.Product{}) {
		t.Error("sem critérios, tudo passa")
	}
}

func TestFilterToSQL(t *testing.T) {
	filter := Filter{Category: "Electronics", Brand: "sony", MinPrice: f(10), MinDiscount: f(20)}
	where, params := filter.ToSQL(2)

	wantWhere := "category ILIKE $2 AND brand ILIKE $3 AND price >= $4 AND discount_pct >= $5"
	if where != wantWhere {
		t.Errorf("where = %q, want %q", where, wantWhere)
	}
	wantParams := []any{"Electronics", "%sony%", 10.0, 20.0}
	if !reflect.DeepEqual(params, wantParams) {
		t.Errorf("params = %v, want %v", params, wantParams)
	}
}

func TestFilterToSQLEmpty(t *testing.T) {
	where, params := (Filter{}).ToSQL(1)
	if where != "1=1" || params != nil {
		t.Errorf("filtro vazio: %q %v", where, params)
	}
}

func TestSortColumnFallback(t *testing.T) {
	cases := map[string]string{
		"price":      "price",
		"rating":     "rating",
		"discount_%": "discount_pct",
		"title":      "rating", // inválido cai no default
		"":           "rating",
	}
	for in, want := range cases {
		if got := SortColumn(in); got != want {
			t.Errorf("SortColumn(%q) = %q, want %q", in, got, want)
		}
	}
	if SortDirection("asc") != "ASC" || SortDirection("desc") != "DESC" || SortDirection("x") != "DESC" {
		t.Error("SortDirection: asc explícito, resto DESC")
	}
}

func TestNormalizePage(t *testing.T) {
	if p := NormalizePage(0, 0); p.Number != 1 || p.Size != 20 {
		t.Errorf("defaults: %+v", p)
	}
	if p := NormalizePage(2, 20); p.Offset() != 20 {
		t.Errorf("offset página 2 = %d", p.Offset())
	}
	if p := NormalizePage(1, 1000); p.Size != 200 {
		t.Errorf("page_size teto 200: %+v", p)
	}
}
