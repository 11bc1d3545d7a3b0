package query

// Mapeia o nome externo de ordenação para a coluna do banco.
// Valor inválido cai silenciosamente no default (rating).
var sortColumns = map[string]string{
	"price":      "price",
	"rating":     "rating",
	"discount_%": "discount_pct",
}

func SortColumn(sortBy string) string {
	if col, ok := sortColumns[sortBy]; ok {
		return col
	}
	return "rating"
}

func SortDirection(dir string) string {
	if dir == "asc" {
		return "ASC"
	}
	return "DESC"
}

// Page é a janela de paginação 1-based já saneada.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// NormalizePage aplica os limites: page >= 1, page_size em 1..200
// (default 20 quando não informado ou inválido).
func NormalizePage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 200 {
		size = 200
	}
	return Page{Number: number, Size: size}
}
