package model

// Product é o registro canônico de um produto após normalização.
// Campos numéricos são ponteiros: nil significa "ausente" (nunca zero
// por engano, nunca string malformada).
type Product struct {
	ID            string   `json:"id,omitempty"`
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	DiscountPct   *float64 `json:"discount_%"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	ProductLink   string   `json:"product_link"`
	Image         string   `json:"image"`
	Availability  string   `json:"availability"`
}
