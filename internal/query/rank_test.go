package query

import (
	"testing"

	"amzdeals/internal/model"
)

func deal(title string, discount, rating float64, reviews int) model.Product {
	return model.Product{
		Title:       title,
		DiscountPct: &discount,
		Rating:      &rating,
		Reviews:     &reviews,
	}
}

func TestNormalizeWeights(t *testing.T) {
	wd, wr := NormalizeWeights(0.7, 0.3)
	if wd != 0.7 || wr != 0.3 {
		t.Errorf("já normalizados: %v %v", wd, wr)
	}

	wd, wr = NormalizeWeights(2, 2)
	if wd != 0.5 || wr != 0.5 {
		t.Errorf("soma 4: %v %v", wd, wr)
	}

	// soma zero cai nos defaults em vez de dividir por zero
	wd, wr = NormalizeWeights(0, 0)
	if wd != DefaultWeightDiscount || wr != DefaultWeightRating {
		t.Errorf("fallback: %v %v", wd, wr)
	}
}

func TestRankZeroWeightsFallback(t *testing.T) {
	records := []model.Product{
		deal("a", 30, 4.2, 10),
		deal("b", 10, 4.9, 10),
	}
	got := Rank(records, RankOptions{MinRating: 4.0, WeightDiscount: 0, WeightRating: 0, Limit: 10})
	if len(got) != 2 {
		t.Fatalf("resultados = %d, want 2", len(got))
	}
	// com pesos (0.7, 0.3): a = 0.3*0.7+0.84*0.3 = 0.462; b = 0.07*0.7+0.98*0.3 = 0.343
	if got[0].Title != "a" {
		t.Errorf("primeiro = %q, want a", got[0].Title)
	}
}

func TestRankTieBreakByRating(t *testing.T) {
	a := deal("rating 4.5", 20, 4.5, 999)
	b := deal("rating 4.8", 20, 4.8, 1)

	// pesos (1, 0): score depende só do desconto -> empate, desempata por rating
	got := Rank([]model.Product{a, b}, RankOptions{MinRating: 4.0, WeightDiscount: 1, WeightRating: 0, Limit: 10})
	if got[0].Title != "rating 4.8" {
		t.Errorf("empate de score deveria preferir rating maior, veio %q", got[0].Title)
	}

	// ordem de entrada invertida dá o mesmo resultado
	got = Rank([]model.Product{b, a}, RankOptions{MinRating: 4.0, WeightDiscount: 1, WeightRating: 0, Limit: 10})
	if got[0].Title != "rating 4.8" {
		t.Errorf("resultado depende da ordem de entrada: %q", got[0].Title)
	}
}

func TestRankTieBreakByReviews(t *testing.T) {
	a := deal("poucas reviews", 20, 4.8, 10)
	b := deal("muitas reviews", 20, 4.8, 5000)
	got := Rank([]model.Product{a, b}, RankOptions{MinRating: 4.0, WeightDiscount: 1, WeightRating: 0, Limit: 10})
	if got[0].Title != "muitas reviews" {
		t.Errorf("segundo desempate é por reviews: %q", got[0].Title)
	}
}

func TestRankFiltersAndCoercion(t *testing.T) {
	noDiscount := deal("sem desconto", 0, 4.9, 100)
	lowRating := deal("rating baixo", 50, 3.0, 100)
	nilFields := model.Product{Title: "tudo ausente"} // coage para 0 -> sem desconto -> fora
	ok := deal("válido", 30, 4.5, 10)
	okNilReviews := deal("sem reviews", 30, 4.5, 0)
	okNilReviews.Reviews = nil

	got := Rank(
		[]model.Product{noDiscount, lowRating, nilFields, ok, okNilReviews},
		RankOptions{MinRating: 4.0, WeightDiscount: 0.7, WeightRating: 0.3, Limit: 10},
	)
	if len(got) != 2 {
		t.Fatalf("resultados = %d, want 2 (reviews ausente não exclui)", len(got))
	}
	// empate total de score e rating: reviews 10 > 0 (nil coagido)
	if got[0].Title != "válido" || got[1].Title != "sem reviews" {
		t.Errorf("ordem: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestRankLimit(t *testing.T) {
	var records []model.Product
	for i := 0; i < 30; i++ {
		records = append(records, deal("x", float64(i+1), 4.5, i))
	}
	got := Rank(records, RankOptions{MinRating: 4.0, WeightDiscount: 0.7, WeightRating: 0.3, Limit: 5})
	if len(got) != 5 {
		t.Fatalf("limit: %d", len(got))
	}
	if *got[0].DiscountPct != 30 {
		t.Errorf("maior desconto primeiro: %v", *got[0].DiscountPct)
	}
}
