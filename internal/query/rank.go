package query

import (
	"sort"

	"amzdeals/internal/model"
)

// Pesos default do score composto quando os informados degeneram.
const (
	DefaultWeightDiscount = 0.7
	DefaultWeightRating   = 0.3
)

// RankOptions parametriza o ranking de melhores ofertas.
type RankOptions struct {
	MinRating      float64
	WeightDiscount float64
	WeightRating   float64
	Limit          int
}

// NormalizeWeights faz os pesos somarem 1. Soma <= 0 cai nos defaults
// em vez de dividir por zero.
func NormalizeWeights(weightDiscount, weightRating float64) (float64, float64) {
	total := weightDiscount + weightRating
	if total <= 0 {
		return DefaultWeightDiscount, DefaultWeightRating
	}
	return weightDiscount / total, weightRating / total
}

// Rank calcula o score composto e devolve os `Limit` melhores registros.
//
// Diferente do Filter, aqui campo numérico ausente vira 0: o ranking
// precisa de uma ordem total sobre todos os candidatos, não pode
// descartar registros só por falta de dado opcional.
// Score = (discount/100)*wd + (rating/5)*wr, ordenado por
// (score, rating, reviews) decrescente — o desempate em três níveis
// garante resultado determinístico.
func Rank(products []model.Product, opts RankOptions) []model.Product {
	wd, wr := NormalizeWeights(opts.WeightDiscount, opts.WeightRating)

	type scored struct {
		product model.Product
		score   float64
		rating  float64
		reviews int
	}

	var candidates []scored
	for _, p := range products {
		discount := coerceFloat(p.DiscountPct)
		rating := coerceFloat(p.Rating)
		reviews := coerceInt(p.Reviews)

		if discount <= 0 || rating < opts.MinRating {
			continue
		}

		candidates = append(candidates, scored{
			product: p,
			score:   (discount/100)*wd + (rating/5)*wr,
			rating:  rating,
			reviews: reviews,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].rating != candidates[j].rating {
			return candidates[i].rating > candidates[j].rating
		}
		return candidates[i].reviews > candidates[j].reviews
	})

	if opts.Limit > 0 && len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}

	out := make([]model.Product, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.product)
	}
	return out
}

func coerceFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func coerceInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
