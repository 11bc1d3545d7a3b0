package scraper

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"amzdeals/internal/model"
	"amzdeals/internal/normalize"
)

// Seletores dos blocos de produto. Cada campo tem uma cadeia ordenada de
// seletores: o primeiro que encontrar algo vence, campo sem match fica ausente.
const (
	selContainer = `[data-cy="asin-faceout-container"]`
	selTitle     = `[data-cy="title-recipe"] h2 span`
	selImage     = `[data-cy="image-container"] img.s-image`
	selLink      = `[data-cy="title-recipe"] a.a-link-normal`
	selPrice     = `[data-cy="price-recipe"] .a-offscreen`
	selOrigPrice = `[data-cy="price-recipe"] .a-text-price .a-offscreen`
	selReviews   = `[data-cy="reviews-block"] .a-size-mini`
	selDelivery  = `[data-cy="delivery-recipe"]`
)

var ratingSelectors = []string{
	`[data-cy="reviews-ratings-slot"] .a-icon-alt`,
	`[data-cy="reviews-ratings-slot"]`,
	`.a-icon-alt`,
}

// ParseProducts extrai todos os blocos de produto de uma página de busca,
// em ordem de documento, sem deduplicar. Um bloco malformado não aborta
// os demais: cada campo degrada para ausente de forma independente.
func ParseProducts(html, category, baseURL string) ([]model.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var products []model.Product
	doc.Find(selContainer).Each(func(_ int, s *goquery.Selection) {
		p := model.Product{Category: category}

		p.Title = firstText(s, selTitle)
		if p.Title != "" {
			if parts := strings.Fields(p.Title); len(parts) > 0 {
				p.Brand = parts[0]
			}
		}

		p.Image = firstAttr(s, "src", selImage)

		if href := firstAttr(s, "href", selLink); href != "" {
			p.ProductLink = absolutize(href, baseURL)
		}

		p.Price = normalize.ParseMoney(firstText(s, selPrice))
		p.OriginalPrice = normalize.ParseMoney(firstText(s, selOrigPrice))
		p.DiscountPct = deriveDiscount(p.Price, p.OriginalPrice)

		if txt := firstText(s, ratingSelectors...); txt != "" {
			p.Rating = normalize.ParseRating(txt)
		}

		p.Reviews = normalize.ParseReviewCount(firstText(s, selReviews))

		if avail := firstText(s, selDelivery); avail != "" {
			p.Availability = strings.Join(strings.Fields(avail), " ")
		}

		products = append(products, p)
	})

	return products, nil
}

// deriveDiscount só calcula desconto com um par de preços válido:
// original > price > 0. Qualquer outra combinação fica ausente.
func deriveDiscount(price, original *float64) *float64 {
	if price == nil || original == nil {
		return nil
	}
	if *price <= 0 || *original <= *price {
		return nil
	}
	d := math.Round((*original-*price)/(*original)*100*100) / 100
	return &d
}

func absolutize(href, baseURL string) string {
	if strings.HasPrefix(href, "/") {
		return strings.TrimRight(baseURL, "/") + href
	}
	return href
}

// firstText percorre a cadeia de seletores e devolve o primeiro texto
// não vazio encontrado.
func firstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		el := s.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if t := strings.TrimSpace(el.Text()); t != "" {
			return t
		}
	}
	return ""
}

func firstAttr(s *goquery.Selection, attr string, selectors ...string) string {
	for _, sel := range selectors {
		el := s.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
