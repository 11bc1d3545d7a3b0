package scraper

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"amzdeals/internal/model"
)

const DefaultBaseURL = "https://www.amazon.com"

// Scraper percorre páginas de resultado de busca e extrai registros
// canônicos. Execução sequencial por invocação; o delay entre requests
// é política de cortesia com o host, não otimização.
type Scraper struct {
	Fetcher *Fetcher
	BaseURL string
	Delay   time.Duration
}

func New(fetcher *Fetcher, baseURL string, delay time.Duration) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{Fetcher: fetcher, BaseURL: baseURL, Delay: delay}
}

// ScrapeCategory busca `pages` páginas de resultado para a query e devolve
// os produtos extraídos em ordem. Falha de fetch é dura para a página:
// devolve o que já foi extraído das páginas anteriores junto com o erro.
func (s *Scraper) ScrapeCategory(query string, pages int) ([]model.Product, error) {
	if pages < 1 {
		pages = 1
	}

	var all []model.Product
	for page := 1; page <= pages; page++ {
		pageURL := fmt.Sprintf("%s/s?k=%s&page=%d", s.BaseURL, url.QueryEscape(query), page)

		html, err := s.Fetcher.Get(pageURL)
		if err != nil {
			return all, fmt.Errorf("category %q page %d: %w", query, page, err)
		}

		products, err := ParseProducts(html, query, s.BaseURL)
		if err != nil {
			return all, fmt.Errorf("category %q page %d: %w", query, page, err)
		}

		log.Printf("[scraper] %q página %d: %d produtos", query, page, len(products))
		all = append(all, products...)

		// pacing educado entre páginas do mesmo host
		time.Sleep(s.Delay)
	}

	return all, nil
}
