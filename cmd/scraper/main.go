package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"amzdeals/internal/config"
	"amzdeals/internal/db"
	"amzdeals/internal/ingest"
	"amzdeals/internal/model"
	"amzdeals/internal/observability"
	"amzdeals/internal/query"
	"amzdeals/internal/repository"
	"amzdeals/internal/scraper"
)

// go run cmd/scraper/main.go -categories="laptops,headphones" -pages=2
// go run cmd/scraper/main.go -ingest
func main() {
	catsArg := flag.String("categories", "", "Categorias separadas por vírgula (default: lista embutida)")
	pages := flag.Int("pages", 1, "Páginas por categoria")
	out := flag.String("out", "amazon_products_all_categories.csv", "Arquivo CSV de saída")
	doIngest := flag.Bool("ingest", false, "Aplica os registros direto no Postgres após o scrape")
	flag.Parse()

	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	categories := scraper.DefaultCategories
	if *catsArg != "" {
		categories = nil
		for _, c := range strings.Split(*catsArg, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	fetcher := scraper.NewFetcher(cfg.FetchTimeout)
	s := scraper.New(fetcher, cfg.BaseURL, cfg.ScrapeDelay)

	var all []model.Product
	for _, cat := range categories {
		log.Printf("Scraping categoria: %s", cat)

		products, err := s.ScrapeCategory(cat, *pages)
		if err != nil {
			// falha de fetch é dura para a página; o que veio antes fica
			observability.FetchErrors.Inc()
			log.Printf("Erro na categoria %s: %v", cat, err)
		}
		all = append(all, products...)
		observability.ProductsScraped.Add(float64(len(products)))

		// pacing educado entre categorias
		time.Sleep(cfg.ScrapeDelay)
	}

	if err := ingest.WriteCSV(*out, all); err != nil {
		log.Fatalf("Erro ao gravar CSV: %v", err)
	}
	log.Printf("Salvos %d registros em %s", len(all), *out)

	if *doIngest {
		pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Erro ao conectar no banco de dados: %v", err)
		}
		defer pool.Close()

		merger := ingest.NewMerger(&repository.ProductRepository{DB: pool})
		n, err := merger.Ingest(context.Background(), all)
		observability.RecordsIngested.Add(float64(n))
		if err != nil {
			log.Fatalf("Erro na ingestão (%d aplicados): %v", n, err)
		}
		log.Printf("Ingestão concluída: %d registros", n)
	}

	// resumo das melhores ofertas da rodada
	deals := query.Rank(all, query.RankOptions{
		MinRating:      4.0,
		WeightDiscount: query.DefaultWeightDiscount,
		WeightRating:   query.DefaultWeightRating,
		Limit:          5,
	})
	for i, d := range deals {
		log.Printf("Top deal %d: %s (%.1f%% off)", i+1, d.Title, *d.DiscountPct)
	}

	log.Println("Scraper finalizado")
}
