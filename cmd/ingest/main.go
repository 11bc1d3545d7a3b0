package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"amzdeals/internal/config"
	"amzdeals/internal/db"
	"amzdeals/internal/ingest"
	"amzdeals/internal/model"
	"amzdeals/internal/observability"
	"amzdeals/internal/repository"
)

// go run cmd/ingest/main.go amazon_products_all_categories.csv
// go run cmd/ingest/main.go -dry-run
func main() {
	dryRun := flag.Bool("dry-run", false, "Só lê o CSV e imprime um resumo, sem gravar no banco")
	flag.Parse()

	csvPath := "amazon_products_all_categories.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	products, err := ingest.ReadCSV(csvPath)
	if err != nil {
		log.Fatalf("Erro ao ler CSV: %v", err)
	}

	if *dryRun {
		printSummary(products)
		return
	}

	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	// bootstrap do schema pelo caminho database/sql
	sqlDB, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no banco de dados (db): %v", err)
	}
	if err := db.EnsureSchema(sqlDB); err != nil {
		log.Fatalf("Erro ao criar schema: %v", err)
	}
	sqlDB.Close()

	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Não foi possível criar o pool de conexões: %v", err)
	}
	defer pool.Close()

	merger := ingest.NewMerger(&repository.ProductRepository{DB: pool})
	n, err := merger.Ingest(context.Background(), products)
	observability.RecordsIngested.Add(float64(n))
	if err != nil {
		log.Fatalf("Erro na ingestão (%d aplicados): %v", n, err)
	}

	log.Printf("Ingestão concluída: %d registros", n)
}

func printSummary(products []model.Product) {
	fmt.Printf("Rows: %d\n", len(products))

	counts := map[string]int{}
	for _, p := range products {
		if p.Category != "" {
			counts[p.Category]++
		}
	}

	type catCount struct {
		name string
		n    int
	}
	var cats []catCount
	for name, n := range counts {
		cats = append(cats, catCount{name, n})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].n != cats[j].n {
			return cats[i].n > cats[j].n
		}
		return cats[i].name < cats[j].name
	})

	fmt.Println("Top categories:")
	for i, c := range cats {
		if i >= 20 {
			break
		}
		fmt.Printf("  %s: %d\n", c.name, c.n)
	}
}
