package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"amzdeals/internal/model"
	"amzdeals/internal/normalize"
)

// Colunas do CSV em disco. "discount_%" é o nome histórico da coluna.
var csvHeader = []string{
	"category", "title", "brand",
	"price", "original_price", "discount_%",
	"rating", "reviews",
	"product_link", "image", "availability",
}

// WriteCSV grava os registros com o cabeçalho canônico. Campos ausentes
// viram célula vazia.
func WriteCSV(path string, products []model.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range products {
		row := []string{
			p.Category, p.Title, p.Brand,
			formatFloat(p.Price), formatFloat(p.OriginalPrice), formatFloat(p.DiscountPct),
			formatFloat(p.Rating), formatInt(p.Reviews),
			p.ProductLink, p.Image, p.Availability,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV lê um CSV com cabeçalho e aplica as mesmas regras de
// normalização da extração: valor vazio ou não numérico em coluna
// numérica fica ausente.
func ReadCSV(path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var products []model.Product
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// linha malformada não aborta o arquivo inteiro
			continue
		}
		p := model.Product{
			Category:      field(row, "category"),
			Title:         field(row, "title"),
			Brand:         field(row, "brand"),
			Price:         normalize.ToFloat(field(row, "price")),
			OriginalPrice: normalize.ToFloat(field(row, "original_price")),
			DiscountPct:   normalize.ToFloat(field(row, "discount_%")),
			Rating:        normalize.ToFloat(field(row, "rating")),
			Reviews:       normalize.ToInt(field(row, "reviews")),
			ProductLink:   field(row, "product_link"),
			Image:         field(row, "image"),
			Availability:  field(row, "availability"),
		}
		products = append(products, p)
	}

	return products, nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
