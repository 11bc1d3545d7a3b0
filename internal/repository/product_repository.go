package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"amzdeals/internal/ingest"
	"amzdeals/internal/model"
	"amzdeals/internal/query"
)

var ErrNotFound = errors.New("product not found")

const productColumns = `id, category, title, brand, price, original_price, discount_pct, rating, reviews, product_link, image, availability`

// Upsert com semântica "$set": campo ausente no registro novo não limpa
// o valor armazenado (decisão documentada no DESIGN.md). Campos texto
// vazios entram como NULL para o COALESCE valer uniformemente.
const upsertSQL = `
	INSERT INTO products
	(id, dedup_kind, dedup_key, category, title, brand, price, original_price, discount_pct, rating, reviews, product_link, image, availability, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
	ON CONFLICT (dedup_kind, dedup_key) DO UPDATE SET
		category       = COALESCE(EXCLUDED.category, products.category),
		title          = COALESCE(EXCLUDED.title, products.title),
		brand          = COALESCE(EXCLUDED.brand, products.brand),
		price          = COALESCE(EXCLUDED.price, products.price),
		original_price = COALESCE(EXCLUDED.original_price, products.original_price),
		discount_pct   = COALESCE(EXCLUDED.discount_pct, products.discount_pct),
		rating         = COALESCE(EXCLUDED.rating, products.rating),
		reviews        = COALESCE(EXCLUDED.reviews, products.reviews),
		product_link   = COALESCE(EXCLUDED.product_link, products.product_link),
		image          = COALESCE(EXCLUDED.image, products.image),
		availability   = COALESCE(EXCLUDED.availability, products.availability),
		updated_at     = now()`

// ProductRepository é o acesso ao store de produtos via pool pgx.
type ProductRepository struct {
	DB *pgxpool.Pool
}

// BulkUpsert aplica um lote na ordem de entrada (registros com a mesma
// chave dentro do lote: o último vence). Devolve quantos statements
// foram aplicados antes de qualquer falha.
func (r *ProductRepository) BulkUpsert(ctx context.Context, products []model.Product) (int, error) {
	batch := &pgx.Batch{}
	for _, p := range products {
		key := ingest.ResolveIdentity(p)
		batch.Queue(upsertSQL,
			uuid.New(), string(key.Kind), key.Value,
			nullStr(p.Category), nullStr(p.Title), nullStr(p.Brand),
			p.Price, p.OriginalPrice, p.DiscountPct, p.Rating, p.Reviews,
			nullStr(p.ProductLink), nullStr(p.Image), nullStr(p.Availability),
		)
	}

	results := r.DB.SendBatch(ctx, batch)
	defer results.Close()

	count := 0
	for range products {
		if _, err := results.Exec(); err != nil {
			return count, fmt.Errorf("upsert failed at record %d: %w", count, err)
		}
		count++
	}
	return count, nil
}

// List devolve a página filtrada/ordenada e o total de registros que
// casam com o filtro.
func (r *ProductRepository) List(
	ctx context.Context,
	f query.Filter,
	sortBy, sortDir string,
	page query.Page,
) ([]model.Product, int, error) {

	where, params := f.ToSQL(1)

	var total int
	countSQL := "SELECT COUNT(*) FROM products WHERE " + where
	if err := r.DB.QueryRow(ctx, countSQL, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	listSQL := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s ORDER BY %s %s NULLS LAST, id LIMIT $%d OFFSET $%d",
		productColumns, where, query.SortColumn(sortBy), query.SortDirection(sortDir),
		len(params)+1, len(params)+2,
	)
	params = append(params, page.Size, page.Offset())

	rows, err := r.DB.Query(ctx, listSQL, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("list failed: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Get busca pelo id da linha; se não houver match tenta product_link,
// para manter links externos utilizáveis como identificador.
func (r *ProductRepository) Get(ctx context.Context, id string) (model.Product, error) {
	sql := fmt.Sprintf(
		"SELECT %s FROM products WHERE id::text = $1 OR product_link = $1 LIMIT 1",
		productColumns,
	)
	rows, err := r.DB.Query(ctx, sql, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("get failed: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return model.Product{}, err
	}
	if len(products) == 0 {
		return model.Product{}, ErrNotFound
	}
	return products[0], nil
}

// BestDeals é o caminho SQL do ranking: conversão numérica segura com
// COALESCE, filtro de candidatos, score composto e desempate em três
// níveis, tudo no banco (equivalente ao query.Rank em memória).
func (r *ProductRepository) BestDeals(ctx context.Context, opts query.RankOptions) ([]model.Product, error) {
	wd, wr := query.NormalizeWeights(opts.WeightDiscount, opts.WeightRating)

	sql := fmt.Sprintf(`
		SELECT %s FROM (
			SELECT *,
			       COALESCE(discount_pct, 0) AS discount_num,
			       COALESCE(rating, 0)       AS rating_num,
			       COALESCE(reviews, 0)      AS reviews_num,
			       (COALESCE(discount_pct, 0) / 100) * $1 + (COALESCE(rating, 0) / 5) * $2 AS score
			FROM products
		) sub
		WHERE discount_num > 0 AND rating_num >= $3
		ORDER BY score DESC, rating_num DESC, reviews_num DESC
		LIMIT $4`, productColumns)

	rows, err := r.DB.Query(ctx, sql, wd, wr, opts.MinRating, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("best deals failed: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

func (r *ProductRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "brand")
}

func (r *ProductRepository) distinct(ctx context.Context, column string) ([]string, error) {
	sql := fmt.Sprintf(
		"SELECT DISTINCT %s FROM products WHERE %s IS NOT NULL AND %s <> '' ORDER BY %s",
		column, column, column, column,
	)
	rows, err := r.DB.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("distinct %s failed: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var (
			id                                        uuid.UUID
			category, title, brand                    *string
			price, originalPrice, discountPct, rating *float64
			reviews                                   *int64
			productLink, image, availability          *string
		)
		if err := rows.Scan(
			&id, &category, &title, &brand,
			&price, &originalPrice, &discountPct, &rating, &reviews,
			&productLink, &image, &availability,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		p := model.Product{
			ID:            id.String(),
			Category:      deref(category),
			Title:         deref(title),
			Brand:         deref(brand),
			Price:         price,
			OriginalPrice: originalPrice,
			DiscountPct:   discountPct,
			Rating:        rating,
			ProductLink:   deref(productLink),
			Image:         deref(image),
			Availability:  deref(availability),
		}
		if reviews != nil {
			n := int(*reviews)
			p.Reviews = &n
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
