package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"amzdeals/internal/cache"
	"amzdeals/internal/model"
	"amzdeals/internal/query"
	"amzdeals/internal/repository"
)

// Store é o que a API precisa do repositório de produtos.
type Store interface {
	List(ctx context.Context, f query.Filter, sortBy, sortDir string, page query.Page) ([]model.Product, int, error)
	Get(ctx context.Context, id string) (model.Product, error)
	BestDeals(ctx context.Context, opts query.RankOptions) ([]model.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctBrands(ctx context.Context) ([]string, error)
}

// PaginatedProducts é o envelope de resposta de /products.
type PaginatedProducts struct {
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Items    []model.Product `json:"items"`
}

type Handler struct {
	Store Store
	Cache *cache.ListCache
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", h.listProducts)
	mux.HandleFunc("GET /products/{id}", h.getProduct)
	mux.HandleFunc("GET /best-deals", h.bestDeals)
	mux.HandleFunc("GET /categories", h.categories)
	mux.HandleFunc("GET /brands", h.brands)
	return mux
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := query.Filter{
		Category:    q.Get("category"),
		Brand:       q.Get("brand"),
		MinPrice:    floatParam(q.Get("min_price")),
		MaxPrice:    floatParam(q.Get("max_price")),
		MinRating:   floatParam(q.Get("min_rating")),
		MinDiscount: floatParam(q.Get("min_discount")),
	}
	page := query.NormalizePage(intParam(q.Get("page"), 1), intParam(q.Get("page_size"), 20))

	items, total, err := h.Store.List(r.Context(), filter, q.Get("sort_by"), q.Get("sort_dir"), page)
	if err != nil {
		log.Printf("[api] erro ao listar produtos: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []model.Product{}
	}

	writeJSON(w, http.StatusOK, PaginatedProducts{
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
		Items:    items,
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Printf("[api] erro ao buscar produto: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) bestDeals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := intParam(q.Get("limit"), 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}

	opts := query.RankOptions{
		MinRating:      floatParamDefault(q.Get("min_rating"), 4.0),
		WeightDiscount: floatParamDefault(q.Get("weight_discount"), query.DefaultWeightDiscount),
		WeightRating:   floatParamDefault(q.Get("weight_rating"), query.DefaultWeightRating),
		Limit:          limit,
	}

	deals, err := h.Store.BestDeals(r.Context(), opts)
	if err != nil {
		log.Printf("[api] erro no best-deals: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if deals == nil {
		deals = []model.Product{}
	}
	writeJSON(w, http.StatusOK, deals)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	h.distinctList(w, r, "categories", h.Store.DistinctCategories)
}

func (h *Handler) brands(w http.ResponseWriter, r *http.Request) {
	h.distinctList(w, r, "brands", h.Store.DistinctBrands)
}

// distinctList serve listas de valores únicos com cache e degradação:
// erro de leitura vira lista vazia, o endpoint nunca propaga falha.
func (h *Handler) distinctList(
	w http.ResponseWriter,
	r *http.Request,
	key string,
	fetch func(context.Context) ([]string, error),
) {
	ctx := r.Context()

	if h.Cache != nil {
		if values, ok := h.Cache.Get(ctx, key); ok {
			writeJSON(w, http.StatusOK, values)
			return
		}
	}

	values, err := fetch(ctx)
	if err != nil {
		log.Printf("[api] erro ao listar %s, degradando para vazio: %v", key, err)
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	if values == nil {
		values = []string{}
	}

	if h.Cache != nil {
		h.Cache.Set(ctx, key, values)
	}
	writeJSON(w, http.StatusOK, values)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func floatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatParamDefault(s string, d float64) float64 {
	if v := floatParam(s); v != nil {
		return *v
	}
	return d
}

func intParam(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return n
}
