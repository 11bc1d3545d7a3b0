package ingest

import (
	"context"
	"fmt"
	"log"

	"amzdeals/internal/model"
)

// DefaultBatchSize limita o tamanho de cada round-trip de upsert.
const DefaultBatchSize = 500

// Upserter é o que o merger precisa do store: upsert em lote chaveado
// pela identidade de cada registro, aplicado na ordem de entrada.
type Upserter interface {
	BulkUpsert(ctx context.Context, products []model.Product) (int, error)
}

// Merger particiona registros normalizados em lotes e aplica upserts.
// Lotes já commitados permanecem válidos se um lote posterior falhar;
// não há transação entre lotes.
type Merger struct {
	Store     Upserter
	BatchSize int
}

func NewMerger(store Upserter) *Merger {
	return &Merger{Store: store, BatchSize: DefaultBatchSize}
}

// Ingest aplica todos os registros e devolve quantos foram processados.
// Em caso de falha devolve a contagem já commitada junto com o erro.
func (m *Merger) Ingest(ctx context.Context, products []model.Product) (int, error) {
	size := m.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	total := 0
	for i := 0; i < len(products); i += size {
		end := i + size
		if end > len(products) {
			end = len(products)
		}

		n, err := m.Store.BulkUpsert(ctx, products[i:end])
		total += n
		if err != nil {
			return total, fmt.Errorf("upsert batch %d-%d: %w", i, end, err)
		}
		log.Printf("[ingest] lote %d-%d aplicado (%d registros)", i, end, n)
	}

	return total, nil
}
