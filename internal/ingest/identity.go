package ingest

import "amzdeals/internal/model"

// KeyKind marca qual campo originou a chave de deduplicação.
type KeyKind string

const (
	KeyByLink  KeyKind = "link"
	KeyByTitle KeyKind = "title"
)

// IdentityKey identifica um produto para fins de upsert.
type IdentityKey struct {
	Kind  KeyKind
	Value string
}

// ResolveIdentity usa product_link quando presente, senão o título.
// Registros sem link e sem título colidem todos na mesma chave vazia;
// comportamento aceito e documentado (last-write-wins), não é bug.
func ResolveIdentity(p model.Product) IdentityKey {
	if p.ProductLink != "" {
		return IdentityKey{Kind: KeyByLink, Value: p.ProductLink}
	}
	return IdentityKey{Kind: KeyByTitle, Value: p.Title}
}
