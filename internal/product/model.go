package product

// Product is a row of the PRODUCT_EMBEDDINGS table. The VECTOR column is
// owned by the embedding pipeline and never read here.
type Product struct {
	ID          int64
	Name        string
	Description string
}
