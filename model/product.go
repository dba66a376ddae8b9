package model

// ProductEntity mirrors the external catalog table. This system only ever
// reads it; the catalog is populated by a separate process.
type ProductEntity struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

type ProductListResponse struct {
	Items []ProductEntity `json:"items"`
}

type SearchResponse struct {
	SearchTerm string          `json:"search_term"`
	Items      []ProductEntity `json:"items"`
}
