package domain

// Product is immutable catalog data owned by the external catalog;
// the order workflow never mutates it.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"fullName"`
	Volume      float64 `json:"volume"`
	Price       float64 `json:"price"`
	LegalEntity int     `json:"legalEntity"`
}
