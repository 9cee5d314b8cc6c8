package models

// Product is one catalog entry. The catalog only ever grows: products come
// from seed data or the admin creation form and are never edited or deleted.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Age         string  `json:"age" yaml:"age"`
	Stock       int     `json:"stock" yaml:"stock"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
}
