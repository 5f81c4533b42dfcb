package transport

type SearchRequest struct {
	Query string `form:"q" validate:"max=100"`
}

// Product is the search view of a catalog product.
type Product struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type SearchResponse struct {
	Query string    `json:"query"`
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Label string    `json:"label"` // e.g. "1 Product", "3 Products"
}
