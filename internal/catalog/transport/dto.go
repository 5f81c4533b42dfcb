package transport

type CreateProductRequest struct {
	Title      string `json:"title" validate:"required,notblank,min=1,max=200"`
	PriceCents int64  `json:"priceCents" validate:"min=0"`
	Image      string `json:"image" validate:"omitempty,max=1000"`
}

type ListProductsRequest struct {
	Search    string `form:"search" validate:"max=100"`
	Page      int    `form:"page" validate:"omitempty,min=1"`
	PageSize  int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy" validate:"omitempty,oneof=title priceCents createdAt"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type ProductResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
	Image      string `json:"image"`
	CreatedAt  string `json:"createdAt"`
}

type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
