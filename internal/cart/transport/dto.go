package transport

import "storefront/internal/cart"

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,notblank,max=100"`
}

type CheckoutRequest struct {
	Email string `json:"email" validate:"max=254"`
}

type ProductResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type LineItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	Open          bool               `json:"open"`
	Empty         bool               `json:"empty"`
	Items         []LineItemResponse `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
}

type CheckoutResponse struct {
	Emitted bool `json:"emitted"`
}

// FromState builds the response for a cart snapshot.
func FromState(state cart.State) CartResponse {
	items := make([]LineItemResponse, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, LineItemResponse{
			Product: ProductResponse{
				ID:    item.Product.ID,
				Title: item.Product.Title,
				Price: item.Product.Price,
				Image: item.Product.Image,
			},
			Quantity: item.Quantity,
		})
	}
	return CartResponse{
		Open:          state.Open,
		Empty:         state.IsEmpty(),
		Items:         items,
		TotalQuantity: state.TotalQuantity(),
	}
}
