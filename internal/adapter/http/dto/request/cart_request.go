package request

type CreateCartRequest struct {
	UserID string `json:"usuario_id" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"producto_id" binding:"required"`
	Quantity  int    `json:"cantidad"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"cantidad"`
}
