package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/request"
	response "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/response"
	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetOrCreate godoc
// @Summary      Get the active cart of a user, creating it if needed
// @Tags         carritos
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCartRequest  true  "Owner"
// @Success      200   {object}  response.CartResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /carritos [post]
func (h *CartHandler) GetOrCreate(c *gin.Context) {
	var payload request.CreateCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	cart, err := h.usecase.GetOrCreate(c.Request.Context(), payload.UserID)
	h.respondCart(c, http.StatusOK, cart, err)
}

// GetActive godoc
// @Summary      Get the active cart of a user
// @Tags         carritos
// @Produce      json
// @Param        usuario_id  path      string  true  "User ID"
// @Success      200         {object}  response.CartResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /carritos/usuario/{usuario_id} [get]
func (h *CartHandler) GetActive(c *gin.Context) {
	cart, err := h.usecase.GetActive(c.Request.Context(), c.Param("usuario_id"))
	h.respondCart(c, http.StatusOK, cart, err)
}

// ListItems godoc
// @Summary      List cart items
// @Tags         carritos
// @Produce      json
// @Param        id   path   string  true  "Cart ID"
// @Success      200  {array}  response.CartItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /carritos/{id}/items [get]
func (h *CartHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartItems(items))
}

// AddItem godoc
// @Summary      Add a product to a cart
// @Tags         carritos
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Cart ID"
// @Param        body  body      request.AddCartItemRequest  true  "Item"
// @Success      201   {object}  response.CartResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /carritos/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ProductID, payload.Quantity)
	h.respondCart(c, http.StatusCreated, cart, err)
}

// UpdateItem godoc
// @Summary      Change the quantity of a cart item
// @Tags         carritos
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Cart ID"
// @Param        item_id  path      string                         true  "Item ID"
// @Param        body     body      request.UpdateCartItemRequest  true  "Quantity"
// @Success      200      {object}  response.CartResponse
// @Router       /carritos/{id}/items/{item_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	cart, err := h.usecase.UpdateItemQuantity(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.Quantity)
	h.respondCart(c, http.StatusOK, cart, err)
}

// RemoveItem godoc
// @Summary      Remove a cart item
// @Tags         carritos
// @Produce      json
// @Param        id       path      string  true  "Cart ID"
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  response.CartResponse
// @Router       /carritos/{id}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	h.respondCart(c, http.StatusOK, cart, err)
}

// Clear godoc
// @Summary      Empty a cart
// @Tags         carritos
// @Produce      json
// @Param        id   path      string  true  "Cart ID"
// @Success      200  {object}  response.CartResponse
// @Router       /carritos/{id}/vaciar [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	cart, err := h.usecase.Clear(c.Request.Context(), c.Param("id"))
	h.respondCart(c, http.StatusOK, cart, err)
}

// ConvertToPedido godoc
// @Summary      Turn the cart into a pedido
// @Tags         carritos
// @Produce      json
// @Param        id   path      string  true  "Cart ID"
// @Success      201  {object}  response.PedidoResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /carritos/{id}/convertir-pedido [put]
func (h *CartHandler) ConvertToPedido(c *gin.Context) {
	p, err := h.usecase.ConvertToPedido(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, mapCartError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPedido(p))
}

func (h *CartHandler) respondCart(c *gin.Context, status int, cart entities.Cart, err error) {
	if err != nil {
		writeError(c, err, mapCartError(err))
		return
	}
	c.JSON(status, response.FromCart(cart))
}
