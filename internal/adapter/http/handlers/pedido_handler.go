package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/request"
	response "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/response"
	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
)

// PedidoHandler handles HTTP requests for app orders.
type PedidoHandler struct {
	usecase usecase.IPedidoUseCase
}

func NewPedidoHandler(uc usecase.IPedidoUseCase) *PedidoHandler {
	return &PedidoHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePedidoRequest  true  "Pedido"
// @Success      201   {object}  response.PedidoResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /pedidos [post]
func (h *PedidoHandler) Create(c *gin.Context) {
	var payload request.CreatePedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.UserID, payload.LineSpecs())
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPedido(p))
}

// GetByID godoc
// @Summary      Get a pedido
// @Tags         pedidos
// @Produce      json
// @Param        id   path      string  true  "Pedido ID"
// @Success      200  {object}  response.PedidoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(p))
}

// List godoc
// @Summary      List pedidos
// @Tags         pedidos
// @Produce      json
// @Success      200  {array}  response.PedidoResponse
// @Router       /pedidos [get]
func (h *PedidoHandler) List(c *gin.Context) {
	h.respondList(c, func() ([]entities.Pedido, error) {
		return h.usecase.List(c.Request.Context())
	})
}

// ListByUser godoc
// @Summary      List pedidos of a user
// @Tags         pedidos
// @Produce      json
// @Param        usuario_id  path   string  true  "User ID"
// @Success      200  {array}  response.PedidoResponse
// @Router       /pedidos/usuario/{usuario_id} [get]
func (h *PedidoHandler) ListByUser(c *gin.Context) {
	h.respondList(c, func() ([]entities.Pedido, error) {
		return h.usecase.ListByUser(c.Request.Context(), c.Param("usuario_id"))
	})
}

// ListByStatus godoc
// @Summary      List pedidos in a status
// @Tags         pedidos
// @Produce      json
// @Param        estado  query  string  true  "Status"
// @Success      200  {array}  response.PedidoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pedidos/estado [get]
func (h *PedidoHandler) ListByStatus(c *gin.Context) {
	status := request.UpdateStatusRequest{Status: c.Query("estado")}.Normalized()
	h.respondList(c, func() ([]entities.Pedido, error) {
		return h.usecase.ListByStatus(c.Request.Context(), entities.PedidoStatus(status))
	})
}

// ListKitchen godoc
// @Summary      Kitchen queue (PENDIENTE and PREPARANDO)
// @Tags         pedidos
// @Produce      json
// @Success      200  {array}  response.PedidoResponse
// @Router       /pedidos/cocina [get]
func (h *PedidoHandler) ListKitchen(c *gin.Context) {
	h.respondList(c, func() ([]entities.Pedido, error) {
		return h.usecase.ListKitchen(c.Request.Context())
	})
}

func (h *PedidoHandler) respondList(c *gin.Context, list func() ([]entities.Pedido, error)) {
	pedidos, err := list()
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPedidos(pedidos))
}

// UpdateStatus godoc
// @Summary      Move a pedido to another status
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Pedido ID"
// @Param        body  body      request.UpdateStatusRequest  true  "Target status"
// @Success      200   {object}  response.PedidoResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /pedidos/{id}/estado [put]
func (h *PedidoHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	p, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.PedidoStatus(payload.Normalized()))
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(p))
}

// UpdateLines godoc
// @Summary      Replace the lines of a pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Pedido ID"
// @Param        body  body      request.UpdatePedidoRequest  true  "Lines"
// @Success      200   {object}  response.PedidoResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /pedidos/{id} [put]
func (h *PedidoHandler) UpdateLines(c *gin.Context) {
	var payload request.UpdatePedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	p, err := h.usecase.UpdateLines(c.Request.Context(), c.Param("id"), payload.LineSpecs())
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(p))
}

// Delete godoc
// @Summary      Delete a pedido
// @Tags         pedidos
// @Param        id   path  string  true  "Pedido ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
