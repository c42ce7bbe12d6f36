package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/request"
	response "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/response"
	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
)

// MesaOrdenHandler handles HTTP requests for table orders.
type MesaOrdenHandler struct {
	usecase usecase.IMesaOrdenUseCase
}

func NewMesaOrdenHandler(uc usecase.IMesaOrdenUseCase) *MesaOrdenHandler {
	return &MesaOrdenHandler{usecase: uc}
}

// Create godoc
// @Summary      Open a table order
// @Tags         mesas-ordenes
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateMesaOrdenRequest  true  "Mesa orden"
// @Success      201   {object}  response.MesaOrdenResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /mesas-ordenes [post]
func (h *MesaOrdenHandler) Create(c *gin.Context) {
	var payload request.CreateMesaOrdenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMesaOrden(m))
}

// GetByID godoc
// @Summary      Get a table order
// @Tags         mesas-ordenes
// @Produce      json
// @Param        id   path      string  true  "Mesa orden ID"
// @Success      200  {object}  response.MesaOrdenResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /mesas-ordenes/{id} [get]
func (h *MesaOrdenHandler) GetByID(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMesaOrden(m))
}

// List godoc
// @Summary      List table orders
// @Tags         mesas-ordenes
// @Produce      json
// @Success      200  {array}  response.MesaOrdenResponse
// @Router       /mesas-ordenes [get]
func (h *MesaOrdenHandler) List(c *gin.Context) {
	h.respondList(c, func() ([]entities.MesaOrden, error) {
		return h.usecase.List(c.Request.Context())
	})
}

// ListByWaiter godoc
// @Summary      List table orders of a waiter
// @Tags         mesas-ordenes
// @Produce      json
// @Param        mesero_id  path   string  true  "Waiter ID"
// @Success      200  {array}  response.MesaOrdenResponse
// @Router       /mesas-ordenes/mesero/{mesero_id} [get]
func (h *MesaOrdenHandler) ListByWaiter(c *gin.Context) {
	h.respondList(c, func() ([]entities.MesaOrden, error) {
		return h.usecase.ListByWaiter(c.Request.Context(), c.Param("mesero_id"))
	})
}

func (h *MesaOrdenHandler) respondList(c *gin.Context, list func() ([]entities.MesaOrden, error)) {
	mesas, err := list()
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMesasOrdenes(mesas))
}

// UpdateStatus godoc
// @Summary      Move a table order to another status
// @Tags         mesas-ordenes
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Mesa orden ID"
// @Param        body  body      request.UpdateStatusRequest  true  "Target status"
// @Success      200   {object}  response.MesaOrdenResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /mesas-ordenes/{id}/estado [put]
func (h *MesaOrdenHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	m, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.MesaOrdenStatus(payload.Normalized()))
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMesaOrden(m))
}

// Update godoc
// @Summary      Edit table number and lines
// @Tags         mesas-ordenes
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Mesa orden ID"
// @Param        body  body      request.UpdateMesaOrdenRequest  true  "Fields to replace"
// @Success      200   {object}  response.MesaOrdenResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /mesas-ordenes/{id} [put]
func (h *MesaOrdenHandler) Update(c *gin.Context) {
	var payload request.UpdateMesaOrdenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEdit())
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMesaOrden(m))
}

// Cancel godoc
// @Summary      Cancel a table order
// @Tags         mesas-ordenes
// @Produce      json
// @Param        id   path      string  true  "Mesa orden ID"
// @Success      200  {object}  response.MesaOrdenResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /mesas-ordenes/{id}/cancelar [put]
func (h *MesaOrdenHandler) Cancel(c *gin.Context) {
	m, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMesaOrden(m))
}

// Delete godoc
// @Summary      Delete a table order
// @Tags         mesas-ordenes
// @Param        id   path  string  true  "Mesa orden ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /mesas-ordenes/{id} [delete]
func (h *MesaOrdenHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
