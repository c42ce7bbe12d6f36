package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/request"
	response "github.com/greikol4321-hub/Restaurante/internal/adapter/http/dto/response"
	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
	"github.com/greikol4321-hub/Restaurante/pkg"
)

var errInvalidOrderReference = pkg.NewDomainErrorSimple("INVALID_ORDER_REFERENCE", "Exactly one of pedido_id or mesa_orden_id is required", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment ledger.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Record godoc
// @Summary      Record a payment and charge its order
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentRequest  true  "Payment"
// @Success      201   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /pagos [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, err, errInvalidPayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, err, errInvalidOrderReference)
		return
	}

	p, err := h.usecase.Record(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// GetByID godoc
// @Summary      Get a payment
// @Tags         pagos
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pagos/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// List godoc
// @Summary      List payments
// @Tags         pagos
// @Produce      json
// @Success      200  {array}  response.PaymentResponse
// @Router       /pagos [get]
func (h *PaymentHandler) List(c *gin.Context) {
	h.respondList(c, func() ([]entities.Payment, error) {
		return h.usecase.List(c.Request.Context())
	})
}

// ListByPedido godoc
// @Summary      List payments of a pedido
// @Tags         pagos
// @Produce      json
// @Param        pedido_id  path   string  true  "Pedido ID"
// @Success      200  {array}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pagos/pedido/{pedido_id} [get]
func (h *PaymentHandler) ListByPedido(c *gin.Context) {
	h.respondList(c, func() ([]entities.Payment, error) {
		return h.usecase.ListByPedidoID(c.Request.Context(), c.Param("pedido_id"))
	})
}

// ListByMesaOrden godoc
// @Summary      List payments of a table order
// @Tags         pagos
// @Produce      json
// @Param        mesa_orden_id  path   string  true  "Mesa orden ID"
// @Success      200  {array}  response.PaymentResponse
// @Router       /pagos/mesa-orden/{mesa_orden_id} [get]
func (h *PaymentHandler) ListByMesaOrden(c *gin.Context) {
	h.respondList(c, func() ([]entities.Payment, error) {
		return h.usecase.ListByMesaOrdenID(c.Request.Context(), c.Param("mesa_orden_id"))
	})
}

func (h *PaymentHandler) respondList(c *gin.Context, list func() ([]entities.Payment, error)) {
	payments, err := list()
	if err != nil {
		writeError(c, err, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// Delete godoc
// @Summary      Delete a payment and revert its order
// @Tags         pagos
// @Param        id   path  string  true  "Payment ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pagos/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, mapPaymentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
