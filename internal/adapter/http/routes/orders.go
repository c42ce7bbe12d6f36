package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/greikol4321-hub/Restaurante/internal/adapter/http/handlers"
)

const (
	PathPedidos      = "/pedidos"
	PathMesasOrdenes = "/mesas-ordenes"
	PathPagos        = "/pagos"
	PathCarritos     = "/carritos"
)

func addPedidoRoutes(rg *gin.RouterGroup, h *handlers.PedidoHandler) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.POST("", h.Create)
		pedidos.GET("", h.List)
		pedidos.GET("/cocina", h.ListKitchen)
		pedidos.GET("/estado", h.ListByStatus)
		pedidos.GET("/usuario/:usuario_id", h.ListByUser)
		pedidos.GET("/:id", h.GetByID)
		pedidos.PUT("/:id", h.UpdateLines)
		pedidos.PUT("/:id/estado", h.UpdateStatus)
		pedidos.DELETE("/:id", h.Delete)
	}
}

func addMesaOrdenRoutes(rg *gin.RouterGroup, h *handlers.MesaOrdenHandler) {
	mesas := rg.Group(PathMesasOrdenes)
	{
		mesas.POST("", h.Create)
		mesas.GET("", h.List)
		mesas.GET("/mesero/:mesero_id", h.ListByWaiter)
		mesas.GET("/:id", h.GetByID)
		mesas.PUT("/:id", h.Update)
		mesas.PUT("/:id/estado", h.UpdateStatus)
		mesas.PUT("/:id/cancelar", h.Cancel)
		mesas.DELETE("/:id", h.Delete)
	}
}

func addPagoRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	pagos := rg.Group(PathPagos)
	{
		pagos.POST("", h.Record)
		pagos.GET("", h.List)
		pagos.GET("/pedido/:pedido_id", h.ListByPedido)
		pagos.GET("/mesa-orden/:mesa_orden_id", h.ListByMesaOrden)
		pagos.GET("/:id", h.GetByID)
		pagos.DELETE("/:id", h.Delete)
	}
}

func addCarritoRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	carritos := rg.Group(PathCarritos)
	{
		carritos.POST("", h.GetOrCreate)
		carritos.GET("/usuario/:usuario_id", h.GetActive)
		carritos.GET("/:id/items", h.ListItems)
		carritos.POST("/:id/items", h.AddItem)
		carritos.PUT("/:id/items/:item_id", h.UpdateItem)
		carritos.DELETE("/:id/items/:item_id", h.RemoveItem)
		carritos.DELETE("/:id/vaciar", h.Clear)
		carritos.PUT("/:id/convertir-pedido", h.ConvertToPedido)
	}
}
