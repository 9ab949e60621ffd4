package routes

import (
	"dominant_assurance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addLedgerRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc, h *handlers.LedgerHandler) {
	ledgers := rg.Group(PathLedgers, adminAuth)
	{
		ledgers.PUT("/contract/:orderId", h.RecordPledge)
		ledgers.GET("/counter", h.GetCounter)
		ledgers.GET("/refunds", h.ListRefunds)
		ledgers.DELETE("/refunds/:captureId", h.SettleRefund)
		ledgers.GET("/bonuses", h.ListBonuses)
		ledgers.DELETE("/bonuses/:orderId", h.SettleBonus)
		ledgers.GET("/successInvoice", h.GetSuccessInvoice)
	}
}
