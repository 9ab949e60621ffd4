package routes

import (
	"dominant_assurance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addProjectRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.GetProject)
		projects.PUT("", h.PutProject)
		projects.POST("/contract", h.CreateContract)
		projects.PATCH("/contract/:orderId", h.CaptureContract)
		projects.GET("/counter", h.GetCounter)
		projects.GET("/successInvoice", h.GetSuccessInvoice)
	}

	admin := projects.Group("", adminAuth)
	{
		admin.POST("/refund", h.Refund)
		admin.GET("/bonuses", h.ListBonuses)
		admin.DELETE("/bonuses/:orderId", h.SettleBonus)
		admin.POST("/bonuses", h.PayBonuses)
	}
}

func addAclRoutes(rg *gin.RouterGroup, h *handlers.AclHandler) {
	acls := rg.Group(PathAcls)
	{
		acls.GET("/grants", h.GetGrants)
		acls.POST("/grants", h.PostGrant)
	}
}
