package routes

import (
	"net/http"

	"dentista-backend/internal/handlers"
	"dentista-backend/internal/middleware"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api/v1")
	{
		// 1. ROTAS PÚBLICAS (formulário e identidade da clínica)
		api.GET("/branding", handlers.GetBranding)
		api.POST("/intake", middleware.IntakeRateLimitMiddleware(), handlers.SubmitIntake)

		// Login do painel (público, mas só devolve token com a senha certa)
		api.POST("/admin/login", handlers.Login)

		// 2. ROTAS PROTEGIDAS (painel admin)
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			// MODULO PACIENTES
			admin.GET("/patients", handlers.GetPatients)
			admin.GET("/patients/:id", handlers.GetPatientDetail)
			admin.PATCH("/patients/:id/status", handlers.UpdatePatientStatus)
			admin.PATCH("/patients/:id/notes", handlers.UpdatePatientNotes)
			admin.POST("/patients/archive", handlers.ArchiveOldPatients)

			// MODULO IDENTIDADE / REDES SOCIAIS
			admin.PUT("/branding", handlers.SaveBranding)
			admin.POST("/social-media", handlers.AddSocialMedia)
			admin.PUT("/social-media/:id", handlers.UpdateSocialMedia)
			admin.DELETE("/social-media/:id", handlers.DeleteSocialMedia)

			// Resumo do painel
			admin.GET("/stats", handlers.GetDashboardStats)
		}
	}

	// Catch-all: qualquer rota desconhecida cai aqui
	r.NoRoute(func(c *gin.Context) {
		utils.APIResponse(c, http.StatusNotFound, false, "Página não encontrada", nil)
	})
}
