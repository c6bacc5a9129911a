package main

import (
	"log"
	"os"

	"dentista-backend/internal/config"
	"dentista-backend/internal/middleware"
	"dentista-backend/internal/routes"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Carrega o .env
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado")
	}

	// 2. Conecta o banco e roda as migrations
	config.ConnectDB()

	// 3. Liga o push pra recepção (opcional)
	utils.InitFCM()

	// 4. Router + middlewares globais
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// 5. Rotas
	routes.SetupRoutes(r)

	// 6. Health check
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Servidor OK!", nil)
	})

	// 7. Sobe o servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Servidor rodando na porta " + port)
	r.Run(":" + port)
}
