package config

import (
	"fmt"
	"log"
	"os"

	"dentista-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB é a conexão global usada pelos handlers
var DB *gorm.DB

// ConnectDB abre a conexão MySQL e roda as migrations das quatro tabelas
func ConnectDB() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// Monta o DSN a partir das partes (com padrões de dev)
		user := envOrDefault("DB_USER", "root")
		pass := envOrDefault("DB_PASS", "")
		host := envOrDefault("DB_HOST", "127.0.0.1")
		port := envOrDefault("DB_PORT", "3306")
		name := envOrDefault("DB_NAME", "dentista")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Erro ao conectar no banco: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Patient{},
		&models.PatientImage{},
		&models.ClinicBranding{},
		&models.SocialMedia{},
	); err != nil {
		log.Fatalf("Erro ao rodar migrations: %v", err)
	}

	DB = db
	log.Println("Banco de dados conectado!")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
