package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentista-backend/internal/config"
	"dentista-backend/internal/models"
	"dentista-backend/internal/routes"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// apiResponse espelha o envelope padrão das respostas
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupRouter sobe um banco sqlite em memória (um por teste) e o router completo
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Patient{},
		&models.PatientImage{},
		&models.ClinicBranding{},
		&models.SocialMedia{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// adminToken gera um token válido pro grupo protegido
func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateAdminToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

// doJSON dispara uma request JSON e decodifica o envelope da resposta
func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta não é JSON: %v (%s)", err, w.Body.String())
		}
	}
	return w, resp
}

// imageDataURI monta um data URI de imagem com o tamanho pedido
func imageDataURI(size int) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, size))
}

// validIntake monta um envio completo e válido do formulário
func validIntake() map[string]interface{} {
	existing := false
	return map[string]interface{}{
		"name":                "Ana Silva",
		"whatsapp":            "11999999999",
		"reason":              "pain",
		"is_existing_patient": &existing,
		"preferred_time":      "manhã",
		"data_consent":        true,
	}
}

// seedPatient grava um paciente direto no banco para os testes do painel
func seedPatient(t *testing.T, name string, submittedAt time.Time) models.Patient {
	t.Helper()
	p := models.Patient{
		Name:          name,
		Whatsapp:      "11988887777",
		Reason:        "checkup",
		PreferredTime: "tarde",
		Status:        models.StatusPending,
		SubmittedAt:   submittedAt,
	}
	if err := config.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed paciente: %v", err)
	}
	return p
}
