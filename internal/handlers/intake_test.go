package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"dentista-backend/internal/config"
	"dentista-backend/internal/models"
)

type intakeResult struct {
	Patient     models.Patient `json:"patient"`
	ImageErrors []string       `json:"image_errors"`
}

func TestSubmitIntakeCreatesPendingPatient(t *testing.T) {
	r := setupRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/intake", validIntake(), "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201 (%s)", w.Code, resp.Message)
	}

	var result intakeResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}

	p := result.Patient
	if p.ID == "" {
		t.Fatal("paciente sem id")
	}
	if p.Status != models.StatusPending {
		t.Fatalf("status = %q, esperado pending", p.Status)
	}
	if len(p.Images) != 0 {
		t.Fatalf("images = %d, esperado lista vazia", len(p.Images))
	}
	if p.Name != "Ana Silva" || p.Whatsapp != "11999999999" || p.PreferredTime != "manhã" {
		t.Fatalf("campos gravados errados: %+v", p)
	}
	if p.IsExistingPatient {
		t.Fatal("is_existing_patient deveria ser false")
	}
}

func TestSubmitIntakeAppearsAtHeadOfList(t *testing.T) {
	r := setupRouter(t)

	first := validIntake()
	first["name"] = "Primeiro Paciente"
	if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/intake", first, ""); w.Code != http.StatusCreated {
		t.Fatalf("primeiro envio falhou: %d", w.Code)
	}

	second := validIntake()
	second["name"] = "Segundo Paciente"
	if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/intake", second, ""); w.Code != http.StatusCreated {
		t.Fatalf("segundo envio falhou: %d", w.Code)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/admin/patients", nil, adminToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("lista: %d", w.Code)
	}

	var patients []models.Patient
	if err := json.Unmarshal(resp.Data, &patients); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("lista com %d pacientes, esperado 2", len(patients))
	}
	if patients[0].Name != "Segundo Paciente" {
		t.Fatalf("cabeça da lista = %q, esperado o envio mais recente", patients[0].Name)
	}
}

func TestSubmitIntakeMissingRequiredFields(t *testing.T) {
	r := setupRouter(t)

	required := []string{"name", "whatsapp", "reason", "is_existing_patient", "preferred_time", "data_consent"}
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			body := validIntake()
			delete(body, field)

			w, _ := doJSON(t, r, http.MethodPost, "/api/v1/intake", body, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("sem %s: status = %d, esperado 400", field, w.Code)
			}
		})
	}

	// Nada pode ter sido gravado pela metade
	var count int64
	config.DB.Model(&models.Patient{}).Count(&count)
	if count != 0 {
		t.Fatalf("%d pacientes gravados, esperado 0", count)
	}
}

func TestSubmitIntakeConsentMustBeTrue(t *testing.T) {
	r := setupRouter(t)

	body := validIntake()
	body["data_consent"] = false

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/intake", body, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("consentimento false aceito: status = %d", w.Code)
	}
}

func TestSubmitIntakeWithImages(t *testing.T) {
	r := setupRouter(t)

	body := validIntake()
	body["images"] = []string{imageDataURI(1024), imageDataURI(2048)}

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/intake", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, resp.Message)
	}

	var result intakeResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Patient.Images) != 2 {
		t.Fatalf("images = %d, esperado 2", len(result.Patient.Images))
	}
	for _, img := range result.Patient.Images {
		if img.PatientID != result.Patient.ID {
			t.Fatalf("imagem com dono errado: %s", img.PatientID)
		}
	}

	var stored int64
	config.DB.Model(&models.PatientImage{}).Count(&stored)
	if stored != 2 {
		t.Fatalf("%d imagens no banco, esperado 2", stored)
	}
}

func TestSubmitIntakeRejectsBadImages(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name  string
		image string
	}{
		{"nao e data uri", "https://example.com/foto.png"},
		{"tipo errado", "data:text/plain;base64,aGVsbG8="},
		{"grande demais", imageDataURI(models.MaxIntakeImageBytes + 1)},
		{"base64 quebrado", "data:image/png;base64,%%%não-é-base64%%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validIntake()
			body["images"] = []string{tt.image}

			w, _ := doJSON(t, r, http.MethodPost, "/api/v1/intake", body, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, esperado 400", w.Code)
			}
		})
	}

	// Imagem rejeitada não pode deixar paciente pela metade
	var count int64
	config.DB.Model(&models.Patient{}).Count(&count)
	if count != 0 {
		t.Fatalf("%d pacientes gravados, esperado 0", count)
	}
}

func TestSubmitIntakeRejectsTooManyImages(t *testing.T) {
	r := setupRouter(t)

	body := validIntake()
	body["images"] = []string{
		imageDataURI(100), imageDataURI(100), imageDataURI(100), imageDataURI(100),
	}

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/intake", body, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("4 imagens aceitas: status = %d", w.Code)
	}
}
