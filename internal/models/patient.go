package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status possíveis de um paciente no painel
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusNoShow    = "noshow"
	StatusCompleted = "completed"
)

// Limite de imagens por envio e tamanho máximo de cada uma (5MB)
const (
	MaxIntakeImages     = 3
	MaxIntakeImageBytes = 5 * 1024 * 1024
)

var statusLabels = map[string]string{
	StatusPending:   "Pendente",
	StatusScheduled: "Agendado",
	StatusNoShow:    "Faltou",
	StatusCompleted: "Concluído",
}

// StatusLabel devolve o rótulo em português para exibição no painel
func StatusLabel(status string) string {
	return statusLabels[status]
}

// IsValidStatus confere se o status é um dos quatro aceitos
func IsValidStatus(status string) bool {
	_, ok := statusLabels[status]
	return ok
}

// Motivos de consulta aceitos no formulário
var reasonLabels = map[string]string{
	"checkup":   "Consulta de rotina",
	"pain":      "Dor",
	"aesthetic": "Estética",
	"cleaning":  "Limpeza",
	"other":     "Outro motivo",
}

// ReasonLabel devolve o rótulo do motivo (vazio se desconhecido)
func ReasonLabel(reason string) string {
	return reasonLabels[reason]
}

// Patient representa a tabela 'patients'
type Patient struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Whatsapp          string    `gorm:"size:20;not null" json:"whatsapp"`
	Email             string    `gorm:"size:100" json:"email,omitempty"`
	Reason            string    `gorm:"size:20;not null" json:"reason"`
	ReasonDetail      string    `gorm:"type:text" json:"reason_detail,omitempty"`
	IsExistingPatient bool      `gorm:"not null" json:"is_existing_patient"`
	PreferredTime     string    `gorm:"size:100;not null" json:"preferred_time"`
	Status            string    `gorm:"size:20;not null;default:pending" json:"status"`
	Notes             string    `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt       time.Time `gorm:"index" json:"submitted_at"`

	// Preenchido só na resposta, não vai pro banco
	StatusLabel string `gorm:"-" json:"status_label,omitempty"`

	// Relação (Has Many) com as fotos enviadas
	Images []PatientImage `gorm:"foreignKey:PatientID" json:"images"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PatientImage representa a tabela 'patient_images' (FK para patients)
type PatientImage struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	PatientID string    `gorm:"type:char(36);not null;index" json:"patient_id"`
	ImageURL  string    `gorm:"type:mediumtext;not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (pi *PatientImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == "" {
		pi.ID = uuid.NewString()
	}
	return nil
}

// IntakeInput captura o envio do formulário público
type IntakeInput struct {
	Name              string   `json:"name" binding:"required"`
	Whatsapp          string   `json:"whatsapp" binding:"required"`
	Email             string   `json:"email" binding:"omitempty,email"`
	Reason            string   `json:"reason" binding:"required,oneof=checkup pain aesthetic cleaning other"`
	ReasonDetail      string   `json:"reason_detail"`
	IsExistingPatient *bool    `json:"is_existing_patient" binding:"required"`
	PreferredTime     string   `json:"preferred_time" binding:"required"`
	Images            []string `json:"images" binding:"omitempty,max=3"`
	// Consentimento LGPD: precisa vir true, senão o binding reprova
	DataConsent bool `json:"data_consent" binding:"required"`
}

// UpdateStatusInput captura a troca de status feita pela equipe
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending scheduled noshow completed"`
}

// UpdateNotesInput captura a edição de anotações (pode ser vazia, por isso ponteiro)
type UpdateNotesInput struct {
	Notes *string `json:"notes" binding:"required"`
}
