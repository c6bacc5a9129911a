package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valores padrão exibidos enquanto a clínica não personaliza nada
const (
	DefaultClinicName   = "Clínica Odontológica"
	DefaultLogoURL      = "https://via.placeholder.com/150?text=Logo"
	DefaultPrimaryColor = "#0ea5e9"
)

// Tamanho máximo do logo enviado como data URI (2MB)
const MaxLogoBytes = 2 * 1024 * 1024

// ClinicBranding representa a tabela 'clinic_branding' (no máximo uma linha viva)
type ClinicBranding struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	ClinicName   string    `gorm:"size:100;not null" json:"clinic_name"`
	LogoURL      string    `gorm:"type:mediumtext" json:"logo_url"`
	PrimaryColor string    `gorm:"size:20" json:"primary_color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *ClinicBranding) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// DefaultBranding monta a identidade padrão (usada quando ainda não existe linha)
func DefaultBranding() ClinicBranding {
	return ClinicBranding{
		ClinicName:   DefaultClinicName,
		LogoURL:      DefaultLogoURL,
		PrimaryColor: DefaultPrimaryColor,
	}
}

// SocialMedia representa a tabela 'social_media'
type SocialMedia struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Name      string    `gorm:"size:100" json:"name,omitempty"`
	Icon      string    `gorm:"size:100" json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SocialMedia) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// BrandingInput: campos opcionais (ponteiro = "não mexer" quando ausente)
type BrandingInput struct {
	ClinicName   *string `json:"clinic_name"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
}

// SocialMediaInput captura a criação de uma rede social
type SocialMediaInput struct {
	Type string `json:"type" binding:"required,oneof=facebook instagram youtube other"`
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SocialMediaUpdateInput: edição parcial de uma rede social
type SocialMediaUpdateInput struct {
	Type *string `json:"type" binding:"omitempty,oneof=facebook instagram youtube other"`
	URL  *string `json:"url"`
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}
