package handlers

import (
	"errors"
	"net/http"
	"strings"

	"dentista-backend/internal/config"
	"dentista-backend/internal/models"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBranding devolve a identidade da clínica + redes sociais.
// Enquanto ninguém salvar nada, respondemos os padrões sem criar linha no banco.
// O flag ?shared=true marca o link público compartilhado (o frontend esconde
// o botão de acesso ao painel nesse caso).
func GetBranding(c *gin.Context) {
	var branding models.ClinicBranding
	if err := config.DB.First(&branding).Error; err != nil {
		branding = models.DefaultBranding()
	}

	socials := []models.SocialMedia{}
	if err := config.DB.Order("created_at asc").Find(&socials).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao carregar informações da clínica", nil)
		return
	}

	shared := c.Query("shared") == "true"

	utils.APIResponse(c, http.StatusOK, true, "Identidade da clínica", gin.H{
		"branding":        branding,
		"social_media":    socials,
		"show_admin_link": !shared,
	})
}

// SaveBranding grava nome/logo/cor. Atualização é parcial: só mexe nos campos
// enviados; se ainda não existir linha, cria uma completando com os padrões.
func SaveBranding(c *gin.Context) {
	var input models.BrandingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Entrada inválida", err.Error())
		return
	}

	// Logo enviado como upload (data URI): mesmas regras do formulário, mas 2MB
	if input.LogoURL != nil && strings.HasPrefix(*input.LogoURL, "data:") {
		if err := utils.ValidateImageDataURI(*input.LogoURL, models.MaxLogoBytes); err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "O arquivo deve ser uma imagem de no máximo 2MB", nil)
			return
		}
	}

	var branding models.ClinicBranding
	err := config.DB.First(&branding).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Primeira gravação: cria a linha única completando com os padrões
		branding = models.DefaultBranding()
		applyBrandingInput(&branding, input)
		if err := config.DB.Create(&branding).Error; err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao criar informações da clínica", nil)
			return
		}

	case err != nil:
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao carregar informações da clínica", nil)
		return

	default:
		updates := map[string]interface{}{}
		if input.ClinicName != nil {
			updates["clinic_name"] = *input.ClinicName
		}
		if input.LogoURL != nil {
			updates["logo_url"] = *input.LogoURL
		}
		if input.PrimaryColor != nil {
			updates["primary_color"] = *input.PrimaryColor
		}
		if len(updates) > 0 {
			if err := config.DB.Model(&branding).Updates(updates).Error; err != nil {
				utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao atualizar informações da clínica", nil)
				return
			}
		}
		applyBrandingInput(&branding, input)
	}

	utils.APIResponse(c, http.StatusOK, true, "Informações da clínica atualizadas com sucesso!", branding)
}

func applyBrandingInput(b *models.ClinicBranding, input models.BrandingInput) {
	if input.ClinicName != nil {
		b.ClinicName = *input.ClinicName
	}
	if input.LogoURL != nil {
		b.LogoURL = *input.LogoURL
	}
	if input.PrimaryColor != nil {
		b.PrimaryColor = *input.PrimaryColor
	}
}

// AddSocialMedia cadastra uma rede social da clínica
func AddSocialMedia(c *gin.Context) {
	var input models.SocialMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Entrada inválida", err.Error())
		return
	}

	normalized, err := utils.NormalizeSocialURL(input.URL)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "O link fornecido não é um URL válido", nil)
		return
	}

	social := models.SocialMedia{
		Type: input.Type,
		URL:  normalized,
		Name: input.Name,
		Icon: input.Icon,
	}

	if err := config.DB.Create(&social).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao adicionar mídia social", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Mídia social adicionada com sucesso!", social)
}

// UpdateSocialMedia edita uma rede social existente (parcial)
func UpdateSocialMedia(c *gin.Context) {
	id := c.Param("id")

	var input models.SocialMediaUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Entrada inválida", err.Error())
		return
	}

	var social models.SocialMedia
	if err := config.DB.First(&social, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Mídia social não encontrada", nil)
		return
	}

	updates := map[string]interface{}{}
	if input.Type != nil {
		updates["type"] = *input.Type
		social.Type = *input.Type
	}
	if input.URL != nil {
		normalized, err := utils.NormalizeSocialURL(*input.URL)
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "O link fornecido não é um URL válido", nil)
			return
		}
		updates["url"] = normalized
		social.URL = normalized
	}
	if input.Name != nil {
		updates["name"] = *input.Name
		social.Name = *input.Name
	}
	if input.Icon != nil {
		updates["icon"] = *input.Icon
		social.Icon = *input.Icon
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&social).Updates(updates).Error; err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao atualizar mídia social", nil)
			return
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Mídia social atualizada com sucesso!", social)
}

// DeleteSocialMedia remove uma rede social
func DeleteSocialMedia(c *gin.Context) {
	id := c.Param("id")

	var social models.SocialMedia
	if err := config.DB.First(&social, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Mídia social não encontrada", nil)
		return
	}

	if err := config.DB.Delete(&social).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao excluir mídia social", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Mídia social excluída com sucesso!", nil)
}
