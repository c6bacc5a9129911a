package handlers

import (
	"net/http"

	"dentista-backend/internal/config"
	"dentista-backend/internal/models"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Quantos pacientes o arquivamento preserva (os mais recentes)
const archiveKeepCount = 10

// LoginInput captura a senha única do painel
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login troca a senha do painel por um JWT de sessão
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Entrada inválida", nil)
		return
	}

	if !utils.CheckAdminPassword(input.Password) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Senha incorreta", nil)
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao gerar token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login realizado com sucesso", gin.H{
		"token": token,
	})
}

// GetDashboardStats resume o painel: total de pacientes, contagem por status e fotos
func GetDashboardStats(c *gin.Context) {
	var total, pending, scheduled, noshow, completed, images int64

	config.DB.Model(&models.Patient{}).Count(&total)
	config.DB.Model(&models.Patient{}).Where("status = ?", models.StatusPending).Count(&pending)
	config.DB.Model(&models.Patient{}).Where("status = ?", models.StatusScheduled).Count(&scheduled)
	config.DB.Model(&models.Patient{}).Where("status = ?", models.StatusNoShow).Count(&noshow)
	config.DB.Model(&models.Patient{}).Where("status = ?", models.StatusCompleted).Count(&completed)
	config.DB.Model(&models.PatientImage{}).Count(&images)

	utils.APIResponse(c, http.StatusOK, true, "Resumo do painel", gin.H{
		"total_patients": total,
		"pending":        pending,
		"scheduled":      scheduled,
		"noshow":         noshow,
		"completed":      completed,
		"stored_images":  images,
	})
}

// ArchiveOldPatients mantém só os 10 cadastros mais recentes e apaga o resto.
// Única operação destrutiva em massa do sistema; com 10 ou menos pacientes
// vira um no-op com aviso informativo (pode rodar quantas vezes quiser).
func ArchiveOldPatients(c *gin.Context) {
	var ids []string
	if err := config.DB.Model(&models.Patient{}).
		Order("submitted_at desc").
		Pluck("id", &ids).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao arquivar pacientes antigos", nil)
		return
	}

	if len(ids) <= archiveKeepCount {
		utils.APIResponse(c, http.StatusOK, true, "Não há pacientes antigos para arquivar.", gin.H{
			"archived": 0,
		})
		return
	}

	toDelete := ids[archiveKeepCount:]

	// Apaga primeiro as fotos para não quebrar a FK
	if err := config.DB.Where("patient_id IN ?", toDelete).
		Delete(&models.PatientImage{}).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao arquivar pacientes antigos", nil)
		return
	}

	if err := config.DB.Where("id IN ?", toDelete).
		Delete(&models.Patient{}).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao arquivar pacientes antigos", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true,
		"Pacientes antigos foram arquivados para liberar espaço de armazenamento.", gin.H{
			"archived": len(toDelete),
		})
}
