package handlers

import (
	"fmt"
	"net/http"
	"time"

	"dentista-backend/internal/config"
	"dentista-backend/internal/models"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SubmitIntake recebe o formulário público de agendamento
func SubmitIntake(c *gin.Context) {
	var input models.IntakeInput

	// 1. Valida os campos obrigatórios (nome, whatsapp, motivo, horário, consentimento...)
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false,
			"Por favor, preencha todos os campos obrigatórios", err.Error())
		return
	}

	// 2. Valida as imagens ANTES de gravar qualquer coisa (tipo image/* e até 5MB cada)
	for i, img := range input.Images {
		if err := utils.ValidateImageDataURI(img, models.MaxIntakeImageBytes); err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false,
				fmt.Sprintf("Imagem %d rejeitada: %s", i+1, err.Error()), nil)
			return
		}
	}

	// 3. Grava o paciente com status pending
	patient := models.Patient{
		Name:              input.Name,
		Whatsapp:          input.Whatsapp,
		Email:             input.Email,
		Reason:            input.Reason,
		ReasonDetail:      input.ReasonDetail,
		IsExistingPatient: *input.IsExistingPatient,
		PreferredTime:     input.PreferredTime,
		Status:            models.StatusPending,
		SubmittedAt:       time.Now(),
		Images:            []models.PatientImage{},
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao adicionar paciente", nil)
		return
	}

	// 4. Grava as imagens uma por uma; falha individual não bloqueia o cadastro
	var imageErrors []string
	for i, img := range input.Images {
		row := models.PatientImage{
			PatientID: patient.ID,
			ImageURL:  img,
		}
		if err := config.DB.Create(&row).Error; err != nil {
			imageErrors = append(imageErrors, fmt.Sprintf("Erro ao adicionar a imagem %d", i+1))
			continue
		}
		patient.Images = append(patient.Images, row)
	}

	patient.StatusLabel = models.StatusLabel(patient.Status)

	// 5. Avisa a recepção (no-op se o FCM não estiver configurado)
	go utils.NotifyStaff("Novo formulário recebido",
		patient.Name+" pediu agendamento", map[string]string{"patient_id": patient.ID})

	data := gin.H{"patient": patient}
	if len(imageErrors) > 0 {
		data["image_errors"] = imageErrors
	}
	utils.APIResponse(c, http.StatusCreated, true, "Informações enviadas com sucesso!", data)
}
