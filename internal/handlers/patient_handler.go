package handlers

import (
	"net/http"

	"dentista-backend/internal/config"
	"dentista-backend/internal/models"
	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetPatients lista os pacientes pro painel (mais recentes primeiro)
func GetPatients(c *gin.Context) {
	// Filtro opcional ?status=pending
	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Status de filtro inválido", nil)
		return
	}

	var patients []models.Patient
	query := config.DB.
		Preload("Images").
		Order("submitted_at desc")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&patients).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao carregar pacientes", nil)
		return
	}

	for i := range patients {
		patients[i].StatusLabel = models.StatusLabel(patients[i].Status)
		if patients[i].Images == nil {
			patients[i].Images = []models.PatientImage{}
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Lista de pacientes", patients)
}

// GetPatientDetail abre a ficha completa de um paciente
func GetPatientDetail(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := config.DB.Preload("Images").First(&patient, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Paciente não encontrado", nil)
		return
	}

	patient.StatusLabel = models.StatusLabel(patient.Status)
	if patient.Images == nil {
		patient.Images = []models.PatientImage{}
	}

	utils.APIResponse(c, http.StatusOK, true, "Ficha do paciente", gin.H{
		"patient":       patient,
		"reason_label":  models.ReasonLabel(patient.Reason),
		"whatsapp_link": utils.WhatsAppLink(patient.Whatsapp),
	})
}

// UpdatePatientStatus troca o status direto do card da lista.
// Qualquer um dos quatro status pode virar qualquer outro.
func UpdatePatientStatus(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Status inválido", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Paciente não encontrado", nil)
		return
	}

	if err := config.DB.Model(&patient).Update("status", input.Status).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao atualizar status do paciente", nil)
		return
	}

	patient.Status = input.Status
	patient.StatusLabel = models.StatusLabel(patient.Status)

	utils.APIResponse(c, http.StatusOK, true, "Status atualizado", patient)
}

// UpdatePatientNotes salva as anotações da equipe (persiste a cada edição)
func UpdatePatientNotes(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateNotesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Entrada inválida", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Paciente não encontrado", nil)
		return
	}

	if err := config.DB.Model(&patient).Update("notes", *input.Notes).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Erro ao atualizar anotações do paciente", nil)
		return
	}

	patient.Notes = *input.Notes
	patient.StatusLabel = models.StatusLabel(patient.Status)

	utils.APIResponse(c, http.StatusOK, true, "Anotações atualizadas", patient)
}
