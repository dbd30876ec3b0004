package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/forms"
	"github.com/kulupnet/kulup-server/models"
)

type submitReq struct {
	Payload map[string]any `json:"payload" binding:"required"`
}

// POST /api/forms/:type/:id/responses
func SubmitResponse(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	// etkinlik kayıtlarında önce uygunluk: kapalıysa form hiç işlenmez
	if formType == forms.FormTypeEventRegistration {
		var ev models.Event
		if err := config.DB.Where("slug = ?", formID).First(&ev).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Etkinlik bulunamadı"})
			return
		}

		var count int64
		if err := config.DB.Model(&models.FormResponse{}).
			Where("form_id = ? AND form_type = ?", formID, formType).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Kayıt sayısı okunamadı"})
			return
		}

		if e := forms.CheckEligibility(ev, int(count), time.Now()); !e.Open {
			c.JSON(http.StatusForbidden, gin.H{"message": e.Reason, "eligibility": e})
			return
		}
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gönderilen veri geçersiz: " + err.Error()})
		return
	}

	payload, err := forms.DecodePayload(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gönderilen veri geçersiz: " + err.Error()})
		return
	}

	// güncel alan tanımlarına karşı doğrula; tüm ihlaller toplanır
	var fields []models.FormField
	if err := config.DB.
		Where("form_id = ? AND form_type = ?", formID, formType).
		Order("sort_order ASC, id ASC").
		Find(&fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Alan tanımları okunamadı"})
		return
	}

	if vs := forms.Validate(fields, payload); len(vs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":    forms.FormatViolations(vs),
			"violations": vs,
			"total":      len(vs),
		})
		return
	}

	// ad_soyad / email alanlarından kolaylık kolonları türetilir
	name := "Anonim"
	if v, ok := payload["ad_soyad"]; ok && v.Str != "" {
		name = v.Str
	}
	var email *string
	if v, ok := payload["email"]; ok && v.Str != "" {
		e := v.Str
		email = &e
	}

	text, err := payload.EncodeText()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Yanıt kaydedilemedi"})
		return
	}

	resp := models.FormResponse{
		FormID:          formID,
		FormType:        formType,
		RespondentName:  name,
		RespondentEmail: email,
		PayloadJSON:     text,
	}
	if err := config.DB.Create(&resp).Error; err != nil {
		log.Printf("form response create failed (%s/%s): %v", formType, formID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Yanıt kaydedilemedi, lütfen tekrar deneyin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           resp.ID,
		"submitted_at": resp.SubmittedAt,
	})
}

// sanitizePayload listeleme yanıtından data-URL gövdelerini ayıklar; dosya
// alanının kendisi (dosya adı) kalır, megabaytlarca <name>_file içeriği
// tabloya taşınmaz.
func sanitizePayload(payload map[string]any) map[string]any {
	for k := range payload {
		if forms.ReservedName(k) {
			delete(payload, k)
		}
	}
	return payload
}

// GET /api/admin/forms/:type/:id/responses?page=1&limit=20
func ListResponses(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	config.DB.Model(&models.FormResponse{}).
		Where("form_id = ? AND form_type = ?", formID, formType).
		Count(&total)

	var responses []models.FormResponse
	if err := config.DB.
		Where("form_id = ? AND form_type = ?", formID, formType).
		Order("submitted_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&responses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Yanıtlar listelenemedi"})
		return
	}

	out := []gin.H{}
	for _, r := range responses {
		var payload map[string]any
		if err := json.Unmarshal([]byte(r.PayloadJSON), &payload); err != nil {
			log.Printf("payload parse failed for response %d: %v", r.ID, err)
			payload = map[string]any{}
		}
		out = append(out, gin.H{
			"id":               r.ID,
			"submitted_at":     r.SubmittedAt,
			"respondent_name":  r.RespondentName,
			"respondent_email": r.RespondentEmail,
			"payload":          sanitizePayload(payload),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"form_id":   formID,
		"form_type": formType,
		"page":      page,
		"limit":     limit,
		"total":     total,
		"responses": out,
	})
}

// DELETE /api/admin/responses/:id
func DeleteResponse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}

	var resp models.FormResponse
	if err := config.DB.First(&resp, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Yanıt bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Yanıt okunamadı"})
		return
	}

	if err := config.DB.Delete(&resp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Yanıt silinemedi"})
		return
	}

	LogActivity(c, "delete", "form_response", fmt.Sprintf("%d", resp.ID), resp.RespondentName)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
