package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/forms"
	"github.com/kulupnet/kulup-server/middleware"
	"github.com/kulupnet/kulup-server/models"
	"github.com/kulupnet/kulup-server/utils"
)

/* ========== Etkinlikler: herkese açık okuma, içerik izniyle yazma ========== */

func ListEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.Order("start_time DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Etkinlikler listelenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func GetEvent(c *gin.Context) {
	slug := c.Param("slug")

	var ev models.Event
	if err := config.DB.Where("slug = ?", slug).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Etkinlik bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Etkinlik okunamadı"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

// GET /api/events/:slug/eligibility — kayıt formu açılmadan önce çağrılır.
func GetEventEligibility(c *gin.Context) {
	slug := c.Param("slug")

	var ev models.Event
	if err := config.DB.Where("slug = ?", slug).First(&ev).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Etkinlik bulunamadı"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.FormResponse{}).
		Where("form_id = ? AND form_type = ?", ev.Slug, forms.FormTypeEventRegistration).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kayıt sayısı okunamadı"})
		return
	}

	c.JSON(http.StatusOK, forms.CheckEligibility(ev, int(count), time.Now()))
}

type eventReq struct {
	Title                string     `json:"title" binding:"required,min=1"`
	Description          string     `json:"description"`
	Location             string     `json:"location"`
	StartTime            time.Time  `json:"start_time" binding:"required"`
	EndTime              *time.Time `json:"end_time"`
	Status               string     `json:"status"`
	RequiresRegistration bool       `json:"requires_registration"`
	RegistrationOpen     *bool      `json:"registration_open"`
	ClosureReason        *string    `json:"closure_reason"`
	MaxParticipants      *int       `json:"max_participants"`
	CoverURL             *string    `json:"cover_url"`
}

func CreateEvent(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	slug := forms.DeriveName(req.Title)
	if slug == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Başlıktan geçerli bir slug üretilemedi"})
		return
	}

	var count int64
	config.DB.Model(&models.Event{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Aynı başlıkta etkinlik var"})
		return
	}

	ev := models.Event{
		Slug:                 slug,
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Status:               models.EventUpcoming,
		RequiresRegistration: req.RequiresRegistration,
		RegistrationOpen:     true,
		ClosureReason:        req.ClosureReason,
		MaxParticipants:      req.MaxParticipants,
		CoverURL:             req.CoverURL,
		CreatedBy:            &u.ID,
	}
	if req.Status != "" {
		ev.Status = req.Status
	}
	if req.RegistrationOpen != nil {
		ev.RegistrationOpen = *req.RegistrationOpen
	}

	// Konum metninden koordinat çıkmaya çalışılır; çıkmazsa alanlar boş kalır.
	if lat, lng, ok := utils.ParseLatLng(req.Location); ok {
		ev.Latitude = &lat
		ev.Longitude = &lng
	}

	if err := config.DB.Create(&ev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Etkinlik oluşturulamadı"})
		return
	}

	LogActivity(c, "create", "event", ev.Slug, ev.Title)
	c.JSON(http.StatusCreated, ev)
}

func UpdateEvent(c *gin.Context) {
	slug := c.Param("slug")

	var ev models.Event
	if err := config.DB.Where("slug = ?", slug).First(&ev).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Etkinlik bulunamadı"})
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":                 req.Title,
		"description":           req.Description,
		"location":              req.Location,
		"start_time":            req.StartTime,
		"end_time":              req.EndTime,
		"requires_registration": req.RequiresRegistration,
		"closure_reason":        req.ClosureReason,
		"max_participants":      req.MaxParticipants,
		"cover_url":             req.CoverURL,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.RegistrationOpen != nil {
		updates["registration_open"] = *req.RegistrationOpen
	}
	if lat, lng, ok := utils.ParseLatLng(req.Location); ok {
		updates["latitude"] = lat
		updates["longitude"] = lng
	}

	if err := config.DB.Model(&ev).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Etkinlik güncellenemedi"})
		return
	}

	LogActivity(c, "update", "event", ev.Slug, req.Title)
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeleteEvent(c *gin.Context) {
	slug := c.Param("slug")

	var ev models.Event
	if err := config.DB.Where("slug = ?", slug).First(&ev).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Etkinlik bulunamadı"})
		return
	}

	if err := config.DB.Delete(&ev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Etkinlik silinemedi"})
		return
	}

	LogActivity(c, "delete", "event", ev.Slug, ev.Title)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
