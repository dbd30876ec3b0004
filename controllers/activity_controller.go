package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/middleware"
	"github.com/kulupnet/kulup-server/models"
)

func currentUser(c *gin.Context) (models.User, bool) {
	if v, ok := c.Get(middleware.CtxUser); ok {
		if u, ok2 := v.(models.User); ok2 {
			return u, true
		}
	}
	return models.User{}, false
}

// LogActivity admin panelindeki yazma işlemlerini kaydeder. Kayıt hatası
// asıl işlemi bozmaz, yalnızca loglanır.
func LogActivity(c *gin.Context, action, entity, entityID, detail string) {
	var userID *uint
	if v, ok := c.Get(middleware.CtxUser); ok {
		if u, ok2 := v.(models.User); ok2 {
			userID = &u.ID
		}
	}

	entry := models.ActivityLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		log.Printf("activity log failed (%s %s %s): %v", action, entity, entityID, err)
	}
}

// GET /api/admin/activity?page=1&limit=50
func ListActivity(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var total int64
	config.DB.Model(&models.ActivityLog{}).Count(&total)

	var logs []models.ActivityLog
	if err := config.DB.
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kayıtlar listelenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
