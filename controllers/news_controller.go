package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/models"
)

func ListNews(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	// public uç yalnızca yayınlananları görür
	if _, ok := currentUser(c); !ok {
		q = q.Where("published = ?", true)
	}

	var items []models.News
	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Haberler listelenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": items})
}

func GetNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.News
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Haber bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type newsReq struct {
	Title     string  `json:"title" binding:"required,min=1"`
	Body      string  `json:"body" binding:"required"`
	CoverURL  *string `json:"cover_url"`
	Published bool    `json:"published"`
}

func CreateNews(c *gin.Context) {
	var req newsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	item := models.News{
		Title:     req.Title,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
	if u, ok := currentUser(c); ok {
		item.CreatedBy = &u.ID
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Haber oluşturulamadı"})
		return
	}

	LogActivity(c, "create", "news", fmt.Sprintf("%d", item.ID), item.Title)
	c.JSON(http.StatusCreated, item)
}

func UpdateNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.News
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Haber bulunamadı"})
		return
	}

	var req newsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":     req.Title,
		"body":      req.Body,
		"cover_url": req.CoverURL,
		"published": req.Published,
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Haber güncellenemedi"})
		return
	}

	LogActivity(c, "update", "news", fmt.Sprintf("%d", item.ID), req.Title)
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeleteNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.News
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Haber bulunamadı"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Haber silinemedi"})
		return
	}

	LogActivity(c, "delete", "news", fmt.Sprintf("%d", item.ID), item.Title)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
