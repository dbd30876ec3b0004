package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/models"
)

func ListInternships(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	if _, ok := currentUser(c); !ok {
		q = q.Where("published = ?", true)
	}

	var items []models.Internship
	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Staj ilanları listelenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"internships": items})
}

type internshipReq struct {
	Company     string     `json:"company" binding:"required,min=1"`
	Title       string     `json:"title" binding:"required,min=1"`
	Description string     `json:"description"`
	ApplyURL    *string    `json:"apply_url"`
	Deadline    *time.Time `json:"deadline"`
	Published   *bool      `json:"published"`
}

func CreateInternship(c *gin.Context) {
	var req internshipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	item := models.Internship{
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		ApplyURL:    req.ApplyURL,
		Deadline:    req.Deadline,
		Published:   true,
	}
	if req.Published != nil {
		item.Published = *req.Published
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "İlan oluşturulamadı"})
		return
	}

	LogActivity(c, "create", "internship", fmt.Sprintf("%d", item.ID), item.Title)
	c.JSON(http.StatusCreated, item)
}

func UpdateInternship(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.Internship
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "İlan bulunamadı"})
		return
	}

	var req internshipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"company":     req.Company,
		"title":       req.Title,
		"description": req.Description,
		"apply_url":   req.ApplyURL,
		"deadline":    req.Deadline,
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "İlan güncellenemedi"})
		return
	}

	LogActivity(c, "update", "internship", fmt.Sprintf("%d", item.ID), req.Title)
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeleteInternship(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.Internship
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "İlan bulunamadı"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "İlan silinemedi"})
		return
	}

	LogActivity(c, "delete", "internship", fmt.Sprintf("%d", item.ID), item.Title)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
