package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/models"
)

func ListProducts(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	if _, ok := currentUser(c); !ok {
		q = q.Where("available = ?", true)
	}

	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürünler listelenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

type productReq struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Available   *bool   `json:"available"`
}

func CreateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	item := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün oluşturulamadı"})
		return
	}

	LogActivity(c, "create", "product", fmt.Sprintf("%d", item.ID), item.Name)
	c.JSON(http.StatusCreated, item)
}

func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.Product
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}

	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"image_url":   req.ImageURL,
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün güncellenemedi"})
		return
	}

	LogActivity(c, "update", "product", fmt.Sprintf("%d", item.ID), req.Name)
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}
	var item models.Product
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün silinemedi"})
		return
	}

	LogActivity(c, "delete", "product", fmt.Sprintf("%d", item.ID), item.Name)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
