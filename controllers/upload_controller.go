package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/utils"
)

// POST /api/admin/uploads — site görselleri (haber/ürün/etkinlik kapakları)
// object storage'a gider; form yanıtlarındaki dosya alanları buradan GEÇMEZ,
// onlar payload içinde gömülü saklanır.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dosya alınamadı"})
		return
	}

	if fileHeader.Size > 10<<20 {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Dosya 10 MB'ı aşamaz"})
		return
	}

	fileID := fmt.Sprintf("%d", time.Now().UnixNano())
	publicURL, err := utils.UploadToStorage(fileHeader, fileHeader.Filename, fileID, "site", "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Yükleme başarısız, lütfen tekrar deneyin"})
		return
	}

	LogActivity(c, "create", "upload", fileID, fileHeader.Filename)
	c.JSON(http.StatusOK, gin.H{
		"message": "Yükleme tamamlandı",
		"url":     publicURL,
	})
}
