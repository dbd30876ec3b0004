package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/middleware"
	"github.com/kulupnet/kulup-server/models"
	"github.com/kulupnet/kulup-server/utils"
)

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "E-posta veya parola hatalı"})
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "E-posta veya parola hatalı"})
		return
	}
	if !user.Active {
		c.JSON(http.StatusForbidden, gin.H{"message": "Hesap devre dışı"})
		return
	}

	token, err := utils.GenerateToken(fmt.Sprintf("%d", user.ID), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Token üretilemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type googleLoginReq struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleLoginHandler Google id_token'ı doğrular; e-posta kayıtlı bir üyeyse
// oturum açar. Kayıtlı olmayanlar admin tarafından eklenmelidir.
func GoogleLoginHandler(c *gin.Context) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek"})
		return
	}

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, clientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google token doğrulanamadı"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google hesabında e-posta yok"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Bu e-posta ile kayıtlı üye yok"})
		return
	}
	if !user.Active {
		c.JSON(http.StatusForbidden, gin.H{"message": "Hesap devre dışı"})
		return
	}

	token, err := utils.GenerateToken(fmt.Sprintf("%d", user.ID), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Token üretilemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func Me(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)
	c.JSON(http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	})
}
