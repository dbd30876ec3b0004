package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/models"
	"github.com/kulupnet/kulup-server/utils"
)

/* ========== Üye yönetimi (users.manage izni gerekir) ========== */

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kullanıcılar listelenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type createUserReq struct {
	Name     string `json:"name" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "E-posta zaten kayıtlı"})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleMember
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleEditor && req.Role != models.RoleMember {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz rol"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Parola işlenemedi"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
		Active:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kullanıcı oluşturulamadı"})
		return
	}

	LogActivity(c, "create", "user", fmt.Sprintf("%d", user.ID), user.Email)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type updateRoleReq struct {
	Role string `json:"role" binding:"required"`
}

func UpdateUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}

	var req updateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleEditor && req.Role != models.RoleMember {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz rol"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Kullanıcı bulunamadı"})
		return
	}

	if err := config.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Rol güncellenemedi"})
		return
	}

	LogActivity(c, "update", "user", fmt.Sprintf("%d", user.ID), "role="+req.Role)
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeactivateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Kullanıcı bulunamadı"})
		return
	}

	if err := config.DB.Model(&user).Update("active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Kullanıcı devre dışı bırakılamadı"})
		return
	}

	LogActivity(c, "update", "user", fmt.Sprintf("%d", user.ID), "deactivated")
	c.JSON(http.StatusOK, gin.H{"message": "deactivated"})
}
