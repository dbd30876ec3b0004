package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/models"
	"github.com/kulupnet/kulup-server/utils"
)

const CtxUser = "user"

// AuthJWT Authorization: Bearer <token> başlığını doğrular, kullanıcıyı DB'den
// yükleyip context'e koyar.
func AuthJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization başlığı eksik veya hatalı"})
			return
		}
		rawToken := strings.TrimSpace(authHeader[7:])

		claims, err := utils.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Geçersiz token"})
			return
		}

		uid, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Geçersiz kimlik"})
			return
		}

		var user models.User
		if err := config.DB.First(&user, uid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Kullanıcı bulunamadı"})
			return
		}
		if !user.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Hesap devre dışı"})
			return
		}

		c.Set(CtxUser, user)
		c.Next()
	}
}

// OptionalAuth token varsa kullanıcıyı yükler, yoksa anonim devam eder.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.Next()
			return
		}
		claims, err := utils.VerifyToken(strings.TrimSpace(authHeader[7:]))
		if err != nil {
			c.Next()
			return
		}
		if uid, err := strconv.ParseUint(claims.UserID, 10, 64); err == nil {
			var user models.User
			if err := config.DB.First(&user, uid).Error; err == nil && user.Active {
				c.Set(CtxUser, user)
			}
		}
		c.Next()
	}
}

// RequireAdmin yalnızca admin rolüne izin verir.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(CtxUser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Giriş gerekli"})
			return
		}
		u := v.(models.User)
		if u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Bu işlem için yetkiniz yok"})
			return
		}
		c.Next()
	}
}

// RequirePermission permissions tablosundaki rol -> izin matrisine bakar.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(CtxUser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Giriş gerekli"})
			return
		}
		u := v.(models.User)

		var count int64
		if err := config.DB.Model(&models.Permission{}).
			Where("role = ? AND permission = ?", u.Role, perm).
			Count(&count).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Yetki kontrolü yapılamadı"})
			return
		}
		if count == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Bu işlem için yetkiniz yok"})
			return
		}
		c.Next()
	}
}
