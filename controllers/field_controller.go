package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/forms"
	"github.com/kulupnet/kulup-server/models"
)

/* ========== Form builder: alan tanımları CRUD ========== */

// formKey :type/:id parametrelerini doğrular.
func formKey(c *gin.Context) (formType, formID string, ok bool) {
	formType = c.Param("type")
	formID = c.Param("id")
	if !forms.ValidFormType(formType) || formID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Form türü geçersiz"})
		return "", "", false
	}
	return formType, formID, true
}

// GET /api/forms/:type/:id/fields — renderer da builder da bunu okur.
func ListFields(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	var fields []models.FormField
	if err := config.DB.
		Where("form_id = ? AND form_type = ?", formID, formType).
		Order("sort_order ASC, id ASC").
		Find(&fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Alanlar listelenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form_id":   formID,
		"form_type": formType,
		"fields":    fields,
	})
}

type fieldReq struct {
	FieldType string `json:"field_type" binding:"required"`
	Label     string `json:"label"`
	Options   string `json:"options"` // satır satır seçenek metni
	Required  bool   `json:"required"`
}

// validateFieldReq add/edit ortak doğrulaması; hata mesajı kullanıcıya döner.
func validateFieldReq(req fieldReq) (string, []string, error) {
	if strings.TrimSpace(req.Label) == "" {
		return "", nil, fmt.Errorf("Etiket zorunludur")
	}
	if !forms.ValidFieldType(req.FieldType) {
		return "", nil, fmt.Errorf("Alan türü geçersiz: %s", req.FieldType)
	}

	name := forms.DeriveName(req.Label)
	if name == "" {
		return "", nil, fmt.Errorf("Etiketten geçerli bir alan adı üretilemedi")
	}
	if forms.ReservedName(name) {
		return "", nil, fmt.Errorf("Etiketten üretilen alan adı (%s) kullanılamaz, lütfen etiketi değiştirin", name)
	}

	var opts []string
	if forms.NeedsOptions(req.FieldType) {
		opts = forms.ParseOptions(req.Options)
		if len(opts) == 0 {
			return "", nil, fmt.Errorf("Bu alan türü için seçenekler zorunludur")
		}
	}
	return name, opts, nil
}

// POST /api/admin/forms/:type/:id/fields
func AddField(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	var req fieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	name, opts, err := validateFieldReq(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	// türetilmiş ad form içinde benzersiz olmalı
	var dup int64
	config.DB.Model(&models.FormField{}).
		Where("form_id = ? AND form_type = ? AND name = ?", formID, formType, name).
		Count(&dup)
	if dup > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Aynı isimde alan var: " + name})
		return
	}

	// sıradaki index = MAX(sort_order)+1 (0 tabanlı)
	type nextRes struct{ Next int }
	var r nextRes
	_ = config.DB.Model(&models.FormField{}).
		Where("form_id = ? AND form_type = ?", formID, formType).
		Select("COALESCE(MAX(sort_order), -1) + 1 AS next").
		Scan(&r).Error

	f := models.FormField{
		FormID:    formID,
		FormType:  formType,
		FieldType: req.FieldType,
		Label:     strings.TrimSpace(req.Label),
		Name:      name,
		Required:  req.Required,
		Options:   strings.Join(opts, "\n"),
		SortOrder: r.Next,
	}
	if err := config.DB.Create(&f).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Alan eklenemedi"})
		return
	}

	LogActivity(c, "create", "form_field", fmt.Sprintf("%d", f.ID), f.Label)
	c.JSON(http.StatusCreated, f)
}

type bulkSaveReq struct {
	Fields []struct {
		ID uint `json:"id"`
		fieldReq
	} `json:"fields" binding:"required"`
}

// POST /api/admin/forms/:type/:id/fields/bulk — taslaktaki id'siz alanları
// kaydeder; id taşıyanlar anlık güncellemelerle zaten günceldir, atlanır.
func BulkSaveFields(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	var req bulkSaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	created := 0
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		type nextRes struct{ Next int }
		var r nextRes
		_ = tx.Model(&models.FormField{}).
			Where("form_id = ? AND form_type = ?", formID, formType).
			Select("COALESCE(MAX(sort_order), -1) + 1 AS next").
			Scan(&r).Error
		next := r.Next

		for _, item := range req.Fields {
			if item.ID != 0 {
				continue // zaten kayıtlı
			}
			name, opts, err := validateFieldReq(item.fieldReq)
			if err != nil {
				return err
			}

			var dup int64
			tx.Model(&models.FormField{}).
				Where("form_id = ? AND form_type = ? AND name = ?", formID, formType, name).
				Count(&dup)
			if dup > 0 {
				return fmt.Errorf("Aynı isimde alan var: %s", name)
			}

			f := models.FormField{
				FormID:    formID,
				FormType:  formType,
				FieldType: item.FieldType,
				Label:     strings.TrimSpace(item.Label),
				Name:      name,
				Required:  item.Required,
				Options:   strings.Join(opts, "\n"),
				SortOrder: next,
			}
			if err := tx.Create(&f).Error; err != nil {
				return err
			}
			next++
			created++
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	LogActivity(c, "create", "form_field", formID, fmt.Sprintf("bulk: %d alan", created))
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// PUT /api/admin/fields/:id — etiket değişirse ad yeniden türetilir.
func UpdateField(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}

	var f models.FormField
	if err := config.DB.First(&f, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Alan bulunamadı"})
		return
	}

	var req fieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	name, opts, err := validateFieldReq(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	if name != f.Name {
		var dup int64
		config.DB.Model(&models.FormField{}).
			Where("form_id = ? AND form_type = ? AND name = ? AND id <> ?", f.FormID, f.FormType, name, f.ID).
			Count(&dup)
		if dup > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "Aynı isimde alan var: " + name})
			return
		}
	}

	updates := map[string]interface{}{
		"field_type": req.FieldType,
		"label":      strings.TrimSpace(req.Label),
		"name":       name,
		"required":   req.Required,
		"options":    strings.Join(opts, "\n"),
	}
	if err := config.DB.Model(&f).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Alan güncellenemedi"})
		return
	}

	LogActivity(c, "update", "form_field", fmt.Sprintf("%d", f.ID), req.Label)
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/admin/fields/:id — silme + kalanlarda sort_order sıkıştırma.
func DeleteField(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID geçersiz"})
		return
	}

	var f models.FormField
	if err := config.DB.First(&f, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Alan bulunamadı"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&f).Error; err != nil {
			return err
		}
		// arkadakiler bir öne çekilir, küme {0..n-1} kalır
		return tx.Model(&models.FormField{}).
			Where("form_id = ? AND form_type = ? AND sort_order > ?", f.FormID, f.FormType, f.SortOrder).
			Update("sort_order", gorm.Expr("sort_order - 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Alan silinemedi"})
		return
	}

	LogActivity(c, "delete", "form_field", fmt.Sprintf("%d", f.ID), f.Label)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type reorderReq struct {
	Order []uint `json:"order" binding:"required"`
}

// PUT /api/admin/forms/:type/:id/fields/reorder — tam sıralama listesi alır.
func ReorderFields(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Geçersiz istek", "error": err.Error()})
		return
	}

	// listedeki her id bu forma ait olmalı ve formun tamamını kapsamalı
	var total, matched int64
	config.DB.Model(&models.FormField{}).
		Where("form_id = ? AND form_type = ?", formID, formType).
		Count(&total)
	config.DB.Model(&models.FormField{}).
		Where("form_id = ? AND form_type = ? AND id IN ?", formID, formType, req.Order).
		Count(&matched)
	if matched != int64(len(req.Order)) || matched != total {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sıralama listesi formun alanlarıyla eşleşmiyor"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for idx, fieldID := range req.Order {
			if err := tx.Model(&models.FormField{}).
				Where("id = ? AND form_id = ? AND form_type = ?", fieldID, formID, formType).
				Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sıralama güncellenemedi"})
		return
	}

	LogActivity(c, "update", "form_field", formID, "reorder")
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
