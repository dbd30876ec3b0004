package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/kulupnet/kulup-server/config"
	"github.com/kulupnet/kulup-server/forms"
	"github.com/kulupnet/kulup-server/models"
)

/* ========== Yanıtları xlsx'e aktarma (asenkron job) ========== */

// POST /api/admin/forms/:type/:id/export
func CreateExport(c *gin.Context) {
	formType, formID, ok := formKey(c)
	if !ok {
		return
	}

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:    jobID,
		FormID:   formID,
		FormType: formType,
		Format:   "xlsx",
		Status:   "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Export başlatılamadı"})
		return
	}

	go processExportJob(jobID)

	LogActivity(c, "create", "export", jobID, formID)
	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /api/admin/exports/:job_id
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Job okunamadı"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

// exportHeader kolon başlıkları: gönderim zamanı, yanıtlayan ve dosya türü
// DIŞINDAKİ alanların etiketleri, sort_order sırasıyla.
func exportHeader(fields []models.FormField) []string {
	header := []string{"Gönderim Tarihi", "Ad Soyad"}
	for _, f := range fields {
		if f.FieldType == forms.FieldFile {
			continue
		}
		header = append(header, f.Label)
	}
	return header
}

// exportRow tek yanıtı düz satıra açar; payload'da olmayan alanlar boş hücre.
func exportRow(fields []models.FormField, r models.FormResponse) []string {
	row := []string{
		r.SubmittedAt.Format("2006-01-02 15:04"),
		r.RespondentName,
	}

	payload, err := forms.ParsePayloadText(r.PayloadJSON)
	if err != nil {
		payload = forms.Payload{}
	}

	for _, f := range fields {
		if f.FieldType == forms.FieldFile {
			continue
		}
		v, ok := payload[f.Name]
		if !ok {
			row = append(row, "")
			continue
		}
		switch v.Kind {
		case forms.KindList:
			cell := ""
			for i, item := range v.List {
				if i > 0 {
					cell += ", "
				}
				cell += item
			}
			row = append(row, cell)
		default:
			row = append(row, v.Str)
		}
	}
	return row
}

// exportFilename sözleşmesi: <form başlığı>_yanitlari_<YYYY-AA-GG>.xlsx
func exportFilename(title string, day time.Time) string {
	slug := forms.DeriveName(title)
	if slug == "" {
		slug = "form"
	}
	return fmt.Sprintf("%s_yanitlari_%s.xlsx", slug, day.Format("2006-01-02"))
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	fail := func(err error) {
		em := err.Error()
		config.DB.Model(&job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
	}

	var fields []models.FormField
	if err := config.DB.
		Where("form_id = ? AND form_type = ?", job.FormID, job.FormType).
		Order("sort_order ASC, id ASC").
		Find(&fields).Error; err != nil {
		fail(err)
		return
	}

	var responses []models.FormResponse
	if err := config.DB.
		Where("form_id = ? AND form_type = ?", job.FormID, job.FormType).
		Order("submitted_at DESC").
		Find(&responses).Error; err != nil {
		fail(err)
		return
	}

	// dosya adında etkinlik başlığı kullanılır, yoksa form id
	title := job.FormID
	if job.FormType == forms.FormTypeEventRegistration {
		var ev models.Event
		if err := config.DB.Where("slug = ?", job.FormID).First(&ev).Error; err == nil {
			title = ev.Title
		}
	}

	x := excelize.NewFile()
	defer x.Close()
	sheet := "Yanıtlar"
	x.SetSheetName("Sheet1", sheet)

	if err := x.SetSheetRow(sheet, "A1", toAnySlice(exportHeader(fields))); err != nil {
		fail(err)
		return
	}
	for i, r := range responses {
		cell := fmt.Sprintf("A%d", i+2)
		if err := x.SetSheetRow(sheet, cell, toAnySlice(exportRow(fields, r))); err != nil {
			fail(err)
			return
		}
	}

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)
	outPath := path.Join(outDir, exportFilename(title, time.Now()))

	if err := x.SaveAs(outPath); err != nil {
		fail(err)
		return
	}

	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": outPath})
}

func toAnySlice(row []string) *[]interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return &out
}
