package controllers

import (
	"reflect"
	"testing"
	"time"

	"github.com/kulupnet/kulup-server/models"
)

func TestExportHeaderSkipsFileFields(t *testing.T) {
	fields := []models.FormField{
		{FieldType: "text", Label: "Ad Soyad", Name: "ad_soyad", SortOrder: 0},
		{FieldType: "file", Label: "CV", Name: "cv", SortOrder: 1},
		{FieldType: "email", Label: "E-Posta", Name: "e_posta", SortOrder: 2},
	}
	got := exportHeader(fields)
	want := []string{"Gönderim Tarihi", "Ad Soyad", "Ad Soyad", "E-Posta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("header = %v, want %v", got, want)
	}
}

func TestExportRows(t *testing.T) {
	fields := []models.FormField{
		{FieldType: "text", Label: "Ad Soyad", Name: "ad_soyad", SortOrder: 0},
		{FieldType: "file", Label: "CV", Name: "cv", SortOrder: 1},
		{FieldType: "checkbox", Label: "İlgi Alanları", Name: "ilgi_alanlari", SortOrder: 2},
	}
	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	responses := []models.FormResponse{
		{
			SubmittedAt:    at,
			RespondentName: "Ayşe Yılmaz",
			PayloadJSON:    `{"ad_soyad":"Ayşe Yılmaz","cv":"cv.pdf","cv_file":"data:;base64,QUJD","ilgi_alanlari":["Yazılım","Donanım"]}`,
		},
		{
			SubmittedAt:    at,
			RespondentName: "Anonim",
			PayloadJSON:    `{}`,
		},
	}

	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, exportRow(fields, r))
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// dosya alanı kolonlara girmez: tarih + ad + 2 alan
	want0 := []string{"2026-03-14 10:30", "Ayşe Yılmaz", "Ayşe Yılmaz", "Yazılım, Donanım"}
	if !reflect.DeepEqual(rows[0], want0) {
		t.Errorf("row 0 = %v, want %v", rows[0], want0)
	}
	// payload'da olmayan alanlar boş hücre olur, hata değil
	want1 := []string{"2026-03-14 10:30", "Anonim", "", ""}
	if !reflect.DeepEqual(rows[1], want1) {
		t.Errorf("row 1 = %v, want %v", rows[1], want1)
	}
}

func TestExportFilename(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := exportFilename("Bahar Şenliği", day); got != "bahar_senligi_yanitlari_2026-03-14.xlsx" {
		t.Errorf("filename = %q", got)
	}
	if got := exportFilename("", day); got != "form_yanitlari_2026-03-14.xlsx" {
		t.Errorf("empty title filename = %q", got)
	}
}
