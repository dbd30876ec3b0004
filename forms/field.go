package forms

import (
	"strings"

	"github.com/kulupnet/kulup-server/models"
)

// Form türleri: alan adı uzayını bölen anahtarın yarısı.
const (
	FormTypeEventRegistration = "event_registration"
	FormTypeSurvey            = "survey"
)

// Desteklenen alan türleri.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldTel      = "tel"
	FieldNumber   = "number"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldRadio    = "radio"
	FieldCheckbox = "checkbox"
	FieldFile     = "file"
	FieldDate     = "date"
)

var fieldTypes = map[string]bool{
	FieldText: true, FieldEmail: true, FieldTel: true, FieldNumber: true,
	FieldTextarea: true, FieldSelect: true, FieldRadio: true,
	FieldCheckbox: true, FieldFile: true, FieldDate: true,
}

func ValidFormType(t string) bool {
	return t == FormTypeEventRegistration || t == FormTypeSurvey
}

// ValidFieldType bilinmeyen türleri de kabul eder mi? Hayır: kayıt sırasında
// reddedilir; yalnızca render/doğrulama tarafı bilinmeyeni düz metin sayar.
func ValidFieldType(t string) bool {
	return fieldTypes[t]
}

// NeedsOptions seçenek listesi zorunlu olan türler.
func NeedsOptions(fieldType string) bool {
	switch fieldType {
	case FieldSelect, FieldRadio, FieldCheckbox:
		return true
	}
	return false
}

// ParseOptions satır satır girilen seçenek metnini ayrıştırır: her satır
// kırpılır, boş satırlar atılır, sıra korunur.
func ParseOptions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Compact sort_order değerlerini mevcut sıraya göre 0..n-1 olarak yeniden
// atar; ekleme/taşıma/silme sonrası küme daima boşluksuz kalır.
func Compact(fields []models.FormField) {
	for i := range fields {
		fields[i].SortOrder = i
	}
}

// Move i konumundaki alanı bir yukarı (delta=-1) veya aşağı (delta=+1)
// taşır; sınır dışı taşıma listeyi değiştirmez. Her taşıma sonrası
// sort_order yeniden sıkıştırılır.
func Move(fields []models.FormField, i, delta int) {
	j := i + delta
	if i < 0 || i >= len(fields) || j < 0 || j >= len(fields) {
		return
	}
	fields[i], fields[j] = fields[j], fields[i]
	Compact(fields)
}
