package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kulupnet/kulup-server/models"
)

// Dosya alanları için çözülmüş boyut sınırı.
const MaxFileBytes = 5 << 20

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// +90 veya 0 öneki isteğe bağlı, ilk hane 5-9, toplam 10 hane
	phoneRe = regexp.MustCompile(`^(\+90|0)?[5-9][0-9]{9}$`)
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate payload'ı güncel alan tanımlarına karşı doğrular ve TÜM ihlalleri
// toplar; ilkinde durmaz. Tanımı olmayan payload anahtarları (silinmiş
// alanların yetim değerleri) hata sayılmaz.
func Validate(fields []models.FormField, p Payload) []Violation {
	var out []Violation

	for _, f := range fields {
		v, present := p[f.Name]

		if f.Required && isEmpty(f, v, present) {
			out = append(out, Violation{
				Field:   f.Name,
				Message: fmt.Sprintf("%s alanı zorunludur", f.Label),
			})
			continue
		}
		if !present {
			continue
		}

		// bilinmeyen türler düz metin gibi davranır
		switch f.FieldType {
		case FieldEmail:
			if s := strings.TrimSpace(v.Str); s != "" && !emailRe.MatchString(s) {
				out = append(out, Violation{
					Field:   f.Name,
					Message: fmt.Sprintf("%s geçerli bir e-posta olmalı", f.Label),
				})
			}
		case FieldTel:
			s := strings.Join(strings.Fields(v.Str), "")
			if s != "" && !phoneRe.MatchString(s) {
				out = append(out, Violation{
					Field:   f.Name,
					Message: fmt.Sprintf("%s geçerli bir telefon numarası olmalı", f.Label),
				})
			}
		case FieldNumber:
			if s := strings.TrimSpace(v.Str); s != "" {
				if _, err := strconv.ParseFloat(s, 64); err != nil {
					out = append(out, Violation{
						Field:   f.Name,
						Message: fmt.Sprintf("%s sayı olmalı", f.Label),
					})
				}
			}
		case FieldFile:
			switch {
			case v.Kind == KindFile:
				if v.File.DecodedSize() > MaxFileBytes {
					out = append(out, Violation{
						Field:   f.Name,
						Message: fmt.Sprintf("%s için dosya 5 MB'ı aşamaz", f.Label),
					})
				}
			case strings.TrimSpace(v.Str) != "" || len(v.List) > 0:
				// dosya adı içeriksiz gelemez; ikisi birlikte gelir ya da hiç gelmez
				out = append(out, Violation{
					Field:   f.Name,
					Message: fmt.Sprintf("%s için dosya içeriği eksik", f.Label),
				})
			}
		}
	}
	return out
}

func isEmpty(f models.FormField, v Value, present bool) bool {
	if !present {
		return true
	}
	switch f.FieldType {
	case FieldCheckbox:
		return len(v.List) == 0
	case FieldFile:
		return v.Kind != KindFile || v.File.Data == ""
	default:
		if v.Kind == KindList {
			return len(v.List) == 0
		}
		return strings.TrimSpace(v.Str) == ""
	}
}

// Kullanıcıya en fazla ilk 3 ihlal gösterilir, kalanı sayıyla özetlenir.
const maxShownViolations = 3

func FormatViolations(vs []Violation) string {
	if len(vs) == 0 {
		return ""
	}
	shown := len(vs)
	if shown > maxShownViolations {
		shown = maxShownViolations
	}
	msgs := make([]string, 0, shown+1)
	for _, v := range vs[:shown] {
		msgs = append(msgs, v.Message)
	}
	if rest := len(vs) - shown; rest > 0 {
		msgs = append(msgs, fmt.Sprintf("ve %d hata daha", rest))
	}
	return strings.Join(msgs, "\n")
}
