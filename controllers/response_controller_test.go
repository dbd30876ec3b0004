package controllers

import "testing"

func TestSanitizePayloadStripsFileData(t *testing.T) {
	payload := map[string]any{
		"ad_soyad": "Ayşe Yılmaz",
		"cv":       "cv.pdf",
		"cv_file":  "data:application/pdf;base64,AAAA",
	}

	out := sanitizePayload(payload)
	if _, ok := out["cv_file"]; ok {
		t.Error("data-URL body should not reach the listing")
	}
	if out["cv"] != "cv.pdf" || out["ad_soyad"] != "Ayşe Yılmaz" {
		t.Errorf("other keys should stay untouched: %v", out)
	}
}
