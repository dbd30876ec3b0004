package controllers

import (
	"strings"
	"testing"
)

func TestValidateFieldReq(t *testing.T) {
	cases := []struct {
		name    string
		req     fieldReq
		wantErr string
	}{
		{"valid text", fieldReq{FieldType: "text", Label: "Ad Soyad"}, ""},
		{"blank label", fieldReq{FieldType: "text", Label: "  "}, "Etiket zorunludur"},
		{"unknown type", fieldReq{FieldType: "slider", Label: "Puan"}, "Alan türü geçersiz"},
		{"select without options", fieldReq{FieldType: "select", Label: "Sınıf"}, "seçenekler zorunludur"},
		// "Excel File" -> excel_file: dosya eşleme son ekiyle çakışır
		{"reserved suffix", fieldReq{FieldType: "text", Label: "Excel File"}, "kullanılamaz"},
	}
	for _, c := range cases {
		_, _, err := validateFieldReq(c.req)
		if c.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", c.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), c.wantErr) {
			t.Errorf("%s: err = %v, want it to contain %q", c.name, err, c.wantErr)
		}
	}
}
