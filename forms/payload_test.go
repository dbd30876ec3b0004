package forms

import (
	"reflect"
	"sort"
	"testing"
)

func TestDecodePayloadShapes(t *testing.T) {
	raw := map[string]any{
		"ad_soyad":      "Ayşe Yılmaz",
		"ilgi_alanlari": []any{"Yazılım", "Donanım"},
		"cv":            "cv.pdf",
		"cv_file":       "data:application/pdf;base64,QUJD",
		"bos":           nil,
	}
	p, err := DecodePayload(raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}

	if v := p["ad_soyad"]; v.Kind != KindString || v.Str != "Ayşe Yılmaz" {
		t.Errorf("ad_soyad = %+v", v)
	}
	if v := p["ilgi_alanlari"]; v.Kind != KindList || len(v.List) != 2 {
		t.Errorf("ilgi_alanlari = %+v", v)
	}
	if v := p["cv"]; v.Kind != KindFile || v.File.Filename != "cv.pdf" || v.File.Data == "" {
		t.Errorf("cv = %+v", v)
	}
	if _, ok := p["bos"]; ok {
		t.Error("null value should be dropped")
	}
	if _, ok := p["cv_file"]; ok {
		t.Error("_file sibling should be merged, not kept")
	}
}

func TestDecodePayloadOrphanFileKey(t *testing.T) {
	_, err := DecodePayload(map[string]any{"cv_file": "data:;base64,QUJD"})
	if err == nil {
		t.Fatal("orphan _file key must be rejected")
	}
}

func TestPayloadEncodeRoundTrip(t *testing.T) {
	p := Payload{
		"ad_soyad": {Kind: KindString, Str: "Ali"},
		"bedenler": {Kind: KindList, List: []string{"S", "M"}},
		"cv":       {Kind: KindFile, File: FileValue{Filename: "cv.pdf", Data: "data:;base64,QUJD"}},
	}

	text, err := p.EncodeText()
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	back, err := ParsePayloadText(text)
	if err != nil {
		t.Fatalf("ParsePayloadText: %v", err)
	}
	if !reflect.DeepEqual(back, p) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, p)
	}
}

// Checkbox'ta bir seçeneği açıp kapatmak listeyi başlangıç kümesine döndürür.
func TestCheckboxToggleRoundTrip(t *testing.T) {
	toggle := func(list []string, option string) []string {
		for i, o := range list {
			if o == option {
				return append(list[:i], list[i+1:]...)
			}
		}
		return append(list, option)
	}

	original := []string{"B", "C"}
	list := append([]string(nil), original...)
	list = toggle(list, "A")
	list = toggle(list, "A")

	sort.Strings(list)
	want := append([]string(nil), original...)
	sort.Strings(want)
	if !reflect.DeepEqual(list, want) {
		t.Errorf("toggle round trip: %v, want %v", list, want)
	}
}

func TestFileValueDecodedSize(t *testing.T) {
	cases := []struct {
		data string
		want int
	}{
		{"data:text/plain;base64,QUJD", 3},     // "ABC"
		{"data:text/plain;base64,QUI=", 2},     // "AB"
		{"data:text/plain;base64,QQ==", 1},     // "A"
		{"", 0},
	}
	for _, c := range cases {
		f := FileValue{Data: c.data}
		if got := f.DecodedSize(); got != c.want {
			t.Errorf("DecodedSize(%q) = %d, want %d", c.data, got, c.want)
		}
	}
}

func TestReservedName(t *testing.T) {
	if !ReservedName("cv_file") {
		t.Error("_file suffix should be reserved")
	}
	if !ReservedName(DeriveName("Excel File")) {
		t.Error("derived names colliding with the suffix should be reserved")
	}
	if ReservedName("profil_fotografi") {
		t.Error("ordinary names should not be reserved")
	}
}
