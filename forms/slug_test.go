package forms

import "testing"

func TestDeriveName(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Ad Soyad", "ad_soyad"},
		{"E-Posta", "e_posta"},
		{"Telefon Numarası", "telefon_numarasi"},
		{"Öğrenci No", "ogrenci_no"},
		{"Şube / Bölüm", "sube_bolum"},
		{"ÇALIŞTIĞI KURUM", "calistigi_kurum"},
		{"  Üniversite  ", "universite"},
		{"soru---1", "soru_1"},
		{"123", "123"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := DeriveName(c.label); got != c.want {
			t.Errorf("DeriveName(%q) = %q, want %q", c.label, got, c.want)
		}
	}
}

func TestDeriveNameDeterministic(t *testing.T) {
	labels := []string{"Ad Soyad", "E-Posta Adresi", "Tişört Bedeni", "İletişim"}
	for _, l := range labels {
		first := DeriveName(l)
		if second := DeriveName(l); second != first {
			t.Errorf("DeriveName(%q) not deterministic: %q vs %q", l, first, second)
		}
		// çıktı yalnızca [a-z0-9_] ve uçlarda alt çizgi yok
		for i, r := range first {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
			if !ok {
				t.Errorf("DeriveName(%q) contains %q", l, r)
			}
			if r == '_' && (i == 0 || i == len(first)-1) {
				t.Errorf("DeriveName(%q) = %q has edge underscore", l, first)
			}
		}
	}
}

func TestDeriveNameIdempotent(t *testing.T) {
	for _, l := range []string{"Ad Soyad", "Görüşleriniz (varsa)", "x  y  z"} {
		once := DeriveName(l)
		if twice := DeriveName(once); twice != once {
			t.Errorf("DeriveName not idempotent for %q: %q -> %q", l, once, twice)
		}
	}
}
