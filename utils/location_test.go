package utils

import "testing"

func TestParseLatLng(t *testing.T) {
	cases := []struct {
		in       string
		lat, lng float64
		ok       bool
	}{
		{"https://www.google.com/maps/@41.015137,28.979530,15z", 41.015137, 28.979530, true},
		{"https://maps.google.com/?q=39.925533,32.866287", 39.925533, 32.866287, true},
		{"https://www.google.com/maps?ll=38.423733,27.142826&z=12", 38.423733, 27.142826, true},
		{"41.0082, 28.9784", 41.0082, 28.9784, true},
		{"41.0082 28.9784", 41.0082, 28.9784, true},
		{"-33.868820, 151.209290", -33.868820, 151.209290, true},
		{"Taksim Meydanı", 0, 0, false},
		{"", 0, 0, false},
		{"99.9, 28.9", 0, 0, false},   // enlem aralık dışı
		{"41.0, 190.5", 0, 0, false},  // boylam aralık dışı
	}
	for _, c := range cases {
		lat, lng, ok := ParseLatLng(c.in)
		if ok != c.ok {
			t.Errorf("ParseLatLng(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && (lat != c.lat || lng != c.lng) {
			t.Errorf("ParseLatLng(%q) = %v,%v want %v,%v", c.in, lat, lng, c.lat, c.lng)
		}
	}
}
