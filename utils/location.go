package utils

import (
	"regexp"
	"strconv"
)

// Yapıştırılan harita linklerinden veya "enlem, boylam" metninden koordinat
// çıkarır. Desteklenenler: Google Maps @lat,lng ve q=lat,lng biçimleri ile
// düz "lat, lng" / "lat lng" girdisi.
var (
	atCoordRe    = regexp.MustCompile(`@(-?\d{1,2}\.\d+),(-?\d{1,3}\.\d+)`)
	queryCoordRe = regexp.MustCompile(`[?&](?:q|query|ll)=(-?\d{1,2}\.\d+),(-?\d{1,3}\.\d+)`)
	plainCoordRe = regexp.MustCompile(`^\s*(-?\d{1,2}\.\d+)\s*[, ]\s*(-?\d{1,3}\.\d+)\s*$`)
)

// ParseLatLng metinden (enlem, boylam) çıkarır; bulunamaz veya aralık
// dışıysa ok=false döner.
func ParseLatLng(text string) (lat, lng float64, ok bool) {
	for _, re := range []*regexp.Regexp{atCoordRe, queryCoordRe, plainCoordRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lng, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			continue
		}
		return lat, lng, true
	}
	return 0, 0, false
}
