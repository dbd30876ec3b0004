package forms

import (
	"fmt"
	"time"

	"github.com/kulupnet/kulup-server/models"
)

// Eligibility etkinlik kayıt formunun açılıp açılamayacağı.
type Eligibility struct {
	Open      bool   `json:"open"`
	Reason    string `json:"reason,omitempty"`
	Count     int    `json:"count"`
	Capacity  *int   `json:"capacity,omitempty"`
	Remaining *int   `json:"remaining,omitempty"`
}

// CheckEligibility koşulları sırayla dener ve ilk tutan kapatma nedeniyle
// döner; hiçbiri tutmazsa kayıt açıktır. Kontenjan sayımı çağıranın verdiği
// anlık yanıt sayısıdır; atomik artış yoktur, son yazan kazanır.
func CheckEligibility(ev models.Event, responseCount int, now time.Time) Eligibility {
	e := Eligibility{Count: responseCount, Capacity: ev.MaxParticipants}

	if !ev.RequiresRegistration {
		e.Reason = "Bu etkinlik için kayıt gerekmiyor"
		return e
	}
	if !ev.RegistrationOpen {
		e.Reason = "Kayıtlar kapatıldı"
		if ev.ClosureReason != nil && *ev.ClosureReason != "" {
			e.Reason = *ev.ClosureReason
		}
		return e
	}

	deadline := ev.StartTime
	if ev.EndTime != nil {
		deadline = *ev.EndTime
	}
	if deadline.Before(now) {
		e.Reason = "Etkinlik sona erdi"
		return e
	}

	if ev.Status == models.EventCancelled || ev.Status == models.EventCompleted {
		e.Reason = "Etkinlik kayıt almıyor"
		return e
	}

	if ev.MaxParticipants != nil && responseCount >= *ev.MaxParticipants {
		e.Reason = fmt.Sprintf("Kontenjan doldu (%d/%d)", responseCount, *ev.MaxParticipants)
		return e
	}

	e.Open = true
	if ev.MaxParticipants != nil {
		r := *ev.MaxParticipants - responseCount
		e.Remaining = &r
	}
	return e
}
