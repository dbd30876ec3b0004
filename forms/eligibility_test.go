package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/kulupnet/kulup-server/models"
)

func futureEvent() models.Event {
	end := time.Now().Add(48 * time.Hour)
	return models.Event{
		Slug:                 "hackathon-2026",
		Title:                "Hackathon",
		StartTime:            time.Now().Add(24 * time.Hour),
		EndTime:              &end,
		Status:               models.EventUpcoming,
		RequiresRegistration: true,
		RegistrationOpen:     true,
	}
}

func TestEligibilityOpen(t *testing.T) {
	e := CheckEligibility(futureEvent(), 0, time.Now())
	if !e.Open {
		t.Fatalf("expected open, got reason %q", e.Reason)
	}
}

func TestEligibilityNoRegistration(t *testing.T) {
	ev := futureEvent()
	ev.RequiresRegistration = false
	if e := CheckEligibility(ev, 0, time.Now()); e.Open {
		t.Fatal("registration-free event must not open the form")
	}
}

func TestEligibilityManuallyClosed(t *testing.T) {
	ev := futureEvent()
	ev.RegistrationOpen = false
	reason := "Salon kapasitesi nedeniyle"
	ev.ClosureReason = &reason

	e := CheckEligibility(ev, 0, time.Now())
	if e.Open || e.Reason != reason {
		t.Fatalf("expected custom closure reason, got %+v", e)
	}
}

func TestEligibilityPastEvent(t *testing.T) {
	ev := futureEvent()
	past := time.Now().Add(-time.Hour)
	ev.EndTime = &past
	if e := CheckEligibility(ev, 0, time.Now()); e.Open {
		t.Fatal("ended event must be closed")
	}

	// bitiş yoksa başlangıç esas alınır
	ev = futureEvent()
	ev.EndTime = nil
	ev.StartTime = time.Now().Add(-time.Hour)
	if e := CheckEligibility(ev, 0, time.Now()); e.Open {
		t.Fatal("started event without end time must be closed")
	}
}

func TestEligibilityStatus(t *testing.T) {
	for _, status := range []string{models.EventCancelled, models.EventCompleted} {
		ev := futureEvent()
		ev.Status = status
		if e := CheckEligibility(ev, 0, time.Now()); e.Open {
			t.Errorf("status %s must close registration", status)
		}
	}
}

func TestEligibilityCapacityBoundary(t *testing.T) {
	cap := 50
	ev := futureEvent()
	ev.MaxParticipants = &cap

	// tam dolu: kapalı, sayaç N/N
	e := CheckEligibility(ev, 50, time.Now())
	if e.Open {
		t.Fatal("at capacity must be closed")
	}
	if !strings.Contains(e.Reason, "50/50") {
		t.Errorf("reason should show 50/50: %q", e.Reason)
	}

	// bir eksik: açık, 1 kişilik yer
	e = CheckEligibility(ev, 49, time.Now())
	if !e.Open {
		t.Fatalf("one below capacity must be open, got %q", e.Reason)
	}
	if e.Remaining == nil || *e.Remaining != 1 {
		t.Errorf("remaining = %v, want 1", e.Remaining)
	}

	// aşım da kapalı
	if e := CheckEligibility(ev, 51, time.Now()); e.Open {
		t.Fatal("over capacity must be closed")
	}
}
