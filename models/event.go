package models

import "time"

const (
	EventUpcoming  = "upcoming"
	EventCancelled = "cancelled"
	EventCompleted = "completed"
)

type Event struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string     `gorm:"size:150;unique;not null" json:"slug"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"size:255" json:"location"`
	Latitude    *float64   `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64   `gorm:"column:longitude" json:"longitude"`
	StartTime   time.Time  `gorm:"not null" json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `gorm:"size:20;not null;default:'upcoming'" json:"status"`

	// Kayıt formu ayarları
	RequiresRegistration bool    `gorm:"not null;default:false" json:"requires_registration"`
	RegistrationOpen     bool    `gorm:"not null;default:true" json:"registration_open"`
	ClosureReason        *string `gorm:"size:255" json:"closure_reason"`
	MaxParticipants      *int    `json:"max_participants"`

	CoverURL  *string   `gorm:"size:500" json:"cover_url"`
	CreatedBy *uint     `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
