package models

import "time"

type FormResponse struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FormID          string    `gorm:"size:150;not null;index:idx_resp_form,priority:1" json:"form_id"`
	FormType        string    `gorm:"size:30;not null;index:idx_resp_form,priority:2" json:"form_type"`
	SubmittedAt     time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	RespondentName  string    `gorm:"size:255;not null;default:'Anonim'" json:"respondent_name"`
	RespondentEmail *string   `gorm:"size:255" json:"respondent_email"`
	// Alan adı -> değer eşlemesi; string, []string veya dosya alanları için
	// "<name>": dosya adı + "<name>_file": data-URL ikilisi. TEXT olarak saklanır.
	PayloadJSON string `gorm:"column:payload_json;type:text;not null" json:"-"`
}

func (FormResponse) TableName() string {
	return "form_responses"
}
