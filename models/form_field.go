package models

// FormField bir dinamik formun tek bir alan tanımı. Form sahibi
// (form_id, form_type) çiftidir; aynı form_id farklı türlerde çakışmaz.
type FormField struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FormID    string `gorm:"size:150;not null;index:idx_form,priority:1;uniqueIndex:idx_form_name,priority:1" json:"form_id"`
	FormType  string `gorm:"size:30;not null;index:idx_form,priority:2;uniqueIndex:idx_form_name,priority:2" json:"form_type"`
	FieldType string `gorm:"size:20;not null" json:"field_type"`
	Label     string `gorm:"size:255;not null" json:"label"`
	// Name etiketten türetilir (forms.DeriveName), elle düzenlenmez. Form
	// içinde benzersizliği count kontrolüne ek olarak şema da garanti eder.
	Name      string `gorm:"size:255;not null;uniqueIndex:idx_form_name,priority:3" json:"name"`
	Required  bool   `gorm:"not null;default:false" json:"required"`
	// Seçenekler satır satır TEXT olarak saklanır; yalnızca select/radio/checkbox için dolu.
	Options   string `gorm:"type:text" json:"options"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (FormField) TableName() string {
	return "form_fields"
}
