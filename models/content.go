package models

import "time"

// Haber, ürün ve staj ilanları: düz içerik tabloları.

type News struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CoverURL  *string   `gorm:"size:500" json:"cover_url"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedBy *uint     `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (News) TableName() string { return "news" }

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`
	Available   bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

type Internship struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Company     string     `gorm:"size:255;not null" json:"company"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	ApplyURL    *string    `gorm:"size:500" json:"apply_url"`
	Deadline    *time.Time `json:"deadline"`
	Published   bool       `gorm:"not null;default:true" json:"published"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Internship) TableName() string { return "internships" }
