package models

import (
	"time"
)

type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	BranchIDs   []string  `json:"branch_ids" gorm:"serializer:json"`
	Image       string    `json:"image"`
	Tag         string    `json:"tag"`
	Show        bool      `json:"show"`
	CreatedAt   time.Time `json:"created_timestamp"`
}

type Subcategory struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	CategoryName string    `json:"catname" gorm:"index"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Show         bool      `json:"show"`
	CreatedAt    time.Time `json:"created_timestamp"`
}

// Product keeps price, stock and discount as strings to match the
// upstream document format the mobile apps read.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	Stock         string    `json:"stock"`
	Discount      string    `json:"discount"`
	Image         string    `json:"image"`
	FeatureImages []string  `json:"feature_images" gorm:"serializer:json"`
	Branch        string    `json:"branch" gorm:"index"`
	Category      string    `json:"category" gorm:"index"`
	Subcategory   string    `json:"subcategory"`
	ItemCategory  string    `json:"itemcategory"`
	Show          bool      `json:"show"`
	Available     bool      `json:"available"`
	Latest        bool      `json:"latest"`
	Sponsored     bool      `json:"sponsored"`
	Option        bool      `json:"option"`
	CreatedAt     time.Time `json:"timestamp"`
}
