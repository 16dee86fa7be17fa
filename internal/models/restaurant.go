package models

import (
	"time"
)

type Restaurant struct {
	ID           string    `json:"id" gorm:"primaryKey"` // custom id supplied on create
	BranchID     string    `json:"branch_id" gorm:"index;not null"`
	StoreName    string    `json:"storename"`
	Details      string    `json:"details"`
	Address      string    `json:"address"`
	MapAddress   string    `json:"mapaddress"`
	MapPin       string    `json:"mappin"`
	Sublocality  string    `json:"sublocality"`
	Announcement string    `json:"announcement"`
	BannerImages []string  `json:"banner_images" gorm:"serializer:json"`
	Category     string    `json:"category"`
	Feature      string    `json:"feature"`
	Image        string    `json:"image"`
	Delivery     float64   `json:"delivery"`
	KmCharge     float64   `json:"kmcharge"`
	MinAmount    float64   `json:"min_amount"`
	Packing      float64   `json:"packing"`
	Service      float64   `json:"service"`
	Tax          float64   `json:"tax"`
	Range        float64   `json:"range"`
	Rating       float64   `json:"rating"`
	Phone        string    `json:"phone"`
	Pincode      string    `json:"pincode"`
	Policy       string    `json:"policy"`
	StoreLat     string    `json:"store_lat"`
	StoreLon     string    `json:"store_lon"`
	StoreUID     string    `json:"storeuid"`
	Active       bool      `json:"active"`
	Online       bool      `json:"online"`
	Premium      bool      `json:"premium"`
	Show         bool      `json:"show"`
	CreatedAt    time.Time `json:"created_timestamp"`
}
