package models

import (
	"time"
)

type Branch struct {
	ID           string    `json:"uid" gorm:"primaryKey"` // caller-supplied branch id
	Announcement string    `json:"announcement"`
	BannerImages []string  `json:"banner_images" gorm:"serializer:json"`
	Delivery     float64   `json:"delivery"`
	KmCharge     float64   `json:"kmcharge"`
	MinAmount    float64   `json:"min_amount"`
	Online       bool      `json:"online"`
	Packing      float64   `json:"packing"`
	Phone        string    `json:"phone"`
	Pincode      string    `json:"pincode"`
	Policy       string    `json:"policy"`
	Radius       string    `json:"radius"`
	Range        float64   `json:"range"`
	Service      float64   `json:"service"`
	StoreLat     string    `json:"store_lat"`
	StoreLon     string    `json:"store_lon"`
	StoreCate    string    `json:"storecate"`
	StoreName    string    `json:"storename"`
	StoreUID     string    `json:"storeuid"`
	Tax          float64   `json:"tax"`
	UpdatedAt    time.Time `json:"timestamp"`
}
