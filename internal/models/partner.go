package models

import (
	"time"
)

// Partner is a delivery partner attached to a store.
type Partner struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	PartnerID  string    `json:"partner_id" gorm:"index"`
	DrivingLic string    `json:"partner_dl"`
	StoreID    string    `json:"store_id" gorm:"index"`
	StoreName  string    `json:"storename"`
	Phone      string    `json:"phone"`
	Pincode    string    `json:"pincode"`
	PartnerLat string    `json:"partner_lat"`
	PartnerLon string    `json:"partner_lon"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_timestamp"`
}
