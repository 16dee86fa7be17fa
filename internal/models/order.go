package models

import (
	"time"
)

// Order is created by the customer-facing ordering system; the admin
// console only reads orders and transitions their status. Monetary
// fields arrive as decimal-formatted strings and are kept that way.
type Order struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	OrderNumber    string    `json:"order_number"`
	OrderPlaceDate time.Time `json:"order_place_date" gorm:"index;not null"`
	UID            string    `json:"uid"`
	CustomerName   string    `json:"customer_name"`
	CustomerNumber string    `json:"customer_number"`
	CustomerAddr   string    `json:"customer_address"`
	StoreName      string    `json:"customer_store"`
	StoreID        string    `json:"customer_store_uid" gorm:"index"`
	Latitude       string    `json:"lattitude"`
	Longitude      string    `json:"longitude"`
	StoreLat       string    `json:"store_lat"`
	StoreLon       string    `json:"store_lon"`
	Partner        string    `json:"partner"`
	PartnerID      string    `json:"dp_id" gorm:"index"`
	TotalPrice     string    `json:"total_price"`
	DeliveryCharge string    `json:"delivery_charge"`
	Tax            string    `json:"tax"`
	Service        string    `json:"service"`
	Packing        string    `json:"packing"`
	Distance       float64   `json:"distance"`
	Status         string    `json:"status"` // Delivered, Pending, Cancelled
	Payment        string    `json:"payment"`
	PaymentStatus  string    `json:"payment_status"`
	Zone           string    `json:"xone" gorm:"index;not null"`
	Active         bool      `json:"active"`
}

type OrderItem struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrderID  string `json:"order_id" gorm:"index;not null"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}

type OrderStatus string

const (
	OrderDelivered OrderStatus = "Delivered"
	OrderPending   OrderStatus = "Pending"
	OrderCancelled OrderStatus = "Cancelled"
	// OrderAll is the unfiltered sentinel used by list filters, never stored.
	OrderAll OrderStatus = "All"
)
