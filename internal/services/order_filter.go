package services

import (
	"delivery_admin/internal/models"
)

// FilterOrders applies the status, partner and store predicates as a
// conjunction, preserving relative order. A blank value means no
// constraint for that field; status "All" is treated the same as blank.
func FilterOrders(orders []models.Order, status, partnerID, storeID string) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !statusMatches(o, status) {
			continue
		}
		if partnerID != "" && o.PartnerID != partnerID {
			continue
		}
		if storeID != "" && o.StoreID != storeID {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func statusMatches(o models.Order, status string) bool {
	if status == "" || status == string(models.OrderAll) {
		return true
	}
	return o.Status == status
}
