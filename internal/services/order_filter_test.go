package services

import (
	"testing"

	"delivery_admin/internal/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: "o1", Status: "Delivered", PartnerID: "p1", StoreID: "s1"},
		{ID: "o2", Status: "Pending", PartnerID: "p2", StoreID: "s1"},
		{ID: "o3", Status: "Delivered", PartnerID: "p1", StoreID: "s2"},
		{ID: "o4", Status: "Cancelled", PartnerID: "p2", StoreID: "s2"},
	}
}

func ids(orders []models.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterOrders(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		partner string
		store   string
		want    []string
	}{
		{"no filters", "", "", "", []string{"o1", "o2", "o3", "o4"}},
		{"status All is identity", "All", "", "", []string{"o1", "o2", "o3", "o4"}},
		{"status only", "Delivered", "", "", []string{"o1", "o3"}},
		{"partner only", "", "p2", "", []string{"o2", "o4"}},
		{"store only", "", "", "s1", []string{"o1", "o2"}},
		{"status and partner", "Delivered", "p1", "", []string{"o1", "o3"}},
		{"all three", "Delivered", "p1", "s2", []string{"o3"}},
		{"no match", "Pending", "p1", "", []string{}},
	}
	for _, tt := range tests {
		got := FilterOrders(sampleOrders(), tt.status, tt.partner, tt.store)
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("%s: FilterOrders = %v, want %v", tt.name, ids(got), tt.want)
		}
	}
}

// Applying all three filters at once must equal intersecting the three
// single-filter results, in the original order.
func TestFilterOrdersConjunction(t *testing.T) {
	orders := sampleOrders()
	combined := FilterOrders(orders, "Delivered", "p1", "s1")

	byStatus := FilterOrders(orders, "Delivered", "", "")
	thenPartner := FilterOrders(byStatus, "", "p1", "")
	thenStore := FilterOrders(thenPartner, "", "", "s1")

	if !equalIDs(ids(combined), ids(thenStore)) {
		t.Errorf("combined %v != sequential %v", ids(combined), ids(thenStore))
	}
}

// A blank filter value must mean "no constraint", not "match orders
// whose field is empty".
func TestFilterOrdersBlankIsNotEmptyMatch(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Status: "Delivered", PartnerID: "", StoreID: "s1"},
		{ID: "o2", Status: "Pending", PartnerID: "p1", StoreID: ""},
	}
	got := FilterOrders(orders, "", "", "")
	if len(got) != 2 {
		t.Errorf("blank filters returned %d orders, want 2", len(got))
	}
}

func TestFilterOrdersPreservesOrder(t *testing.T) {
	got := FilterOrders(sampleOrders(), "", "p1", "")
	if !equalIDs(ids(got), []string{"o1", "o3"}) {
		t.Errorf("relative order not preserved: %v", ids(got))
	}
}
