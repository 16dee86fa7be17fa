package services

import (
	"testing"

	"delivery_admin/internal/models"
)

func TestFilterCategoriesByBranch(t *testing.T) {
	categories := []models.Category{
		{ID: "c1", BranchIDs: []string{"b1", "b2"}},
		{ID: "c2", BranchIDs: []string{"b2"}},
		{ID: "c3", BranchIDs: nil},
	}

	got := filterCategoriesByBranch(categories, "b1")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("filterCategoriesByBranch(b1) = %v, want [c1]", got)
	}
	if got := filterCategoriesByBranch(categories, "b9"); len(got) != 0 {
		t.Errorf("unknown branch returned %v, want empty", got)
	}
}

func TestSearchCategoryList(t *testing.T) {
	categories := []models.Category{
		{ID: "c1", Title: "Fresh Vegetables", Tag: "3"},
		{ID: "c2", Title: "Bakery", Tag: "12"},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"c1", "c2"}},
		{"vege", []string{"c1"}},
		{"BAKERY", []string{"c2"}},
		{"3", []string{"c1"}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		got := SearchCategoryList(categories, tt.search)
		if len(got) != len(tt.want) {
			t.Errorf("search %q: got %d results, want %d", tt.search, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("search %q: result[%d] = %s, want %s", tt.search, i, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestSearchSubcategoryList(t *testing.T) {
	subcategories := []models.Subcategory{
		{ID: "s1", Title: "Leafy Greens", CategoryName: "vegetables"},
		{ID: "s2", Title: "Bread", CategoryName: "bakery"},
	}

	if got := SearchSubcategoryList(subcategories, "leafy"); len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("title search = %v, want [s1]", got)
	}
	if got := SearchSubcategoryList(subcategories, "bakery"); len(got) != 1 || got[0].ID != "s2" {
		t.Errorf("category-name search = %v, want [s2]", got)
	}
	if got := SearchSubcategoryList(subcategories, ""); len(got) != 2 {
		t.Errorf("blank search = %v, want both", got)
	}
}

func TestSearchRestaurantList(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: "r1", StoreName: "Spice Garden"},
		{ID: "r2", StoreName: "Noodle House"},
	}

	if got := SearchRestaurantList(restaurants, "spice"); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("name search = %v, want [r1]", got)
	}
	// Exact id matches even when the name does not.
	if got := SearchRestaurantList(restaurants, "r2"); len(got) != 1 || got[0].ID != "r2" {
		t.Errorf("id search = %v, want [r2]", got)
	}
	if got := SearchRestaurantList(restaurants, ""); len(got) != 2 {
		t.Errorf("blank search = %v, want both", got)
	}
}

func TestSearchPartnerList(t *testing.T) {
	partners := []models.Partner{
		{ID: "p1", StoreName: "Green Mart", PartnerID: "DP-100", Phone: "9876543210", Pincode: "600001"},
		{ID: "p2", StoreName: "City Foods", PartnerID: "DP-200", Phone: "9123456780", Pincode: "600042"},
	}

	tests := []struct {
		search string
		want   string
	}{
		{"green", "p1"},
		{"dp-200", "p2"},
		{"98765", "p1"},
		{"600042", "p2"},
	}
	for _, tt := range tests {
		got := SearchPartnerList(partners, tt.search)
		if len(got) != 1 || got[0].ID != tt.want {
			t.Errorf("search %q = %v, want [%s]", tt.search, got, tt.want)
		}
	}
	if got := SearchPartnerList(partners, ""); len(got) != 2 {
		t.Errorf("blank search returned %d, want 2", len(got))
	}
}

func TestSearchUserListByPhone(t *testing.T) {
	users := []models.AppUser{
		{ID: "u1", Phone: "9876543210"},
		{ID: "u2", Phone: "9123456780"},
	}

	if got := SearchUserListByPhone(users, "98765"); len(got) != 1 || got[0].ID != "u1" {
		t.Errorf("phone search = %v, want [u1]", got)
	}
	if got := SearchUserListByPhone(users, ""); len(got) != 2 {
		t.Errorf("blank search must return everyone, got %d", len(got))
	}
	if got := SearchUserListByPhone(users, "555"); len(got) != 0 {
		t.Errorf("no-match search = %v, want empty", got)
	}
}
