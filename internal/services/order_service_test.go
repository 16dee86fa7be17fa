package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"delivery_admin/internal/models"
)

// fakeOrderRepo keeps orders in memory and records the last query
// window it was asked for.
type fakeOrderRepo struct {
	orders    map[string]*models.Order
	lastStart time.Time
	lastEnd   time.Time
	failWith  error
}

func newFakeOrderRepo(orders ...models.Order) *fakeOrderRepo {
	m := make(map[string]*models.Order, len(orders))
	for i := range orders {
		o := orders[i]
		m[o.ID] = &o
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) GetByWindow(ctx context.Context, zone string, start, end time.Time) ([]models.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastStart, f.lastEnd = start, end
	var out []models.Order
	for _, o := range f.orders {
		if o.Zone != zone {
			continue
		}
		t := o.OrderPlaceDate
		if (t.Equal(start) || t.After(start)) && t.Before(end) {
			out = append(out, *o)
		}
	}
	// Same contract as the backing store: most recent first.
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderPlaceDate.After(out[j].OrderPlaceDate)
	})
	return out, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		t := o.OrderPlaceDate
		if !t.Before(start) && !t.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetDeliveredByRange(ctx context.Context, zone string, start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Zone != zone || o.Status != string(models.OrderDelivered) {
			continue
		}
		t := o.OrderPlaceDate
		if !t.Before(start) && !t.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	return []models.OrderItem{}, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) PublishStatusChange(ctx context.Context, orderID, status string) error {
	f.published = append(f.published, orderID+":"+status)
	return nil
}

func TestSearchOrderZoneIsolation(t *testing.T) {
	repo := newFakeOrderRepo(models.Order{ID: "x1", Zone: "A", Status: "Pending"})
	svc := NewOrderService(repo, nil)

	// Exact id lookup under the wrong zone must report not-found.
	_, err := svc.SearchOrder(context.Background(), "x1", "B")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-zone lookup: err = %v, want ErrNotFound", err)
	}

	order, err := svc.SearchOrder(context.Background(), "x1", "A")
	if err != nil {
		t.Fatalf("same-zone lookup failed: %v", err)
	}
	if order.ID != "x1" {
		t.Errorf("got order %q, want x1", order.ID)
	}
}

func TestSearchOrderMissing(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), nil)
	_, err := svc.SearchOrder(context.Background(), "missing", "A")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSearchOrderTransportFault(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.failWith = errors.New("backend unavailable")
	svc := NewOrderService(repo, nil)

	_, err := svc.SearchOrder(context.Background(), "x1", "A")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("transport fault must not be reported as not-found, got %v", err)
	}
}

func TestOrdersForDayWindow(t *testing.T) {
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	inDay := models.Order{ID: "in", Zone: "A", OrderPlaceDate: day.Add(10 * time.Hour)}
	atMidnight := models.Order{ID: "midnight", Zone: "A", OrderPlaceDate: day}
	nextMidnight := models.Order{ID: "next", Zone: "A", OrderPlaceDate: day.AddDate(0, 0, 1)}
	otherZone := models.Order{ID: "foreign", Zone: "B", OrderPlaceDate: day.Add(10 * time.Hour)}

	repo := newFakeOrderRepo(inDay, atMidnight, nextMidnight, otherZone)
	svc := NewOrderService(repo, nil)

	orders, err := svc.OrdersForDay(context.Background(), "A", day.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("OrdersForDay failed: %v", err)
	}

	if !repo.lastStart.Equal(day) {
		t.Errorf("window start = %v, want midnight %v", repo.lastStart, day)
	}
	if !repo.lastEnd.Equal(day.AddDate(0, 0, 1)) {
		t.Errorf("window end = %v, want next midnight %v", repo.lastEnd, day.AddDate(0, 0, 1))
	}

	got := make(map[string]bool, len(orders))
	for _, o := range orders {
		got[o.ID] = true
	}
	if !got["in"] || !got["midnight"] {
		t.Errorf("day window missed in-day orders: %v", got)
	}
	if got["next"] {
		t.Errorf("order at next midnight must fall outside the half-open window")
	}
	if got["foreign"] {
		t.Errorf("foreign-zone order leaked into the result")
	}
}

func TestOrdersForDayNewestFirst(t *testing.T) {
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		models.Order{ID: "morning", Zone: "A", OrderPlaceDate: day.Add(8 * time.Hour)},
		models.Order{ID: "evening", Zone: "A", OrderPlaceDate: day.Add(20 * time.Hour)},
		models.Order{ID: "noon", Zone: "A", OrderPlaceDate: day.Add(12 * time.Hour)},
	)
	svc := NewOrderService(repo, nil)

	orders, err := svc.OrdersForDay(context.Background(), "A", day)
	if err != nil {
		t.Fatalf("OrdersForDay failed: %v", err)
	}

	want := []string{"evening", "noon", "morning"}
	if len(orders) != len(want) {
		t.Fatalf("got %d orders, want %d", len(orders), len(want))
	}
	for i, id := range want {
		if orders[i].ID != id {
			t.Errorf("orders[%d] = %q, want %q (most recent first)", i, orders[i].ID, id)
		}
	}
}

func TestCancelOrder(t *testing.T) {
	repo := newFakeOrderRepo(models.Order{ID: "x1", Zone: "A", Status: ""})
	pub := &fakePublisher{}
	svc := NewOrderService(repo, pub)

	if err := svc.CancelOrder(context.Background(), "x1"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	order, _ := svc.SearchOrder(context.Background(), "x1", "A")
	if order.Status != string(models.OrderCancelled) {
		t.Errorf("status = %q, want Cancelled", order.Status)
	}

	// Second cancel is accepted and leaves the status unchanged.
	if err := svc.CancelOrder(context.Background(), "x1"); err != nil {
		t.Fatalf("second cancel failed: %v", err)
	}
	order, _ = svc.SearchOrder(context.Background(), "x1", "A")
	if order.Status != string(models.OrderCancelled) {
		t.Errorf("status after double cancel = %q, want Cancelled", order.Status)
	}

	if len(pub.published) != 2 {
		t.Errorf("published %d events, want 2", len(pub.published))
	}
}

func TestCancelOrderEmptyID(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, &fakePublisher{})

	if err := svc.CancelOrder(context.Background(), ""); err == nil {
		t.Error("empty order id must be rejected before any write")
	}
}

func TestMonthlyTotalsDeliveredOnly(t *testing.T) {
	day := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		models.Order{ID: "d1", Zone: "A", Status: "Delivered", OrderPlaceDate: day, TotalPrice: "100"},
		models.Order{ID: "p1", Zone: "A", Status: "Pending", OrderPlaceDate: day, TotalPrice: "999"},
		models.Order{ID: "d2", Zone: "B", Status: "Delivered", OrderPlaceDate: day, TotalPrice: "500"},
	)
	svc := NewOrderService(repo, nil)

	series, err := svc.MonthlyTotals(context.Background(), "A",
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthlyTotals failed: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("got %d buckets, want 1", len(series))
	}
	if series[0].Date != "2025-08-01" || series[0].TotalPrice != 100.0 {
		t.Errorf("series[0] = %+v, want {2025-08-01 100}", series[0])
	}
}

func TestTotalsForRange(t *testing.T) {
	day := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		models.Order{ID: "d1", Zone: "A", Status: "Delivered", OrderPlaceDate: day, TotalPrice: "100", DeliveryCharge: "10"},
		models.Order{ID: "d2", Zone: "A", Status: "Delivered", OrderPlaceDate: day, TotalPrice: "50", DeliveryCharge: "oops"},
	)
	svc := NewOrderService(repo, nil)

	totals, err := svc.TotalsForRange(context.Background(), "A",
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("TotalsForRange failed: %v", err)
	}
	if totals.TotalPrice != 150.0 {
		t.Errorf("TotalPrice = %v, want 150.0", totals.TotalPrice)
	}
	if totals.TotalDeliveryCharge != 10.0 {
		t.Errorf("TotalDeliveryCharge = %v, want 10.0", totals.TotalDeliveryCharge)
	}
}
