package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/models"
	"delivery_admin/pkg/objectstore"
)

type fakeBranchRepo struct {
	branches map[string]*models.Branch
}

func newFakeBranchRepo(branches ...models.Branch) *fakeBranchRepo {
	m := make(map[string]*models.Branch, len(branches))
	for i := range branches {
		b := branches[i]
		m[b.ID] = &b
	}
	return &fakeBranchRepo{branches: m}
}

func (f *fakeBranchRepo) GetAll(ctx context.Context) ([]models.Branch, error) {
	var out []models.Branch
	for _, b := range f.branches {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBranchRepo) GetByID(ctx context.Context, id string) (*models.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBranchRepo) Set(ctx context.Context, branch *models.Branch) error {
	cp := *branch
	f.branches[branch.ID] = &cp
	return nil
}

func (f *fakeBranchRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (f *fakeBranchRepo) UpdateBannerImages(ctx context.Context, id string, images []string) error {
	if b, ok := f.branches[id]; ok {
		b.BannerImages = images
	}
	return nil
}

func (f *fakeBranchRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.branches)), nil
}

func newTestStore(t *testing.T) (*objectstore.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{}}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	return objectstore.NewClient(srv.URL, "user", "pass", "assets"), srv
}

func TestUploadAndDeleteBanner(t *testing.T) {
	logger.Init()
	store, srv := newTestStore(t)
	defer srv.Close()

	repo := newFakeBranchRepo(models.Branch{ID: "b1", BannerImages: []string{}})
	svc := NewBannerService(repo, store)

	url, err := svc.UploadBanner(context.Background(), "b1", ImageUpload{
		Filename:    "promo.png",
		ContentType: "image/png",
		Data:        []byte("fake-image"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url == "" {
		t.Fatal("upload returned an empty URL")
	}

	banners, err := svc.BannerImages(context.Background(), "b1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(banners) != 1 || banners[0] != url {
		t.Errorf("banners = %v, want [%s]", banners, url)
	}

	if err := svc.DeleteBanner(context.Background(), "b1", url); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	banners, _ = svc.BannerImages(context.Background(), "b1")
	if len(banners) != 0 {
		t.Errorf("banners after delete = %v, want empty", banners)
	}
}

func TestBannerImagesMissingBranch(t *testing.T) {
	store, srv := newTestStore(t)
	defer srv.Close()
	svc := NewBannerService(newFakeBranchRepo(), store)

	banners, err := svc.BannerImages(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("missing branch must not be an error, got %v", err)
	}
	if len(banners) != 0 {
		t.Errorf("banners = %v, want empty", banners)
	}
}

func TestUploadBannerRequiresBranch(t *testing.T) {
	store, srv := newTestStore(t)
	defer srv.Close()
	svc := NewBannerService(newFakeBranchRepo(), store)

	if _, err := svc.UploadBanner(context.Background(), "", ImageUpload{Filename: "x.png"}); err == nil {
		t.Error("blank branch id must be rejected")
	}
}
