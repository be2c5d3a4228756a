package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storekit/commerce-api/internal/core/domain"
)

func TestCategoryService_CreateAndList(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.CreateCategory(context.Background(), "Accessories", "uploads/acc.png")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Name != "Accessories" || created.Image != "uploads/acc.png" {
		t.Fatalf("unexpected category: %+v", created)
	}

	all, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(all))
	}
}

func TestCategoryService_Create_RequiresName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.CreateCategory(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryService_Update(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	updated, err := svc.UpdateCategory(context.Background(), "cat_1", "Shoes", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Shoes" {
		t.Fatalf("name not updated: %+v", updated)
	}

	if _, err := svc.UpdateCategory(context.Background(), "cat_missing", "X", ""); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_Delete(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	if err := svc.DeleteCategory(context.Background(), "cat_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), "cat_1"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
