package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/smesiteli/storefront/internal/catalog/domain"
	"github.com/smesiteli/storefront/internal/catalog/repository"
	"github.com/smesiteli/storefront/internal/platform/logger"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

type CatalogService interface {
	ListCategories(ctx context.Context) []domain.Category
	FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListProducts(ctx context.Context) []domain.Product
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, categorySlug string) []domain.Product
	GetAvailableProducts(ctx context.Context) []domain.Product
	Refresh(ctx context.Context) error
	Close()
}

// snapshot is an immutable view of the catalog. Queries scan it without
// locking the repository; Refresh swaps the whole snapshot at once.
type snapshot struct {
	categories []domain.Category
	products   []domain.Product
}

type catalogServiceImpl struct {
	repo      repository.CatalogRepository
	scheduler *cron.Cron

	mu   sync.RWMutex
	snap *snapshot
}

// NewCatalogService loads the initial snapshot from repo and, when
// refreshSpec is non-empty, schedules a periodic reload with that cron
// spec so database-backed deployments pick up catalog edits.
func NewCatalogService(repo repository.CatalogRepository, refreshSpec string) (CatalogService, error) {
	s := &catalogServiceImpl{repo: repo}
	if err := s.Refresh(context.Background()); err != nil {
		return nil, fmt.Errorf("initial catalog load failed: %w", err)
	}

	if refreshSpec != "" {
		s.scheduler = cron.New()
		if _, err := s.scheduler.AddFunc(refreshSpec, func() {
			if err := s.Refresh(context.Background()); err != nil {
				logger.Error("catalog refresh job failed", err)
			}
		}); err != nil {
			return nil, fmt.Errorf("invalid catalog refresh spec %q: %w", refreshSpec, err)
		}
		s.scheduler.Start()
		logger.Info("Catalog refresh scheduler initialized with spec %q", refreshSpec)
	}
	return s, nil
}

// Refresh reloads both sets from the repository and swaps the snapshot.
// On failure the previous snapshot stays in place.
func (s *catalogServiceImpl) Refresh(ctx context.Context) error {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = &snapshot{categories: categories, products: products}
	s.mu.Unlock()
	return nil
}

func (s *catalogServiceImpl) Close() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *catalogServiceImpl) snapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) []domain.Category {
	snap := s.snapshot()
	out := make([]domain.Category, len(snap.categories))
	copy(out, snap.categories)
	return out
}

func (s *catalogServiceImpl) FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for _, c := range s.snapshot().categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) []domain.Product {
	snap := s.snapshot()
	out := make([]domain.Product, len(snap.products))
	copy(out, snap.products)
	return out
}

func (s *catalogServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, p := range s.snapshot().products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *catalogServiceImpl) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range s.snapshot().products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *catalogServiceImpl) GetProductsByCategory(ctx context.Context, categorySlug string) []domain.Product {
	matched := []domain.Product{}
	for _, p := range s.snapshot().products {
		if p.Category == categorySlug {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *catalogServiceImpl) GetAvailableProducts(ctx context.Context) []domain.Product {
	available := []domain.Product{}
	for _, p := range s.snapshot().products {
		if p.Availability {
			available = append(available, p)
		}
	}
	return available
}
