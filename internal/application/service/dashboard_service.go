package service

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/enum"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

const statsCacheKey = "dashboard_stats"

// DashboardService derives the admin overview numbers from the upstream
// collections. Nothing is stored; the upstream is re-read on every refresh
// and a short-lived cache absorbs repeated renders.
type DashboardService struct {
	userAPI    repository.UserAPI
	productAPI repository.ProductAPI
	batchAPI   repository.BatchAPI
	stats      *cache.Cache
}

// NewDashboardService creates a new dashboard service. cacheTTL bounds how
// stale the overview may get between upstream reads.
func NewDashboardService(userAPI repository.UserAPI, productAPI repository.ProductAPI, batchAPI repository.BatchAPI, cacheTTL time.Duration) *DashboardService {
	return &DashboardService{
		userAPI:    userAPI,
		productAPI: productAPI,
		batchAPI:   batchAPI,
		stats:      cache.New(cacheTTL, cacheTTL),
	}
}

// DashboardStats represents the admin overview numbers.
type DashboardStats struct {
	TotalUsers        int     `json:"totalUsers"`
	TotalProducts     int     `json:"totalProducts"`
	TotalSales        int     `json:"totalSales"`
	LowStockProducts  int     `json:"lowStockProducts"`
	PendingOrders     int     `json:"pendingOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// Stats returns the overview, served from cache when fresh. force bypasses
// the cache (the admin refresh button).
func (s *DashboardService) Stats(ctx context.Context, force bool) (*DashboardStats, error) {
	if !force {
		if v, ok := s.stats.Get(statsCacheKey); ok {
			return v.(*DashboardStats), nil
		}
	}

	// The three collections are independent; fetch them concurrently. A
	// failed fetch degrades that collection to empty rather than failing the
	// whole overview, same as the original screen.
	var (
		wg       sync.WaitGroup
		users    []entity.User
		products []entity.Product
		batches  []entity.Batch
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		if u, err := s.userAPI.List(ctx); err == nil {
			users = u
		}
	}()
	go func() {
		defer wg.Done()
		if p, err := s.productAPI.List(ctx); err == nil {
			products = p
		}
	}()
	go func() {
		defer wg.Done()
		if b, err := s.batchAPI.List(ctx); err == nil {
			batches = b
		}
	}()
	wg.Wait()

	stats := computeStats(users, products, batches)
	s.stats.SetDefault(statsCacheKey, stats)
	return stats, nil
}

func computeStats(users []entity.User, products []entity.Product, batches []entity.Batch) *DashboardStats {
	stats := &DashboardStats{
		TotalUsers:    len(users),
		TotalProducts: len(products),
	}

	for i := range products {
		if products[i].LowStock() {
			stats.LowStockProducts++
		}
	}

	for i := range batches {
		b := &batches[i]
		switch {
		case b.Status == enum.BatchStatusPaid:
			stats.TotalSales++
			stats.CompletedOrders++
		case b.Status.Open():
			stats.PendingOrders++
		}
		stats.TotalRevenue += b.Payable
	}

	if stats.CompletedOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.CompletedOrders)
	}
	return stats
}
