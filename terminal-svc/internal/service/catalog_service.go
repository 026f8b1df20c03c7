package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	ResourceFoods      = "foods"
	ResourceCategories = "categories"
	ResourceTables     = "tables"
	ResourceOrders     = "orders"
)

type TableList struct {
	Tables []domain.Table     `json:"tables"`
	Stats  domain.TableStats `json:"stats"`
}

type CatalogServiceInterface interface {
	ListFoods(ctx context.Context, session *domain.Session, q domain.FoodQuery, search string) (*domain.Page[domain.Food], error)
	ListCategories(ctx context.Context, session *domain.Session) ([]string, error)
	CreateFood(ctx context.Context, session *domain.Session, req domain.CreateFoodRequest) (*domain.Food, error)
	UpdateFood(ctx context.Context, session *domain.Session, id int, req domain.UpdateFoodRequest) (*domain.Food, error)
	DeleteFood(ctx context.Context, session *domain.Session, id int) error
	ListTables(ctx context.Context, session *domain.Session, search string) (*TableList, error)
	GetTable(ctx context.Context, session *domain.Session, id int) (*domain.Table, error)
	UpdateTableStatus(ctx context.Context, session *domain.Session, id int, req domain.UpdateTableStatusRequest) (*domain.Table, error)
	ListOrders(ctx context.Context, session *domain.Session, q domain.OrderQuery) (*domain.Page[domain.Order], error)
	GetOrder(ctx context.Context, session *domain.Session, id int) (*domain.Order, error)
	Refresh(ctx context.Context, resources ...string)
}

// CatalogService serves list reads through the cache and refreshes the
// affected resource after every successful write.
type CatalogService struct {
	foods       FoodAPI
	tables      TableAPI
	orders      OrderAPI
	cache       ListCache
	ttl         time.Duration
	categoryTTL time.Duration
	log         logrus.FieldLogger
}

func NewCatalogService(foods FoodAPI, tables TableAPI, orders OrderAPI, cache ListCache, ttl, categoryTTL time.Duration, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{
		foods:       foods,
		tables:      tables,
		orders:      orders,
		cache:       cache,
		ttl:         ttl,
		categoryTTL: categoryTTL,
		log:         log,
	}
}

func (s *CatalogService) ListFoods(ctx context.Context, session *domain.Session, q domain.FoodQuery, search string) (*domain.Page[domain.Food], error) {
	if err := allow(session, domain.CapViewFoods); err != nil {
		return nil, err
	}
	key := CacheKey(session, ResourceFoods, fmt.Sprintf("category=%s:page=%d:per_page=%d", q.Category, q.Page, q.PerPage))

	var page domain.Page[domain.Food]
	if !s.cached(ctx, key, &page) {
		fetched, err := s.foods.ListFoods(ctx, session.Token, q)
		if err != nil {
			return nil, failed(NoticeLoadFailed, err)
		}
		page = *fetched
		s.store(ctx, key, page, s.ttl)
	}

	page.Data = FilterFoods(page.Data, q.Category, search)
	return &page, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, session *domain.Session) ([]string, error) {
	if err := allow(session, domain.CapViewFoods); err != nil {
		return nil, err
	}
	key := CacheKey(session, ResourceCategories)
	var categories []string
	if s.cached(ctx, key, &categories) {
		return categories, nil
	}
	categories, err := s.foods.ListCategories(ctx, session.Token)
	if err != nil {
		return nil, failed(NoticeLoadFailed, err)
	}
	s.store(ctx, key, categories, s.categoryTTL)
	return categories, nil
}

func (s *CatalogService) CreateFood(ctx context.Context, session *domain.Session, req domain.CreateFoodRequest) (*domain.Food, error) {
	if err := allow(session, domain.CapManageFoods); err != nil {
		return nil, err
	}
	food, err := s.foods.CreateFood(ctx, session.Token, req)
	if err != nil {
		return nil, failed(NoticeFoodSaveFail, err)
	}
	s.Refresh(ctx, ResourceFoods, ResourceCategories)
	return food, nil
}

func (s *CatalogService) UpdateFood(ctx context.Context, session *domain.Session, id int, req domain.UpdateFoodRequest) (*domain.Food, error) {
	if err := allow(session, domain.CapManageFoods); err != nil {
		return nil, err
	}
	food, err := s.foods.UpdateFood(ctx, session.Token, id, req)
	if err != nil {
		return nil, failed(NoticeFoodSaveFail, err)
	}
	s.Refresh(ctx, ResourceFoods, ResourceCategories)
	return food, nil
}

func (s *CatalogService) DeleteFood(ctx context.Context, session *domain.Session, id int) error {
	if err := allow(session, domain.CapManageFoods); err != nil {
		return err
	}
	if err := s.foods.DeleteFood(ctx, session.Token, id); err != nil {
		return failed(NoticeFoodDeleteFail, err)
	}
	s.Refresh(ctx, ResourceFoods, ResourceCategories)
	return nil
}

func (s *CatalogService) ListTables(ctx context.Context, session *domain.Session, search string) (*TableList, error) {
	if err := allow(session, domain.CapViewTables); err != nil {
		return nil, err
	}
	key := CacheKey(session, ResourceTables)
	var tables []domain.Table
	if !s.cached(ctx, key, &tables) {
		fetched, err := s.tables.ListTables(ctx, session.Token)
		if err != nil {
			return nil, failed(NoticeLoadFailed, err)
		}
		tables = fetched
		s.store(ctx, key, tables, s.ttl)
	}
	return &TableList{
		Tables: FilterTables(tables, search),
		Stats:  Stats(tables),
	}, nil
}

func (s *CatalogService) GetTable(ctx context.Context, session *domain.Session, id int) (*domain.Table, error) {
	if err := allow(session, domain.CapViewTables); err != nil {
		return nil, err
	}
	table, err := s.tables.GetTable(ctx, session.Token, id)
	if err != nil {
		return nil, notFound(NoticeTableNotFound, err)
	}
	return table, nil
}

// UpdateTableStatus applies available, reserved or inactive. Occupied tables
// are driven by their orders and cannot be changed by hand.
func (s *CatalogService) UpdateTableStatus(ctx context.Context, session *domain.Session, id int, req domain.UpdateTableStatusRequest) (*domain.Table, error) {
	if err := allow(session, domain.CapManageTables); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.tables.GetTable(ctx, session.Token, id)
	if err != nil {
		return nil, notFound(NoticeTableNotFound, err)
	}
	switch current.Status {
	case domain.TableOccupied:
		return nil, ErrTableOccupied
	case req.Status:
		return nil, ErrTableStatusUnchanged
	}

	table, err := s.tables.UpdateTableStatus(ctx, session.Token, id, req)
	if err != nil {
		return nil, failed(NoticeTableUpdateFail, err)
	}
	s.log.WithFields(logrus.Fields{"table_id": id, "status": req.Status}).Info("Table status updated")
	s.Refresh(ctx, ResourceTables)
	return table, nil
}

func (s *CatalogService) ListOrders(ctx context.Context, session *domain.Session, q domain.OrderQuery) (*domain.Page[domain.Order], error) {
	if err := allow(session, domain.CapViewOrders); err != nil {
		return nil, err
	}
	key := CacheKey(session, ResourceOrders, fmt.Sprintf("status=%s:page=%d:per_page=%d", q.Status, q.Page, q.PerPage))

	var page domain.Page[domain.Order]
	if s.cached(ctx, key, &page) {
		return &page, nil
	}
	fetched, err := s.orders.ListOrders(ctx, session.Token, q)
	if err != nil {
		return nil, failed(NoticeLoadFailed, err)
	}
	s.store(ctx, key, *fetched, s.ttl)
	return fetched, nil
}

func (s *CatalogService) GetOrder(ctx context.Context, session *domain.Session, id int) (*domain.Order, error) {
	if err := allow(session, domain.CapViewOrders); err != nil {
		return nil, err
	}
	order, err := s.orders.GetOrder(ctx, session.Token, id)
	if err != nil {
		return nil, notFound(NoticeOrderNotFound, err)
	}
	return order, nil
}

// Refresh drops every cached page of the given resources. Cache failures are
// logged; the next read then falls through to the backend.
func (s *CatalogService) Refresh(ctx context.Context, resources ...string) {
	for _, resource := range resources {
		if err := s.cache.Invalidate(ctx, resource); err != nil {
			s.log.WithError(err).WithField("resource", resource).Warn("Failed to refresh cache")
		}
	}
}

func (s *CatalogService) cached(ctx context.Context, key string, dst any) bool {
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Failed to read cache")
		return false
	}
	return ok
}

func (s *CatalogService) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Failed to write cache")
	}
}

// CacheKey scopes a cached list to the session's user and token. Keys always
// start with "<resource>:" so Refresh drops every scope at once.
func CacheKey(session *domain.Session, resource string, query ...string) string {
	sum := sha256.Sum256([]byte(session.Token))
	parts := append([]string{resource, fmt.Sprintf("u=%d", session.User.ID), "t=" + hex.EncodeToString(sum[:8])}, query...)
	return strings.Join(parts, ":")
}

func notFound(notice string, err error) error {
	if errors.Is(err, apiclient.ErrNotFound) {
		return failed(notice, err)
	}
	return failed(NoticeLoadFailed, err)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

// Stats counts tables per status.
func Stats(tables []domain.Table) domain.TableStats {
	stats := domain.TableStats{Total: len(tables)}
	for _, t := range tables {
		switch t.Status {
		case domain.TableAvailable:
			stats.Available++
		case domain.TableOccupied:
			stats.Occupied++
		case domain.TableReserved:
			stats.Reserved++
		case domain.TableInactive:
			stats.Inactive++
		}
	}
	return stats
}

// FilterTables keeps tables whose name contains q, case-insensitively.
func FilterTables(tables []domain.Table, q string) []domain.Table {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return tables
	}
	out := make([]domain.Table, 0, len(tables))
	for _, t := range tables {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterFoods narrows a page of foods by category ("" or "all" keeps every
// category) and a case-insensitive name search.
func FilterFoods(foods []domain.Food, category, q string) []domain.Food {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]domain.Food, 0, len(foods))
	for _, f := range foods {
		if category != "" && category != "all" && string(f.Category) != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(f.Name), q) {
			continue
		}
		out = append(out, f)
	}
	return out
}
