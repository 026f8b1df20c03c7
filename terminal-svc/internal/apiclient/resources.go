package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"restopos/terminal-svc/internal/domain"
)

func (c *Client) ListFoods(ctx context.Context, token string, q domain.FoodQuery) (*domain.Page[domain.Food], error) {
	query := url.Values{}
	if q.Category != "" && q.Category != "all" {
		query.Set("category", q.Category)
	}
	setPaging(query, q.Page, q.PerPage)

	var page domain.Page[domain.Food]
	if err := c.do(ctx, token, http.MethodGet, "/foods", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetFood(ctx context.Context, token string, id int) (*domain.Food, error) {
	var food domain.Food
	if err := c.do(ctx, token, http.MethodGet, "/foods/"+strconv.Itoa(id), nil, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) CreateFood(ctx context.Context, token string, req domain.CreateFoodRequest) (*domain.Food, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var food domain.Food
	if err := c.do(ctx, token, http.MethodPost, "/foods", nil, req, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) UpdateFood(ctx context.Context, token string, id int, req domain.UpdateFoodRequest) (*domain.Food, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var food domain.Food
	if err := c.do(ctx, token, http.MethodPut, "/foods/"+strconv.Itoa(id), nil, req, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) DeleteFood(ctx context.Context, token string, id int) error {
	return c.do(ctx, token, http.MethodDelete, "/foods/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]string, error) {
	var categories []string
	if err := c.do(ctx, token, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListTables(ctx context.Context, token string) ([]domain.Table, error) {
	var tables []domain.Table
	if err := c.do(ctx, token, http.MethodGet, "/tables", nil, nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) GetTable(ctx context.Context, token string, id int) (*domain.Table, error) {
	var table domain.Table
	if err := c.do(ctx, token, http.MethodGet, "/tables/"+strconv.Itoa(id), nil, nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) UpdateTableStatus(ctx context.Context, token string, id int, req domain.UpdateTableStatusRequest) (*domain.Table, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var table domain.Table
	if err := c.do(ctx, token, http.MethodPut, "/tables/"+strconv.Itoa(id), nil, req, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) ListOrders(ctx context.Context, token string, q domain.OrderQuery) (*domain.Page[domain.Order], error) {
	query := url.Values{}
	if q.Status != "" && q.Status != "all" {
		query.Set("status", q.Status)
	}
	setPaging(query, q.Page, q.PerPage)

	var page domain.Page[domain.Order]
	if err := c.do(ctx, token, http.MethodGet, "/orders", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, id int) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, token, http.MethodGet, orderPath(id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, token, http.MethodPost, "/orders", nil, req, &raw); err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (c *Client) AddItems(ctx context.Context, token string, orderID int, req domain.AddItemsRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, token, http.MethodPost, orderPath(orderID)+"/items", nil, req, &raw); err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (c *Client) RemoveItem(ctx context.Context, token string, orderID, itemID int) (*domain.Order, error) {
	var raw json.RawMessage
	path := orderPath(orderID) + "/items/" + strconv.Itoa(itemID)
	if err := c.do(ctx, token, http.MethodDelete, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

// CloseOrder sends no body: the backend takes no payment details.
func (c *Client) CloseOrder(ctx context.Context, token string, orderID int) (*domain.Order, error) {
	var raw json.RawMessage
	if err := c.do(ctx, token, http.MethodPost, orderPath(orderID)+"/close", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp domain.AuthResponse
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp domain.AuthResponse
	if err := c.do(ctx, "", http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func orderPath(id int) string {
	return "/orders/" + strconv.Itoa(id)
}

func setPaging(query url.Values, page, perPage int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
}

// decodeOrder accepts either an order or `{"order": {...}}`. An empty body
// yields a nil order and no error.
func decodeOrder(raw json.RawMessage) (*domain.Order, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var wrapped struct {
		Order *domain.Order `json:"order"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Order != nil {
		return wrapped.Order, nil
	}
	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if order.ID == 0 {
		return nil, nil
	}
	return &order, nil
}
