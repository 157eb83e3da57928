package application

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
	repo "github.com/furnistore/backend/internal/domain/repository"
)

// --- In-memory repository fakes shared across the service tests ---

type mockProductRepo struct {
	byID    map[string]*entity.Product
	findRes []entity.Product
	total   int64
	lastF   repo.ProductFilter
	lastPg  int
	lastLim int
	err     error
}

func newProductRepo(products ...entity.Product) *mockProductRepo {
	byID := make(map[string]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &mockProductRepo{byID: byID}
}

func (m *mockProductRepo) Find(_ context.Context, f repo.ProductFilter, page, limit int) ([]entity.Product, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	m.lastF, m.lastPg, m.lastLim = f, page, limit
	return m.findRes, m.total, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]*entity.Product, len(ids))
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *mockProductRepo) Create(_ context.Context, p *entity.Product) error {
	if m.err != nil {
		return m.err
	}
	p.ID = "product-" + strconv.Itoa(len(m.byID)+1)
	m.byID[p.ID] = p
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, p *entity.Product) error {
	if m.err != nil {
		return m.err
	}
	m.byID[p.ID] = p
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.byID)), m.err
}

type mockCartRepo struct {
	items      map[string][]entity.CartItem // keyed by user id
	getErr     error
	upsertErr  error
	clearErr   error
	clearCalls int
}

func newCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[string][]entity.CartItem)}
}

func (m *mockCartRepo) Get(_ context.Context, userID string) (*entity.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	items := make([]entity.CartItem, len(m.items[userID]))
	copy(items, m.items[userID])
	return &entity.Cart{ID: "cart-" + userID, UserID: userID, Items: items}, nil
}

func (m *mockCartRepo) UpsertItem(_ context.Context, userID, productID string, qty int, price decimal.Decimal) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for i, it := range m.items[userID] {
		if it.ProductID == productID {
			m.items[userID][i].Quantity += qty
			return nil
		}
	}
	m.items[userID] = append(m.items[userID], entity.CartItem{ProductID: productID, Quantity: qty, Price: price})
	return nil
}

func (m *mockCartRepo) SetItemQuantity(_ context.Context, userID, productID string, qty int) (bool, error) {
	for i, it := range m.items[userID] {
		if it.ProductID == productID {
			m.items[userID][i].Quantity = qty
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCartRepo) RemoveItem(_ context.Context, userID, productID string) error {
	lines := m.items[userID]
	for i, it := range lines {
		if it.ProductID == productID {
			m.items[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCartRepo) Clear(_ context.Context, userID string) error {
	m.clearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.items[userID] = nil
	return nil
}

type mockOrderRepo struct {
	orders    []entity.Order
	createErr error
	sum       decimal.Decimal
}

func (m *mockOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	o.ID = "order-" + strconv.Itoa(len(m.orders)+1)
	m.orders = append(m.orders, *o)
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListRecent(_ context.Context, limit int) ([]entity.Order, error) {
	out := make([]entity.Order, 0, limit)
	for i := len(m.orders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].OrderStatus = status
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m *mockOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *mockOrderRepo) SumTotalAmount(_ context.Context) (decimal.Decimal, error) {
	return m.sum, nil
}

type mockWishlistRepo struct {
	items map[string][]entity.WishlistItem
}

func newWishlistRepo() *mockWishlistRepo {
	return &mockWishlistRepo{items: make(map[string][]entity.WishlistItem)}
}

func (m *mockWishlistRepo) List(_ context.Context, userID string) ([]entity.WishlistItem, error) {
	items := make([]entity.WishlistItem, len(m.items[userID]))
	copy(items, m.items[userID])
	return items, nil
}

func (m *mockWishlistRepo) Add(_ context.Context, userID, productID string) error {
	for _, it := range m.items[userID] {
		if it.ProductID == productID {
			return nil
		}
	}
	m.items[userID] = append(m.items[userID], entity.WishlistItem{ProductID: productID})
	return nil
}

func (m *mockWishlistRepo) Remove(_ context.Context, userID, productID string) error {
	lines := m.items[userID]
	for i, it := range lines {
		if it.ProductID == productID {
			m.items[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newUserRepo(users ...*entity.User) *mockUserRepo {
	m := &mockUserRepo{byID: make(map[string]*entity.User), byEmail: make(map[string]*entity.User)}
	for _, u := range users {
		m.byID[u.ID] = u
		m.byEmail[u.Email] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return repo.ErrDuplicate
	}
	u.ID = "user-" + strconv.Itoa(len(m.byID)+1)
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) Update(_ context.Context, u *entity.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) MarkVerified(_ context.Context, id string) error {
	u, ok := m.byID[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.IsVerified = true
	return nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role string, negate bool) (int64, error) {
	var n int64
	for _, u := range m.byID {
		if (u.Role == role) != negate {
			n++
		}
	}
	return n, nil
}
