package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furnistore/backend/internal/domain/entity"
	"github.com/furnistore/backend/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, category, price, discount, stock, images, ratings, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	var images []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
		&p.Discount, &p.Stock, &images, &p.Ratings, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Find applies the filter and returns one page plus the total matching count.
// Price bounds are inclusive; search is a case-insensitive substring on name.
func (r *ProductRepository) Find(ctx context.Context, f repository.ProductFilter, page, limit int) ([]entity.Product, int64, error) {
	where := make([]string, 0, 4)
	args := make([]any, 0, 6)

	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Search != "" {
		add("name ILIKE $%d", "%"+f.Search+"%")
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, clause, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return p, err
}

// GetByIDs batch-fetches products for read-side resolution of cart and
// wishlist lines. Missing ids are simply absent from the map.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, category, price, discount, stock, images, ratings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Description, p.Category, p.Price, p.Discount, p.Stock, images, p.Ratings)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	p.UpdatedAt = time.Now()
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4, discount = $5,
		    stock = $6, images = $7, ratings = $8, updated_at = $9
		WHERE id = $10
	`, p.Name, p.Description, p.Category, p.Price, p.Discount, p.Stock, images, p.Ratings, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
