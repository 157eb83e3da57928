package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/domain/entity"
	repo "github.com/furnistore/backend/internal/domain/repository"
	"github.com/furnistore/backend/pkg/helpers"
)

var ErrInvalidCategory = errors.New("unknown category")

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products    []entity.Product
	Total       int64
	CurrentPage int
	TotalPages  int
}

// CatalogService serves the read-heavy product listing and the admin-side
// catalog mutations. Elasticsearch indexing and image upload are best-effort
// side channels; Postgres stays authoritative.
type CatalogService struct {
	Products  repo.ProductRepository
	Logger    *logrus.Logger
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
}

func NewCatalogService(products repo.ProductRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string) *CatalogService {
	return &CatalogService{Products: products, Logger: logger, ES: es, ESIndex: esIndex, GCS: gcs, GCSBucket: gcsBucket}
}

// Find lists products with optional category/search/price filters.
// Page and limit are normalized here so handlers can pass query values through.
func (s *CatalogService) Find(ctx context.Context, f repo.ProductFilter, page, limit int) (*ProductPage, error) {
	if f.Category != "" && !entity.ValidCategory(f.Category) {
		return nil, ErrInvalidCategory
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	products, total, err := s.Products.Find(ctx, f, page, limit)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ProductPage{Products: products, Total: total, CurrentPage: page, TotalPages: totalPages}, nil
}

func (s *CatalogService) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       string
	Discount    int
	Stock       int
}

func (s *CatalogService) apply(p *entity.Product, in ProductInput) error {
	if !entity.ValidCategory(in.Category) {
		return ErrInvalidCategory
	}
	price, err := helpers.ParsePrice(in.Price)
	if err != nil {
		return err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Price = price
	p.Discount = in.Discount
	p.Stock = in.Stock
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	p := &entity.Product{Images: []entity.ProductImage{}}
	if err := s.apply(p, in); err != nil {
		return nil, err
	}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if err := s.apply(p, in); err != nil {
		return nil, err
	}
	if err := s.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Products.Delete(ctx, id); err != nil {
		return ErrProductNotFound
	}
	if s.ES != nil && s.ESIndex != "" {
		req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
		if res, err := req.Do(ctx, s.ES); err == nil {
			_ = res.Body.Close()
		}
	}
	return nil
}

// AttachImage uploads the image to GCS and appends the reference to the product.
func (s *CatalogService) AttachImage(ctx context.Context, productID string, r io.Reader, filename, contentType string) (*entity.Product, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("image storage not configured")
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", productID, uuid.NewString()+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}

	p.Images = append(p.Images, entity.ProductImage{URL: url, StorageID: objectPath})
	if err := s.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price":       p.Price,
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

// Search performs a multi_match query on name and description. Listing via
// /products stays SQL-backed; this endpoint is additive.
func (s *CatalogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
