package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/furnistore/backend/internal/domain/repository"
)

func TestCatalogFindNormalizesPaging(t *testing.T) {
	products := newProductRepo()
	products.total = 25
	svc := NewCatalogService(products, nil, nil, "", nil, "")

	page, err := svc.Find(context.Background(), repo.ProductFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 12, products.lastLim)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	page, err = svc.Find(context.Background(), repo.ProductFilter{}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)

	// limits above the cap fall back to the default page size
	_, err = svc.Find(context.Background(), repo.ProductFilter{}, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 12, products.lastLim)
}

func TestCatalogFindRejectsUnknownCategory(t *testing.T) {
	svc := NewCatalogService(newProductRepo(), nil, nil, "", nil, "")

	_, err := svc.Find(context.Background(), repo.ProductFilter{Category: "spaceship"}, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCatalogFindByID(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	svc := NewCatalogService(products, nil, nil, "", nil, "")

	p, err := svc.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Sofa", p.Name)

	_, err = svc.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateProduct(t *testing.T) {
	products := newProductRepo()
	svc := NewCatalogService(products, nil, nil, "", nil, "")

	p, err := svc.CreateProduct(context.Background(), ProductInput{
		Name:        "Oslo Sofa",
		Description: "Three-seater",
		Category:    "sofa",
		Price:       "1299.00",
		Discount:    10,
		Stock:       8,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "sofa", p.Category)
	assert.Equal(t, 10, p.Discount)
	assert.NotNil(t, p.Images, "images initialize to an empty list, not null")
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(newProductRepo(), nil, nil, "", nil, "")

	_, err := svc.CreateProduct(context.Background(), ProductInput{Name: "X", Category: "boat", Price: "10.00"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.CreateProduct(context.Background(), ProductInput{Name: "X", Category: "sofa", Price: "-5.00"})
	assert.Error(t, err, "negative prices are rejected")

	_, err = svc.CreateProduct(context.Background(), ProductInput{Name: "X", Category: "sofa", Price: "not-a-number"})
	assert.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	svc := NewCatalogService(products, nil, nil, "", nil, "")

	p, err := svc.UpdateProduct(context.Background(), "p1", ProductInput{
		Name:        "Sofa Deluxe",
		Description: "Now with lumbar support",
		Category:    "sofa",
		Price:       "120.00",
		Stock:       3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sofa Deluxe", p.Name)

	_, err = svc.UpdateProduct(context.Background(), "missing", ProductInput{Name: "X", Category: "sofa", Price: "1.00"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	svc := NewCatalogService(products, nil, nil, "", nil, "")

	require.NoError(t, svc.DeleteProduct(context.Background(), "p1"))
	err := svc.DeleteProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchWithoutCluster(t *testing.T) {
	svc := NewCatalogService(newProductRepo(), nil, nil, "", nil, "")

	// search degrades to empty results when elasticsearch is not wired
	res, err := svc.Search(context.Background(), "sofa", 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}
