package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAdd(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	svc := NewWishlistService(newWishlistRepo(), products)

	items, err := svc.Add(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Sofa", items[0].Product.Name)
}

func TestWishlistAddIdempotent(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	svc := NewWishlistService(newWishlistRepo(), products)

	_, err := svc.Add(context.Background(), "u1", "p1")
	require.NoError(t, err)
	items, err := svc.Add(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Len(t, items, 1, "wishlisting twice keeps one entry")
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc := NewWishlistService(newWishlistRepo(), newProductRepo())

	_, err := svc.Add(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistRemoveIdempotent(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	svc := NewWishlistService(newWishlistRepo(), products)

	_, err := svc.Add(context.Background(), "u1", "p1")
	require.NoError(t, err)

	items, err := svc.Remove(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.Remove(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWishlistInsertionOrder(t *testing.T) {
	products := newProductRepo(
		testProduct("p1", "Sofa", "100.00"),
		testProduct("p2", "Bed", "200.00"),
		testProduct("p3", "Table", "300.00"),
	)
	svc := NewWishlistService(newWishlistRepo(), products)

	for _, id := range []string{"p2", "p3", "p1"} {
		_, err := svc.Add(context.Background(), "u1", id)
		require.NoError(t, err)
	}

	items, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, "p3", items[1].ProductID)
	assert.Equal(t, "p1", items[2].ProductID)
}
