package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func newProductFixture() (ProductUsecase, *fakeProductRepository, *fakeRecorder) {
	repo := newFakeProductRepository()
	recorder := &fakeRecorder{}
	return NewProductUsecase(repo, recorder), repo, recorder
}

func TestCreateProduct(t *testing.T) {
	u, _, recorder := newProductFixture()

	product, err := u.CreateProduct(context.Background(), "alice@example.com", CreateProductParams{
		Name:     "Widget",
		Price:    19.99,
		InStock:  100,
		Category: "Electronics",
	})
	require.NoError(t, err)
	assert.False(t, product.ID.IsZero())
	assert.Equal(t, "Widget", product.Name)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "added:"+product.ID.Hex()+":alice@example.com", recorder.events[0])
}

func TestGetProduct(t *testing.T) {
	u, _, _ := newProductFixture()

	created, err := u.CreateProduct(context.Background(), "alice@example.com", CreateProductParams{
		Name: "Widget", Price: 19.99, InStock: 100,
	})
	require.NoError(t, err)

	got, err := u.GetProduct(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)

	_, err = u.GetProduct(context.Background(), "64f000000000000000000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	u, _, _ := newProductFixture()

	for _, name := range []string{"A", "B", "C"} {
		_, err := u.CreateProduct(context.Background(), "alice@example.com", CreateProductParams{
			Name: name, Price: 1, InStock: 1,
		})
		require.NoError(t, err)
	}

	all, err := u.ListProducts(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := u.ListProducts(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestUpdateProduct(t *testing.T) {
	u, _, recorder := newProductFixture()

	created, err := u.CreateProduct(context.Background(), "alice@example.com", CreateProductParams{
		Name: "Widget", Price: 19.99, InStock: 100,
	})
	require.NoError(t, err)

	updated, err := u.UpdateProduct(context.Background(), "bob@example.com", created.ID.Hex(), UpdateProductParams{
		Price:   float64Ptr(24.99),
		InStock: intPtr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 24.99, updated.Price)
	assert.Equal(t, 50, updated.InStock)

	require.Len(t, recorder.events, 2)
	assert.Equal(t, "edited:"+created.ID.Hex()+":bob@example.com", recorder.events[1])
}

func TestUpdateProductErrors(t *testing.T) {
	u, _, _ := newProductFixture()

	created, err := u.CreateProduct(context.Background(), "alice@example.com", CreateProductParams{
		Name: "Widget", Price: 19.99, InStock: 100,
	})
	require.NoError(t, err)

	_, err = u.UpdateProduct(context.Background(), "alice@example.com", created.ID.Hex(), UpdateProductParams{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, err = u.UpdateProduct(context.Background(), "alice@example.com", "64f000000000000000000000", UpdateProductParams{
		Price: float64Ptr(1),
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	u, _, recorder := newProductFixture()

	created, err := u.CreateProduct(context.Background(), "alice@example.com", CreateProductParams{
		Name: "Widget", Price: 19.99, InStock: 100,
	})
	require.NoError(t, err)

	require.NoError(t, u.DeleteProduct(context.Background(), "alice@example.com", created.ID.Hex()))
	_, err = u.GetProduct(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.Equal(t, "deleted:"+created.ID.Hex()+":alice@example.com", recorder.events[len(recorder.events)-1])

	err = u.DeleteProduct(context.Background(), "alice@example.com", created.ID.Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)
}
