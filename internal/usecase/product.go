package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rattananon/product-store-api/internal/audit"
	"github.com/rattananon/product-store-api/internal/model"
	"github.com/rattananon/product-store-api/internal/repository"
)

// ProductUsecase defines catalog operations. Mutations take the acting user's
// email so audit events name a real actor.
type ProductUsecase interface {
	ListProducts(ctx context.Context, skip, limit uint64) ([]*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, actor string, params CreateProductParams) (*model.Product, error)
	UpdateProduct(ctx context.Context, actor, id string, params UpdateProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, actor, id string) error
}

// CreateProductParams defines the fields for a new product.
type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
	InStock     int
	Category    string
}

// UpdateProductParams defines the optional fields for updating a product.
// Only the fields that are not nil will be updated.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *float64
	InStock     *int
	Category    *string
}

// ErrProductNotFound is returned when no product exists for the given ID.
var ErrProductNotFound = errors.New("product not found")

type productUsecase struct {
	products repository.ProductRepository
	audit    audit.Recorder
}

// NewProductUsecase creates the catalog usecase.
func NewProductUsecase(products repository.ProductRepository, recorder audit.Recorder) ProductUsecase {
	return &productUsecase{products: products, audit: recorder}
}

func (u *productUsecase) ListProducts(ctx context.Context, skip, limit uint64) ([]*model.Product, error) {
	return u.products.ListProducts(ctx, repository.ListProductsParams{Skip: skip, Limit: limit})
}

func (u *productUsecase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := u.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

func (u *productUsecase) CreateProduct(
	ctx context.Context,
	actor string,
	params CreateProductParams,
) (*model.Product, error) {
	product, err := u.products.CreateProduct(ctx, &model.Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		InStock:     params.InStock,
		Category:    params.Category,
	})
	if err != nil {
		return nil, err
	}

	u.audit.ProductAdded(product.ID.Hex(), actor)
	return product, nil
}

func (u *productUsecase) UpdateProduct(
	ctx context.Context,
	actor, id string,
	params UpdateProductParams,
) (*model.Product, error) {
	repoParams := repository.UpdateProductParams{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		InStock:     params.InStock,
		Category:    params.Category,
	}

	product, err := u.products.UpdateProduct(ctx, id, repoParams)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrProductNotFound
		case errors.Is(err, repository.ErrNoFieldsToUpdate):
			return nil, ErrNothingToUpdate
		}

		return nil, err
	}

	u.audit.ProductEdited(product.ID.Hex(), actor, changedProductFields(params))
	return product, nil
}

func (u *productUsecase) DeleteProduct(ctx context.Context, actor, id string) error {
	if err := u.products.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProductNotFound
		}

		return err
	}

	u.audit.ProductDeleted(id, actor)
	return nil
}

func changedProductFields(params UpdateProductParams) []string {
	var fields []string
	if params.Name != nil {
		fields = append(fields, "name")
	}
	if params.Description != nil {
		fields = append(fields, "description")
	}
	if params.Price != nil {
		fields = append(fields, "price")
	}
	if params.InStock != nil {
		fields = append(fields, "in_stock")
	}
	if params.Category != nil {
		fields = append(fields, "category")
	}
	return fields
}
