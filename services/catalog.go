package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

// ProductCatalogGuard owns product visibility and delete semantics. Disabling
// is reversible; a hard delete physically drops the row and historical order
// lines fall back to their snapshots.
type ProductCatalogGuard struct {
	products   repository.Products
	categories repository.Categories
	now        func() time.Time
}

func NewProductCatalogGuard(products repository.Products, categories repository.Categories) *ProductCatalogGuard {
	return &ProductCatalogGuard{products: products, categories: categories, now: time.Now}
}

type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	CategoryID  *string         `json:"category_id"`
	IsService   bool            `json:"is_service"`
}

func validateProduct(in ProductInput) *apperrors.ValidationError {
	v := apperrors.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "name is required")
	}
	if in.Price.IsNegative() {
		v.Add("price", "price must not be negative")
	}
	return v
}

func (g *ProductCatalogGuard) CreateProduct(ctx context.Context, auth models.AuthContext, in ProductInput) (*models.Product, error) {
	if !auth.IsAdmin() {
		return nil, &apperrors.PermissionError{Action: "create products"}
	}
	if v := validateProduct(in); !v.Empty() {
		return nil, v
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	p := &models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsService:   in.IsService,
		IsActive:    true,
	}
	if err := g.products.Create(ctx, p); err != nil {
		return nil, apperrors.Persistence("create product", err)
	}
	return p, nil
}

func (g *ProductCatalogGuard) UpdateProduct(ctx context.Context, auth models.AuthContext, id string, in ProductInput) (*models.Product, error) {
	if !auth.IsAdmin() {
		return nil, &apperrors.PermissionError{Action: "update products"}
	}
	if v := validateProduct(in); !v.Empty() {
		return nil, v
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	p := &models.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsService:   in.IsService,
	}
	err := g.products.Update(ctx, p)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Persistence("update product", err)
	}
	return g.GetProduct(ctx, id)
}

func (g *ProductCatalogGuard) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	p, err := g.products.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Persistence("load product", err)
	}
	return p, nil
}

// ListStorefront returns what a shopper may see: active rows of the
// requested kind (products or bookable services).
func (g *ProductCatalogGuard) ListStorefront(ctx context.Context, isService bool) ([]models.Product, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	rows, err := g.products.ListStorefront(ctx, isService)
	if err != nil {
		return nil, apperrors.Persistence("list products", err)
	}
	return rows, nil
}

// ListAdmin returns everything that still has a row, disabled included.
func (g *ProductCatalogGuard) ListAdmin(ctx context.Context, auth models.AuthContext) ([]models.Product, error) {
	if !auth.IsAdmin() {
		return nil, &apperrors.PermissionError{Action: "list the full catalog"}
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	rows, err := g.products.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Persistence("list products", err)
	}
	return rows, nil
}

// SetVisibility toggles a product between Active and Disabled, both ways.
func (g *ProductCatalogGuard) SetVisibility(ctx context.Context, auth models.AuthContext, id string, target models.Visibility) error {
	if !auth.IsAdmin() {
		return &apperrors.PermissionError{Action: "change product visibility"}
	}
	if !target.Valid() {
		v := apperrors.NewValidationError()
		v.Add("visibility", "must be active or disabled")
		return v
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()

	var err error
	switch target {
	case models.VisibilityActive:
		err = g.products.SetVisibility(ctx, id, true, nil)
	case models.VisibilityDisabled:
		at := g.now()
		err = g.products.SetVisibility(ctx, id, false, &at)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.Persistence("set product visibility", err)
	}
	return nil
}

// HardDelete drops the row for good, historical order lines included: they
// keep rendering from their snapshots, the admin UI offers this knowingly.
func (g *ProductCatalogGuard) HardDelete(ctx context.Context, auth models.AuthContext, id string) error {
	if !auth.IsAdmin() {
		return &apperrors.PermissionError{Action: "delete products"}
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	err := g.products.HardDelete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.Persistence("delete product", err)
	}
	return nil
}

func (g *ProductCatalogGuard) CreateCategory(ctx context.Context, auth models.AuthContext, name, description string) (*models.Category, error) {
	if !auth.IsAdmin() {
		return nil, &apperrors.PermissionError{Action: "create categories"}
	}
	if strings.TrimSpace(name) == "" {
		v := apperrors.NewValidationError()
		v.Add("name", "name is required")
		return nil, v
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	c := &models.Category{Name: strings.TrimSpace(name), Description: description}
	if err := g.categories.Create(ctx, c); err != nil {
		return nil, apperrors.Persistence("create category", err)
	}
	return c, nil
}

func (g *ProductCatalogGuard) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	rows, err := g.categories.List(ctx)
	if err != nil {
		return nil, apperrors.Persistence("list categories", err)
	}
	return rows, nil
}

func (g *ProductCatalogGuard) DeleteCategory(ctx context.Context, auth models.AuthContext, id string) error {
	if !auth.IsAdmin() {
		return &apperrors.PermissionError{Action: "delete categories"}
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	err := g.categories.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.Persistence("delete category", err)
	}
	return nil
}
