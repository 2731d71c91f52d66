package catalog

import (
	"fmt"

	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/money"
	"github.com/angelmondragon/applestore-backend/pkg/seed"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

// Service exposes the read-only product catalog.
type Service interface {
	List() []ProductDTO
	FindByID(id string) (types.Product, error)
	Describe(id string) (ProductDTO, error)
}

// ProductDTO is a product as shown to shoppers.
type ProductDTO struct {
	types.Product
	DisplayPrice string `json:"display_price"`
}

type service struct {
	products []types.Product
	byID     map[string]int
	currency string
}

// NewService validates every product and rejects duplicate ids.
func NewService(products []types.Product, currency string) (Service, error) {
	s := &service{
		products: make([]types.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		currency: currency,
	}
	for i, p := range products {
		if v := validation.ValidateProduct(p); !v.Valid {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidData, fmt.Sprintf("Product at index %d: %s", i, v.Reason)).
				WithDetails(map[string]any{"index": i})
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidData, "catalog contains duplicate product ids").
				WithDetails(map[string]any{"id": p.ID})
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// Default returns the storefront catalog priced in USD.
func Default() Service {
	svc, err := NewService(seed.Products(), "USD")
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return svc
}

func (s *service) List() []ProductDTO {
	out := make([]ProductDTO, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, s.toDTO(p))
	}
	return out
}

func (s *service) FindByID(id string) (types.Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return types.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found").
			WithDetails(map[string]any{"id": id})
	}
	return s.products[idx], nil
}

func (s *service) Describe(id string) (ProductDTO, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return ProductDTO{}, err
	}
	return s.toDTO(p), nil
}

func (s *service) toDTO(p types.Product) ProductDTO {
	return ProductDTO{Product: p, DisplayPrice: money.FormatCurrency(p.Price, s.currency)}
}
