package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cuentista-backend/internal/domains/product/model"
	"cuentista-backend/internal/domains/product/repository"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/pagination"
	"cuentista-backend/internal/shared/response"
	"cuentista-backend/pkg/database"
)

type ServiceInterface interface {
	AddProduct(ctx context.Context, req model.AddProductRequest) *response.Envelope
	EditProduct(ctx context.Context, id int64, req model.EditProductRequest) *response.Envelope
	DeleteProduct(ctx context.Context, id int64) *response.Envelope
	ListOfProduct(ctx context.Context, params pagination.Params) *response.Envelope
	GetProductList(ctx context.Context) *response.Envelope
	ViewProduct(ctx context.Context, id int64) *response.Envelope
}

var productSortColumns = map[string]bool{
	"id":           true,
	"product_name": true,
	"created_at":   true,
}

type productService struct {
	runner database.TxRunner
	repo   repository.RepositoryInterface
}

func NewProductService(runner database.TxRunner, repo repository.RepositoryInterface) ServiceInterface {
	return &productService{runner: runner, repo: repo}
}

// AddProduct writes the parent and every child collection in one
// transaction. Any child failure rolls back the whole aggregate.
func (s *productService) AddProduct(ctx context.Context, req model.AddProductRequest) *response.Envelope {
	var id int64
	err := s.runner.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.ExistsByNameTx(ctx, tx, req.ProductName)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrProductExists
		}

		if id, err = s.repo.InsertProductTx(ctx, tx, req.ProductName, req.Description, req.ContactUs); err != nil {
			return err
		}

		if err := s.repo.InsertImagesTx(ctx, tx, id, req.Images); err != nil {
			return err
		}
		if err := s.repo.InsertBenefitsTx(ctx, tx, id, req.Benefits); err != nil {
			return err
		}
		if err := s.repo.InsertServiceLinesTx(ctx, tx, id, req.ServiceLines); err != nil {
			return err
		}
		if err := s.repo.InsertExpertiseTx(ctx, tx, id, req.Expertise); err != nil {
			return err
		}
		return s.repo.InsertMethodologyTx(ctx, tx, id, req.Methodology)
	})
	if err != nil {
		if err == model.ErrProductExists {
			return response.Conflict(messages.AlreadyExist)
		}
		return response.ServerError(err)
	}

	s.repo.InvalidateCache(ctx, id)

	return response.Created(messages.AddedSuccess, map[string]interface{}{"id": id})
}

// EditProduct always rewrites the scalar columns. Each child collection is
// replaced only when present in the request: nil leaves it alone, an empty
// slice clears it.
func (s *productService) EditProduct(ctx context.Context, id int64, req model.EditProductRequest) *response.Envelope {
	err := s.runner.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.ExistsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrProductNotFound
		}

		if err := s.repo.UpdateProductTx(ctx, tx, id, req.ProductName, req.Description, req.ContactUs); err != nil {
			return err
		}

		if req.Images != nil {
			if err := s.repo.DeleteImagesTx(ctx, tx, id); err != nil {
				return err
			}
			if err := s.repo.InsertImagesTx(ctx, tx, id, *req.Images); err != nil {
				return err
			}
		}
		if req.Benefits != nil {
			if err := s.repo.DeleteBenefitsTx(ctx, tx, id); err != nil {
				return err
			}
			if err := s.repo.InsertBenefitsTx(ctx, tx, id, *req.Benefits); err != nil {
				return err
			}
		}
		if req.ServiceLines != nil {
			if err := s.repo.DeleteServiceLinesTx(ctx, tx, id); err != nil {
				return err
			}
			if err := s.repo.InsertServiceLinesTx(ctx, tx, id, *req.ServiceLines); err != nil {
				return err
			}
		}
		if req.Expertise != nil {
			if err := s.repo.DeleteExpertiseTx(ctx, tx, id); err != nil {
				return err
			}
			if err := s.repo.InsertExpertiseTx(ctx, tx, id, *req.Expertise); err != nil {
				return err
			}
		}
		if req.Methodology != nil {
			if err := s.repo.DeleteMethodologyTx(ctx, tx, id); err != nil {
				return err
			}
			if err := s.repo.InsertMethodologyTx(ctx, tx, id, *req.Methodology); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if err == model.ErrProductNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	s.repo.InvalidateCache(ctx, id)

	return response.Accepted(messages.UpdateSuccess)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) *response.Envelope {
	err := s.runner.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.ExistsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrProductNotFound
		}

		if err := s.repo.DeleteImagesTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteBenefitsTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteServiceLinesTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteExpertiseTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteMethodologyTx(ctx, tx, id); err != nil {
			return err
		}

		return s.repo.DeleteProductTx(ctx, tx, id)
	})
	if err != nil {
		if err == model.ErrProductNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	s.repo.InvalidateCache(ctx, id)

	return response.OK(messages.DeleteSuccess, nil)
}

func (s *productService) ListOfProduct(ctx context.Context, params pagination.Params) *response.Envelope {
	page := pagination.Paginate(params.Page, params.PageSize, 0)
	orderBy := pagination.SortQuery(params.SortKey, params.SortValue, productSortColumns)

	products, total, err := s.repo.List(ctx, params.SearchBar, orderBy, page.Limit, page.Skip)
	if err != nil {
		return response.ServerError(err)
	}
	if len(products) == 0 {
		return response.NotFound(messages.NotFound)
	}

	page = pagination.Paginate(params.Page, params.PageSize, total)

	return response.OK(messages.GetSuccess, map[string]interface{}{
		"listOfProductName": products,
		"totalPages":        page.TotalPages,
		"totalRecordsCount": page.TotalRecordsCount,
		"currentPage":       page.CurrentPage,
		"numberOfRows":      len(products),
		"limit":             page.Limit,
	})
}

// GetProductList feeds the public site navigation. productUrl is derived
// from the name and id on every read.
func (s *productService) GetProductList(ctx context.Context) *response.Envelope {
	products, err := s.repo.GetAllNames(ctx)
	if err != nil {
		return response.ServerError(err)
	}
	if len(products) == 0 {
		return response.NotFound(messages.NotFound)
	}

	list := make([]model.ProductNameRow, len(products))
	for i, p := range products {
		list[i] = model.ProductNameRow{
			ID:          p.ID,
			ProductName: p.ProductName,
			ProductUrl:  fmt.Sprintf("%s-%d", p.ProductName, p.ID),
		}
	}

	return response.OK(messages.GetSuccess, list)
}

func (s *productService) ViewProduct(ctx context.Context, id int64) *response.Envelope {
	view, err := s.repo.GetView(ctx, id)
	if err != nil {
		if err == model.ErrProductNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	return response.OK(messages.GetSuccess, view)
}
