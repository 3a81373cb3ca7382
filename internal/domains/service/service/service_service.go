package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cuentista-backend/internal/domains/service/model"
	"cuentista-backend/internal/domains/service/repository"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/pagination"
	"cuentista-backend/internal/shared/response"
	"cuentista-backend/pkg/database"
)

type ServiceInterface interface {
	AddService(ctx context.Context, req model.AddServiceRequest) *response.Envelope
	EditService(ctx context.Context, id int64, req model.EditServiceRequest) *response.Envelope
	DeleteService(ctx context.Context, id int64) *response.Envelope
	ListOfService(ctx context.Context, params pagination.Params) *response.Envelope
	GetServiceList(ctx context.Context) *response.Envelope
	ViewService(ctx context.Context, id int64) *response.Envelope
}

var serviceSortColumns = map[string]bool{
	"id":           true,
	"service_name": true,
	"created_at":   true,
}

type serviceService struct {
	runner database.TxRunner
	repo   repository.RepositoryInterface
}

func NewServiceService(runner database.TxRunner, repo repository.RepositoryInterface) ServiceInterface {
	return &serviceService{runner: runner, repo: repo}
}

// AddService writes the parent and every child collection in one
// transaction, sections in a fixed order.
func (s *serviceService) AddService(ctx context.Context, req model.AddServiceRequest) *response.Envelope {
	var id int64
	err := s.runner.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.ExistsByNameTx(ctx, tx, req.ServiceName)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrServiceExists
		}

		if id, err = s.repo.InsertServiceTx(ctx, tx, req.ServiceName, req.ServiceDescription); err != nil {
			return err
		}

		if err := s.repo.InsertImagesTx(ctx, tx, id, req.Images); err != nil {
			return err
		}
		if err := s.repo.InsertSubServicesTx(ctx, tx, id, req.SubServices); err != nil {
			return err
		}
		if err := s.repo.InsertDetailsTx(ctx, tx, id, model.DetailTypeApproach, req.Approach); err != nil {
			return err
		}
		if err := s.repo.InsertDetailsTx(ctx, tx, id, model.DetailTypeBenefits, req.Benefits); err != nil {
			return err
		}
		if err := s.repo.InsertDetailsTx(ctx, tx, id, model.DetailTypeATC, req.ATC); err != nil {
			return err
		}
		return s.repo.InsertDetailsTx(ctx, tx, id, model.DetailTypeConsulting, req.Consulting)
	})
	if err != nil {
		if err == model.ErrServiceExists {
			return response.Conflict(messages.AlreadyExist)
		}
		return response.ServerError(err)
	}

	s.repo.InvalidateCache(ctx, id)

	return response.Created(messages.AddedSuccess, map[string]interface{}{"id": id})
}

// EditService always rewrites the scalar columns. Each section is replaced
// only when present in the request: nil leaves it alone, an empty slice
// clears it.
func (s *serviceService) EditService(ctx context.Context, id int64, req model.EditServiceRequest) *response.Envelope {
	err := s.runner.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.ExistsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrServiceNotFound
		}

		if err := s.repo.UpdateServiceTx(ctx, tx, id, req.ServiceName, req.ServiceDescription); err != nil {
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
		if req.SubServices != nil {
			if err := s.repo.DeleteSubServicesTx(ctx, tx, id); err != nil {
				return err
			}
			if err := s.repo.InsertSubServicesTx(ctx, tx, id, *req.SubServices); err != nil {
				return err
			}
		}

		sections := []struct {
			detailType string
			details    *[]model.DetailInput
		}{
			{model.DetailTypeApproach, req.Approach},
			{model.DetailTypeBenefits, req.Benefits},
			{model.DetailTypeATC, req.ATC},
			{model.DetailTypeConsulting, req.Consulting},
		}
		for _, sec := range sections {
			if sec.details == nil {
				continue
			}
			if err := s.repo.DeleteDetailsTx(ctx, tx, id, sec.detailType); err != nil {
				return err
			}
			if err := s.repo.InsertDetailsTx(ctx, tx, id, sec.detailType, *sec.details); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if err == model.ErrServiceNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	s.repo.InvalidateCache(ctx, id)

	return response.Accepted(messages.UpdateSuccess)
}

func (s *serviceService) DeleteService(ctx context.Context, id int64) *response.Envelope {
	err := s.runner.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.ExistsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrServiceNotFound
		}

		if err := s.repo.DeleteImagesTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteSubServicesTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteAllDetailsTx(ctx, tx, id); err != nil {
			return err
		}

		return s.repo.DeleteServiceTx(ctx, tx, id)
	})
	if err != nil {
		if err == model.ErrServiceNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	s.repo.InvalidateCache(ctx, id)

	return response.OK(messages.DeleteSuccess, nil)
}

func (s *serviceService) ListOfService(ctx context.Context, params pagination.Params) *response.Envelope {
	page := pagination.Paginate(params.Page, params.PageSize, 0)
	orderBy := pagination.SortQuery(params.SortKey, params.SortValue, serviceSortColumns)

	services, total, err := s.repo.List(ctx, params.SearchBar, orderBy, page.Limit, page.Skip)
	if err != nil {
		return response.ServerError(err)
	}
	if len(services) == 0 {
		return response.NotFound(messages.NotFound)
	}

	page = pagination.Paginate(params.Page, params.PageSize, total)

	return response.OK(messages.GetSuccess, map[string]interface{}{
		"listOfServiceName": services,
		"totalPages":        page.TotalPages,
		"totalRecordsCount": page.TotalRecordsCount,
		"currentPage":       page.CurrentPage,
		"numberOfRows":      len(services),
		"limit":             page.Limit,
	})
}

func (s *serviceService) GetServiceList(ctx context.Context) *response.Envelope {
	services, err := s.repo.GetAllNames(ctx)
	if err != nil {
		return response.ServerError(err)
	}
	if len(services) == 0 {
		return response.NotFound(messages.NotFound)
	}

	list := make([]model.ServiceNameRow, len(services))
	for i, svc := range services {
		list[i] = model.ServiceNameRow{
			ID:          svc.ID,
			ServiceName: svc.ServiceName,
			ServiceUrl:  fmt.Sprintf("%s-%d", svc.ServiceName, svc.ID),
		}
	}

	return response.OK(messages.GetSuccess, list)
}

func (s *serviceService) ViewService(ctx context.Context, id int64) *response.Envelope {
	view, err := s.repo.GetView(ctx, id)
	if err != nil {
		if err == model.ErrServiceNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	return response.OK(messages.GetSuccess, view)
}
