package service

import (
	"context"

	"cuentista-backend/internal/domains/inquiry/model"
	"cuentista-backend/internal/domains/inquiry/repository"
	"cuentista-backend/internal/infrastructure/email"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/pagination"
	"cuentista-backend/internal/shared/response"
	"cuentista-backend/pkg/logger"
)

// EmailDispatcher is the slice of the queue client this service needs.
type EmailDispatcher interface {
	EnqueueInquiryNotification(ctx context.Context, data email.InquiryEmailData) error
}

type ServiceInterface interface {
	CreateInquiry(ctx context.Context, req model.CreateInquiryRequest) *response.Envelope
	ViewInquiry(ctx context.Context, id int64) *response.Envelope
	UpdateInquiryStatus(ctx context.Context, id int64) *response.Envelope
	ListOfInquiries(ctx context.Context, params pagination.Params) *response.Envelope
}

var inquirySortColumns = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"status":     true,
	"created_at": true,
}

type inquiryService struct {
	repo       repository.RepositoryInterface
	dispatcher EmailDispatcher
}

func NewInquiryService(repo repository.RepositoryInterface, dispatcher EmailDispatcher) ServiceInterface {
	return &inquiryService{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// CreateInquiry inserts the inquiry and enqueues the notification mail.
// Mail dispatch is best effort: a queue failure never fails the create.
func (s *inquiryService) CreateInquiry(ctx context.Context, req model.CreateInquiryRequest) *response.Envelope {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return response.ServerError(err)
	}
	if exists {
		return response.Conflict(messages.AlreadyExist)
	}

	id, err := s.repo.Create(ctx, &model.Inquiry{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Message:     req.Message,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return response.ServerError(err)
	}

	if err := s.dispatcher.EnqueueInquiryNotification(ctx, email.InquiryEmailData{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
	}); err != nil {
		logger.Error("failed to enqueue inquiry notification", err)
	}

	return response.Created(messages.AddedSuccess, map[string]interface{}{"id": id})
}

func (s *inquiryService) ViewInquiry(ctx context.Context, id int64) *response.Envelope {
	view, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrInquiryNotFound {
			return response.NotFound(messages.NotFound)
		}
		return response.ServerError(err)
	}

	return response.OK(messages.GetSuccess, view)
}

func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, id int64) *response.Envelope {
	updated, err := s.repo.ResolvePending(ctx, id)
	if err != nil {
		return response.ServerError(err)
	}
	if !updated {
		return response.NotFound(messages.NotFound)
	}

	return response.Accepted(messages.UpdateSuccess)
}

func (s *inquiryService) ListOfInquiries(ctx context.Context, params pagination.Params) *response.Envelope {
	page := pagination.Paginate(params.Page, params.PageSize, 0)
	orderBy := pagination.SortQuery(params.SortKey, params.SortValue, inquirySortColumns)

	inquiries, total, err := s.repo.List(ctx, params.SearchBar, orderBy, page.Limit, page.Skip)
	if err != nil {
		return response.ServerError(err)
	}
	if len(inquiries) == 0 {
		return response.NotFound(messages.NotFound)
	}

	page = pagination.Paginate(params.Page, params.PageSize, total)

	return response.OK(messages.GetSuccess, map[string]interface{}{
		"listOfInquiries":   inquiries,
		"totalPages":        page.TotalPages,
		"totalRecordsCount": page.TotalRecordsCount,
		"currentPage":       page.CurrentPage,
		"numberOfRows":      len(inquiries),
		"limit":             page.Limit,
	})
}
