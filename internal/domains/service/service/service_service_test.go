package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuentista-backend/internal/domains/service/model"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/pkg/database"
)

type passRunner struct{}

func (passRunner) WithTx(_ context.Context, fn database.TxFunc) error {
	return fn(nil)
}

type serviceState struct {
	name        string
	description string
	images      []model.ImageInput
	subServices []model.SubServiceInput
	details     map[string][]model.ServiceDetail
}

type fakeServiceRepo struct {
	services map[int64]*serviceState
	nextID   int64
	names    []model.ServiceListRow
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*serviceState{}, nextID: 1}
}

func (f *fakeServiceRepo) ExistsByNameTx(_ context.Context, _ pgx.Tx, name string) (bool, error) {
	for _, s := range f.services {
		if s.name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeServiceRepo) ExistsTx(_ context.Context, _ pgx.Tx, id int64) (bool, error) {
	_, ok := f.services[id]
	return ok, nil
}

func (f *fakeServiceRepo) InsertServiceTx(_ context.Context, _ pgx.Tx, name, description string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.services[id] = &serviceState{name: name, description: description, details: map[string][]model.ServiceDetail{}}
	return id, nil
}

func (f *fakeServiceRepo) UpdateServiceTx(_ context.Context, _ pgx.Tx, id int64, name, description string) error {
	f.services[id].name, f.services[id].description = name, description
	return nil
}

func (f *fakeServiceRepo) DeleteServiceTx(_ context.Context, _ pgx.Tx, id int64) error {
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) InsertImagesTx(_ context.Context, _ pgx.Tx, id int64, images []model.ImageInput) error {
	f.services[id].images = append(f.services[id].images, images...)
	return nil
}

func (f *fakeServiceRepo) InsertSubServicesTx(_ context.Context, _ pgx.Tx, id int64, subs []model.SubServiceInput) error {
	f.services[id].subServices = append(f.services[id].subServices, subs...)
	return nil
}

func (f *fakeServiceRepo) InsertDetailsTx(_ context.Context, _ pgx.Tx, id int64, detailType string, details []model.DetailInput) error {
	for _, d := range details {
		description := ""
		if detailType == model.DetailTypeConsulting {
			description = d.ServicesDetailsDescription
		}
		f.services[id].details[detailType] = append(f.services[id].details[detailType], model.ServiceDetail{
			ServicesDetailsPoint:       d.ServicesDetailsPoint,
			ServicesDetailsType:        detailType,
			ServicesDetailsDescription: description,
			ServiceID:                  id,
		})
	}
	return nil
}

func (f *fakeServiceRepo) DeleteImagesTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.services[id].images = nil
	return nil
}

func (f *fakeServiceRepo) DeleteSubServicesTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.services[id].subServices = nil
	return nil
}

func (f *fakeServiceRepo) DeleteDetailsTx(_ context.Context, _ pgx.Tx, id int64, detailType string) error {
	delete(f.services[id].details, detailType)
	return nil
}

func (f *fakeServiceRepo) DeleteAllDetailsTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.services[id].details = map[string][]model.ServiceDetail{}
	return nil
}

func (f *fakeServiceRepo) List(_ context.Context, _, _ string, _, _ int) ([]model.ServiceListRow, int, error) {
	return nil, 0, nil
}

func (f *fakeServiceRepo) GetAllNames(_ context.Context) ([]model.ServiceListRow, error) {
	return f.names, nil
}

func (f *fakeServiceRepo) GetView(_ context.Context, id int64) (*model.ServiceView, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, model.ErrServiceNotFound
	}
	view := &model.ServiceView{Service: model.Service{ID: id, ServiceName: s.name}}
	view.Approach = s.details[model.DetailTypeApproach]
	view.Benefits = s.details[model.DetailTypeBenefits]
	view.ATC = s.details[model.DetailTypeATC]
	view.Consulting = s.details[model.DetailTypeConsulting]
	return view, nil
}

func (f *fakeServiceRepo) InvalidateCache(_ context.Context, _ int64) {}

func addServiceRequest(name string) model.AddServiceRequest {
	return model.AddServiceRequest{
		ServiceName:        name,
		ServiceDescription: "Delivery",
		Images:             []model.ImageInput{{OverviewImage: "o.png"}},
		SubServices:        []model.SubServiceInput{{SubServiceTitle: "Audit"}},
		Approach:           []model.DetailInput{{ServicesDetailsPoint: "Discover"}},
		Benefits:           []model.DetailInput{{ServicesDetailsPoint: "Faster"}},
		ATC:                []model.DetailInput{{ServicesDetailsPoint: "Cloud"}},
		Consulting: []model.DetailInput{{
			ServicesDetailsPoint:       "Strategy",
			ServicesDetailsDescription: "Roadmap workshops",
		}},
	}
}

func TestAddService(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(passRunner{}, repo)

	env := svc.AddService(context.Background(), addServiceRequest("Cloud Migration"))
	require.Equal(t, http.StatusCreated, env.StatusCode)

	id := env.Data.(map[string]interface{})["id"].(int64)
	s := repo.services[id]
	require.NotNil(t, s)

	// Only Consulting rows keep their description.
	require.Len(t, s.details[model.DetailTypeConsulting], 1)
	assert.Equal(t, "Roadmap workshops", s.details[model.DetailTypeConsulting][0].ServicesDetailsDescription)
	require.Len(t, s.details[model.DetailTypeApproach], 1)
	assert.Empty(t, s.details[model.DetailTypeApproach][0].ServicesDetailsDescription)

	env = svc.AddService(context.Background(), addServiceRequest("Cloud Migration"))
	assert.Equal(t, http.StatusConflict, env.StatusCode)
	assert.Equal(t, messages.AlreadyExist, env.Message)
}

func TestEditServiceSectionIndependence(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(passRunner{}, repo)
	env := svc.AddService(context.Background(), addServiceRequest("Cloud Migration"))
	id := env.Data.(map[string]interface{})["id"].(int64)

	// Replacing Approach must leave the other three sections alone.
	replacement := []model.DetailInput{{ServicesDetailsPoint: "Assess"}, {ServicesDetailsPoint: "Plan"}}
	env = svc.EditService(context.Background(), id, model.EditServiceRequest{
		ServiceName:        "Cloud Migration",
		ServiceDescription: "Delivery",
		Approach:           &replacement,
	})
	require.Equal(t, http.StatusAccepted, env.StatusCode)

	s := repo.services[id]
	assert.Len(t, s.details[model.DetailTypeApproach], 2)
	assert.Len(t, s.details[model.DetailTypeBenefits], 1)
	assert.Len(t, s.details[model.DetailTypeATC], 1)
	assert.Len(t, s.details[model.DetailTypeConsulting], 1)
	assert.Len(t, s.subServices, 1)

	// An empty section clears just that section.
	empty := []model.DetailInput{}
	env = svc.EditService(context.Background(), id, model.EditServiceRequest{
		ServiceName:        "Cloud Migration",
		ServiceDescription: "Delivery",
		Benefits:           &empty,
	})
	require.Equal(t, http.StatusAccepted, env.StatusCode)
	assert.Empty(t, s.details[model.DetailTypeBenefits])
	assert.Len(t, s.details[model.DetailTypeApproach], 2)
}

func TestDeleteService(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(passRunner{}, repo)
	env := svc.AddService(context.Background(), addServiceRequest("Cloud Migration"))
	id := env.Data.(map[string]interface{})["id"].(int64)

	env = svc.DeleteService(context.Background(), id)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Empty(t, repo.services)

	env = svc.DeleteService(context.Background(), id)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
}

func TestGetServiceList(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(passRunner{}, repo)

	env := svc.GetServiceList(context.Background())
	assert.Equal(t, http.StatusNotFound, env.StatusCode)

	repo.names = []model.ServiceListRow{{ID: 9, ServiceName: "Cloud Migration"}}

	env = svc.GetServiceList(context.Background())
	require.Equal(t, http.StatusOK, env.StatusCode)
	list := env.Data.([]model.ServiceNameRow)
	require.Len(t, list, 1)
	assert.Equal(t, "Cloud Migration-9", list[0].ServiceUrl)
}
