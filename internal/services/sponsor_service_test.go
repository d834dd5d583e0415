package services

import (
	"context"
	"testing"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSponsorRequest() model.SponsorCreateRequest {
	return model.SponsorCreateRequest{
		CompanyName:    "Acme Foods",
		ContactName:    "Laura",
		Email:          "laura@acme.com",
		Phone:          "0341 455 1234",
		ContractAmount: 120000,
		StartDate:      day(2025, 1, 1),
		ExpirationDate: day(2025, 12, 31),
	}
}

func TestSponsorService_Create_Validation(t *testing.T) {
	cases := map[string]func(r *model.SponsorCreateRequest){
		"missing company":         func(r *model.SponsorCreateRequest) { r.CompanyName = "" },
		"zero amount":             func(r *model.SponsorCreateRequest) { r.ContractAmount = 0 },
		"expiration before start": func(r *model.SponsorCreateRequest) { r.ExpirationDate = day(2024, 12, 31) },
		"bad email":               func(r *model.SponsorCreateRequest) { r.Email = "laura" },
		"bad phone":               func(r *model.SponsorCreateRequest) { r.Phone = "123" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(MockSponsorRepository)
			svc := NewSponsorService(repo, testClub())

			req := validSponsorRequest()
			mutate(&req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSponsorService_Expiring_DefaultWindow(t *testing.T) {
	repo := new(MockSponsorRepository)
	svc := NewSponsorService(repo, testClub())
	ctx := context.Background()

	repo.On("ListExpiringWithin", ctx, 30).Return([]*model.Sponsor{}, nil).Once()
	repo.On("ListExpiringWithin", ctx, 7).Return([]*model.Sponsor{}, nil).Once()

	_, err := svc.Expiring(ctx, -1)
	require.NoError(t, err)
	_, err = svc.Expiring(ctx, 7)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSponsorService_Lifecycle(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewSponsorService(s.sponsors, testClub())

	sp, err := svc.Create(ctx, validSponsorRequest())
	require.NoError(t, err)
	assert.Equal(t, model.SponsorStatusActive, sp.Status)

	updated, err := svc.Update(ctx, sp.ID, model.SponsorUpdate{
		CompanyName:    "Acme Foods SA",
		ContractAmount: 150000,
		StartDate:      day(2025, 1, 1),
		ExpirationDate: day(2025, 7, 1),
		Status:         "suspended",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Foods SA", updated.CompanyName)
	assert.Equal(t, "suspended", updated.Status)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.Update(ctx, sp.ID, model.SponsorUpdate{CompanyName: "x", ContractAmount: 1, StartDate: day(2025, 1, 1), ExpirationDate: day(2025, 2, 1)})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Delete(ctx, sp.ID))
	_, err = svc.Get(ctx, sp.ID)
	assert.ErrorIs(t, err, repository.ErrSponsorNotFound)
}
