package services

import (
	"context"
	"testing"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validMemberRequest() model.MemberCreateRequest {
	return model.MemberCreateRequest{
		FirstName:  "  Ana ",
		LastName:   "Gomez",
		NationalID: "30.111.222",
		Phone:      "(0341) 455-1234",
		Email:      "ana@club.org",
		Category:   "U15",
	}
}

func TestMemberService_Create_NormalizesInput(t *testing.T) {
	repo := new(MockMemberRepository)
	svc := NewMemberService(repo, testClub())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(m *model.Member) bool {
		return m.FirstName == "Ana" && m.NationalID == "30111222" && m.EnrollmentDate.IsZero()
	})).Return(&model.Member{ID: 1, FirstName: "Ana", LastName: "Gomez", NationalID: "30111222"}, nil)

	m, err := svc.Create(ctx, validMemberRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)
	repo.AssertExpectations(t)
}

func TestMemberService_Create_Validation(t *testing.T) {
	cases := map[string]struct {
		mutate func(r *model.MemberCreateRequest)
		field  string
	}{
		"short national id": {func(r *model.MemberCreateRequest) { r.NationalID = "123456" }, "national_id"},
		"bad email":         {func(r *model.MemberCreateRequest) { r.Email = "ana@" }, "email"},
		"bad phone":         {func(r *model.MemberCreateRequest) { r.Phone = "12345" }, "phone"},
		"unknown category":  {func(r *model.MemberCreateRequest) { r.Category = "Masters" }, "category"},
		"missing name":      {func(r *model.MemberCreateRequest) { r.FirstName = "   " }, ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(MockMemberRepository)
			svc := NewMemberService(repo, testClub())

			req := validMemberRequest()
			tc.mutate(&req)
			_, err := svc.Create(context.Background(), req)

			require.ErrorIs(t, err, ErrValidation)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMemberService_Create_DuplicatePassesThrough(t *testing.T) {
	repo := new(MockMemberRepository)
	svc := NewMemberService(repo, testClub())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateNationalID)

	_, err := svc.Create(context.Background(), validMemberRequest())
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestMemberService_FindByNationalID(t *testing.T) {
	repo := new(MockMemberRepository)
	svc := NewMemberService(repo, testClub())
	ctx := context.Background()

	repo.On("FindByNationalID", ctx, "30111222").Return(nil, nil)

	m, err := svc.FindByNationalID(ctx, "30.111.222")
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = svc.FindByNationalID(ctx, "abc")
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNumberOfCalls(t, "FindByNationalID", 1)
}

func TestMemberService_Update_ForwardsNormalizedNationalID(t *testing.T) {
	repo := new(MockMemberRepository)
	svc := NewMemberService(repo, testClub())
	ctx := context.Background()

	repo.On("Update", ctx, int64(7), mock.MatchedBy(func(u model.MemberUpdate) bool {
		return u.NationalID == "30111223" && u.LastName == "Gomez Paz"
	})).Return(nil, repository.ErrNationalIDImmutable)

	_, err := svc.Update(ctx, 7, model.MemberUpdate{
		FirstName:  "Ana",
		LastName:   "Gomez  Paz",
		NationalID: "30.111.223",
		Category:   "U15",
	})
	assert.ErrorIs(t, err, repository.ErrNationalIDImmutable)
	repo.AssertExpectations(t)
}

func TestMemberService_SweepOverdue_UsesGracePeriod(t *testing.T) {
	repo := new(MockMemberRepository)
	svc := NewMemberService(repo, testClub())
	ctx := context.Background()

	cutoff := day(2025, 5, 11)
	repo.On("MarkOverdue", ctx, cutoff).Return(int64(3), nil)

	n, err := svc.SweepOverdue(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	repo.AssertExpectations(t)
}

func TestMemberService_SweepOverdue_Store(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewMemberService(s.members, testClub())

	stale := s.addMember(t, "Ana", "Gomez", "30111222")
	paid := s.addMember(t, "Luis", "Perez", "30111223")
	exempt := s.addMember(t, "Eva", "Diaz", "30111224")

	require.NoError(t, s.members.SetPaymentStatus(ctx, stale.ID, model.PaymentStatusCurrent, dayPtr(2025, 4, 1)))
	require.NoError(t, s.members.SetPaymentStatus(ctx, paid.ID, model.PaymentStatusCurrent, dayPtr(2025, 6, 1)))
	require.NoError(t, s.members.SetPaymentStatus(ctx, exempt.ID, model.PaymentStatusExempt, dayPtr(2025, 1, 1)))

	n, err := svc.SweepOverdue(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.MemberCounts{Total: 3, Current: 1, Overdue: 1, Exempt: 1}, counts)
}

func TestMemberService_DeactivateReactivate(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewMemberService(s.members, testClub())

	m := s.addMember(t, "Ana", "Gomez", "30111222")
	require.NoError(t, svc.Deactivate(ctx, m.ID))

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.Reactivate(ctx, m.ID))
	active, err = svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	assert.ErrorIs(t, svc.Deactivate(ctx, 999), repository.ErrNotFound)
}

func TestMemberService_SetPaymentStatus(t *testing.T) {
	repo := new(MockMemberRepository)
	svc := NewMemberService(repo, testClub())
	ctx := context.Background()

	repo.On("SetPaymentStatus", ctx, int64(2), model.PaymentStatusExempt, (*time.Time)(nil)).Return(nil)

	require.NoError(t, svc.SetPaymentStatus(ctx, 2, model.PaymentStatusExempt))
	repo.AssertExpectations(t)
}
