package services

import (
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context, activeOnly bool) ([]*model.Member, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByNationalID(ctx context.Context, nationalID string) (*model.Member, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, id int64, u model.MemberUpdate) (*model.Member, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberRepository) SetPaymentStatus(ctx context.Context, id int64, status model.PaymentStatus, lastPayment *time.Time) error {
	args := m.Called(ctx, id, status, lastPayment)
	return args.Error(0)
}

func (m *MockMemberRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) Reactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) CountByStatus(ctx context.Context) (model.MemberCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.MemberCounts), args.Error(1)
}

func (m *MockMemberRepository) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, from, to time.Time) ([]*model.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetBalance(ctx context.Context) (model.Balance, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Balance), args.Error(1)
}

func (m *MockTransactionRepository) GetPeriodBalance(ctx context.Context, from, to time.Time) (model.Balance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(model.Balance), args.Error(1)
}

type MockSponsorRepository struct {
	mock.Mock
}

func (m *MockSponsorRepository) Create(ctx context.Context, s *model.Sponsor) (*model.Sponsor, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) GetByID(ctx context.Context, id int64) (*model.Sponsor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) Update(ctx context.Context, id int64, u model.SponsorUpdate) (*model.Sponsor, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSponsorRepository) ListActive(ctx context.Context) ([]*model.Sponsor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) ListExpiringWithin(ctx context.Context, days int) ([]*model.Sponsor, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sponsor), args.Error(1)
}
