package handlers

import (
	"bytes"
	"context"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
	"github.com/stretchr/testify/mock"
)

func setupTestContext(args ...string) (*cli.Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &cli.Context{Context: context.Background(), Args: args, Out: out}, out
}

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) Create(ctx context.Context, p model.MemberCreateRequest) (*model.Member, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) List(ctx context.Context, activeOnly bool) ([]*model.Member, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Member), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id int64) (*model.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) FindByNationalID(ctx context.Context, nationalID string) (*model.Member, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) Update(ctx context.Context, id int64, u model.MemberUpdate) (*model.Member, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) SetPaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockMemberService) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberService) Reactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberService) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockDuesService struct {
	mock.Mock
}

func (m *MockDuesService) Collect(ctx context.Context, p model.DuesCreateRequest) (*model.DuesReceipt, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DuesReceipt), args.Error(1)
}

func (m *MockDuesService) History(ctx context.Context, memberID int64) ([]*model.DuesPayment, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DuesPayment), args.Error(1)
}

func (m *MockDuesService) Period(ctx context.Context, month, year int) ([]*model.DuesPayment, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DuesPayment), args.Error(1)
}

type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) Record(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockFinanceService) List(ctx context.Context, from, to time.Time) ([]*model.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *MockFinanceService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFinanceService) Balance(ctx context.Context) (model.Balance, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Balance), args.Error(1)
}

func (m *MockFinanceService) PeriodBalance(ctx context.Context, from, to time.Time) (model.Balance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(model.Balance), args.Error(1)
}

type MockSponsorService struct {
	mock.Mock
}

func (m *MockSponsorService) Create(ctx context.Context, p model.SponsorCreateRequest) (*model.Sponsor, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sponsor), args.Error(1)
}

func (m *MockSponsorService) Get(ctx context.Context, id int64) (*model.Sponsor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sponsor), args.Error(1)
}

func (m *MockSponsorService) Update(ctx context.Context, id int64, u model.SponsorUpdate) (*model.Sponsor, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sponsor), args.Error(1)
}

func (m *MockSponsorService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSponsorService) ListActive(ctx context.Context) ([]*model.Sponsor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sponsor), args.Error(1)
}

func (m *MockSponsorService) Expiring(ctx context.Context, days int) ([]*model.Sponsor, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sponsor), args.Error(1)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) WriteDuesReceipt(r *model.DuesReceipt) (string, error) {
	args := m.Called(r)
	return args.String(0), args.Error(1)
}

func (m *MockExporter) WriteTransactions(txns []*model.Transaction, from, to time.Time) (string, error) {
	args := m.Called(txns, from, to)
	return args.String(0), args.Error(1)
}

func (m *MockExporter) WriteMembers(members []*model.Member) (string, error) {
	args := m.Called(members)
	return args.String(0), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*model.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Summary), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, username, password, fullName, role string) (*model.User, error) {
	args := m.Called(ctx, username, password, fullName, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
