package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/internal/repository"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func testClub() config.ClubSettings {
	return config.ClubSettings{
		Name:              "Club Atletico Norte",
		City:              "Rosario",
		MemberCategories:  []string{"U13", "U15", "First Team"},
		IncomeCategories:  []string{model.DuesCategory, "Sponsorship", "Events"},
		ExpenseCategories: []string{"Referees", "Equipment"},
		OverdueGraceDays:  35,
		SponsorAlertDays:  30,
	}
}

type store struct {
	db           *sqlite.DB
	members      *repository.MemberRepository
	dues         *repository.DuesRepository
	transactions *repository.TransactionRepository
	sponsors     *repository.SponsorRepository
	users        *repository.UserRepository
}

func setupStore(t *testing.T) *store {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: filepath.Join(t.TempDir(), "club.db")}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &store{
		db:           db,
		members:      repository.NewMemberRepository(db).WithClock(fixedNow),
		dues:         repository.NewDuesRepository(db).WithClock(fixedNow),
		transactions: repository.NewTransactionRepository(db).WithClock(fixedNow),
		sponsors:     repository.NewSponsorRepository(db).WithClock(fixedNow),
		users:        repository.NewUserRepository(db),
	}
}

func (s *store) addMember(t *testing.T, first, last, nationalID string) *model.Member {
	t.Helper()
	m, err := s.members.Create(context.Background(), &model.Member{
		FirstName:  first,
		LastName:   last,
		NationalID: nationalID,
		Category:   "U15",
	})
	require.NoError(t, err)
	return m
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}
