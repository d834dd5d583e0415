package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testToday
}

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), sqlite.Config{
		Path: filepath.Join(t.TempDir(), "club.db"),
	}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func newTestMember(nationalID, first, last string) *model.Member {
	return &model.Member{
		FirstName:  first,
		LastName:   last,
		NationalID: nationalID,
		Phone:      "3794123456",
		Email:      first + "@example.com",
		Category:   "U15",
	}
}

func createTestMember(t *testing.T, repo *MemberRepository, nationalID, first, last string) *model.Member {
	t.Helper()
	m, err := repo.Create(context.Background(), newTestMember(nationalID, first, last))
	require.NoError(t, err)
	return m
}
