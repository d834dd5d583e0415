package handlers

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberHandler_Add(t *testing.T) {
	t.Run("maps flags onto the request", func(t *testing.T) {
		svc := new(MockMemberService)
		handler := NewMemberHandler(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.MemberCreateRequest) bool {
			return p.FirstName == "Ana" &&
				p.LastName == "Gomez" &&
				p.NationalID == "30.111.222" &&
				p.Category == "U15" &&
				p.BirthDate != nil && p.BirthDate.Equal(time.Date(2011, 4, 2, 0, 0, 0, 0, time.UTC)) &&
				p.EnrollmentDate == nil
		})).Return(&model.Member{ID: 5, FirstName: "Ana", LastName: "Gomez"}, nil)

		ctx, out := setupTestContext("-first", "Ana", "-last", "Gomez", "-national-id", "30.111.222",
			"-category", "U15", "-birth", "2011-04-02")
		require.NoError(t, handler.Add(ctx))

		var got model.Member
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, int64(5), got.ID)
		svc.AssertExpectations(t)
	})

	t.Run("bad date is a flag error", func(t *testing.T) {
		svc := new(MockMemberService)
		handler := NewMemberHandler(svc)

		ctx, _ := setupTestContext("-birth", "02/04/2011")
		assert.Error(t, handler.Add(ctx))
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("service error is returned", func(t *testing.T) {
		svc := new(MockMemberService)
		handler := NewMemberHandler(svc)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

		ctx, out := setupTestContext("-first", "Ana")
		assert.EqualError(t, handler.Add(ctx), "duplicate key")
		assert.Empty(t, out.String())
	})
}

func TestMemberHandler_List(t *testing.T) {
	svc := new(MockMemberService)
	handler := NewMemberHandler(svc)

	svc.On("List", mock.Anything, true).Return(nil, nil).Once()
	svc.On("List", mock.Anything, false).Return([]*model.Member{{ID: 1}, {ID: 2}}, nil).Once()

	ctx, out := setupTestContext()
	require.NoError(t, handler.List(ctx))
	assert.Equal(t, "[]\n", out.String())

	ctx, out = setupTestContext("-all")
	require.NoError(t, handler.List(ctx))
	var got []model.Member
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestMemberHandler_Find(t *testing.T) {
	svc := new(MockMemberService)
	handler := NewMemberHandler(svc)

	svc.On("FindByNationalID", mock.Anything, "30111222").Return(nil, nil)
	svc.On("Get", mock.Anything, int64(3)).Return(&model.Member{ID: 3}, nil)

	ctx, _ := setupTestContext("-national-id", "30111222")
	assert.Error(t, handler.Find(ctx))

	ctx, out := setupTestContext("-id", "3")
	require.NoError(t, handler.Find(ctx))
	assert.Contains(t, out.String(), `"id": 3`)

	ctx, _ = setupTestContext()
	assert.Error(t, handler.Find(ctx))
}

func TestMemberHandler_Update_OverlaysGivenFlags(t *testing.T) {
	svc := new(MockMemberService)
	handler := NewMemberHandler(svc)

	current := &model.Member{
		ID: 4, FirstName: "Ana", LastName: "Gomez", NationalID: "30111222",
		Phone: "0341 455 1234", Email: "ana@club.org", Category: "U13", Notes: "keeper",
	}
	svc.On("Get", mock.Anything, int64(4)).Return(current, nil)
	svc.On("Update", mock.Anything, int64(4), model.MemberUpdate{
		FirstName: "Ana",
		LastName:  "Gomez",
		Phone:     "0341 455 1234",
		Email:     "",
		Category:  "U15",
		Notes:     "keeper",
	}).Return(current, nil)

	ctx, _ := setupTestContext("-id", "4", "-category", "U15", "-email", "")
	require.NoError(t, handler.Update(ctx))
	svc.AssertExpectations(t)
}

func TestMemberHandler_Update_RequiresID(t *testing.T) {
	handler := NewMemberHandler(new(MockMemberService))

	ctx, _ := setupTestContext("-category", "U15")
	assert.ErrorIs(t, handler.Update(ctx), errMissingID)
}

func TestMemberHandler_StatusAndSweep(t *testing.T) {
	svc := new(MockMemberService)
	handler := NewMemberHandler(svc)
	handler.clock = func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }

	svc.On("SetPaymentStatus", mock.Anything, int64(2), model.PaymentStatusExempt).Return(nil)
	svc.On("SweepOverdue", mock.Anything, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)).Return(int64(4), nil)
	svc.On("Deactivate", mock.Anything, int64(2)).Return(nil)

	ctx, _ := setupTestContext("-id", "2", "-status", "exempt")
	require.NoError(t, handler.Status(ctx))

	ctx, out := setupTestContext()
	require.NoError(t, handler.Sweep(ctx))
	var resp sweepResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, sweepResponse{Date: "2025-06-15", Marked: 4}, resp)

	ctx, out = setupTestContext("-id", "2")
	require.NoError(t, handler.Deactivate(ctx))
	assert.Contains(t, out.String(), `"status": "deactivated"`)
	svc.AssertExpectations(t)
}
