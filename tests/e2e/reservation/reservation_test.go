//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"boat-reservation/internal/domain/user"
	reqdto "boat-reservation/internal/handler/dto/request"
	resdto "boat-reservation/internal/handler/dto/response"
	"boat-reservation/tests/common/authtest"
	"boat-reservation/tests/common/dbtest"
	"boat-reservation/tests/common/httptest"
	"boat-reservation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	reservationURL  = "/api/reservations/%s"
	cancelURL       = "/api/reservations/%s/cancel"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// slotIn creates a 10:00-13:00 slot offsetDays from today.
func (s *ReservationSuite) slotIn(offsetDays int) uuid.UUID {
	t := s.T()
	date := s.Today().AddDate(0, 0, offsetDays)
	periodID := dbtest.CreateTestCruisePeriod(t, s.DB, date)
	return dbtest.CreateTestTimeSlot(t, s.DB, periodID, date, 10*time.Hour, 13*time.Hour)
}

func (s *ReservationSuite) book(token string, slotID uuid.UUID) resdto.CreateReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqdto.CreateReservationRequest{TimeSlotID: slotID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.CreateReservationResponse
	httptest.DecodeJSON(t, w, &created)
	return created
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("success: 空いているボートが割り当てられ詳細で確認できる", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		boatID := dbtest.CreateTestBoat(t, s.DB, "Sea Breeze")
		slotID := s.slotIn(5)
		token := s.Token(guestID, user.RoleGuest)

		created := s.book(token, slotID)
		require.Equal(t, boatID, created.BoatID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual resdto.ReservationResponse
		httptest.DecodeJSON(t, w, &actual)

		expected := &resdto.ReservationResponse{
			ID:         created.ID,
			UserID:     guestID,
			BoatID:     boatID,
			BoatName:   "Sea Breeze",
			TimeSlotID: slotID,
			Date:       s.Today().AddDate(0, 0, 5).Format(reqdto.DateLayout),
			Start:      "10:00",
			End:        "13:00",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: 同じスロットの2人目は別のボートになる", func() {
		t := s.T()

		first := dbtest.CreateTestUser(t, s.DB, "first", user.RoleGuest)
		second := dbtest.CreateTestUser(t, s.DB, "second", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Alpha")
		dbtest.CreateTestBoat(t, s.DB, "Bravo")
		slotID := s.slotIn(5)

		a := s.book(s.Token(first, user.RoleGuest), slotID)
		b := s.book(s.Token(second, user.RoleGuest), slotID)
		require.NotEqual(t, a.BoatID, b.BoatID)
	})

	s.Run("error: 空きボートが無ければ409", func() {
		t := s.T()

		first := dbtest.CreateTestUser(t, s.DB, "first", user.RoleGuest)
		second := dbtest.CreateTestUser(t, s.DB, "second", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Solo")
		slotID := s.slotIn(5)

		s.book(s.Token(first, user.RoleGuest), slotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			reqdto.CreateReservationRequest{TimeSlotID: slotID}, s.Token(second, user.RoleGuest))
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("error: 同じユーザーの二重予約は409", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Alpha")
		dbtest.CreateTestBoat(t, s.DB, "Bravo")
		slotID := s.slotIn(5)
		token := s.Token(guestID, user.RoleGuest)

		s.book(token, slotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqdto.CreateReservationRequest{TimeSlotID: slotID}, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("error: 一般ユーザーは翌日の予約不可で400、管理者は可能", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		adminID := dbtest.CreateTestUser(t, s.DB, "admin", user.RoleAdmin)
		dbtest.CreateTestBoat(t, s.DB, "Alpha")
		slotID := s.slotIn(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			reqdto.CreateReservationRequest{TimeSlotID: slotID}, s.Token(guestID, user.RoleGuest))
		require.Equal(t, http.StatusBadRequest, w.Code)

		s.book(s.Token(adminID, user.RoleAdmin), slotID)
	})

	s.Run("error: 存在しないスロットは404", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			reqdto.CreateReservationRequest{TimeSlotID: uuid.New()}, s.Token(guestID, user.RoleGuest))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("error: トークン無しは401、期限切れも401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqdto.CreateReservationRequest{TimeSlotID: uuid.New()}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New(), user.RoleGuest)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ReservationSuite) TestGetReservation() {
	s.Run("error: 他人の予約は403、管理者は閲覧できる", func() {
		t := s.T()

		owner := dbtest.CreateTestUser(t, s.DB, "owner", user.RoleGuest)
		other := dbtest.CreateTestUser(t, s.DB, "other", user.RoleGuest)
		adminID := dbtest.CreateTestUser(t, s.DB, "admin", user.RoleAdmin)
		dbtest.CreateTestBoat(t, s.DB, "Alpha")
		created := s.book(s.Token(owner, user.RoleGuest), s.slotIn(5))

		url := fmt.Sprintf(reservationURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.Token(other, user.RoleGuest))
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.Token(adminID, user.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("error: 存在しない予約は404、不正なIDは400", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		token := s.Token(guestID, user.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, "not-a-uuid"), nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *ReservationSuite) TestListReservations() {
	s.Run("success: 日付順にページングし前後に移動できる", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Alpha")
		token := s.Token(guestID, user.RoleGuest)

		var ids []uuid.UUID
		for offset := 3; offset <= 7; offset++ {
			ids = append(ids, s.book(token, s.slotIn(offset)).ID)
		}

		page := s.list(token, reservationsURL+"?limit=2")
		require.True(t, page.IsFirstPage)
		require.Equal(t, ids[:2], itemIDs(page))
		require.NotNil(t, page.NextCursor)
		require.Nil(t, page.PreviousCursor)

		page = s.list(token, reservationsURL+"?limit=2&direction=next&cursor="+*page.NextCursor)
		require.False(t, page.IsFirstPage)
		require.Equal(t, ids[2:4], itemIDs(page))
		require.NotNil(t, page.PreviousCursor)

		page = s.list(token, reservationsURL+"?limit=2&direction=prev&cursor="+*page.PreviousCursor)
		require.Equal(t, ids[:2], itemIDs(page))
	})

	s.Run("success: 他人の予約は含まれない", func() {
		t := s.T()

		me := dbtest.CreateTestUser(t, s.DB, "me", user.RoleGuest)
		other := dbtest.CreateTestUser(t, s.DB, "other", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Alpha")
		dbtest.CreateTestBoat(t, s.DB, "Bravo")
		slotID := s.slotIn(4)

		mine := s.book(s.Token(me, user.RoleGuest), slotID)
		s.book(s.Token(other, user.RoleGuest), slotID)

		page := s.list(s.Token(me, user.RoleGuest), reservationsURL)
		require.Equal(t, []uuid.UUID{mine.ID}, itemIDs(page))
	})

	s.Run("error: 不正なカーソルやdirectionは400", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		token := s.Token(guestID, user.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?cursor=invalid", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?direction=sideways", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *ReservationSuite) TestCancelReservation() {
	s.Run("success: キャンセル後はスロットを再予約できる", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Solo")
		slotID := s.slotIn(5)
		token := s.Token(guestID, user.RoleGuest)

		created := s.book(token, slotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var view resdto.ReservationResponse
		httptest.DecodeJSON(t, w, &view)
		require.True(t, view.IsCanceled)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, "二重キャンセルは不可")

		rebooked := s.book(token, slotID)
		require.NotEqual(t, created.ID, rebooked.ID)
	})

	s.Run("error: 他人の予約はキャンセルできない", func() {
		t := s.T()

		owner := dbtest.CreateTestUser(t, s.DB, "owner", user.RoleGuest)
		other := dbtest.CreateTestUser(t, s.DB, "other", user.RoleGuest)
		dbtest.CreateTestBoat(t, s.DB, "Solo")
		created := s.book(s.Token(owner, user.RoleGuest), s.slotIn(5))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, s.Token(other, user.RoleGuest))
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("success: 翌日の予約を管理者はキャンセルできる", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest", user.RoleGuest)
		adminID := dbtest.CreateTestUser(t, s.DB, "admin", user.RoleAdmin)
		dbtest.CreateTestBoat(t, s.DB, "Solo")
		adminToken := s.Token(adminID, user.RoleAdmin)

		// admins may book for the next day on their own behalf
		created := s.book(adminToken, s.slotIn(1))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, s.Token(guestID, user.RoleGuest))
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func (s *ReservationSuite) list(token, url string) resdto.ReservationPageResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page resdto.ReservationPageResponse
	httptest.DecodeJSON(t, w, &page)
	return page
}

func itemIDs(page resdto.ReservationPageResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(page.Data))
	for i, item := range page.Data {
		ids[i] = item.ID
	}
	return ids
}
