//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/handler/api"
	resdto "boat-reservation/internal/handler/dto/response"
	"boat-reservation/internal/handler/middleware"
	"boat-reservation/internal/usecase/assignment"
	"boat-reservation/internal/usecase/commands"
	"boat-reservation/internal/usecase/shared"
	"boat-reservation/tests/common/httptest"
	"boat-reservation/tests/common/testutil"
	assignmentmock "boat-reservation/tests/mock/assignment"
	commandsmock "boat-reservation/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBoats    *commandsmock.MockBoatCommands
	mockSchedule *commandsmock.MockScheduleCommands
	mockRunner   *assignmentmock.MockRunner
	actor        shared.Actor
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBoats = commandsmock.NewMockBoatCommands(s.mockCtrl)
	s.mockSchedule = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockRunner = assignmentmock.NewMockRunner(s.mockCtrl)
	s.actor = shared.NewActor(uuid.New(), user.RoleAdmin)
	h := api.NewAdminHandler(s.mockBoats, s.mockSchedule, s.mockRunner)

	auth := fakeAuth(&s.actor)
	s.router.PATCH("/boats/:id/availability", auth, h.SetBoatAvailability)
	s.router.POST("/cruise-periods", auth, h.CreateCruisePeriod)
	s.router.POST("/cruise-periods/:id/time-slots", auth, h.AddTimeSlot)
	s.router.POST("/assignments/run", auth, h.RunAssignment)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestSetBoatAvailability() {
	boatID := uuid.New()
	url := "/boats/" + boatID.String() + "/availability"

	s.Run("success: 利用停止はキャンセル件数を返す", func() {
		s.mockBoats.EXPECT().SetAvailability(gomock.Any(), s.actor, boatID, false).
			Return(&commands.SetAvailabilityResult{BoatID: boatID, IsAvailable: false, Canceled: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"isAvailable": false}, "bearer-token")

		var body resdto.BoatAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Canceled)
		s.False(body.IsAvailable)
	})

	s.Run("error: isAvailable無しは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 存在しないボートは404", func() {
		s.mockBoats.EXPECT().SetAvailability(gomock.Any(), gomock.Any(), boatID, true).Return(nil, commands.ErrBoatNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"isAvailable": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "boat not found")
	})
}

func (s *AdminHandlerTestSuite) TestCreateCruisePeriod() {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	reqBody := map[string]any{"start": start, "end": end}

	s.Run("success: 201とIDを返す", func() {
		id := uuid.New()
		s.mockSchedule.EXPECT().CreateCruisePeriod(gomock.Any(), s.actor, start, end).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruise-periods", reqBody, "bearer-token")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: 期間が逆転していれば400", func() {
		s.mockSchedule.EXPECT().CreateCruisePeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, schedule.ErrInvalidPeriod)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruise-periods", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 管理者以外は403", func() {
		s.mockSchedule.EXPECT().CreateCruisePeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrAdminRequired)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruise-periods", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "admin role is required")
	})
}

func (s *AdminHandlerTestSuite) TestAddTimeSlot() {
	periodID := uuid.New()
	url := "/cruise-periods/" + periodID.String() + "/time-slots"
	reqBody := map[string]any{"date": "2025-06-20", "start": "10:00", "end": "13:30"}

	s.Run("success: 日付と時刻を変換して渡す", func() {
		id := uuid.New()
		s.mockSchedule.EXPECT().AddTimeSlot(gomock.Any(), s.actor, commands.AddTimeSlotRequest{
			CruisePeriodID: periodID,
			Date:           time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			Start:          10 * time.Hour,
			End:            13*time.Hour + 30*time.Minute,
		}).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: 形式不正は400", func() {
		cases := []func(map[string]any){
			testutil.Field("date", "20/06/2025"),
			testutil.Field("start", "25:00"),
			testutil.Field("end", nil),
		}
		for _, mutate := range cases {
			body := testutil.DtoMap(s.T(), reqBody, mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 重複スロットは409", func() {
		s.mockSchedule.EXPECT().AddTimeSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, schedule.ErrDuplicateTimeSlot)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *AdminHandlerTestSuite) TestRunAssignment() {
	s.Run("success: 実行結果を返す", func() {
		started := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
		s.mockRunner.EXPECT().Run(gomock.Any()).Return(&assignment.Result{
			StartedAt: started, Boats: 2, Assigned: 5, Notified: 5, Duration: 1500 * time.Millisecond,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/assignments/run", nil, "bearer-token")

		var body resdto.AssignmentRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body.Assigned)
		s.Equal(int64(1500), body.DurationMs)
		s.True(started.Equal(body.StartedAt))
	})

	s.Run("error: 実行中は409", func() {
		s.mockRunner.EXPECT().Run(gomock.Any()).Return(&assignment.Result{}, assignment.ErrAlreadyRunning)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/assignments/run", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already running")
	})
}
