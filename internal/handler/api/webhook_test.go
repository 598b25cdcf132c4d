//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"payconnect/internal/handler/api"
	resdto "payconnect/internal/handler/dto/response"
	"payconnect/internal/pkg/errs"
	"payconnect/internal/usecase/commands"
	"payconnect/tests/common/httptest"
	commandsmock "payconnect/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockWebhookCommands
	handler  *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCmds)

	s.router.POST("/api/webhook/moolre", s.handler.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) eventBody() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"secret":      "whk-secret",
			"txstatus":    1,
			"externalref": "T100000000000001",
			"payer":       "MTN Mobile Money (233531300654)",
			"amount":      10,
		},
	}
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	url := "/api/webhook/moolre"

	s.Run("success acknowledgment", func() {
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(&commands.WebhookResult{Success: true, Message: "SMS sent and order record created"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.eventBody())

		var resp resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Success)
	})

	s.Run("duplicate is still a 200 acknowledgment", func() {
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(&commands.WebhookResult{Success: true, Message: "Duplicate webhook ignored"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.eventBody())

		var resp resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Duplicate webhook ignored", resp.Message)
	})

	s.Run("bad secret maps to 401", func() {
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("webhook secret mismatch"), errs.ErrAuthentication))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.eventBody())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid secret")
	})

	s.Run("missing order reference maps to 400", func() {
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("webhook missing order reference"), errs.ErrMissingOrderRef))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.eventBody())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Missing order reference")
	})

	s.Run("internal failure stays a 200 acknowledgment", func() {
		s.mockCmds.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("boom"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.eventBody())

		var resp resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Success)
		s.Equal("Internal webhook error", resp.Message)
	})

	s.Run("malformed payload maps to 400", func() {
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "{not json")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Malformed webhook payload")
	})
}
