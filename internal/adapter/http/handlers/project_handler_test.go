package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dominant_assurance/internal/adapter/http/handlers/mocks"
	"dominant_assurance/internal/adapter/http/middleware"
	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testAdminPassword = "s3cret"

type projectMocks struct {
	projects *mocks.MockIProjectUseCase
	contract *mocks.MockIContractUseCase
	sweep    *mocks.MockISweepUseCase
	ledger   *mocks.MockILedgerUseCase
}

func newProjectRouter(ctrl *gomock.Controller) (*gin.Engine, projectMocks) {
	m := projectMocks{
		projects: mocks.NewMockIProjectUseCase(ctrl),
		contract: mocks.NewMockIContractUseCase(ctrl),
		sweep:    mocks.NewMockISweepUseCase(ctrl),
		ledger:   mocks.NewMockILedgerUseCase(ctrl),
	}
	h := NewProjectHandler(m.projects, m.contract, m.sweep, m.ledger)
	r := gin.New()
	g := r.Group("/v1/projects/:projectId", middleware.ResolvePrincipal(testAdminPassword, nil))
	g.GET("", h.GetProject)
	g.PUT("", h.PutProject)
	g.POST("/contract", h.CreateContract)
	g.PATCH("/contract/:orderId", h.CaptureContract)
	g.GET("/counter", h.GetCounter)
	g.GET("/successInvoice", h.GetSuccessInvoice)
	admin := g.Group("", middleware.AdminAuth(testAdminPassword))
	admin.POST("/refund", h.Refund)
	admin.GET("/bonuses", h.ListBonuses)
	admin.DELETE("/bonuses/:orderId", h.SettleBonus)
	admin.POST("/bonuses", h.PayBonuses)
	return r, m
}

func serveAs(r *gin.Engine, method, path, body string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.SetBasicAuth(entities.AdminUser, testAdminPassword)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return body.Error
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().Get(gomock.Any(), "p1").Return(entities.Project{
			ID:                   "p1",
			FundingGoal:          decimal.NewFromInt(200),
			FundingDeadline:      time.Date(2023, 1, 1, 12, 1, 1, 0, time.UTC),
			RefundBonusPercent:   decimal.NewFromInt(20),
			DefaultPaymentAmount: decimal.NewFromInt(89),
		}, nil)

		w := serveAs(r, http.MethodGet, "/v1/projects/p1", "", false)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"fundingDeadline":"2023-01-01T12:01:01.000Z"`) || !strings.Contains(w.Body.String(), `"fundingGoal":"200"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().Get(gomock.Any(), "p1").Return(entities.Project{}, usecase.ErrProjectNotFound)

		if w := serveAs(r, http.MethodGet, "/v1/projects/p1", "", false); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_PutProject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"project":{"fundingGoal":"200","fundingDeadline":"2030-01-01T00:00:00.000Z","isDraft":true}}`

	t.Run("anonymous is 401 without challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newProjectRouter(ctrl)

		w := serveAs(r, http.MethodPut, "/v1/projects/p1", body, false)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w.Header().Get("WWW-Authenticate") != "" {
			t.Fatalf("unexpected WWW-Authenticate header")
		}
	})

	t.Run("admin writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, principal *interfaces.Principal, p entities.Project) (entities.Project, error) {
				if principal == nil || !principal.Admin {
					t.Fatalf("expected admin principal, got %+v", principal)
				}
				if p.ID != "p1" || !p.IsDraft || !p.RefundBonusPercent.Equal(decimal.NewFromInt(20)) {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			})

		if w := serveAs(r, http.MethodPut, "/v1/projects/p1", body, true); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("missing project object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newProjectRouter(ctrl)
		if w := serveAs(r, http.MethodPut, "/v1/projects/p1", `{}`, true); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("publish forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrPublishForbidden)
		if w := serveAs(r, http.MethodPut, "/v1/projects/p1", body, true); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestProjectHandler_CreateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards the raw body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.contract.EXPECT().CreateOrder(gomock.Any(), "p1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, payload json.RawMessage) (entities.Order, error) {
				if !amount.Equal(decimal.RequireFromString("12.5")) {
					t.Fatalf("unexpected amount %s", amount)
				}
				if string(payload) != `{"amount":12.5,"note":"hi"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.Order{ID: "ORDER1", Status: "CREATED"}, nil
			})

		w := serveAs(r, http.MethodPost, "/v1/projects/p1/contract", `{"amount":12.5,"note":"hi"}`, false)
		if w.Code != http.StatusOK || w.Body.String() != `{"id":"ORDER1","status":"CREATED","links":[]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("amount is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newProjectRouter(ctrl)
		if w := serveAs(r, http.MethodPost, "/v1/projects/p1/contract", `{"note":"hi"}`, false); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.contract.EXPECT().CreateOrder(gomock.Any(), "p1", gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrPledgeTooSmall)

		w := serveAs(r, http.MethodPost, "/v1/projects/p1/contract", `{"amount":4}`, false)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if msg := decodeError(t, w); msg != "Pledge may be at least $5" {
			t.Fatalf("unexpected message %q", msg)
		}
	})
}

func TestProjectHandler_CaptureContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success hides email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.contract.EXPECT().CapturePledge(gomock.Any(), "p1", "o1").Return(entities.Capture{
			OrderID: "o1", CaptureID: "c1", Status: entities.CaptureStatusCompleted,
			PayerEmail: "john@example.com", PayerName: "John Doe", Amount: decimal.NewFromInt(11),
		}, nil)

		w := serveAs(r, http.MethodPatch, "/v1/projects/p1/contract/o1", "", false)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "john@example.com") || !strings.Contains(w.Body.String(), `"name":"John D."`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("processor failure is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.contract.EXPECT().CapturePledge(gomock.Any(), "p1", "o1").Return(entities.Capture{}, errors.Join(usecase.ErrUpstream, errors.New("UNPROCESSABLE_ENTITY")))

		if w := serveAs(r, http.MethodPatch, "/v1/projects/p1/contract/o1", "", false); w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Sweeps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("refund requires admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newProjectRouter(ctrl)
		w := serveAs(r, http.MethodPost, "/v1/projects/p1/refund", "", false)
		if w.Code != http.StatusUnauthorized || w.Header().Get("WWW-Authenticate") == "" {
			t.Fatalf("expected basic challenge, got %d", w.Code)
		}
	})

	t.Run("refund sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.sweep.EXPECT().RefundSweep(gomock.Any(), "p1").Return(usecase.RefundSweepResult{RefundID: "r1", CaptureIDs: []string{"c1"}}, nil)

		w := serveAs(r, http.MethodPost, "/v1/projects/p1/refund", "", true)
		if w.Code != http.StatusCreated || w.Body.String() != `{"refundId":"r1","captureIds":["c1"]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("nothing to pay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.sweep.EXPECT().BonusSweep(gomock.Any(), "p1").Return(usecase.BonusSweepResult{}, usecase.ErrNoPendingBonuses)

		if w := serveAs(r, http.MethodPost, "/v1/projects/p1/bonuses", "", true); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bonus sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.sweep.EXPECT().BonusSweep(gomock.Any(), "p1").Return(usecase.BonusSweepResult{BatchID: "b1", OrderIDs: []string{"o1", "o2"}}, nil)

		w := serveAs(r, http.MethodPost, "/v1/projects/p1/bonuses", "", true)
		if w.Code != http.StatusCreated || w.Body.String() != `{"batchId":"b1","orderIds":["o1","o2"]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list and settle bonuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.contract.EXPECT().PendingBonuses(gomock.Any(), "p1").Return(map[string]entities.PendingBonus{}, nil)
		m.ledger.EXPECT().SettleBonus(gomock.Any(), "p1", "o1").Return(nil)

		if w := serveAs(r, http.MethodGet, "/v1/projects/p1/bonuses", "", true); w.Code != http.StatusOK || w.Body.String() != `{"bonuses":{}}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		if w := serveAs(r, http.MethodDelete, "/v1/projects/p1/bonuses/o1", "", true); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetSuccessInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("requires edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().RequirePermission(gomock.Any(), gomock.Nil(), "p1", entities.PermissionEdit).Return(usecase.ErrPrincipalRequired)

		if w := serveAs(r, http.MethodGet, "/v1/projects/p1/successInvoice", "", false); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("editor reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().RequirePermission(gomock.Any(), gomock.Any(), "p1", entities.PermissionEdit).Return(nil)
		m.contract.EXPECT().SuccessInvoice(gomock.Any(), "p1").Return(entities.SuccessInvoice{AuthorName: "Ada"}, nil)

		w := serveAs(r, http.MethodGet, "/v1/projects/p1/successInvoice", "", true)
		if w.Code != http.StatusOK || w.Body.String() != `{"successInvoice":[],"authorName":"Ada"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newProjectRouter(ctrl)
		m.projects.EXPECT().RequirePermission(gomock.Any(), gomock.Any(), "p1", entities.PermissionEdit).Return(usecase.ErrProjectEditForbidden)

		if w := serveAs(r, http.MethodGet, "/v1/projects/p1/successInvoice", "", true); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
