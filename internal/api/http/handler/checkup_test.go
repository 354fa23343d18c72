package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/checkup"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
)

// checkupServiceStub overrides the methods a test exercises; calls to
// anything else panic through the embedded nil interface.
type checkupServiceStub struct {
	checkup.Service
	resultFn func(ctx context.Context, checkupID, requesterID uuid.UUID) (*checkup.Result, error)
}

func (s *checkupServiceStub) Result(ctx context.Context, checkupID, requesterID uuid.UUID) (*checkup.Result, error) {
	return s.resultFn(ctx, checkupID, requesterID)
}

func TestResultOwnershipSoftBody(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	checkupID := uuid.New()

	stub := &checkupServiceStub{
		resultFn: func(_ context.Context, _, requesterID uuid.UUID) (*checkup.Result, error) {
			if requesterID != owner {
				return nil, checkup.ErrNotCheckupOwner
			}
			return &checkup.Result{
				CheckupID:       checkupID,
				Interpretations: []string{"see a doctor"},
			}, nil
		},
	}
	h := NewCheckupHandler(stub)

	caller := owner
	app := fiber.New()
	app.Get("/checkups/:id/result", func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{UserID: caller})
		return c.Next()
	}, h.Result)

	type resultBody struct {
		Data struct {
			Checkup         string   `json:"checkup"`
			Interpretations []string `json:"interpretations"`
		} `json:"data"`
	}

	get := func(t *testing.T) (int, resultBody) {
		t.Helper()
		req := httptest.NewRequest(fiber.MethodGet, "/checkups/"+checkupID.String()+"/result", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var body resultBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return resp.StatusCode, body
	}

	t.Run("owner receives the aggregation", func(t *testing.T) {
		caller = owner
		status, body := get(t)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if len(body.Data.Interpretations) != 1 || body.Data.Interpretations[0] != "see a doctor" {
			t.Errorf("interpretations = %v", body.Data.Interpretations)
		}
	})

	t.Run("other patient gets the message body, not a hard error", func(t *testing.T) {
		caller = stranger
		status, body := get(t)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if body.Data.Checkup == "" {
			t.Error("expected the checkup message key")
		}
		if len(body.Data.Interpretations) != 0 {
			t.Errorf("interpretation data leaked to a non-owner: %v", body.Data.Interpretations)
		}
	})
}
