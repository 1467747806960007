package tickets_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/prubiera85/sd-notifications/internal/model"
	"github.com/prubiera85/sd-notifications/internal/tickets"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, ...any) {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, ...any) {}
func (nopLogger) Warnf(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, ...any) {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type fakeSource struct {
	tickets   []model.Ticket
	truncated bool
	err       error
	daysBack  int
}

func (f *fakeSource) RecentTaggedComments(ctx context.Context, daysBack int) ([]model.Ticket, bool, error) {
	f.daysBack = daysBack
	return f.tickets, f.truncated, f.err
}

func serve(h *tickets.Handler) (*httptest.ResponseRecorder, map[string]any) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/tickets", h.ListTickets)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tickets", nil))
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestListTickets(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		h := tickets.NewHandler(nopLogger{}, &fakeSource{}, tickets.Config{APIKeyConfigured: false})

		w, body := serve(h)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if body["error"] != "Linear API key not configured" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("scan failure", func(t *testing.T) {
		src := &fakeSource{err: errors.New("boom")}
		h := tickets.NewHandler(nopLogger{}, src, tickets.Config{APIKeyConfigured: true})

		w, _ := serve(h)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty result keeps array shape", func(t *testing.T) {
		src := &fakeSource{}
		h := tickets.NewHandler(nopLogger{}, src, tickets.Config{APIKeyConfigured: true})

		w, body := serve(h)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if _, ok := body["tickets"].([]any); !ok {
			t.Errorf("expected tickets array, got %T", body["tickets"])
		}
		if _, ok := body["truncated"]; ok {
			t.Errorf("truncated should be omitted when the scan completed: %v", body)
		}
		if src.daysBack != tickets.DefaultDaysBack {
			t.Errorf("expected default days back %d, got %d", tickets.DefaultDaysBack, src.daysBack)
		}
	})

	t.Run("matches returned with truncation flag", func(t *testing.T) {
		src := &fakeSource{
			tickets: []model.Ticket{
				{
					Issue:       model.Issue{Identifier: "SD-7", Title: "VPN down"},
					Comment:     model.Comment{ID: "c1", Body: "#sd VPN is down"},
					MatchedTags: []string{"#sd"},
				},
			},
			truncated: true,
		}
		h := tickets.NewHandler(nopLogger{}, src, tickets.Config{APIKeyConfigured: true, DaysBack: 30})

		w, body := serve(h)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["count"] != float64(1) {
			t.Errorf("expected count 1, got %v", body["count"])
		}
		if body["truncated"] != true {
			t.Errorf("expected truncated flag, got %v", body)
		}
		if src.daysBack != 30 {
			t.Errorf("expected configured days back 30, got %d", src.daysBack)
		}
	})
}
