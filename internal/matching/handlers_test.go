package matching

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeMatchingService struct {
	summary *RunSummary
	runErr  error
	runs    int
}

func (s *fakeMatchingService) RunMatching(ctx context.Context) (*RunSummary, error) {
	s.runs++
	if s.runErr != nil {
		return nil, s.runErr
	}
	return s.summary, nil
}

func (s *fakeMatchingService) GetMatchForUser(ctx context.Context, userID int64) (*MatchView, error) {
	return &MatchView{Status: StatusWaiting}, nil
}

func (s *fakeMatchingService) RevealDueMatches(ctx context.Context) (int, error) {
	return 0, nil
}

func postGenerate(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/v1/matches/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.GenerateMatches(rec, req)
	return rec
}

func TestGenerateMatchesRejectsMissingSecret(t *testing.T) {
	service := &fakeMatchingService{}
	handler := NewHandler(service, "orbit-admin")

	for _, body := range []string{`{}`, `{"admin_secret":""}`} {
		rec := postGenerate(handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
	if service.runs != 0 {
		t.Errorf("service invoked %d times on invalid payloads", service.runs)
	}
}

func TestGenerateMatchesRejectsWrongSecret(t *testing.T) {
	service := &fakeMatchingService{}
	handler := NewHandler(service, "orbit-admin")

	rec := postGenerate(handler, `{"admin_secret":"guess"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if service.runs != 0 {
		t.Error("service invoked despite wrong secret")
	}
}

func TestGenerateMatchesRuns(t *testing.T) {
	service := &fakeMatchingService{
		summary: &RunSummary{RunID: uuid.New(), MatchesCreated: 3, UsersMatched: 6},
	}
	handler := NewHandler(service, "orbit-admin")

	rec := postGenerate(handler, `{"admin_secret":"orbit-admin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if service.runs != 1 {
		t.Errorf("service invoked %d times, want 1", service.runs)
	}

	body := rec.Body.String()
	for _, fragment := range []string{`"matches_created":3`, `"users_matched":6`} {
		if !strings.Contains(body, fragment) {
			t.Errorf("response %s missing %s", body, fragment)
		}
	}
}

func TestGenerateMatchesRunInProgress(t *testing.T) {
	service := &fakeMatchingService{runErr: ErrRunInProgress}
	handler := NewHandler(service, "orbit-admin")

	rec := postGenerate(handler, `{"admin_secret":"orbit-admin"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}
