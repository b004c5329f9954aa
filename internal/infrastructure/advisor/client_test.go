package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"AuditScanner/internal/domain"
)

func TestRecommend(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req struct {
			Prompt  string                 `json:"prompt"`
			Context domain.AdvisingContext `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Context.Courses) != 1 {
			t.Errorf("expected one course in context, got %d", len(req.Context.Courses))
		}

		json.NewEncoder(w).Encode(domain.Advice{
			RecommendedPrograms: []domain.ProgramRecommendation{
				{Name: "Data Science, BS", Feasibility: 82, Why: "strong math base"},
			},
			NextSteps: []string{"Meet with an advisor this month."},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sekrit")
	advice, err := client.Recommend(context.Background(), domain.AdvisingContext{
		Courses: []domain.StoredCourse{{CourseID: "MATH 222", Status: domain.StoredStatusCompleted}},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(advice.RecommendedPrograms) != 1 || advice.RecommendedPrograms[0].Name != "Data Science, BS" {
		t.Fatalf("unexpected advice: %+v", advice)
	}
	if advice.RecommendedPrograms[0].Feasibility != 82 {
		t.Fatalf("unexpected feasibility: %v", advice.RecommendedPrograms[0].Feasibility)
	}
}

func TestRecommendServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model busy", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.Recommend(context.Background(), domain.AdvisingContext{}); err == nil {
		t.Fatal("expected an error on service failure")
	}
}

func TestRecommendUnconfigured(t *testing.T) {
	t.Parallel()

	client := NewClient("", "")
	if _, err := client.Recommend(context.Background(), domain.AdvisingContext{}); err == nil {
		t.Fatal("expected an error when no endpoint is configured")
	}
}
