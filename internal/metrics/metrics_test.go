package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestMetricsExport(t *testing.T) {
	m := New()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()
	for i := 0; i < 3; i++ {
		m.Frame("portfolio")
	}
	m.StageComplete("portfolio")
	m.Reset()

	body := scrape(t, m)
	for _, want := range []string{
		"termfolio_sessions_active 1",
		"termfolio_sessions_total 2",
		`termfolio_frames_total{level="portfolio"} 3`,
		`termfolio_stage_complete_total{level="portfolio"} 1`,
		"termfolio_session_resets_total 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape missing %q:\n%s", want, body)
		}
	}
}

func TestMetricsPrivateRegistry(t *testing.T) {
	// Two instances must not collide on registration.
	a, b := New(), New()
	a.SessionStarted()
	if strings.Contains(scrape(t, b), "termfolio_sessions_total 1") {
		t.Error("instances share state")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.SessionStarted()
	m.SessionEnded()
	m.Frame("x")
	m.StageComplete("x")
	m.Reset()
}
