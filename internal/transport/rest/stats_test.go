package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/internal/game"
	"github.com/heartmarshall/braindump-backend/internal/service/stats"
)

type statsServiceMock struct {
	StatsFunc func(ctx context.Context) (*stats.StatsView, error)
	PingFunc  func(ctx context.Context) (*game.AccrualResult, error)
}

func (m *statsServiceMock) Stats(ctx context.Context) (*stats.StatsView, error) {
	return m.StatsFunc(ctx)
}

func (m *statsServiceMock) Ping(ctx context.Context) (*game.AccrualResult, error) {
	return m.PingFunc(ctx)
}

func newStatsRouter(svc statsService) http.Handler {
	return NewRouter(Handlers{
		Items:  NewItemHandler(&itemServiceMock{}, slog.Default()),
		Stats:  NewStatsHandler(svc, slog.Default()),
		Health: NewHealthHandler(&dbPingerMock{}, "test"),
	})
}

func TestStats_OK(t *testing.T) {
	t.Parallel()

	lastActive := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := &statsServiceMock{
		StatsFunc: func(ctx context.Context) (*stats.StatsView, error) {
			return &stats.StatsView{
				Stats: domain.UserStats{
					CurrentXP:      250,
					CurrentLevel:   2,
					StreakCount:    3,
					LastActiveDate: &lastActive,
				},
				XPFloor:  100,
				XPCeil:   400,
				Progress: 0.5,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	newStatsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp statsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.XP != 250 || resp.Level != 2 || resp.Streak != 3 {
		t.Errorf("stats = %+v, want xp 250 level 2 streak 3", resp)
	}
	if resp.LastActive != "2026-03-10" {
		t.Errorf("lastActiveDate = %q, want 2026-03-10", resp.LastActive)
	}
	if resp.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", resp.Progress)
	}
}

func TestStats_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		StatsFunc: func(ctx context.Context) (*stats.StatsView, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	newStatsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestPing_OK(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		PingFunc: func(ctx context.Context) (*game.AccrualResult, error) {
			return &game.AccrualResult{
				Stats:         domain.UserStats{CurrentXP: 10, CurrentLevel: 1, StreakCount: 1},
				RewardGranted: 10,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	rec := httptest.NewRecorder()
	newStatsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp accrualResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RewardGranted != 10 || resp.Streak != 1 {
		t.Errorf("accrual = %+v, want reward 10 streak 1", resp)
	}
}

func TestPing_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		PingFunc: func(ctx context.Context) (*game.AccrualResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	rec := httptest.NewRecorder()
	newStatsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
