package service

import (
	"context"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/repository"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newBlocklistService(url string) (*BlocklistService, *repository.BlocklistRepository) {
	repo := repository.NewBlocklistRepository(kvstore.NewMemory())
	svc := NewBlocklistService(repo, config.BlocklistConfig{URL: url, RefreshDays: 7})
	return svc, repo
}

func TestNeedsRefreshWhenListMissing(t *testing.T) {
	svc, _ := newBlocklistService("http://unused")
	if !svc.NeedsRefresh(context.Background(), time.Now()) {
		t.Fatalf("missing list must need refresh")
	}
}

func TestNeedsRefreshByAge(t *testing.T) {
	svc, repo := newBlocklistService("http://unused")
	ctx := context.Background()
	now := time.Now()

	if err := repo.SetDomains(ctx, []string{"yopmail.com"}); err != nil {
		t.Fatalf("SetDomains: %v", err)
	}

	if err := repo.SetLastRefresh(ctx, now.Add(-8*24*time.Hour)); err != nil {
		t.Fatalf("SetLastRefresh: %v", err)
	}
	if !svc.NeedsRefresh(ctx, now) {
		t.Fatalf("8-day-old list must need refresh")
	}

	if err := repo.SetLastRefresh(ctx, now.Add(-24*time.Hour)); err != nil {
		t.Fatalf("SetLastRefresh: %v", err)
	}
	if svc.NeedsRefresh(ctx, now) {
		t.Fatalf("1-day-old list must not need refresh")
	}
}

func TestRefreshParsesRemoteList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("mailinator.com\n\n  trashmail.io  \nyopmail.com\n"))
	}))
	defer srv.Close()

	svc, repo := newBlocklistService(srv.URL)
	frozen := time.UnixMilli(1700000000000)
	svc.SetNowFunc(func() time.Time { return frozen })

	ctx := context.Background()
	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	domains, ok := repo.Domains(ctx)
	if !ok || len(domains) != 3 {
		t.Fatalf("domains: ok=%v got=%v", ok, domains)
	}
	if domains[1] != "trashmail.io" {
		t.Fatalf("lines must be trimmed: %q", domains[1])
	}

	last, ok := repo.LastRefresh(ctx)
	if !ok || !last.Equal(frozen) {
		t.Fatalf("timestamp not stamped: ok=%v last=%v", ok, last)
	}

	if !svc.IsBlocked(ctx, "trashmail.io") || svc.IsBlocked(ctx, "example.com") {
		t.Fatalf("IsBlocked does not reflect fetched list")
	}
}

func TestRefreshFailureInstallsFallbackWithoutTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, repo := newBlocklistService(srv.URL)
	ctx := context.Background()

	if err := svc.Refresh(ctx); err == nil {
		t.Fatalf("expected refresh error")
	}

	domains, ok := repo.Domains(ctx)
	if !ok || len(domains) != len(fallbackDomains) {
		t.Fatalf("fallback not installed: ok=%v got=%v", ok, domains)
	}
	if _, ok := repo.LastRefresh(ctx); ok {
		t.Fatalf("failed refresh must not stamp the timestamp")
	}

	// a later check still wants a refresh, so the next session retries
	if !svc.NeedsRefresh(ctx, time.Now()) {
		t.Fatalf("fallback state must remain stale")
	}
}

func TestIsBlockedFallsBackWhenNothingCached(t *testing.T) {
	svc, _ := newBlocklistService("http://unused")
	ctx := context.Background()
	if !svc.IsBlocked(ctx, "mailinator.com") {
		t.Fatalf("fallback list must block mailinator.com")
	}
	if svc.IsBlocked(ctx, "example.com") {
		t.Fatalf("example.com must not be blocked")
	}
}
