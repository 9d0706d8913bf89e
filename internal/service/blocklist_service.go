package service

import (
	"context"
	"fmt"
	"io"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// fallbackDomains covers the most common disposable providers when the
// remote list cannot be fetched.
var fallbackDomains = []string{
	"yopmail.com", "temp-mail.org", "10minutemail.com", "guerrillamail.com", "sharklasers.com",
	"mailinator.com", "getairmail.com", "tempmail.net", "throwawaymail.com", "dispostable.com",
}

// BlocklistService is the cached-resource policy around the disposable
// email domain denylist: refresh when missing or stale, fall back to the
// hardcoded list on any failure without stamping the timestamp so the
// next run retries. Registration never fails because a refresh failed.
type BlocklistService struct {
	repo     *repository.BlocklistRepository
	client   *http.Client
	url      string
	interval time.Duration

	mu  sync.Mutex
	now func() time.Time
}

func NewBlocklistService(repo *repository.BlocklistRepository, cfg config.BlocklistConfig) *BlocklistService {
	return &BlocklistService{
		repo:     repo,
		client:   &http.Client{Timeout: 10 * time.Second},
		url:      cfg.URL,
		interval: cfg.RefreshInterval(),
		now:      time.Now,
	}
}

// SetHTTPClient and SetNowFunc are test hooks.
func (s *BlocklistService) SetHTTPClient(c *http.Client) { s.client = c }
func (s *BlocklistService) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// NeedsRefresh reports whether the cached list is missing or older than
// the refresh interval at the given instant.
func (s *BlocklistService) NeedsRefresh(ctx context.Context, now time.Time) bool {
	if _, ok := s.repo.Domains(ctx); !ok {
		return true
	}
	last, ok := s.repo.LastRefresh(ctx)
	if !ok {
		return true
	}
	return now.Sub(last) > s.interval
}

// EnsureFresh refreshes the list if the policy says so. Best effort.
func (s *BlocklistService) EnsureFresh(ctx context.Context) {
	s.mu.Lock()
	now := s.now()
	s.mu.Unlock()

	if !s.NeedsRefresh(ctx, now) {
		return
	}
	if err := s.Refresh(ctx); err != nil {
		logger.Log.Warn("blocklist refresh failed, fallback list active", zap.Error(err))
	}
}

// Refresh fetches the remote plaintext list (one domain per non-empty
// line). On success it replaces the cached list and stamps the refresh
// time; on failure it installs the fallback list and leaves the
// timestamp untouched.
func (s *BlocklistService) Refresh(ctx context.Context) error {
	domains, err := s.fetch(ctx)
	if err != nil {
		monitoring.BlocklistRefreshCounter.WithLabelValues("fallback").Inc()
		if setErr := s.repo.SetDomains(ctx, fallbackDomains); setErr != nil {
			return setErr
		}
		return err
	}

	if err := s.repo.SetDomains(ctx, domains); err != nil {
		monitoring.BlocklistRefreshCounter.WithLabelValues("failure").Inc()
		return err
	}

	s.mu.Lock()
	now := s.now()
	s.mu.Unlock()
	if err := s.repo.SetLastRefresh(ctx, now); err != nil {
		monitoring.BlocklistRefreshCounter.WithLabelValues("failure").Inc()
		return err
	}

	monitoring.BlocklistRefreshCounter.WithLabelValues("success").Inc()
	monitoring.BlocklistDomains.Set(float64(len(domains)))
	logger.Log.Info("blocklist updated", zap.Int("domains", len(domains)))
	return nil
}

func (s *BlocklistService) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blocklist source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var domains []string
	for _, line := range strings.Split(string(body), "\n") {
		if d := strings.TrimSpace(line); d != "" {
			domains = append(domains, d)
		}
	}
	return domains, nil
}

// IsBlocked checks a domain against the cached list, or the fallback
// list when nothing is cached yet.
func (s *BlocklistService) IsBlocked(ctx context.Context, domain string) bool {
	domains, ok := s.repo.Domains(ctx)
	if !ok {
		domains = fallbackDomains
	}
	for _, d := range domains {
		if d == domain {
			return true
		}
	}
	return false
}
