package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
)

const (
	homepageQuery  = `*[_type == "homepage"][0]`
	orderPageQuery = `*[_type == "orderPage"][0]{chooseItemTitle, chooseItemSubtitle, items[]{itemType, label, description, "imageUrl": image.asset->url, enabled}}`

	homepageCacheKey  = "homepage"
	orderPageCacheKey = "order-page"
)

// Cache is the subset of the redis client the content reader uses.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ContentKey(doc string) string
}

// Service serves content overrides, cached with a short TTL.
type Service interface {
	Homepage(ctx context.Context) Homepage
	OrderPage(ctx context.Context) OrderPage
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type service struct {
	cfg   config.ContentConfig
	cache Cache
	doer  httpDoer
	logg  *logger.Logger
}

func NewService(cfg config.ContentConfig, cache Cache, logg *logger.Logger) Service {
	return &service{
		cfg:   cfg,
		cache: cache,
		doer:  &http.Client{Timeout: cfg.Timeout},
		logg:  logg,
	}
}

func (s *service) Homepage(ctx context.Context) Homepage {
	var doc Homepage
	s.fetchCached(ctx, homepageCacheKey, homepageQuery, &doc)
	return doc
}

func (s *service) OrderPage(ctx context.Context) OrderPage {
	var doc OrderPage
	s.fetchCached(ctx, orderPageCacheKey, orderPageQuery, &doc)
	return doc
}

// fetchCached fills dest from cache or the upstream store. Failures leave
// dest zero-valued; content problems never surface to the page.
func (s *service) fetchCached(ctx context.Context, cacheKey, query string, dest any) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cache.ContentKey(cacheKey)); err == nil && cached != "" {
			if err := json.Unmarshal([]byte(cached), dest); err == nil {
				return
			}
		}
	}

	raw, err := s.query(ctx, query)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "doc", cacheKey), "content fetch failed, serving defaults")
		}
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "doc", cacheKey), "content decode failed, serving defaults")
		}
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.ContentKey(cacheKey), string(raw), s.cfg.CacheTTL); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "content cache write failed")
		}
	}
}

func (s *service) query(ctx context.Context, query string) (json.RawMessage, error) {
	base := s.cfg.BaseURL
	if base == "" {
		if s.cfg.ProjectID == "" {
			return nil, fmt.Errorf("content store not configured")
		}
		base = fmt.Sprintf("https://%s.api.sanity.io", s.cfg.ProjectID)
	}
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?query=%s",
		base, s.cfg.APIVersion, s.cfg.Dataset, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content store returned %d", resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}
