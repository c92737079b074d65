package content

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
)

type fakeCache struct {
	values map[string]string
	sets   int
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", errors.New("not found")
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.sets++
	f.values[key] = value.(string)
	return nil
}

func (f *fakeCache) ContentKey(doc string) string { return "content:" + doc }

type fakeDoer struct {
	calls int
	body  string
	err   error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func newContentService(doer httpDoer, cache Cache) *service {
	return &service{
		cfg: config.ContentConfig{
			ProjectID:  "abc123",
			Dataset:    "production",
			APIVersion: "2024-11-22",
			CacheTTL:   time.Minute,
		},
		cache: cache,
		doer:  doer,
		logg:  logger.New(logger.Options{ServiceName: "test"}),
	}
}

func TestHomepageFetchesAndCaches(t *testing.T) {
	cache := &fakeCache{values: map[string]string{}}
	doer := &fakeDoer{body: `{"result": {"heroTitle": "Fresh from the oven"}}`}
	svc := newContentService(doer, cache)

	doc := svc.Homepage(context.Background())
	if doc.HeroTitle != "Fresh from the oven" {
		t.Fatalf("got %+v", doc)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Second read comes from cache.
	doc = svc.Homepage(context.Background())
	if doc.HeroTitle != "Fresh from the oven" {
		t.Fatalf("got %+v", doc)
	}
	if doer.calls != 1 {
		t.Fatalf("expected cached read, upstream called %d times", doer.calls)
	}
}

func TestHomepageDegradesToDefaults(t *testing.T) {
	cache := &fakeCache{values: map[string]string{}}
	doer := &fakeDoer{err: errors.New("upstream down")}
	svc := newContentService(doer, cache)

	doc := svc.Homepage(context.Background())
	if doc.HeroTitle != "" || doc.HowItWorksSteps != nil {
		t.Fatalf("expected zero-valued overrides, got %+v", doc)
	}
}

func TestOrderPageDecodes(t *testing.T) {
	cache := &fakeCache{values: map[string]string{}}
	doer := &fakeDoer{body: `{"result": {"chooseItemTitle": "What can we bake for you?", "items": [{"itemType": "cake", "enabled": true}]}}`}
	svc := newContentService(doer, cache)

	doc := svc.OrderPage(context.Background())
	if doc.ChooseItemTitle != "What can we bake for you?" {
		t.Fatalf("got %+v", doc)
	}
	if len(doc.Items) != 1 || doc.Items[0].ItemType != "cake" || !doc.Items[0].Enabled {
		t.Fatalf("got items %+v", doc.Items)
	}
}

func TestQueryRequiresConfiguration(t *testing.T) {
	svc := newContentService(&fakeDoer{}, nil)
	svc.cfg.ProjectID = ""
	svc.cfg.BaseURL = ""

	var doc Homepage
	svc.fetchCached(context.Background(), "homepage", homepageQuery, &doc)
	if doc.HeroTitle != "" {
		t.Fatalf("expected defaults when unconfigured, got %+v", doc)
	}
}
