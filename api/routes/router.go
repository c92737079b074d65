package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chucksbakes/chucks-bakes-backend/api/controllers"
	"github.com/chucksbakes/chucks-bakes-backend/api/middleware"
	"github.com/chucksbakes/chucks-bakes-backend/internal/content"
	"github.com/chucksbakes/chucks-bakes-backend/internal/ledger"
	"github.com/chucksbakes/chucks-bakes-backend/internal/sink"
	"github.com/chucksbakes/chucks-bakes-backend/internal/submit"
	"github.com/chucksbakes/chucks-bakes-backend/internal/wizard"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	cacheP controllers.Pinger,
	wizardService wizard.Service,
	sinkService sink.Service,
	orchestrator *submit.Orchestrator,
	ledgerService ledger.Service,
	ledgerRepo ledger.Repository,
	contentService content.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cacheP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Read-only site data, no session required.
	r.Get("/api/v1/catalog", controllers.Catalog())
	r.Route("/api/v1/content", func(r chi.Router) {
		r.Get("/homepage", controllers.ContentHomepage(contentService))
		r.Get("/order-page", controllers.ContentOrderPage(contentService))
	})

	// Single-order relay, the shape existing order form clients already speak.
	// Non-POST requests get the same JSON contract, not chi's plain-text 405.
	r.Route("/api/order", func(r chi.Router) {
		r.MethodNotAllowed(controllers.OrderRelayNotAllowed())
		r.Post("/", controllers.OrderRelay(sinkService, logg))
	})

	r.Route("/api/v1/ledger", func(r chi.Router) {
		r.Post("/orders", controllers.LedgerWrite(ledgerService, logg))
		r.Get("/orders", controllers.LedgerRecent(cfg.Ledger, ledgerRepo, logg))
	})

	r.Route("/api/v1/wizard", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Wizard.SessionCookie, cfg.Wizard.SessionTTL, logg))

		r.Get("/", controllers.WizardState(wizardService, logg))
		r.Post("/item", controllers.WizardSelectItem(wizardService, logg))
		r.Post("/config", controllers.WizardSubmitConfig(wizardService, logg))
		r.Post("/contact", controllers.WizardSubmitContact(wizardService, logg))
		r.Post("/back", controllers.WizardBack(wizardService, logg))
		r.Post("/promote", controllers.WizardPromote(wizardService, logg))
		r.Delete("/draft", controllers.WizardAbandonDraft(wizardService, logg))
		r.Delete("/items/{index}", controllers.WizardRemoveItem(wizardService, logg))
		r.Delete("/items", controllers.WizardClearItems(wizardService, logg))
		r.Get("/mailto", controllers.WizardMailto(wizardService, logg))
		r.Post("/submit", controllers.WizardSubmitBatch(wizardService, orchestrator, logg))
	})

	return r
}
