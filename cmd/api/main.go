package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rraja/portfolio/backend/internal/config"
	"github.com/rraja/portfolio/backend/internal/handler"
	"github.com/rraja/portfolio/backend/internal/model/profile"
	"github.com/rraja/portfolio/backend/internal/relay"
	"github.com/rraja/portfolio/backend/internal/service/ai"
	chatservice "github.com/rraja/portfolio/backend/internal/service/chat"
	contactservice "github.com/rraja/portfolio/backend/internal/service/contact"
	"github.com/rraja/portfolio/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Conversation storage: Supabase in production, in-memory fallback for
	// local development without a project configured.
	var supa *store.Supabase
	var conversations store.ConversationStore
	if cfg.Supabase.Enabled() {
		supa, err = store.NewSupabase(store.SupabaseConfig{URL: cfg.Supabase.URL, APIKey: cfg.Supabase.APIKey})
		if err != nil {
			log.Printf("warning: failed to initialize supabase store: %v", err)
		} else {
			conversations = supa
			log.Println("Supabase store initialized successfully")
		}
	} else {
		log.Println("SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY not set, using in-memory conversation store")
	}
	if conversations == nil {
		conversations = store.NewMemory()
	}

	// Generator: nil when provider credentials are absent, which makes the
	// chat endpoint answer with a configuration error instead of calling out.
	var generator chatservice.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, profile.Default(), cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("chat endpoint will report a server configuration error")
		} else {
			generator = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("ARK_API_KEY / ARK_MODEL not set, chat endpoint will report a server configuration error")
	}

	chatSvc := chatservice.NewService(generator, conversations)

	// Contact sink: exactly one delegation strategy per deployment.
	var sink store.ContactStore
	switch cfg.Contact.Sink {
	case config.ContactSinkRelay:
		relayClient, err := relay.New(cfg.Contact.RelayEndpoint)
		if err != nil {
			log.Printf("warning: failed to initialize form relay: %v", err)
		} else {
			sink = relayClient
			log.Println("contact submissions forwarded to form relay")
		}
	case config.ContactSinkSupabase:
		if supa != nil {
			sink = supa
			log.Println("contact submissions stored in Supabase")
		} else {
			log.Println("warning: contact sink is supabase but the store is unavailable, contact endpoint will report a server configuration error")
		}
	}

	contactSvc := contactservice.NewService(sink)

	router := handler.NewRouter(chatSvc, contactSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
