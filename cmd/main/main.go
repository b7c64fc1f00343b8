package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	api "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/api"
	config "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/config"
	db "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/connection"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	ledger "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/ledger"
	ratelimit "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/ratelimit"
	service "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("|Main| No .env file found, relying on process environment")
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yml"
	}

	err := config.InitializeGlobalConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	dbFile := os.Getenv("DATABASE_FILE")
	if dbFile == "" {
		dbFile = config.GlobalConfig.DatabaseConfig.File
	}

	err = db.InitializeGlobalDB(dbFile)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	err = repositories.InitializeGlobalRepositories(db.GlobalDB)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	ledgerClient, err := ledger.NewEthereumClient(&config.GlobalConfig.LedgerConfig)
	if err != nil {
		log.Fatalf("Failed to create ledger client: %v", err)
	}

	adminConfig := &config.GlobalConfig.AdminConfig

	voteService := service.NewVoteService(db.GlobalDB, repositories.GlobalVoterRepository, repositories.GlobalCandidateRepository, repositories.GlobalElectionRepository, repositories.GlobalAuditRepository, ledgerClient)
	voterService := service.NewVoterService(repositories.GlobalVoterRepository, repositories.GlobalAuditRepository)
	electionService := service.NewElectionService(repositories.GlobalElectionRepository, repositories.GlobalCandidateRepository, repositories.GlobalAuditRepository, adminConfig)
	candidateService := service.NewCandidateService(repositories.GlobalCandidateRepository, repositories.GlobalElectionRepository, repositories.GlobalAuditRepository, adminConfig)
	auditService := service.NewAuditService(repositories.GlobalAuditRepository, adminConfig)

	rateLimitConfig := config.GlobalConfig.RateLimitConfig
	window := time.Duration(rateLimitConfig.WindowSeconds) * time.Second
	limiter := ratelimit.NewLimiter(window, rateLimitConfig.MaxRequests)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Evict()
			}
		}
	}()

	server := api.NewServer(voteService, voterService, electionService, candidateService, auditService, limiter)

	go func() {
		log.Printf("|Main| Listening on port %d", config.GlobalConfig.ApiConfig.Port)
		if err := server.Run(config.GlobalConfig.ApiConfig.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run api server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("|Main| Shutting down...")
	err = db.CloseDatabaseConnection(db.GlobalDB)
	if err != nil {
		log.Fatalf("Failed to close database connection: %v", err)
	}
}
