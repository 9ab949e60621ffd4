package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"dominant_assurance/internal/adapter/http/routes"
	"dominant_assurance/internal/adapter/persistence/memory"
	"dominant_assurance/internal/adapter/persistence/repository"
	"dominant_assurance/internal/config"
	"dominant_assurance/internal/infrastructure/database"
	"dominant_assurance/internal/infrastructure/identity"
	"dominant_assurance/internal/infrastructure/messaging"
	"dominant_assurance/internal/infrastructure/payments"
	"dominant_assurance/internal/infrastructure/scheduler"
	"dominant_assurance/internal/usecase"
	"dominant_assurance/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dominant Assurance Contract API
// @version         1.0
// @description     Pledge ledger, project metadata and refund/bonus sweeps for dominant assurance contracts.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic AdminBasic

// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider token.

type stores struct {
	pledges  interfaces.IPledgeRepository
	schema   interfaces.ILedgerSchemaRepository
	projects interfaces.IProjectRepository
	acls     interfaces.IAclRepository
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := newStores(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect storage: %v", err)
	}

	processor, err := payments.NewProcessor(ctx, cfg)
	if err != nil {
		log.Fatalf("Payment processor not configured: %v", err)
	}

	var publisher interfaces.IEventPublisher
	if cfg.AMQPURL != "" {
		rabbit, err := messaging.NewRabbitMQPublisher(cfg.AMQPURL, cfg.EventsExchange)
		if err != nil {
			log.Fatalf("Failed to connect event broker: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		log.Printf("[events][main] AMQP_URL not set; ledger events disabled")
	}

	var verifier interfaces.IIdentityVerifier
	if cfg.IdentityJWKSURL != "" {
		verifier = identity.NewJWKSVerifier(cfg.IdentityJWKSURL, cfg.IdentityAudience, cfg.IdentityIssuer)
	} else {
		log.Printf("[identity][main] IDENTITY_JWKS_URL not set; only admin basic auth is accepted")
	}

	aclUseCase := usecase.NewAclUseCase(st.acls)
	projectUseCase := usecase.NewProjectUseCase(st.projects, aclUseCase)
	ledgerUseCase := usecase.NewLedgerUseCase(st.pledges, st.schema, st.projects, processor, publisher)
	contractUseCase := usecase.NewContractUseCase(projectUseCase, ledgerUseCase, processor)
	sweepUseCase := usecase.NewSweepUseCase(projectUseCase, st.projects, ledgerUseCase, processor)

	if cfg.SweepSchedule != "" {
		sweeps := scheduler.NewSweepScheduler(sweepUseCase, cfg.SweepSchedule, cfg.SweepProjectIDs())
		if err := sweeps.Start(); err != nil {
			log.Fatalf("Failed to start sweep scheduler: %v", err)
		}
		defer func() { <-sweeps.Stop().Done() }()
	}

	router := routes.NewRouter(routes.Dependencies{
		Ledger:        ledgerUseCase,
		Projects:      projectUseCase,
		Contract:      contractUseCase,
		Sweep:         sweepUseCase,
		Acl:           aclUseCase,
		AdminPassword: cfg.AdminPassword,
		FrontendURL:   cfg.FrontendURL,
		Verifier:      verifier,
	})

	if err := routes.Run(ctx, router, cfg.Port); err != nil {
		log.Printf("Failed to startup the application: %v", err)
	}
}

func newStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[storage][main] using in-memory storage; data is lost on restart")
		return stores{
			pledges:  memory.NewPledgeRepository(),
			schema:   memory.NewLedgerSchemaRepository(),
			projects: memory.NewProjectRepository(),
			acls:     memory.NewAclRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return stores{}, err
	}
	return stores{
		pledges:  repository.NewPledgeDynamoRepository(ddb, cfg.PledgesTable),
		schema:   repository.NewLedgerSchemaDynamoRepository(ddb, cfg.LedgerSchemaTable),
		projects: repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable),
		acls:     repository.NewAclDynamoRepository(ddb, cfg.AclsTable),
	}, nil
}
