package main

import (
	"log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/draftforge/draftforge-server/config"
	"github.com/draftforge/draftforge-server/contracts/handlers"
	"github.com/draftforge/draftforge-server/http_server"
	"github.com/draftforge/draftforge-server/models"
	"github.com/draftforge/draftforge-server/service"
)

func main() {
	config.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db, err := gorm.Open(sqlite.Open(config.Get("RECEIPTS_DB", "receipts.db")), &gorm.Config{})
	if err != nil {
		sugar.Fatalw("receipt journal open failed", "err", err)
	}
	db.AutoMigrate(&models.Receipt{})

	ethClient, err := ethclient.Dial(config.MustGet("RPC_URL"))
	if err != nil {
		sugar.Fatalw("rpc dial failed", "err", err)
	}

	providers := service.NewProviderState(
		service.ProviderConfig{
			Name:   "primary",
			URL:    config.Get("PRIMARY_API_URL", "https://api.openai.com/v1/chat/completions"),
			APIKey: config.MustGet("PRIMARY_API_KEY"),
			Model:  config.Get("PRIMARY_MODEL", "gpt-4o-mini"),
		},
		service.ProviderConfig{
			Name:   "secondary",
			URL:    config.MustGet("SECONDARY_API_URL"),
			APIKey: config.MustGet("SECONDARY_API_KEY"),
			Model:  config.Get("SECONDARY_MODEL", "gpt-4o-mini"),
		},
	)

	s := service.Service{
		DB:        db,
		Client:    resty.New(),
		EthClient: ethClient,
		Log:       sugar,
		Providers: providers,
		GrantProvider: service.ProviderConfig{
			Name:   "grant",
			URL:    config.Get("GRANT_PROVIDER_URL", ""),
			APIKey: config.Get("GRANT_PROVIDER_KEY", ""),
			Model:  config.Get("GRANT_PROVIDER_MODEL", ""),
		},
		GrantAPIURL:  config.Get("GRANT_API_URL", ""),
		SearchURL:    config.Get("SEARCH_API_URL", ""),
		SearchAPIKey: config.Get("SEARCH_API_KEY", ""),
	}

	gateway, err := handlers.NewChainGateway(
		ethClient,
		config.GetInt64("CHAIN_ID", 84532), // Base Sepolia
		config.MustGet("PAYMENT_CONTRACT_ADDRESS"),
		config.MustGet("TOKEN_CONTRACT_ADDRESS"),
		config.MustGet("FACILITATOR_PRIVATE_KEY"),
		sugar,
	)
	if err != nil {
		sugar.Fatalw("chain gateway init failed", "err", err)
	}
	sugar.Infow("facilitator wallet ready", "address", gateway.FacilitatorAddress())

	if err := http_server.HandleRequests(s, gateway); err != nil {
		sugar.Fatalw("server stopped", "err", err)
	}
}
