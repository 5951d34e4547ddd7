package service

import (
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProviderConfig identifies one chat-completion endpoint.
type ProviderConfig struct {
	Name   string
	URL    string
	APIKey string
	Model  string
}

// ProviderState tracks which provider the process is currently using.
// The switch to the secondary provider is one-way and idempotent: once any
// request observes a failure and flips it, every later request stays on the
// secondary until restart.
type ProviderState struct {
	mu           sync.Mutex
	primary      ProviderConfig
	secondary    ProviderConfig
	useSecondary bool
}

func NewProviderState(primary, secondary ProviderConfig) *ProviderState {
	return &ProviderState{primary: primary, secondary: secondary}
}

func (p *ProviderState) Current() ProviderConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.useSecondary {
		return p.secondary
	}
	return p.primary
}

// SwitchToSecondary flips to the secondary provider. Returns false if the
// secondary was already selected, so callers retry at most once.
func (p *ProviderState) SwitchToSecondary() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.useSecondary {
		return false
	}
	p.useSecondary = true
	return true
}

// Service bundles the shared clients every handler needs.
type Service struct {
	DB            *gorm.DB
	Client        *resty.Client
	EthClient     *ethclient.Client
	Log           *zap.SugaredLogger
	Providers     *ProviderState
	GrantProvider ProviderConfig
	GrantAPIURL   string
	SearchURL     string
	SearchAPIKey  string
}
