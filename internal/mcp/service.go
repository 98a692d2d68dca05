package mcp

import (
	"github.com/google/uuid"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
	"github.com/longevity-genie/pharmacology-mcp/internal/gtp"
)

// Service holds the shared dependencies of the tool handlers: the upstream
// client and the logger. Handlers keep no other state, so a single Service
// serves concurrent invocations without locking.
type Service struct {
	client *gtp.Client
	logger *common.Logger
}

// NewService creates a Service backed by the given upstream client.
func NewService(client *gtp.Client, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{client: client, logger: logger}
}

// toolLogger returns a logger carrying a fresh correlation ID for one tool
// invocation, so a request can be traced through the handler and HTTP layers.
func (s *Service) toolLogger(tool string) *common.Logger {
	log := s.logger.WithCorrelationId(uuid.New().String())
	log.Debug().Str("tool", tool).Msg("tool invocation")
	return log
}
