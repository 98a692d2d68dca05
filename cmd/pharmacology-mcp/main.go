package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
	"github.com/longevity-genie/pharmacology-mcp/internal/config"
	"github.com/longevity-genie/pharmacology-mcp/internal/gtp"
	pharmmcp "github.com/longevity-genie/pharmacology-mcp/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop and other MCP clients)")
	configFile := flag.String("config", "", "Path to TOML config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	common.LoadVersionFromFile()

	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return
	}

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := gtp.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.TimeoutDuration(), logger)
	defer client.Close()

	svc := pharmmcp.NewService(client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	pharmmcp.RegisterTools(mcpServer, svc)

	logger.Info().Str("upstream", client.BaseURL()).Str("version", common.GetVersion()).Msg("starting pharmacology MCP server")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on %s\n", addr)

	if err := httpServer.Start(addr); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
