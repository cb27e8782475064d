package main

import (
	"flag"
	"log"
	"os"

	mcpcmd "github.com/louisbranch/netrun/internal/cmd/mcp"
	"github.com/louisbranch/netrun/internal/platform/cmd"
)

// main starts the MCP server on stdio.
func main() {
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(cmd.LogPrefix(cmd.ServiceMCP))

	ctx, stop := cmd.SignalContext()
	defer stop()

	if err := mcpcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
