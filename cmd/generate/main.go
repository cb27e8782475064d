package main

import (
	"flag"
	"log"
	"os"

	generatecmd "github.com/louisbranch/netrun/internal/cmd/generate"
	"github.com/louisbranch/netrun/internal/platform/cmd"
)

// main generates one architecture and prints its snapshot.
func main() {
	cfg, err := generatecmd.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(cmd.LogPrefix(cmd.ServiceGenerate))

	ctx, stop := cmd.SignalContext()
	defer stop()

	if err := generatecmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("generate: %v", err)
	}
}
