package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tailored-agentic-units/tenderaudit/pipeline"
	"github.com/tailored-agentic-units/tenderaudit/progress"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

func main() {
	var (
		configFile    = flag.String("config", "", "Path to config JSON file")
		tenderFile    = flag.String("tender", "", "Path to the tender document text file (required)")
		proposalsFile = flag.String("proposals", "", "Path to the proposals JSON file (required)")
		outFile       = flag.String("out", "", "Write the report to this file instead of stdout")
		reportPath    = flag.String("reports", "", "Directory for persisted reports (overrides config)")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *tenderFile == "" || *proposalsFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: tenderaudit -tender <file> -proposals <file> [-config <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := pipeline.DefaultConfig()
	if *configFile != "" {
		loaded, err := pipeline.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *reportPath != "" {
		cfg.ReportPath = *reportPath
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	tenderText, err := os.ReadFile(*tenderFile)
	if err != nil {
		log.Fatalf("Failed to read tender document: %v", err)
	}

	proposals, err := loadProposals(*proposalsFile)
	if err != nil {
		log.Fatalf("Failed to load proposals: %v", err)
	}

	p, err := pipeline.New(&cfg,
		pipeline.WithEmitter(progress.NewSlogEmitter(logger)),
	)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := p.Run(ctx, pipeline.AnalysisInput{
		TenderText: string(tenderText),
		Proposals:  proposals,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	output, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, output, 0o644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("Report written to %s\n", *outFile)
		return
	}
	fmt.Println(string(output))
}

func loadProposals(filename string) ([]tender.Proposal, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var proposals []tender.Proposal
	if err := json.Unmarshal(data, &proposals); err != nil {
		return nil, fmt.Errorf("invalid proposals file: %w", err)
	}
	if len(proposals) == 0 {
		return nil, fmt.Errorf("proposals file contains no proposals")
	}
	return proposals, nil
}
