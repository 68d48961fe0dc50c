package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nicoberrocal/expedicalc"
	"github.com/nicoberrocal/expedicalc/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run a calculation against a JSON expedicalc.Request file",
	Long:  `Reads an expedicalc.Request from --request (or stdin), runs Calculate, and prints the resulting expedicalc.Result as JSON.`,
	RunE:  runCalculate,
}

func init() {
	runCmd.Flags().String("request", "", "path to a JSON-encoded Request file; reads stdin if omitted")
	runCmd.Flags().String("preset", "", "name of a configured example-planet preset to use for req.Sectors, instead of the request file's own sector list")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	requestPath, _ := cmd.Flags().GetString("request")
	preset, _ := cmd.Flags().GetString("preset")

	req, err := readRequest(requestPath)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	game, err := config.Load(cfgFile, cfgPath)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	if preset != "" {
		sectorList, ok := game.Presets[preset]
		if !ok {
			return fmt.Errorf("preset %q is not configured", preset)
		}
		req.Sectors = sectorList
	}

	start := time.Now()
	result, err := expedicalc.Calculate(context.Background(), req, game)
	registry.Calculations.Inc()
	registry.CalculationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("calculating: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readRequest(path string) (expedicalc.Request, error) {
	var r expedicalc.Request
	var f *os.File
	if path == "" || path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return r, err
		}
		defer f.Close()
	}
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return r, err
	}
	return r, nil
}
