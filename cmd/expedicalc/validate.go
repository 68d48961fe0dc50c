package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nicoberrocal/expedicalc"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.NoArgs,
	Short: "Validate a JSON Request file without running a calculation",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("request", "", "path to a JSON-encoded Request file; reads stdin if omitted")
}

func runValidate(cmd *cobra.Command, args []string) error {
	requestPath, _ := cmd.Flags().GetString("request")
	req, err := readRequest(requestPath)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}
	if err := expedicalc.ValidateRequest(req); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	jsonLine, _ := json.Marshal(map[string]any{"valid": true, "sectors": len(req.Sectors), "players": len(req.Team.Players)})
	fmt.Println(string(jsonLine))
	return nil
}
