package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	reqPath   string
)

var rootCmd = &cobra.Command{
	Use:   "echosite-client [json]",
	Short: "echosite client - post a JSON document and print the echo",
	Long: `echosite client sends a JSON document to a running echosite server
and prints the acknowledgment envelope. The document is taken from the first
argument, or from stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClient,
}

func init() {
	rootCmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "Base URL of the echosite server")
	rootCmd.Flags().StringVarP(&reqPath, "path", "p", "/", "Request path to post to")
}

func runClient(cmd *cobra.Command, args []string) error {
	var payload []byte
	if len(args) > 0 {
		payload = []byte(args[0])
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		payload = data
	}

	resp, err := http.Post(serverURL+reqPath, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	fmt.Printf("Status: %s\n", resp.Status)

	// Re-indent JSON responses for readability; print anything else as-is
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(pretty.String())

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
