package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/echosite/echosite/logger"
)

// InteractiveCLI provides an interactive operator console
type InteractiveCLI struct {
	logger  *logger.WebLogger
	reader  *bufio.Reader
	running bool
}

// NewInteractiveCLI creates a new interactive CLI
func NewInteractiveCLI(log *logger.WebLogger) *InteractiveCLI {
	return &InteractiveCLI{
		logger:  log,
		reader:  bufio.NewReader(os.Stdin),
		running: true,
	}
}

// Start starts the interactive CLI
func (cli *InteractiveCLI) Start() {
	cli.printWelcome()
	cli.printHelp()

	for cli.running {
		fmt.Print("echosite> ")
		line, err := cli.reader.ReadString('\n')
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		command := strings.ToLower(parts[0])
		args := parts[1:]

		cli.handleCommand(command, args)
	}
}

// handleCommand handles a command
func (cli *InteractiveCLI) handleCommand(cmd string, args []string) {
	switch cmd {
	case "help", "h":
		cli.printHelp()
	case "stats", "s":
		cli.printStats()
	case "requests", "req", "r":
		cli.printRequests(args)
	case "logs", "l":
		cli.printLogs(args)
	case "clear", "cls":
		fmt.Print("\033[2J\033[H")
	case "quit", "exit", "q":
		cli.running = false
		fmt.Println("Exiting...")
	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}
}

// printWelcome prints welcome message
func (cli *InteractiveCLI) printWelcome() {
	fmt.Println("========================================")
	fmt.Println("    echosite Interactive Interface")
	fmt.Println("========================================")
	fmt.Println()
}

// printHelp prints help message
func (cli *InteractiveCLI) printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  help, h               - Show this help message")
	fmt.Println("  stats, s              - Show request statistics")
	fmt.Println("  requests, req [count] - Show recent requests (default: 10)")
	fmt.Println("  logs, l [count]       - Show recent logs (default: 10)")
	fmt.Println("  clear, cls            - Clear screen")
	fmt.Println("  quit, exit, q         - Exit the application")
	fmt.Println()
}

// printStats prints request statistics
func (cli *InteractiveCLI) printStats() {
	stats := cli.logger.GetStats()

	fmt.Println("\n=== Statistics ===")
	fmt.Printf("Total Requests: %d\n", stats.TotalRequests)
	fmt.Printf("Active Requests: %d\n", stats.ActiveRequests)
	fmt.Printf("Bytes Read: %s\n", formatBytes(stats.BytesRead))
	fmt.Printf("Bytes Written: %s\n", formatBytes(stats.BytesWritten))
	fmt.Printf("2xx/3xx Responses: %d\n", stats.StatusSuccess)
	fmt.Printf("4xx Responses: %d\n", stats.StatusClientErr)
	fmt.Printf("5xx Responses: %d\n", stats.StatusServerErr)
	fmt.Printf("Errors: %d\n", stats.Errors)
	fmt.Println()
}

// printRequests prints recent completed requests
func (cli *InteractiveCLI) printRequests(args []string) {
	count := 10
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			count = n
		}
	}

	requests := cli.logger.GetRecentRequests(count)

	if len(requests) == 0 {
		fmt.Println("No requests yet")
		return
	}

	fmt.Printf("\n=== Recent Requests (last %d) ===\n", len(requests))
	fmt.Printf("%-10s %-7s %-20s %-6s %-12s %-12s\n", "Time", "Method", "Path", "Status", "Out", "Duration")
	fmt.Println(strings.Repeat("-", 72))

	for _, req := range requests {
		fmt.Printf("%-10s %-7s %-20s %-6d %-12s %-12v\n",
			req.FinishedAt.Format("15:04:05"),
			req.Method,
			truncate(req.Path, 20),
			req.Status,
			formatBytes(req.BytesOut),
			req.Duration.Round(time.Microsecond))
	}
	fmt.Println()
}

// printLogs prints recent logs
func (cli *InteractiveCLI) printLogs(args []string) {
	count := 10
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			count = n
		}
	}

	logs := cli.logger.GetRecentLogs(count)

	if len(logs) == 0 {
		fmt.Println("No logs available")
		return
	}

	fmt.Printf("\n=== Recent Logs (last %d) ===\n", len(logs))
	for _, entry := range logs {
		levelStr := ""
		switch entry.Level {
		case logger.DEBUG:
			levelStr = "DEBUG"
		case logger.INFO:
			levelStr = "INFO"
		case logger.WARNING:
			levelStr = "WARN"
		case logger.ERROR:
			levelStr = "ERROR"
		}

		fmt.Printf("[%s] %s: %s\n",
			entry.Timestamp.Format("15:04:05"),
			levelStr,
			entry.Message)
	}
	fmt.Println()
}

// formatBytes formats bytes into human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// truncate truncates a string to specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
