package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// LogLevel represents logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

// RequestRecord captures one completed request/response exchange
type RequestRecord struct {
	ID         string
	Method     string
	Path       string
	RemoteAddr string
	Status     int
	BytesIn    int64
	BytesOut   int64
	Duration   time.Duration
	FinishedAt time.Time
}

// Statistics tracks aggregate server activity
type Statistics struct {
	TotalRequests   int64
	ActiveRequests  int
	BytesRead       int64
	BytesWritten    int64
	StatusSuccess   int64
	StatusClientErr int64
	StatusServerErr int64
	Errors          int64
}

// LogEntry represents a log entry
type LogEntry struct {
	Level     LogLevel
	Timestamp time.Time
	Message   string
}

// WebLogger provides centralized logging and request tracking
type WebLogger struct {
	logger         *log.Logger
	level          LogLevel
	mu             sync.RWMutex
	stats          Statistics
	recentLogs     []LogEntry
	recentRequests []RequestRecord
	maxLogs        int
	maxRequests    int
}

// NewLogger creates a new logger instance
func NewLogger(level LogLevel) *WebLogger {
	return &WebLogger{
		logger:         log.New(os.Stdout, "", log.LstdFlags),
		level:          level,
		recentLogs:     make([]LogEntry, 0),
		recentRequests: make([]RequestRecord, 0),
		maxLogs:        100,
		maxRequests:    100,
	}
}

// logMessage logs a message at the specified level
func (l *WebLogger) logMessage(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	prefix := ""
	switch level {
	case DEBUG:
		prefix = "[DEBUG]"
	case INFO:
		prefix = "[INFO]"
	case WARNING:
		prefix = "[WARNING]"
	case ERROR:
		prefix = "[ERROR]"
	}

	l.logger.Printf("%s %s", prefix, message)

	l.mu.Lock()
	entry := LogEntry{
		Level:     level,
		Timestamp: time.Now(),
		Message:   message,
	}
	l.recentLogs = append(l.recentLogs, entry)
	if len(l.recentLogs) > l.maxLogs {
		l.recentLogs = l.recentLogs[1:]
	}
	l.mu.Unlock()
}

// Debug logs a debug message
func (l *WebLogger) Debug(format string, args ...interface{}) {
	l.logMessage(DEBUG, format, args...)
}

// Info logs an info message
func (l *WebLogger) Info(format string, args ...interface{}) {
	l.logMessage(INFO, format, args...)
}

// Warning logs a warning message
func (l *WebLogger) Warning(format string, args ...interface{}) {
	l.logMessage(WARNING, format, args...)
}

// Error logs an error message
func (l *WebLogger) Error(format string, args ...interface{}) {
	l.logMessage(ERROR, format, args...)
	l.mu.Lock()
	l.stats.Errors++
	l.mu.Unlock()
}

// RequestStarted marks a request as in flight
func (l *WebLogger) RequestStarted() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stats.TotalRequests++
	l.stats.ActiveRequests++
}

// RequestFinished records a completed request and updates statistics
func (l *WebLogger) RequestFinished(rec RequestRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stats.ActiveRequests > 0 {
		l.stats.ActiveRequests--
	}
	l.stats.BytesRead += rec.BytesIn
	l.stats.BytesWritten += rec.BytesOut

	switch {
	case rec.Status >= 500:
		l.stats.StatusServerErr++
	case rec.Status >= 400:
		l.stats.StatusClientErr++
	default:
		l.stats.StatusSuccess++
	}

	l.recentRequests = append(l.recentRequests, rec)
	if len(l.recentRequests) > l.maxRequests {
		l.recentRequests = l.recentRequests[1:]
	}
}

// GetStats returns a copy of current statistics
func (l *WebLogger) GetStats() Statistics {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.stats
}

// GetRecentRequests returns up to count most recent completed requests
func (l *WebLogger) GetRecentRequests(count int) []RequestRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if count <= 0 || count > len(l.recentRequests) {
		count = len(l.recentRequests)
	}

	result := make([]RequestRecord, count)
	copy(result, l.recentRequests[len(l.recentRequests)-count:])
	return result
}

// GetRecentLogs returns up to count most recent log entries
func (l *WebLogger) GetRecentLogs(count int) []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if count <= 0 || count > len(l.recentLogs) {
		count = len(l.recentLogs)
	}

	result := make([]LogEntry, count)
	copy(result, l.recentLogs[len(l.recentLogs)-count:])
	return result
}
