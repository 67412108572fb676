package middleware

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"Hearth/Models"
)

// LogData is one request log line, written as JSON
type LogData struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	URL       string        `json:"url"`
	Status    int           `json:"status"`
	Latency   time.Duration `json:"latency"`
	IP        string        `json:"ip"`
	UserAgent string        `json:"user_agent"`
	Error     string        `json:"error,omitempty"`
	UserID    uint          `json:"user_id,omitempty"`
	Username  string        `json:"username,omitempty"`
}

var (
	logFileMu sync.Mutex
	logFile   *os.File
)

const requestLogPath = "logs/requests.log"

// RequestLogger logs every request to the console and logs/requests.log
// as JSON lines. /health and static assets are skipped.
func RequestLogger() fiber.Handler {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
	}

	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		data := LogData{
			Timestamp: start,
			Method:    c.Method(),
			Path:      c.Path(),
			URL:       c.OriginalURL(),
			Status:    c.Response().StatusCode(),
			Latency:   time.Since(start),
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
		}
		if err != nil {
			data.Error = err.Error()
		}
		if user, ok := c.Locals("user").(Models.User); ok {
			data.UserID = user.Id
			data.Username = user.Name
		}

		line, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			return err
		}

		log.Println(string(line))
		writeLogLine(line)

		return err
	}
}

func writeLogLine(line []byte) {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile == nil {
		f, err := os.OpenFile(requestLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Error opening request log file: %v\n", err)
			return
		}
		logFile = f
	}

	if _, err := logFile.Write(append(line, '\n')); err != nil {
		log.Printf("Error writing request log: %v\n", err)
	}
}
