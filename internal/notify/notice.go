package notify

import (
	"context"
	"time"

	"github.com/linskybing/oasis/pkg/response"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a user-visible status message attached to the outcome of an operation.
type Notice struct {
	Level Level     `json:"level"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
}

func Success(text string) Notice { return Notice{Level: LevelSuccess, Text: text, At: time.Now()} }
func Info(text string) Notice    { return Notice{Level: LevelInfo, Text: text, At: time.Now()} }
func Warning(text string) Notice { return Notice{Level: LevelWarning, Text: text, At: time.Now()} }
func Error(text string) Notice   { return Notice{Level: LevelError, Text: text, At: time.Now()} }

func (n Notice) Response() *response.Notice {
	if n.Text == "" {
		return nil
	}
	return &response.Notice{Level: string(n.Level), Text: n.Text}
}

// Notifier delivers notices to a user. Notify is fire-and-forget from the
// caller's point of view; Drain returns and clears pending notices.
type Notifier interface {
	Notify(ctx context.Context, userID uint, n Notice) error
	Drain(ctx context.Context, userID uint) ([]Notice, error)
	Subscribe(ctx context.Context, userID uint) (<-chan Notice, func(), error)
}
