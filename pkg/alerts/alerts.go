package alerts

import "time"

// Level classifies an alert for presentation purposes.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Alert is a transient message shown to the user and then discarded.
// Alerts carry no identity and are never persisted.
type Alert struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Info creates an informational alert.
func Info(message string) Alert {
	return Alert{Level: LevelInfo, Message: message, CreatedAt: time.Now()}
}

// Success creates a success confirmation alert.
func Success(message string) Alert {
	return Alert{Level: LevelSuccess, Message: message, CreatedAt: time.Now()}
}

// Error creates an error alert.
func Error(message string) Alert {
	return Alert{Level: LevelError, Message: message, CreatedAt: time.Now()}
}
