package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for environments without mail credentials.
// It saves messages as HTML, text, and JSON files to a directory instead of
// delivering them, and always reports success with a file:// preview URL.
type DevSender struct {
	dir string
}

// NewDevSender creates a development transport that saves mail to disk.
// The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	if dir == "" {
		dir = "./dev-mail"
	}
	return &DevSender{dir: dir}
}

func (d *DevSender) Name() string { return "dev" }

// devMetadata is the message data saved to JSON (excluding bodies).
type devMetadata struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// Send writes the message to the configured directory.
func (d *DevSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if msg.BodyHTML != "" {
		if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0644); err != nil {
			return Receipt{}, fmt.Errorf("%w: failed to write HTML file: %v", ErrSendFailed, err)
		}
	}
	if msg.BodyText != "" {
		textPath := filepath.Join(d.dir, baseFilename+".txt")
		if err := os.WriteFile(textPath, []byte(msg.BodyText), 0644); err != nil {
			return Receipt{}, fmt.Errorf("%w: failed to write text file: %v", ErrSendFailed, err)
		}
	}

	messageID := "dev-" + uuid.NewString()
	metadata := devMetadata{
		MessageID: messageID,
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}
	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to write JSON file: %v", ErrSendFailed, err)
	}

	receipt := Receipt{MessageID: messageID}
	if msg.BodyHTML != "" {
		if abs, err := filepath.Abs(htmlPath); err == nil {
			receipt.PreviewURL = "file://" + abs
		}
	}
	return receipt, nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
