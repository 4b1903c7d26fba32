package mail_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcraft/checkout/pkg/mail"
)

func TestDevSenderSend(t *testing.T) {
	t.Parallel()

	t.Run("writes files and returns preview receipt", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := mail.NewDevSender(dir)

		receipt, err := sender.Send(context.Background(), mail.Message{
			To:       "jane@example.com",
			Subject:  "Order Confirmation #ORD-1 - Pixelcraft Studio",
			BodyHTML: "<h1>Thanks</h1>",
			BodyText: "Thanks",
			Tag:      "invoice",
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(receipt.MessageID, "dev-"))
		assert.True(t, strings.HasPrefix(receipt.PreviewURL, "file://"))
		assert.True(t, strings.HasSuffix(receipt.PreviewURL, ".html"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		var suffixes []string
		for _, e := range entries {
			suffixes = append(suffixes, filepath.Ext(e.Name()))
		}
		assert.ElementsMatch(t, []string{".html", ".txt", ".json"}, suffixes)

		// Metadata carries the receipt's message ID.
		for _, e := range entries {
			if filepath.Ext(e.Name()) != ".json" {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			require.NoError(t, err)
			var meta map[string]any
			require.NoError(t, json.Unmarshal(data, &meta))
			assert.Equal(t, receipt.MessageID, meta["message_id"])
			assert.Equal(t, "jane@example.com", meta["to"])
		}
	})

	t.Run("long multi-byte subject yields safe ASCII filenames", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := mail.NewDevSender(dir)

		_, err := sender.Send(context.Background(), mail.Message{
			To:       "jane@example.com",
			Subject:  "Подтверждение заказа 注文確認 🎉 " + strings.Repeat("order confirmation ", 10),
			BodyHTML: "<p>b</p>",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			assert.Regexp(t, `^[a-z0-9_\-.]+$`, e.Name())
			assert.True(t, utf8.ValidString(e.Name()))
		}
	})

	t.Run("rejects invalid message", func(t *testing.T) {
		t.Parallel()

		sender := mail.NewDevSender(t.TempDir())
		_, err := sender.Send(context.Background(), mail.Message{Subject: "no recipient", BodyText: "x"})
		assert.ErrorIs(t, err, mail.ErrInvalidMessage)
	})

	t.Run("text-only message skips html file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := mail.NewDevSender(dir)

		receipt, err := sender.Send(context.Background(), mail.Message{
			To:       "jane@example.com",
			Subject:  "plain",
			BodyText: "hello",
		})
		require.NoError(t, err)
		assert.Empty(t, receipt.PreviewURL)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotEqual(t, ".html", filepath.Ext(e.Name()))
		}
	})
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     mail.Message
		wantErr string
	}{
		{
			name: "valid",
			msg:  mail.Message{To: "user@example.com", Subject: "s", BodyHTML: "<p>b</p>"},
		},
		{
			name:    "missing recipient",
			msg:     mail.Message{Subject: "s", BodyHTML: "b"},
			wantErr: "To is required",
		},
		{
			name:    "malformed recipient",
			msg:     mail.Message{To: "not-an-email", Subject: "s", BodyHTML: "b"},
			wantErr: "valid email address",
		},
		{
			name:    "missing subject",
			msg:     mail.Message{To: "user@example.com", BodyHTML: "b"},
			wantErr: "Subject is required",
		},
		{
			name:    "missing body",
			msg:     mail.Message{To: "user@example.com", Subject: "s"},
			wantErr: "body is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.msg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, mail.ErrInvalidMessage)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
