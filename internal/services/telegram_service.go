package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
	baseURL     string
	client      *http.Client
	log         *logrus.Logger
}

// NewTelegramService creates a new TelegramService. An empty token or chat
// id turns every notification into a no-op.
func NewTelegramService(botToken, adminChatID string, log *logrus.Logger) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		baseURL:     defaultTelegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

// WithBaseURL points the service at a different Bot API host.
func (s *TelegramService) WithBaseURL(baseURL string) *TelegramService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// Enabled reports whether notifications will actually be sent.
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.adminChatID != ""
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		s.log.Debug("[Telegram] bot token not configured")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)

	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		s.log.Debug("[Telegram] admin chat id not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// ComplaintNotification carries the complaint fields shown to the admin chat.
type ComplaintNotification struct {
	ComplaintID uint
	CustomerID  uint
	IssueType   string
	Description string
	Status      string
	ResolvedAt  *time.Time
}

// NotifyNewComplaint tells the admin chat a complaint was registered.
func (s *TelegramService) NotifyNewComplaint(n ComplaintNotification) error {
	if !s.Enabled() {
		return nil
	}

	description := n.Description
	if description == "" {
		description = "—"
	}

	message := fmt.Sprintf(`<b>📨 NEW COMPLAINT #%d</b>
<b>👤 Customer:</b> %d
<b>⚠️ Issue:</b> %s
<b>📝 Description:</b> %s
<b>📍 Status:</b> %s`,
		n.ComplaintID,
		n.CustomerID,
		html.EscapeString(n.IssueType),
		html.EscapeString(description),
		html.EscapeString(n.Status),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyComplaintResolved tells the admin chat a complaint was resolved.
func (s *TelegramService) NotifyComplaintResolved(n ComplaintNotification) error {
	if !s.Enabled() {
		return nil
	}

	resolvedAt := "—"
	if n.ResolvedAt != nil {
		resolvedAt = n.ResolvedAt.Format(time.RFC3339)
	}

	message := fmt.Sprintf(`<b>✅ COMPLAINT #%d RESOLVED</b>
<b>👤 Customer:</b> %d
<b>⚠️ Issue:</b> %s
<b>🕒 Resolved at:</b> %s`,
		n.ComplaintID,
		n.CustomerID,
		html.EscapeString(n.IssueType),
		resolvedAt,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
