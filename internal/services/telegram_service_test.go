package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rms/internal/logging"
)

type botRecorder struct {
	mu       sync.Mutex
	paths    []string
	messages []telegramMessage
	status   int
}

func (b *botRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var msg telegramMessage
	_ = json.NewDecoder(r.Body).Decode(&msg)

	b.mu.Lock()
	b.paths = append(b.paths, r.URL.Path)
	b.messages = append(b.messages, msg)
	status := b.status
	b.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func newTestService(t *testing.T, token, chat string, rec *botRecorder) *TelegramService {
	t.Helper()
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	return NewTelegramService(token, chat, logging.NewWithOutput(io.Discard, "info", "text")).WithBaseURL(srv.URL + "/")
}

func TestNotifyNewComplaint(t *testing.T) {
	rec := &botRecorder{}
	svc := newTestService(t, "secret", "100", rec)

	err := svc.NotifyNewComplaint(ComplaintNotification{
		ComplaintID: 3,
		CustomerID:  1,
		IssueType:   "Low Speed",
		Description: "slow <at> night",
		Status:      "Open",
	})
	require.NoError(t, err)

	require.Len(t, rec.messages, 1)
	assert.Equal(t, "/botsecret/sendMessage", rec.paths[0])
	assert.Equal(t, "100", rec.messages[0].ChatID)
	assert.Equal(t, "HTML", rec.messages[0].ParseMode)
	assert.Contains(t, rec.messages[0].Text, "NEW COMPLAINT #3")
	assert.Contains(t, rec.messages[0].Text, "slow &lt;at&gt; night")
}

func TestNotifyComplaintResolved(t *testing.T) {
	rec := &botRecorder{}
	svc := newTestService(t, "secret", "100", rec)
	at := time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC)

	require.NoError(t, svc.NotifyComplaintResolved(ComplaintNotification{ComplaintID: 3, CustomerID: 1, IssueType: "Low Speed", ResolvedAt: &at}))

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0].Text, "COMPLAINT #3 RESOLVED")
	assert.Contains(t, rec.messages[0].Text, "2024-05-01T22:00:00Z")
}

func TestNotificationsDisabledWithoutCredentials(t *testing.T) {
	rec := &botRecorder{}

	noToken := newTestService(t, "", "100", rec)
	noChat := newTestService(t, "secret", "", rec)

	assert.False(t, noToken.Enabled())
	assert.False(t, noChat.Enabled())
	assert.NoError(t, noToken.NotifyNewComplaint(ComplaintNotification{ComplaintID: 1}))
	assert.NoError(t, noChat.NotifyComplaintResolved(ComplaintNotification{ComplaintID: 1}))
	assert.Empty(t, rec.messages)
}

func TestSendMessageReportsBadStatus(t *testing.T) {
	rec := &botRecorder{status: http.StatusBadRequest}
	svc := newTestService(t, "secret", "100", rec)

	err := svc.SendToAdmin("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
