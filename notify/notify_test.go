package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPublicKey  = "public-key"
	testPrivateKey = "private-key"
	testSender     = "reports@example.com"
	testRecipient  = "inbox@example.com"
)

func newTestMailer(t *testing.T) *Mailer {
	t.Helper()

	mailer, err := NewMailer(testPublicKey, testPrivateKey, testSender, testRecipient, "Test Recipient")
	require.NoError(t, err)
	return mailer
}

func TestNewMailer(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		mailer, err := NewMailer(testPublicKey, testPrivateKey, testSender, testRecipient, "Test Recipient")

		assert.NoError(t, err)
		assert.NotNil(t, mailer)
	})

	t.Run("fails with empty public key", func(t *testing.T) {
		mailer, err := NewMailer("", testPrivateKey, testSender, testRecipient, "Test Recipient")

		assert.Error(t, err)
		assert.Nil(t, mailer)
		assert.Contains(t, err.Error(), "missing mailjet API public key")
	})

	t.Run("fails with empty private key", func(t *testing.T) {
		mailer, err := NewMailer(testPublicKey, "", testSender, testRecipient, "Test Recipient")

		assert.Error(t, err)
		assert.Nil(t, mailer)
		assert.Contains(t, err.Error(), "missing mailjet API private key")
	})

	t.Run("fails with invalid sender address", func(t *testing.T) {
		mailer, err := NewMailer(testPublicKey, testPrivateKey, "not-an-email", testRecipient, "Test Recipient")

		assert.Error(t, err)
		assert.Nil(t, mailer)
		assert.Contains(t, err.Error(), "invalid sender email address")
	})

	t.Run("fails with invalid recipient address", func(t *testing.T) {
		mailer, err := NewMailer(testPublicKey, testPrivateKey, testSender, "not-an-email", "Test Recipient")

		assert.Error(t, err)
		assert.Nil(t, mailer)
		assert.Contains(t, err.Error(), "invalid recipient email address")
	})
}

func TestMailer_RenderReport(t *testing.T) {
	t.Run("lists the purged items", func(t *testing.T) {
		mailer := newTestMailer(t)

		body, err := mailer.renderReport("alice", []string{"Buy milk", "Walk the dog"})

		require.NoError(t, err)
		assert.Contains(t, body, "Purge report for alice")
		assert.Contains(t, body, "2 todo item(s) were removed")
		assert.Contains(t, body, "- Buy milk")
		assert.Contains(t, body, "- Walk the dog")
	})

	t.Run("reports when nothing was removed", func(t *testing.T) {
		mailer := newTestMailer(t)

		body, err := mailer.renderReport("alice", nil)

		require.NoError(t, err)
		assert.Contains(t, body, "No todo items were removed")
	})
}
