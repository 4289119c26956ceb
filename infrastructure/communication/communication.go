package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Notifier posts operational events (registrations, lockouts) to Slack.
// It is optional: a nil *Notifier swallows every call, so callers never
// guard against it.
type Notifier struct {
	client  *slack.Client
	options NotifierOption
}

type NotifierOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// ConnectSlack builds a notifier from the environment, or nil when no
// bot token is configured.
func ConnectSlack() *Notifier {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}

	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewNotifier(token, NotifierOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewNotifier(token string, options NotifierOption) *Notifier {
	client := slack.New(token)
	return &Notifier{client: client, options: options}
}

func (n *Notifier) postMessage(channelID, message string) error {
	if n == nil || channelID == "" {
		return nil
	}
	_, _, err := n.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (n *Notifier) Info(message string) error {
	if n == nil {
		return nil
	}
	return n.postMessage(n.options.InfoChannelID, message)
}

func (n *Notifier) Error(message string) error {
	if n == nil {
		return nil
	}
	return n.postMessage(n.options.ErrorChannelID, message)
}
