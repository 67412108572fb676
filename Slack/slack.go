package Slack

import (
	"fmt"
	"log"
	"os"

	"github.com/slack-go/slack"
)

// Notifier posts operational messages to a Slack channel. It is a no-op
// when SLACK_BOT_TOKEN or SLACK_CHANNEL is not configured, so local and
// test runs never hit the network.
type Notifier struct {
	client  *slack.Client
	channel string
}

// NewNotifier builds a Notifier from SLACK_BOT_TOKEN and SLACK_CHANNEL.
// Required bot token scope: chat:write.
func NewNotifier() *Notifier {
	token := os.Getenv("SLACK_BOT_TOKEN")
	channel := os.Getenv("SLACK_CHANNEL")
	if token == "" || channel == "" {
		log.Println("Slack notifier disabled (SLACK_BOT_TOKEN / SLACK_CHANNEL not set)")
		return &Notifier{}
	}
	return &Notifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// Enabled reports whether messages will actually be sent
func (n *Notifier) Enabled() bool {
	return n.client != nil
}

// Post sends a plain text message to the configured channel
func (n *Notifier) Post(text string) error {
	if !n.Enabled() {
		log.Println("Slack (disabled):", text)
		return nil
	}
	_, _, err := n.client.PostMessage(n.channel, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("posting to Slack channel %s: %w", n.channel, err)
	}
	return nil
}
