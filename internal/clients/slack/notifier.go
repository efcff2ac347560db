package slack

import (
	"fmt"
	"os"
	"strings"

	goslack "github.com/slack-go/slack"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// Notifier posts a short message to a Slack channel when a brand kit is
// finalized. Optional best-effort integration; send failures are logged and
// never surfaced to the request.
type Notifier struct {
	log     *logger.Logger
	api     *goslack.Client
	channel string
}

func NewNotifier(log *logger.Logger) (*Notifier, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	token := strings.TrimSpace(os.Getenv("SLACK_BOT_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("missing SLACK_BOT_TOKEN")
	}
	channel := strings.TrimSpace(os.Getenv("SLACK_CHANNEL_ID"))
	if channel == "" {
		return nil, fmt.Errorf("missing SLACK_CHANNEL_ID")
	}
	return &Notifier{
		log:     log.With("service", "SlackNotifier"),
		api:     goslack.New(token),
		channel: channel,
	}, nil
}

func (n *Notifier) NotifyKitFinalized(brandName, kitID string) {
	msg := fmt.Sprintf(":art: Brand kit finalized for *%s* (kit %s)", brandName, kitID)
	if _, _, err := n.api.PostMessage(n.channel, goslack.MsgOptionText(msg, false)); err != nil {
		n.log.Warn("slack notify failed (ignored)", "kit_id", kitID, "error", err)
	}
}
