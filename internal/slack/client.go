package slack

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Messenger posts messages into Slack channels
type Messenger interface {
	GetBotID() string
	SendMessage(channelID, message string) (string, error)
}

type Client struct {
	api   *slack.Client
	botID string
}

func NewClient(token string) (*Client, error) {
	api := slack.New(token)

	authTest, err := api.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Slack: %w", err)
	}

	return &Client{
		api:   api,
		botID: authTest.UserID,
	}, nil
}

func (c *Client) GetAPI() *slack.Client {
	return c.api
}

func (c *Client) GetBotID() string {
	return c.botID
}

// SendMessage posts a message and returns its timestamp
func (c *Client) SendMessage(channelID, message string) (string, error) {
	_, ts, err := c.api.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
	)
	return ts, err
}
