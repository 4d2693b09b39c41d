package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"talentscout/app/config"
	"talentscout/app/model"
	"time"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

//go:embed system_prompt.txt
var systemPrompt string

const (
	maxCompletionTokens = 512
	defaultTemperature  = 0.3
	maxGenerateDuration = 30 * time.Second
)

type Client struct {
	client    *openai.Client
	modelName string
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	clientConfig := openai.DefaultConfig(cfg.OpenRouter.Token)
	clientConfig.BaseURL = cfg.OpenRouter.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: maxGenerateDuration,
	}

	return &Client{
		client:    openai.NewClientWithConfig(clientConfig),
		modelName: cfg.OpenRouter.Model,
	}, nil
}

// Generate sends the prompt with the given history prefix and returns the model text.
// The screening system prompt is always prepended.
func (c *Client) Generate(ctx context.Context, prompt string, history []model.Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, msg := range history {
		switch msg.Role {
		case model.RoleUser:
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: msg.Content,
			})
		case model.RoleAssistant:
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: msg.Content,
			})
		}
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	ctx, cancel := context.WithTimeout(ctx, maxGenerateDuration)
	defer cancel()

	aiResponse, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:               c.modelName,
			Messages:            messages,
			MaxCompletionTokens: maxCompletionTokens,
			Temperature:         defaultTemperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(aiResponse.Choices[0].Message.Content), nil
}
