package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	maxTokens  = 2000
)

var ErrDisabled = errors.New("narrative summariser is not configured")

// Client relays an aggregate digest to the narrative generator. The remote
// service is opaque: it returns prose or an error, nothing else is assumed
// about it.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient returns a disabled client when apiKey is empty.
func NewClient(apiKey, model string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	httpClient := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(90 * time.Second)
	return &Client{http: httpClient, model: model}
}

func (c *Client) Enabled() bool {
	return c != nil && c.http != nil
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Summarize sends the digest with reporting instructions and returns the
// generated narrative.
func (c *Client) Summarize(ctx context.Context, digest string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	var respBody messageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(messageRequest{
			Model:     c.model,
			MaxTokens: maxTokens,
			Messages:  []message{{Role: "user", Content: digest + "\n\n" + reportInstructions}},
		}).
		SetResult(&respBody).
		Post(apiURL)
	if err != nil {
		return "", fmt.Errorf("summariser call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("summariser error: %s", resp.Status())
	}
	if len(respBody.Content) == 0 {
		return "", errors.New("empty response from summariser")
	}
	return respBody.Content[0].Text, nil
}

const reportInstructions = `Generate a professional HR attrition report covering:
1. Executive Summary - key attrition metrics and what they mean
2. Root Cause Analysis - why employees are leaving or at risk
3. Department Risk Assessment - which departments need attention
4. Warning Signs - early signals that predict resignation
5. Retention Recommendations - five specific, actionable strategies
Format with numbered sections. Be specific, data-driven, and actionable.`
