// Package genai wraps the generative-AI collaborator behind a small REST
// client. The service is treated as an opaque text-in/text-out box that
// may fail; every caller degrades rather than propagating its errors to
// the user.
package genai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mindmate/mindmate-server/internal/model"
)

// companionPrompt steers the chat model. Kept close to the tone the
// product shipped with: supportive, short, never diagnosing.
const companionPrompt = `You are MindMate, a compassionate and empathetic AI companion. Your role is to:
- Listen actively and respond with empathy and warmth
- Ask thoughtful follow-up questions to understand better
- Provide emotional support and validation
- Help users explore their feelings in a safe space
- Suggest healthy coping strategies when appropriate
- Never diagnose or replace professional therapy
- Keep responses warm, conversational, and supportive (2-4 sentences typically)

Respond naturally and conversationally as a supportive friend would.`

// moodPrompt asks the model to act as the primary emotion classifier.
// Replies outside the six-word vocabulary are rejected by DetectMood and
// the lexicon fallback takes over.
const moodPrompt = `You are an emotion classifier. Read the user's text and answer with exactly one lowercase word from this list and nothing else: happy, calm, neutral, anxious, sad, stressed.`

// Client talks to a Gemini-style generateContent API.
type Client struct {
	rc        *resty.Client
	modelName string
}

// New builds a Client for the given endpoint. The timeout bounds every
// request; callers add per-call deadlines via context where needed.
func New(baseURL, apiKey, modelName string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey).
		SetTimeout(timeout)
	return &Client{rc: rc, modelName: modelName}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, system string, contents []content, cfg generationConfig) (string, error) {
	req := generateRequest{Contents: contents, GenerationConfig: cfg}
	if system != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}

	var out generateResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.modelName))
	if err != nil {
		return "", fmt.Errorf("genai request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("genai: %s (status %d)", out.Error.Message, resp.StatusCode())
		}
		return "", fmt.Errorf("genai: unexpected status %d", resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("genai: empty candidate list")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateReply answers a chat message given the prior conversation.
// History is mapped to the API's user/model roles; the initial greeting
// the frontend injects is assistant-authored and maps like any other turn.
func (c *Client) GenerateReply(ctx context.Context, history []model.ChatMessage, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.Role == model.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	return c.generate(ctx, companionPrompt, contents, generationConfig{
		Temperature:     0.9,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	})
}

// DetectMood implements mood.Detector via the remote model. An answer
// outside the six-word vocabulary is an error so the fallback composer
// can substitute the lexicon result.
func (c *Client) DetectMood(ctx context.Context, text string) (model.Mood, error) {
	raw, err := c.generate(ctx, moodPrompt,
		[]content{{Role: "user", Parts: []part{{Text: text}}}},
		generationConfig{Temperature: 0, TopK: 1, TopP: 1, MaxOutputTokens: 8},
	)
	if err != nil {
		return "", err
	}
	label := strings.ToLower(strings.Trim(strings.TrimSpace(raw), ".!\"'"))
	m, ok := model.ParseMood(label)
	if !ok {
		return "", fmt.Errorf("genai: out-of-vocabulary mood %q", label)
	}
	return m, nil
}

// Summarize produces a short natural-language summary for the insights
// dashboard. Best effort: callers omit the summary on error.
func (c *Client) Summarize(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, "", []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		generationConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 512})
}

// HealthPing checks the model endpoint is reachable.
func (c *Client) HealthPing(ctx context.Context) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/v1beta/models/%s", c.modelName))
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("genai: health status %d", resp.StatusCode())
	}
	return nil
}
