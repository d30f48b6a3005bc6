package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const openRouterAPIURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterClient is a thin chat-completions client shared by the AI-backed
// services (recipe chef, meal analyzer, routine importer).
type OpenRouterClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenRouterClient(apiKey, model string) *OpenRouterClient {
	return &OpenRouterClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends a system+user text prompt and returns the raw model answer.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.send(ctx, map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": 0.1,
	})
}

// ChatMessage is one prior turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// CompleteChat sends a multi-turn conversation and returns the model's next
// answer. Unknown history roles are treated as user turns.
func (c *OpenRouterClient) CompleteChat(ctx context.Context, systemPrompt string, history []ChatMessage, question string) (string, error) {
	messages := make([]map[string]interface{}, 0, len(history)+2)
	messages = append(messages, map[string]interface{}{"role": "system", "content": systemPrompt})
	for _, msg := range history {
		role := msg.Role
		if role != "assistant" {
			role = "user"
		}
		messages = append(messages, map[string]interface{}{"role": role, "content": msg.Content})
	}
	messages = append(messages, map[string]interface{}{"role": "user", "content": question})

	return c.send(ctx, map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"temperature": 0.7,
	})
}

// CompleteWithImage sends a prompt plus an inline image (vision models).
func (c *OpenRouterClient) CompleteWithImage(ctx context.Context, systemPrompt, userPrompt string, imageData []byte) (string, error) {
	imageType := detectImageType(imageData)
	imageBase64 := base64.StdEncoding.EncodeToString(imageData)

	return c.send(ctx, map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{"role": "system", "content": systemPrompt},
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": userPrompt},
					{
						"type": "image_url",
						"image_url": map[string]string{
							"url": fmt.Sprintf("data:%s;base64,%s", imageType, imageBase64),
						},
					},
				},
			},
		},
		"temperature": 0.1,
	})
}

func (c *OpenRouterClient) send(ctx context.Context, requestBody map[string]interface{}) (string, error) {
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openRouterAPIURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "GymMax")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if apiResponse.Error != nil {
		return "", fmt.Errorf("openrouter error: %s (code: %d)", apiResponse.Error.Message, apiResponse.Error.Code)
	}
	if len(apiResponse.Choices) == 0 {
		return "", fmt.Errorf("no response from AI model")
	}
	return apiResponse.Choices[0].Message.Content, nil
}

// decodeModelJSON parses the model answer into dest, tolerating prose or
// markdown fences around the JSON object.
func decodeModelJSON(content string, dest interface{}) error {
	if err := json.Unmarshal([]byte(content), dest); err == nil {
		return nil
	}

	start := bytes.IndexByte([]byte(content), '{')
	end := bytes.LastIndexByte([]byte(content), '}')
	if start == -1 || end == -1 || start >= end {
		return fmt.Errorf("no JSON object found in model answer")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), dest); err != nil {
		return fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}
	return nil
}

// detectImageType detects the MIME type of an image from its header bytes
func detectImageType(data []byte) string {
	if len(data) < 12 {
		return "image/jpeg"
	}
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg"
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
		return "image/gif"
	}
	if data[0] == 0x52 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x46 &&
		data[8] == 0x57 && data[9] == 0x45 && data[10] == 0x42 && data[11] == 0x50 {
		return "image/webp"
	}
	return "image/jpeg"
}
