package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DeepSeek API (OpenAI-совместимый)
	DeepSeekAPIURL = "https://api.deepseek.com/chat/completions"
	DefaultModel   = "deepseek-chat"
)

// ErrUnavailable возвращается, когда клиент не сконфигурирован
// (нет API-ключа). Бот в этом случае прячет AI-функции.
var ErrUnavailable = errors.New("ai: клиент не сконфигурирован")

// MuscleGroups группы мышц для генерации: ключ callback-данных и
// русское название.
var MuscleGroups = map[string]string{
	"chest":     "грудь",
	"back":      "спина",
	"shoulders": "плечи",
	"biceps":    "бицепс",
	"triceps":   "трицепс",
	"legs":      "ноги",
	"abs":       "пресс",
	"glutes":    "ягодицы",
}

// Client - клиент для работы с DeepSeek API
type Client struct {
	apiKey     string
	httpClient *http.Client
	model      string
}

// Message - сообщение для чата
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest - запрос к API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// ChatResponse - ответ от API
type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewClient создаёт новый клиент DeepSeek
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		model: DefaultModel,
	}
}

// SetModel устанавливает модель
func (c *Client) SetModel(model string) {
	c.model = model
}

// Chat отправляет сообщения и получает ответ
func (c *Client) Chat(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	if c == nil || c.apiKey == "" {
		return "", ErrUnavailable
	}

	req := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, DeepSeekAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ошибка запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("ошибка API: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("пустой ответ от API")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// GenerateExercises генерирует упражнения для выбранных групп мышц.
// muscles - русские названия (грудь, спина, бицепс...).
func (c *Client) GenerateExercises(ctx context.Context, muscles []string, count int) (string, error) {
	if count <= 0 {
		count = 5
	}

	prompt := fmt.Sprintf(`Составь %d упражнений для тренировки: %s.

Формат ответа - только список упражнений:
1. Название упражнения - краткое описание техники (1 предложение)
2. ...

Без вступления и заключения. Только упражнения.`, count, strings.Join(muscles, ", "))

	messages := []Message{
		{Role: "system", Content: "Ты фитнес-тренер. Отвечай кратко и по делу на русском языке."},
		{Role: "user", Content: prompt},
	}

	return c.Chat(ctx, messages, 0.7, 500)
}
