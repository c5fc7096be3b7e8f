// Package ollama provides Ollama integration for local AI inference.
// Implements the AdvisorAI interface for candidate recommendation generation.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/patient"
)

// Config holds the connection settings for the Ollama backend
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client implements the AdvisorAI interface using the Ollama API
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new Ollama client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model := cfg.Model
	if model == "" {
		model = "llama3.2:3b"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	logger.Info("Ollama client initialized",
		zap.String("base_url", baseURL),
		zap.String("model", model),
		zap.Duration("timeout", timeout))

	return &Client{
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("ollama-client"),
	}
}

// Ollama API structures
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string                 `json:"model"`
	Messages []ChatMessage          `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type ChatResponse struct {
	Model   string      `json:"model"`
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// HealthCheck verifies the Ollama service is available
func (c *Client) HealthCheck(ctx context.Context) error {
	endpoint := c.baseURL + "/api/tags"

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama health check failed with status %d", resp.StatusCode)
	}

	c.logger.Debug("Ollama health check passed")
	return nil
}

// GenerateCandidate asks the model for a candidate recommendation matching
// the recommendation schema. The raw JSON object is returned unvalidated.
func (c *Client) GenerateCandidate(ctx context.Context, profile *patient.Profile, foods catalog.RegionFoods) ([]byte, error) {
	systemPrompt := buildSystemPrompt()
	userPrompt := buildUserPrompt(profile, foods)

	response, err := c.generateChatCompletion(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("ollama chat completion failed: %w", err)
	}

	payload, err := extractJSON(response)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("candidate recommendation generated",
		zap.Int("payload_bytes", len(payload)))

	return payload, nil
}

// buildSystemPrompt creates the system prompt for candidate generation
func buildSystemPrompt() string {
	return `You are a dietary advisor for patients in Kenya. Suggest a daily meal plan drawn only from the foods listed by the user.

CRITICAL: Respond with ONLY a valid JSON object in this exact format:
{
  "meal_plan": {
    "breakfast": {"grains": [], "proteins": [], "vegetables": [], "fruits": []},
    "lunch": {"grains": [], "proteins": [], "vegetables": [], "legumes": []},
    "dinner": {"grains": [], "proteins": [], "vegetables": []},
    "snacks": {"fruits": [], "nuts": []}
  },
  "preferred_foods": {"high_fiber": [], "low_sodium": [], "lean_proteins": [], "complex_carbs": []},
  "foods_to_limit": {"high_gi_foods": [], "high_sodium_foods": [], "high_fat_foods": []},
  "portion_guidelines": {"grains": "1/2 cup cooked"},
  "meal_timing": {"frequency": "", "timing": "", "breakfast": "", "dinner": ""}
}

Remember: Respond with ONLY valid JSON. No additional text, explanations, or formatting.`
}

// buildUserPrompt serializes the profile and the regional foods into the
// user message. Categories are emitted in a stable order so identical
// requests produce identical prompts.
func buildUserPrompt(profile *patient.Profile, foods catalog.RegionFoods) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Patient profile:\n")
	fmt.Fprintf(&b, "- BMI: %.2f\n", profile.BMI())
	fmt.Fprintf(&b, "- Health category: %s\n", profile.HealthCategory())
	fmt.Fprintf(&b, "- Diabetes status: %s\n", profile.DiabetesStatus())
	fmt.Fprintf(&b, "- Daily calorie needs: %d\n", profile.CalorieNeeds())
	if factors := profile.RiskFactors(); len(factors) > 0 {
		names := make([]string, len(factors))
		for i, factor := range factors {
			names[i] = string(factor)
		}
		fmt.Fprintf(&b, "- Risk factors: %s\n", strings.Join(names, ", "))
	}

	r := profile.Restrictions()
	var restrictions []string
	if r.LimitSugar {
		restrictions = append(restrictions, "limit sugar")
	}
	if r.LimitSodium {
		restrictions = append(restrictions, "limit sodium")
	}
	if r.PortionControl {
		restrictions = append(restrictions, "portion control")
	}
	if r.IncreaseFiber {
		restrictions = append(restrictions, "increase fiber")
	}
	if r.LimitSaturatedFat {
		restrictions = append(restrictions, "limit saturated fat")
	}
	if len(restrictions) > 0 {
		fmt.Fprintf(&b, "- Dietary restrictions: %s\n", strings.Join(restrictions, ", "))
	}

	fmt.Fprintf(&b, "\nAvailable regional foods:\n")
	categories := make([]string, 0, len(foods))
	for category := range foods {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: %s\n", category, strings.Join(foods[catalog.Category(category)], ", "))
	}

	return b.String()
}

// generateChatCompletion uses Ollama's chat API for structured responses
func (c *Client) generateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	endpoint := c.baseURL + "/api/chat"

	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
		Options: map[string]interface{}{
			"temperature": 0.7,
			"num_predict": 2000,
			"num_ctx":     4096,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !chatResp.Done {
		return "", fmt.Errorf("incomplete response from ollama")
	}

	return chatResp.Message.Content, nil
}

// extractJSON finds the JSON object between braces. Models sometimes wrap
// the payload in extra prose or code fences.
func extractJSON(response string) ([]byte, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")

	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	return []byte(response[start : end+1]), nil
}
