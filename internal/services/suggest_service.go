package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"links-backend/internal/config"
	"links-backend/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// SuggestService 调用大模型为链接生成描述和标签。
// 只服务于表单填写，导入对账不依赖它。
type SuggestService struct {
	client *openai.Client
	model  string
}

func NewSuggestService(cfg config.AIConfig) *SuggestService {
	if cfg.APIKey == "" {
		return &SuggestService{}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &SuggestService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (s *SuggestService) Suggest(ctx context.Context, url, name string) (*models.AISuggestion, error) {
	if s.client == nil {
		return nil, fmt.Errorf("未配置 AI API 密钥")
	}

	prompt := fmt.Sprintf(
		"为下面的链接给出一句不超过 100 字的描述和 5 个合适的标签：\n链接：%s\n", url)
	if name != "" {
		prompt += fmt.Sprintf("名称：%s\n", name)
	}
	prompt += "\n只用 JSON 回答：\n{\n  \"description\": \"简短描述\",\n  \"tags\": [\"标签1\", \"标签2\", \"标签3\", \"标签4\", \"标签5\"]\n}"

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("AI 服务调用失败: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("AI 服务没有返回结果")
	}

	suggestion, err := parseSuggestion(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return suggestion, nil
}

// parseSuggestion 从模型回复中截取 JSON 对象。
// 模型经常在 JSON 前后加说明文字或代码块标记。
func parseSuggestion(text string) (*models.AISuggestion, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("回复中没有找到有效的 JSON")
	}

	var suggestion models.AISuggestion
	if err := json.Unmarshal([]byte(text[start:end+1]), &suggestion); err != nil {
		return nil, fmt.Errorf("解析 AI 回复失败: %w", err)
	}

	if suggestion.Tags == nil {
		suggestion.Tags = []string{}
	}
	return &suggestion, nil
}
