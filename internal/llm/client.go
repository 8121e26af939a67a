package llm

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3"
)

// Complete sends one prompt to the text model and returns the reply.
func (c *implClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug(ctx, "Completion request: model=%s, prompt=%d chars", c.model, len(prompt))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:     openai.ChatModel(c.model),
		MaxTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("completion call: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// CompleteVision sends one PNG image plus an instruction to the vision
// model and returns the reply.
func (c *implClient) CompleteVision(ctx context.Context, pngImage []byte, instruction string) (string, error) {
	c.logger.Debug(ctx, "Vision request: model=%s, image=%d bytes", c.visionModel, len(pngImage))

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngImage)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
				openai.TextContentPart(instruction),
			}),
		},
		Model:     openai.ChatModel(c.visionModel),
		MaxTokens: openai.Int(c.visionMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("vision call: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("vision completion returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
