package outline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yuyakanda/slidecast/internal/llm"
	"github.com/yuyakanda/slidecast/pkg/lecture"
)

func (s *implService) Generate(ctx context.Context, lectureText string, detail lecture.DetailLevel) (string, error) {
	instruction := detailInstructionStandard
	if detail == lecture.DetailDetailed {
		instruction = detailInstructionDetailed
	}

	s.logger.Info(ctx, "Generating outline: detail=%s, input=%d chars", detail, len(lectureText))

	reply, err := s.llm.Complete(ctx, fmt.Sprintf(outlinePromptTemplate, instruction, lectureText))
	if err != nil {
		return "", fmt.Errorf("generate outline: %w", err)
	}

	result := llm.StripFence(reply)
	s.logger.Info(ctx, "Outline generated: %d chars", len(result))
	return result, nil
}

func (s *implService) ToStructure(ctx context.Context, outlineText string) (*lecture.Structure, error) {
	s.logger.Info(ctx, "Converting outline to structure: %d chars", len(outlineText))

	reply, err := s.llm.Complete(ctx, fmt.Sprintf(convertPromptTemplate, outlineText))
	if err != nil {
		return nil, fmt.Errorf("convert outline: %w", err)
	}

	cleaned := llm.StripFence(reply)
	var st lecture.Structure
	if err := json.Unmarshal([]byte(cleaned), &st); err != nil {
		return nil, fmt.Errorf("parse structure reply: %w\nreply was:\n%s", err, cleaned)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("model returned an incomplete structure: %w", err)
	}

	s.logger.Info(ctx, "Structure ready: title=%q, agenda=%d, content slides=%d",
		st.Title, len(st.Agenda), st.ContentSlideCount())
	return &st, nil
}
