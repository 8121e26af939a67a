package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuyakanda/slidecast/internal/pptx"
	"github.com/yuyakanda/slidecast/pkg/lecture"
)

// Layout positions in the lecture template family.
const (
	layoutTitle   = 0
	layoutContent = 1
	layoutClosing = 2
)

const agendaHeader = "アジェンダ"

func (b *implBuilder) Build(ctx context.Context, st *lecture.Structure, templatePath, outputPath string) (*Summary, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	p, err := pptx.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	if p.LayoutCount() < 3 {
		return nil, fmt.Errorf("template has %d layouts, need title, content and closing", p.LayoutCount())
	}

	b.logger.Info(ctx, "Building deck: title=%q, agenda=%d", st.Title, len(st.Agenda))

	if err := p.AddSlide(layoutTitle, map[pptx.Slot]string{
		pptx.SlotHeader: st.Title,
	}); err != nil {
		return nil, fmt.Errorf("title slide: %w", err)
	}

	if err := p.AddSlide(layoutContent, map[pptx.Slot]string{
		pptx.SlotHeader: agendaHeader,
		pptx.SlotBody:   agendaBody(st.Agenda),
	}); err != nil {
		return nil, fmt.Errorf("agenda slide: %w", err)
	}

	summary := &Summary{Title: st.Title}
	for i, item := range st.Agenda {
		bodies, ok := st.Main[item]
		if !ok {
			b.logger.Warn(ctx, "Agenda item %q has no content, skipping", item)
			continue
		}
		header := fmt.Sprintf("%d. %s", i+1, item)
		for _, body := range bodies {
			if err := p.AddSlide(layoutContent, map[pptx.Slot]string{
				pptx.SlotHeader: header,
				pptx.SlotBody:   body,
			}); err != nil {
				return nil, fmt.Errorf("content slide for %q: %w", item, err)
			}
		}
		summary.PerAgenda = append(summary.PerAgenda, AgendaCount{
			Index:  i + 1,
			Title:  item,
			Slides: len(bodies),
		})
	}

	if err := p.AddSlide(layoutClosing, nil); err != nil {
		return nil, fmt.Errorf("closing slide: %w", err)
	}

	if err := p.Save(outputPath); err != nil {
		return nil, err
	}

	summary.TotalSlides = p.SlideCount()
	b.logger.Info(ctx, "Deck built: %d slides -> %s", summary.TotalSlides, outputPath)
	return summary, nil
}

// agendaBody renders the agenda slide body, one numbered line per item.
func agendaBody(agenda []string) string {
	lines := make([]string, len(agenda))
	for i, item := range agenda {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
