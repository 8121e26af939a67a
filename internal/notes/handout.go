package notes

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	scriptFontName = "Yu Gothic"
	scriptFontSize = 12

	titleFontSize   = 16
	headingFontSize = 14
)

// WriteScript renders the narration list as a docx handout: the
// lecture title, then a heading and the script per slide. Useful for
// rehearsing and for reviewing narration before the video stage.
func WriteScript(title string, narrations []string, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledText(doc.AddParagraph(""), title, true, titleFontSize)

	for i, narration := range narrations {
		doc.AddParagraph("")
		addStyledText(doc.AddParagraph(""), fmt.Sprintf("スライド %d", i+1), true, headingFontSize)
		for _, line := range strings.Split(narration, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			addStyledText(doc.AddParagraph(""), line, false, scriptFontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledText(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(scriptFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
