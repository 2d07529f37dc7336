package renderer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/minutesflow/minutes-flow/internal/minutes"
)

const (
	fontName    = "Yu Gothic"
	fontSize    = 11
	headingSize = 13
	titleSize   = 16
)

// WriteDocx renders the structured minutes text into a styled Word document.
// It understands the same wire contract the models are prompted to emit:
// "##" / "N. " headings, ・•-* bullets, 【】 emphasis spans.
func WriteDocx(d minutes.Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), d.Title, true, titleSize)
	doc.AddParagraph("")

	for _, line := range strings.Split(minutes.NormalizeEmphasis(d.Text), "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			doc.AddParagraph("")
		case minutes.IsHorizontalRule(trimmed):
			continue
		case strings.HasPrefix(trimmed, "##"):
			heading := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			addStyledRun(doc.AddParagraph(""), heading, true, headingSize)
		case minutes.IsNumberedHeading(trimmed):
			addStyledRun(doc.AddParagraph(""), trimmed, true, headingSize)
		case minutes.HasBullet(trimmed):
			addStyledRun(doc.AddParagraph(""), "• "+minutes.StripBullet(trimmed), false, fontSize)
		case minutes.IsEmphasisOnly(trimmed):
			addStyledRun(doc.AddParagraph(""), trimmed, true, fontSize)
		default:
			addStyledRun(doc.AddParagraph(""), trimmed, false, fontSize)
		}
	}

	doc.AddParagraph("")
	footer := fmt.Sprintf("作成日時: %s", time.Now().Format("2006年01月02日 15:04"))
	addStyledRun(doc.AddParagraph(""), footer, false, 8)

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// WriteText writes the plain structured minutes alongside the Word file.
func WriteText(d minutes.Document, outputPath string) error {
	content := fmt.Sprintf("%s\n%s\n\n%s\n",
		d.Title,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(d.Text),
	)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write text output: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
