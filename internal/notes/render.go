package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// convertToPDF renders the deck to PDF with LibreOffice. The PDF lands
// in outDir under the deck's basename.
func (g *implGenerator) convertToPDF(ctx context.Context, pptxPath, outDir string) (string, error) {
	g.logger.Info(ctx, "Converting deck to PDF: %s", pptxPath)

	// LibreOffice arguments
	// --headless: no UI
	// --convert-to pdf: target format
	// --outdir: destination directory
	args := []string{
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		pptxPath,
	}
	if _, err := g.executor.Execute(ctx, g.cfg.Tools.LibreOffice, args...); err != nil {
		return "", fmt.Errorf("libreoffice convert: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(pptxPath), filepath.Ext(pptxPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("libreoffice produced no PDF at %s: %w", pdfPath, err)
	}

	g.logger.Info(ctx, "PDF ready: %s", pdfPath)
	return pdfPath, nil
}

// renderPages rasterizes every PDF page to PNG and returns the image
// paths in page order. pdftoppm zero-pads page numbers, so the lexical
// sort is the page order.
func (g *implGenerator) renderPages(ctx context.Context, pdfPath, outDir string) ([]string, error) {
	g.logger.Info(ctx, "Rendering PDF pages at %d dpi: %s", g.cfg.Tools.RenderDPI, pdfPath)

	prefix := filepath.Join(outDir, "page")
	// pdftoppm arguments
	// -r: render resolution in DPI
	// -png: output format
	args := []string{
		"-r", strconv.Itoa(g.cfg.Tools.RenderDPI),
		"-png",
		pdfPath,
		prefix,
	}
	if _, err := g.executor.Execute(ctx, g.cfg.Tools.PDFToPPM, args...); err != nil {
		return nil, fmt.Errorf("pdftoppm render: %w", err)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("list rendered pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages from %s", pdfPath)
	}
	sort.Strings(pages)

	g.logger.Info(ctx, "Rendered %d pages", len(pages))
	return pages, nil
}
