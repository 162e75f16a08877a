package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"pricing-dashboard/utils"
)

// PDFExporter prints HTML documents to PDF files with headless Chrome.
type PDFExporter struct {
	chromeBin string
	timeout   time.Duration
	logger    *utils.Logger
}

// NewPDFExporter creates an exporter. chromeBin may be empty to auto-detect
// the browser.
func NewPDFExporter(chromeBin string, timeout time.Duration, logger *utils.Logger) *PDFExporter {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &PDFExporter{
		chromeBin: findChromeBinary(chromeBin),
		timeout:   timeout,
		logger:    logger,
	}
}

// Export loads html into a blank page and writes the printed PDF to path.
func (e *PDFExporter) Export(ctx context.Context, html []byte, path string) error {
	start := time.Now()
	e.logger.Info("[pdf] Using browser binary: %q", e.chromeBin)

	ctx, cancelTimeout := context.WithTimeout(ctx, e.timeout)
	defer cancelTimeout()

	tabCtx, cancel := newBrowser(ctx, e.chromeBin)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("print: %w", err)
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("pdf: render: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("pdf: create output dir: %w", err)
	}
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return fmt.Errorf("pdf: write %q: %w", path, err)
	}

	e.logger.Duration(start, "[pdf] Wrote %s (%d bytes)", path, len(pdf))
	return nil
}
