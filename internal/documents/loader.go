package documents

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	userAgent       = "spigell/resume-tailor"
	acceptEncoding  = "gzip"
	defaultTimeout  = 15 * time.Second
	maxDocumentSize = 10 << 20

	// Stdin is the source name that reads from standard input.
	Stdin = "-"
)

type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// Document is raw text ready for extraction.
type Document struct {
	Source string
	Format Format
	Text   string
}

// Loader reads career documents from files, URLs or stdin.
type Loader struct {
	HTTPClient *http.Client
	UserAgent  string
	Stdin      io.Reader
	logger     *zap.Logger
}

func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
		Stdin:     os.Stdin,
		logger:    logger,
	}
}

// Load resolves src into text. An empty result is an error, so callers never
// submit blank input for extraction.
func (l *Loader) Load(ctx context.Context, src string) (*Document, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, errors.New("document source is empty")
	}

	doc, err := l.load(ctx, src)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(doc.Text) == "" {
		return nil, fmt.Errorf("%s: no text content found", src)
	}

	l.logger.Debug("document loaded",
		zap.String("source", src),
		zap.String("format", string(doc.Format)),
		zap.Int("length", len(doc.Text)),
	)
	return doc, nil
}

func (l *Loader) load(ctx context.Context, src string) (*Document, error) {
	switch {
	case src == Stdin:
		data, err := io.ReadAll(io.LimitReader(l.Stdin, maxDocumentSize))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &Document{Source: src, Format: FormatText, Text: string(data)}, nil
	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		return l.fetch(ctx, src)
	}

	switch strings.ToLower(filepath.Ext(src)) {
	case ".pdf":
		text, err := pdfFileText(src)
		if err != nil {
			return nil, err
		}
		return &Document{Source: src, Format: FormatPDF, Text: text}, nil
	case ".html", ".htm":
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		text, err := htmlText(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		return &Document{Source: src, Format: FormatHTML, Text: text}, nil
	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, err
		}
		return &Document{Source: src, Format: FormatText, Text: string(data)}, nil
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.UserAgent)
	req.Header.Set("Accept-Encoding", acceptEncoding)

	l.logger.Debug("fetching document", zap.String("url", url))

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: bad status: %s", url, resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(io.LimitReader(body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.HasPrefix(contentType, "application/pdf"):
		text, err := pdfText(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		return &Document{Source: url, Format: FormatPDF, Text: text}, nil
	case strings.HasPrefix(contentType, "text/plain"):
		return &Document{Source: url, Format: FormatText, Text: string(data)}, nil
	default:
		text, err := htmlText(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		return &Document{Source: url, Format: FormatHTML, Text: text}, nil
	}
}
