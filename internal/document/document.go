// Package document turns uploaded files into the opaque values the session
// store keeps: a text body for syllabus and resume uploads, and a data URL
// for the profile picture.
//
// By default a file is read as text whatever its extension, exactly like a
// browser FileReader.readAsText. Extraction of PDF and DOCX text can be
// switched on with ModeExtract; anything it cannot handle falls back to the
// raw text reading.
package document

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Mode selects how upload bytes become text.
type Mode int

const (
	ModeRaw Mode = iota
	ModeExtract
)

// ErrNotImage is returned by PictureRef for data that is not an image.
var ErrNotImage = errors.New("file is not an image")

// Decoder converts uploaded file bytes into document text.
type Decoder struct {
	Mode Mode
}

// NewDecoder returns a Decoder that extracts PDF/DOCX text when extract is
// true and reads every file as plain text otherwise.
func NewDecoder(extract bool) *Decoder {
	if extract {
		return &Decoder{Mode: ModeExtract}
	}
	return &Decoder{Mode: ModeRaw}
}

// Text returns the text body of the named file.
func (d *Decoder) Text(fileName string, data []byte) string {
	if d != nil && d.Mode == ModeExtract {
		var (
			text string
			err  error
		)
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".pdf":
			text, err = extractPDF(data)
		case ".docx":
			text, err = extractDOCX(data)
		default:
			return RawText(data)
		}
		if err == nil && text != "" {
			return text
		}
	}
	return RawText(data)
}

// RawText decodes data as UTF-8, dropping a leading byte order mark and
// replacing invalid sequences with U+FFFD.
func RawText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return strings.ToValidUTF8(string(data), "�")
}

// PictureRef returns data as a data URL, provided it is an image.
func PictureRef(data []byte) (string, error) {
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime.String())
	}
	// Drop parameters such as "; charset=utf-8" that SVG detection adds.
	base, _, _ := strings.Cut(mime.String(), ";")
	return "data:" + base + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("extractPDF: malformed document: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extractPDF: open: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return normalize(b.String()), nil
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extractDOCX: open: %w", err)
	}
	defer doc.Close()

	// GetContent returns the WordprocessingML body; keep paragraph breaks
	// and drop the markup.
	s := doc.Editable().GetContent()
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")
	s = xmlTag.ReplaceAllString(s, "")
	return normalize(xmlEntities.Replace(s)), nil
}

// normalize trims each line and collapses runs of blank lines to one.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	blank := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
			b.WriteString("\n")
			continue
		}
		blank = 0
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
