// Package docx converts plain text into a minimal DOCX (OOXML) package.
//
// The conversion is intentionally simple: blank-line-delimited chunks become
// paragraphs, newline-delimited lines within a chunk become runs separated by
// line breaks. Empty input still yields one empty paragraph so the document
// opens cleanly.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relationshipsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

var paragraphDelimiter = regexp.MustCompile(`\n\s*\n`)

// Encode converts text into a DOCX file buffer.
func Encode(text string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relationshipsXML,
		"word/document.xml":   documentXML(text),
	}
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := f.Write([]byte(parts[name])); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func documentXML(text string) string {
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		// Word rejects a body with no paragraph at all.
		paragraphs = [][]string{{""}}
	}
	for _, lines := range paragraphs {
		writeParagraph(&body, lines)
	}

	body.WriteString(`<w:sectPr/></w:body></w:document>`)
	return body.String()
}

// splitParagraphs breaks text on blank lines, then each paragraph into its
// non-empty trimmed lines.
func splitParagraphs(text string) [][]string {
	var paragraphs [][]string
	for _, chunk := range paragraphDelimiter.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			lines = []string{chunk}
		}
		paragraphs = append(paragraphs, lines)
	}
	return paragraphs
}

func writeParagraph(body *strings.Builder, lines []string) {
	body.WriteString(`<w:p><w:pPr><w:spacing w:after="200"/></w:pPr>`)
	for i, line := range lines {
		body.WriteString(`<w:r>`)
		if i > 0 {
			body.WriteString(`<w:br/>`)
		}
		body.WriteString(`<w:t xml:space="preserve">`)
		body.WriteString(escape(line))
		body.WriteString(`</w:t></w:r>`)
	}
	body.WriteString(`</w:p>`)
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}
