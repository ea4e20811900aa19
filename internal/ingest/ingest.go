// Package ingest reads uploaded result files into raw records and writes the
// dataset back out in the same three-column layout.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

var (
	ErrEmptyFile = errors.New("empty file")

	columns = []string{"student_id", "section", "is_correct"}
)

// Format is the encoding of an upload.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Parse reads r as the given format. An empty format sniffs the first
// non-space byte: '[' or '{' means JSON, anything else CSV.
func Parse(r io.Reader, format Format) ([]record.Raw, error) {
	br := bufio.NewReader(r)
	if format == "" {
		var err error
		format, err = sniff(br)
		if err != nil {
			return nil, err
		}
	}
	switch format {
	case FormatCSV:
		return ParseCSV(br)
	case FormatJSON:
		return ParseJSON(br)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// FormatOf guesses a format from a file name or media type. It returns ""
// when neither says, which makes Parse sniff the content.
func FormatOf(filename, contentType string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	}
	mt, _, _ := mime.ParseMediaType(contentType)
	switch mt {
	case "text/csv", "application/csv":
		return FormatCSV
	case "application/json":
		return FormatJSON
	}
	return ""
}

func sniff(br *bufio.Reader) (Format, error) {
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return "", ErrEmptyFile
		}
		if err != nil {
			return "", err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
			continue
		case '[', '{':
			return FormatJSON, nil
		}
		return FormatCSV, nil
	}
}

// ParseCSV reads a header-indexed CSV. Column names are case-insensitive and
// extra columns are ignored. Boolean text is trimmed and lower-cased so
// files written as True/False load the same as true/false.
func ParseCSV(r io.Reader) ([]record.Raw, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range hdr {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, k := range columns {
		if _, ok := idx[k]; !ok {
			return nil, errors.New("missing column: " + k)
		}
	}

	var out []record.Raw
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		get := func(k string) string {
			i := idx[k]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		out = append(out, record.Raw{
			StudentID: get("student_id"),
			Section:   get("section"),
			IsCorrect: strings.ToLower(get("is_correct")),
		})
	}
	return out, nil
}

// ParseJSON reads an array of {student_id, section, is_correct} objects.
// A single object is accepted too. Numeric student ids are kept verbatim.
func ParseJSON(r io.Reader) ([]record.Raw, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if data[0] == '{' {
		data = append(append([]byte{'['}, data...), ']')
	}

	var items []struct {
		StudentID json.RawMessage `json:"student_id"`
		Section   string          `json:"section"`
		IsCorrect any             `json:"is_correct"`
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	out := make([]record.Raw, len(items))
	for i, it := range items {
		out[i] = record.Raw{
			StudentID: studentID(it.StudentID),
			Section:   it.Section,
			IsCorrect: it.IsCorrect,
		}
	}
	return out, nil
}

func studentID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// WriteCSV writes records with a student_id,section,is_correct header.
func WriteCSV(w io.Writer, records []record.QuestionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, r := range records {
		correct := "false"
		if r.IsCorrect {
			correct = "true"
		}
		if err := cw.Write([]string{r.StudentID, string(r.Section), correct}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
