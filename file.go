// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A MissingError reports that the Markdown file to convert does not exist.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string { return "Missing " + e.Path }

func (e *MissingError) Unwrap() error { return fs.ErrNotExist }

// ReadDocument reads all of r and parses it as a [Document].
//
// The input is decoded as UTF-8, with invalid bytes replaced by U+FFFD,
// unless it begins with a byte order mark, which selects UTF-8 or UTF-16.
// The byte order mark itself is dropped.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}

// ConvertFile converts the Markdown file src to HTML, writing the result to dst.
// If src does not exist, ConvertFile returns a *[MissingError]
// and does not create dst.
func ConvertFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingError{Path: src}
		}
		return err
	}
	doc, err := ReadDocument(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := WriteHTML(out, doc); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return out.Close()
}
