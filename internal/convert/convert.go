// Package convert turns a delimited text table into a Markdown table.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dev-shimada/csv2md/internal/config"
	"github.com/dev-shimada/csv2md/internal/csv"
	"github.com/dev-shimada/csv2md/internal/markdown"
	"github.com/dev-shimada/csv2md/internal/source"
	"github.com/natefinch/atomic"
)

type Opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type Converter struct {
	opts     config.Options
	opener   Opener
	renderer markdown.Renderer
	stdout   io.Writer
}

// New returns a Converter that reads opts.Path through opener and writes to
// opts.Output, or to stdout when no output file is set.
func New(opts config.Options, opener Opener, stdout io.Writer) *Converter {
	return &Converter{
		opts:     opts,
		opener:   opener,
		renderer: markdown.New(opts.Aligned),
		stdout:   stdout,
	}
}

// Run validates the options, reads the whole input and writes the table.
// Nothing is written for an empty input or on error.
func (c *Converter) Run(ctx context.Context) error {
	if err := c.opts.Validate(); err != nil {
		return err
	}

	table, err := c.read(ctx)
	if errors.Is(err, csv.ErrEmpty) {
		slog.Debug(fmt.Sprintf("%s is empty, nothing to write", c.opts.Path))
		return nil
	}
	if err != nil {
		return err
	}
	slog.Debug(fmt.Sprintf("read %d rows, %d columns", len(table.Body), table.NumColumns()))

	var buf bytes.Buffer
	if err := c.renderer.Render(&buf, table); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return c.write(&buf)
}

func (c *Converter) read(ctx context.Context) (*csv.Table, error) {
	rc, err := c.opener.Open(ctx, c.opts.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	rows, err := csv.Read(rc, c.opts.Sep)
	if err != nil {
		return nil, &source.IOError{Op: "read", Path: c.opts.Path, Err: err}
	}
	return csv.NewTable(rows, c.opts.Header, c.opts.Columns)
}

func (c *Converter) write(buf *bytes.Buffer) error {
	if c.opts.Output == "" {
		if _, err := buf.WriteTo(c.stdout); err != nil {
			return &source.IOError{Op: "write", Path: "stdout", Err: err}
		}
		return nil
	}
	if err := atomic.WriteFile(c.opts.Output, buf); err != nil {
		return &source.IOError{Op: "write", Path: c.opts.Output, Err: err}
	}
	slog.Debug(fmt.Sprintf("wrote %s", c.opts.Output))
	return nil
}
