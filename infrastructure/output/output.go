// Package output provides the sinks the assembled changelog is written to.
package output

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/retrolabs/retrolog/domain"
)

// FileSink writes the changelog to a file, overwriting any prior content.
type FileSink struct {
	path string
}

var _ domain.Sink = (*FileSink)(nil)

// NewFileSink creates a sink writing to the given path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write stores the document on disk.
func (s *FileSink) Write(doc string) error {
	if err := os.WriteFile(s.path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing changelog to %s: %w", s.path, err)
	}
	logger.Infof("Wrote changelog to %s", s.path)
	return nil
}

// StdoutSink prints the changelog to standard output, used for dry runs.
type StdoutSink struct{}

var _ domain.Sink = (*StdoutSink)(nil)

// NewStdoutSink creates a sink printing to stdout.
func NewStdoutSink() *StdoutSink {
	return &StdoutSink{}
}

// Write prints the document.
func (s *StdoutSink) Write(doc string) error {
	_, err := fmt.Print(doc)
	return err
}
