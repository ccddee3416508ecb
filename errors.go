package pdfgen

import (
	"errors"
	"fmt"

	"github.com/docstream/pdfgen/observability"
)

// Error categories. Every error the library returns wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEncoding        = errors.New("invalid encoding")
	ErrIO              = errors.New("i/o failure")
	ErrInternal        = errors.New("internal error")
)

// Formatted messages in the last-error slot are capped at this length.
const maxErrLen = 127

// setErr caches err in the document's last-error slot and returns it.
// Failures are not sticky: later operations proceed normally, and callers
// inspect either return values or GetErr.
func (d *Document) setErr(err error) error {
	if err == nil {
		return nil
	}
	d.lastErr = err
	d.logger.Error("pdfgen operation failed", observability.Error("err", err))
	return err
}

func (d *Document) errorf(category error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxErrLen {
		msg = msg[:maxErrLen]
	}
	return d.setErr(fmt.Errorf("%s: %w", msg, category))
}

// GetErr returns the most recently recorded error, or nil.
func (d *Document) GetErr() error { return d.lastErr }

// ClearErr empties the last-error slot.
func (d *Document) ClearErr() { d.lastErr = nil }
