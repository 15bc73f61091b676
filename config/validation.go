// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/katalvlaran/strassen/ring"
)

// ValidationError is one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid setting of a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}

	return "configuration validation failed:\n  - " + strings.Join(msgs, "\n  - ")
}

// Has reports whether field is among the errors.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}

	return false
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "console": true}
	validOutputs = map[string]bool{"stderr": true, "stdout": true, "file": true, "both": true}
)

// Validate checks every section and returns ValidationErrors, or nil.
//
// The group size is only required to be positive here; the protocol itself
// rejects groups that are not exactly seven with cluster.ErrTopology.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Ring.Modulus == 0 || c.Ring.Modulus > ring.MaxModulus {
		add("ring.modulus", "must be in [1, %d], got %d", ring.MaxModulus, c.Ring.Modulus)
	}
	if c.Matrix.Order < 2 || c.Matrix.Order&(c.Matrix.Order-1) != 0 {
		add("matrix.order", "must be a power of two >= 2, got %d", c.Matrix.Order)
	}
	if c.Cluster.Size < 1 {
		add("cluster.size", "must be positive, got %d", c.Cluster.Size)
	}
	if _, _, err := net.SplitHostPort(c.Cluster.Address); err != nil {
		add("cluster.address", "expected host:port or :port: %v", err)
	}
	if c.Cluster.DialTimeout < 0 {
		add("cluster.dial_timeout", "must be non-negative")
	}
	if c.Protocol.CollectTimeout < 0 {
		add("protocol.collect_timeout", "must be non-negative")
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		add("log.level", "invalid level %q, must be one of: debug, info, warn, error", c.Log.Level)
	}
	if !validFormats[c.Log.Format] {
		add("log.format", "invalid format %q, must be json or console", c.Log.Format)
	}
	if !validOutputs[c.Log.Output] {
		add("log.output", "invalid output %q, must be one of: stderr, stdout, file, both", c.Log.Output)
	}
	if (c.Log.Output == "file" || c.Log.Output == "both") && c.Log.FilePath == "" {
		add("log.file_path", "required when output is %s", c.Log.Output)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
