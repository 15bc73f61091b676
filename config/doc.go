// Package config loads the settings of the strassen command.
//
// Sources are applied in increasing precedence:
//
//	defaults < YAML file < STRASSEN_* environment variables < command-line overrides
//
// A missing config file is not an error; the defaults apply.
package config
