// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import (
	"os"

	"github.com/rs/zerolog"
)

// Debug gates the package's diagnostic logging. It is off by default,
// the same posture as rudd's build-tag-gated _DEBUG constant, except
// this is a runtime switch rather than a compile-time one: a core
// library invoked from inside somebody else's hot path (probability,
// sensitivity) should not force a rebuild just to see what a
// memoized traversal is doing.
var Debug = false

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogger overrides the logger used when Debug is enabled. Useful
// for callers who already have their own zerolog.Logger configured
// (output sink, level, fields) and want ddcore's debug lines folded
// into it instead of going to stderr.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func debugf(component string, format string, args ...interface{}) {
	if !Debug {
		return
	}
	logger.Debug().Str("component", component).Msgf(format, args...)
}
