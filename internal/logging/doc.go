// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package logging provides shared constants and a map generated at
// initialization between flag-provided logging levels and internal logging
// levels used by the logging package applications in this module rely on.
package logging
