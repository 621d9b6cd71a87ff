// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"log/slog"

	"github.com/gogpu/blit"
)

// logger returns the shared blit logger, configured via blit.SetLogger.
// All logging in this package goes through it.
func logger() *slog.Logger { return blit.Logger() }
