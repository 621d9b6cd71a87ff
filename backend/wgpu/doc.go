// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu implements blit.Driver on the wgpu hardware abstraction
// layer (github.com/gogpu/wgpu/hal).
//
// The driver receives an existing hal.Device and hal.Queue from the host,
// either directly through Config or unwrapped from a
// gpucontext.DeviceProvider via FromProvider. It never creates a device
// of its own.
package wgpu
