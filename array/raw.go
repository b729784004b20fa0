// Copyright 2025 The narray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/narray-ml/narray/internal/array"
)

// RawArray is the low-level array representation.
//
// RawArray provides:
//   - Shape and kind information via Shape(), DType()
//   - Typed buffer access via AsInt64(), AsFloat64()
//   - Exclusive ownership: Clone() deep-copies, buffers are never shared
//
// Most users should use the typed Array[T] facade instead.
//
// Example:
//
//	raw, _ := array.NewRaw(array.Shape{2, 3}, array.Float64)
//	data := raw.AsFloat64() // Typed access
type RawArray = array.RawArray
