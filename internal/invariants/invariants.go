// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants exposes whether expensive self checks are compiled in.
// Tree renders verify the keyed-children index against the ordered entries
// when Enabled is set.
package invariants
