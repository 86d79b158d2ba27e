// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua chunk and must return a table, for
// example:
//
//   return {
//       data_directory = ".",
//       database = "rebase210.txt",
//       queries = "sequences.txt",
//       tree = "lazyavl",
//       logging = {
//           size = 1048576,
//           count = 10,
//           levels = { DEFAULT = "info" },
//       },
//   }
//
// most of base Lua is available such as os.getenv to extract
// environment supplied items.
package configuration
