// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package teseq recognizes ECMA-35/ECMA-48 terminal control sequences in
// a byte stream and renders them as a line-oriented transcript: ordinary
// text runs, named C0/C1 controls, echoed escape bytes, and (for CSI
// sequences with a known handler) an acronym, a long label, and an
// English description.
//
// A Processor drives one input stream through a small state machine and
// writes its transcript through a Putter. Dispatch is table-driven: two
// 48-entry tables cover the standard and space-intermediate CSI final
// bytes, with a handful of standalone descriptors for window
// manipulation, scrolling regions, and locator/mouse reporting.
//
// Example
//
//	ib := inputbuf.New(inputbuf.NewIOSource(os.Stdin), inputbuf.DefaultCapacity)
//	out := putter.New(bufiox.NewDefaultWriter(os.Stdout), 0)
//	p := teseq.NewProcessor(teseq.Config{Describe: true}, ib, out, nil)
//	if err := p.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package teseq
