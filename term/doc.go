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

// Package term provides an asynchronous raw-byte relay over a console,
// for drivers that need to read from an interactive terminal without
// ever blocking their own main loop inside a read(2) call.
//
// Reader starts a background goroutine that relays whatever bytes the
// console yields, one read at a time, onto a buffered channel; Read then
// serves them to the caller exactly as received, with no line editing,
// echo, or framing of any kind.
//
// Example
//
//	r := term.NewReader(os.Stdin)
//	buf := make([]byte, 256)
//	for {
//	    n, err := r.Read(buf)
//	    if err != nil {
//	        return err
//	    }
//	    process(buf[:n])
//	}
package term
