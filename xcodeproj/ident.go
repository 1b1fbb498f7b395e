/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package xcodeproj

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
)

// IdentSource produces the raw randomness behind identifier allocation.
// The default source is uuid.NewV4; tests inject deterministic sequences.
type IdentSource func() (uuid.UUID, error)

// Allocator hands out the 24-character uppercase hexadecimal tokens Xcode
// uses as object identifiers. Identifiers are unique within one allocator;
// nothing else about them carries meaning.
type Allocator struct {
	source IdentSource
	seen   map[string]struct{}
}

func NewAllocator() *Allocator {
	return NewAllocatorWithSource(uuid.NewV4)
}

func NewAllocatorWithSource(source IdentSource) *Allocator {
	return &Allocator{
		source: source,
		seen:   make(map[string]struct{}),
	}
}

// Next returns a fresh identifier. A source failure is fatal for the run:
// no identifiers means no document, and the caller must not have touched
// the filesystem yet.
func (a *Allocator) Next() (string, error) {
	for {
		u, err := a.source()
		if err != nil {
			return "", fmt.Errorf("identifier source unavailable: %w", err)
		}
		ident := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))[:24]
		if _, dup := a.seen[ident]; dup {
			continue
		}
		a.seen[ident] = struct{}{}
		return ident, nil
	}
}

// Count reports how many identifiers this allocator has handed out.
func (a *Allocator) Count() int {
	return len(a.seen)
}
