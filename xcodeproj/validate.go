package xcodeproj

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks referential closure over the document: every identifier
// used as a reference must have exactly one defining entry, and every
// defined identifier must be referenced somewhere. The project root is the
// document entry point and is only referenced by the rootObject line, which
// sits outside the sections.
func (doc *Document) Validate() error {
	defs := make(map[string]int)
	refs := make(map[string]int)

	for _, sec := range doc.sections() {
		for _, entry := range sec.entries {
			defs[entry.id]++
			collectRefs(entry.body, refs)
		}
	}
	refs[doc.Project.ID]++ // rootObject

	var problems []string
	for id, n := range defs {
		if n > 1 {
			problems = append(problems, fmt.Sprintf("identifier %s defined %d times", id, n))
		}
		if refs[id] == 0 {
			problems = append(problems, fmt.Sprintf("identifier %s defined but never referenced", id))
		}
	}
	for id := range refs {
		if defs[id] == 0 {
			problems = append(problems, fmt.Sprintf("identifier %s referenced but never defined", id))
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("document not referentially closed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func collectRefs(obj *Object, refs map[string]int) {
	obj.Foreach(func(_ string, val interface{}) {
		switch v := val.(type) {
		case Ref:
			refs[v.ID]++
		case []Ref:
			for _, r := range v {
				refs[r.ID]++
			}
		case *Object:
			collectRefs(v, refs)
		}
	})
}
