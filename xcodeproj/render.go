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
	"strconv"
	"strings"
)

const headComment = "!$*UTF8*$!"

const indentUnit = "\t"

// sectionEntry is one keyed object inside a /* Begin X section */ frame.
type sectionEntry struct {
	id      string
	comment string
	body    *Object
}

type section struct {
	name    string
	inline  bool // PBXBuildFile and PBXFileReference render one-line
	entries []sectionEntry
}

// Render emits the document in the fixed pbxproj section order. Pure text
// assembly: no I/O, fully determined by the document contents.
func Render(doc *Document) string {
	w := &writer{}
	w.writeNoIndent("// %s\n", headComment)
	w.write("{\n")
	w.indentLevel++
	w.write("archiveVersion = %s;\n", strconv.Itoa(archiveVersion))
	w.write("classes = {\n")
	w.write("};\n")
	w.write("objectVersion = %s;\n", strconv.Itoa(objectVersion))
	w.write("objects = {\n")
	w.indentLevel++

	for _, sec := range doc.sections() {
		if len(sec.entries) == 0 {
			continue
		}
		w.writeNoIndent("\n")
		w.writeNoIndent("/* Begin %s section */\n", sec.name)
		for _, entry := range sec.entries {
			if sec.inline {
				w.writeInlineEntry(entry)
			} else {
				w.writeEntry(entry)
			}
		}
		w.writeNoIndent("/* End %s section */\n", sec.name)
	}

	w.indentLevel--
	w.write("};\n")
	w.write("rootObject = %s /* Project object */;\n", doc.Project.ID)
	w.indentLevel--
	w.write("}\n")
	return w.sb.String()
}

type writer struct {
	sb          strings.Builder
	indentLevel int
}

func indent(x int) string {
	return strings.Repeat(indentUnit, x)
}

func (w *writer) writeNoIndent(format string, args ...interface{}) {
	fmt.Fprintf(&w.sb, format, args...)
}

func (w *writer) write(format string, args ...interface{}) {
	w.sb.WriteString(indent(w.indentLevel))
	fmt.Fprintf(&w.sb, format, args...)
}

func (w *writer) writeEntry(entry sectionEntry) {
	if entry.comment != "" {
		w.write("%s /* %s */ = {\n", entry.id, entry.comment)
	} else {
		w.write("%s = {\n", entry.id)
	}
	w.indentLevel++
	w.writeObject(entry.body)
	w.indentLevel--
	w.write("};\n")
}

func (w *writer) writeObject(obj *Object) {
	obj.Foreach(func(key string, val interface{}) {
		switch v := val.(type) {
		case *Object:
			w.write("%s = {\n", key)
			w.indentLevel++
			w.writeObject(v)
			w.indentLevel--
			w.write("};\n")
		case []Ref:
			w.writeRefList(key, v)
		case []string:
			w.writeStringList(key, v)
		case Ref:
			if v.Comment != "" {
				w.write("%s = %s /* %s */;\n", key, v.ID, v.Comment)
			} else {
				w.write("%s = %s;\n", key, v.ID)
			}
		case int:
			w.write("%s = %s;\n", key, strconv.Itoa(v))
		case string:
			w.write("%s = %s;\n", key, v)
		default:
			// Unreachable while the document builder only produces the
			// types above.
			w.write("%s = %v;\n", key, v)
		}
	})
}

func (w *writer) writeRefList(name string, refs []Ref) {
	w.write("%s = (\n", name)
	w.indentLevel++
	for _, ref := range refs {
		if ref.Comment != "" {
			w.write("%s /* %s */,\n", ref.ID, ref.Comment)
		} else {
			w.write("%s,\n", ref.ID)
		}
	}
	w.indentLevel--
	w.write(");\n")
}

func (w *writer) writeStringList(name string, values []string) {
	w.write("%s = (\n", name)
	w.indentLevel++
	for _, v := range values {
		w.write("%s,\n", v)
	}
	w.indentLevel--
	w.write(");\n")
}

// writeInlineEntry renders one object on a single line, the way Xcode
// writes PBXBuildFile and PBXFileReference entries.
func (w *writer) writeInlineEntry(entry sectionEntry) {
	var parts []string
	entry.body.Foreach(func(key string, val interface{}) {
		switch v := val.(type) {
		case Ref:
			if v.Comment != "" {
				parts = append(parts, fmt.Sprintf("%s = %s /* %s */; ", key, v.ID, v.Comment))
			} else {
				parts = append(parts, fmt.Sprintf("%s = %s; ", key, v.ID))
			}
		case int:
			parts = append(parts, fmt.Sprintf("%s = %s; ", key, strconv.Itoa(v)))
		default:
			parts = append(parts, fmt.Sprintf("%s = %s; ", key, v))
		}
	})
	w.write("%s /* %s */ = {%s};\n", entry.id, entry.comment, strings.Join(parts, ""))
}

// sections lays the document out in the order the consuming tool expects.
func (doc *Document) sections() []section {
	return []section{
		{name: "PBXBuildFile", inline: true, entries: doc.buildFileEntries()},
		{name: "PBXFileReference", inline: true, entries: doc.fileReferenceEntries()},
		{name: "PBXFrameworksBuildPhase", entries: []sectionEntry{phaseEntry(doc.FrameworksPhase)}},
		{name: "PBXGroup", entries: doc.groupEntries()},
		{name: "PBXNativeTarget", entries: []sectionEntry{doc.targetEntry()}},
		{name: "PBXProject", entries: []sectionEntry{doc.projectEntry()}},
		{name: "PBXResourcesBuildPhase", entries: []sectionEntry{phaseEntry(doc.ResourcesPhase)}},
		{name: "PBXSourcesBuildPhase", entries: []sectionEntry{phaseEntry(doc.SourcesPhase)}},
		{name: "XCBuildConfiguration", entries: doc.configurationEntries()},
		{name: "XCConfigurationList", entries: doc.configurationListEntries()},
		{name: "XCRemoteSwiftPackageReference", entries: doc.packageReferenceEntries()},
		{name: "XCSwiftPackageProductDependency", entries: doc.productDependencyEntries()},
	}
}

func (doc *Document) buildFileEntries() []sectionEntry {
	entries := make([]sectionEntry, 0, len(doc.BuildFiles))
	for _, bf := range doc.BuildFiles {
		entries = append(entries, sectionEntry{
			id:      bf.ID,
			comment: bf.Product.Comment + " in Frameworks",
			body: NewObjectWithItems(
				"isa", "PBXBuildFile",
				"productRef", bf.Product,
			),
		})
	}
	return entries
}

func (doc *Document) fileReferenceEntries() []sectionEntry {
	ref := doc.AppReference
	return []sectionEntry{{
		id:      ref.ID,
		comment: ref.Path,
		body: NewObjectWithItems(
			"isa", "PBXFileReference",
			"explicitFileType", ref.ExplicitFileType,
			"includeInIndex", 0,
			"path", ref.Path,
			"sourceTree", ref.SourceTree,
		),
	}}
}

func phaseEntry(phase BuildPhase) sectionEntry {
	files := phase.Files
	if files == nil {
		files = []Ref{}
	}
	return sectionEntry{
		id:      phase.ID,
		comment: phase.Name,
		body: NewObjectWithItems(
			"isa", phase.Isa,
			"buildActionMask", 2147483647,
			"files", files,
			"runOnlyForDeploymentPostprocessing", 0,
		),
	}
}

func (doc *Document) groupEntries() []sectionEntry {
	main := sectionEntry{
		id: doc.MainGroup.ID,
		body: NewObjectWithItems(
			"isa", "PBXGroup",
			"children", doc.MainGroup.Children,
			"sourceTree", `"<group>"`,
		),
	}
	products := sectionEntry{
		id:      doc.ProductsGroup.ID,
		comment: doc.ProductsGroup.Name,
		body: NewObjectWithItems(
			"isa", "PBXGroup",
			"children", doc.ProductsGroup.Children,
			"name", doc.ProductsGroup.Name,
			"sourceTree", `"<group>"`,
		),
	}
	return []sectionEntry{main, products}
}

func (doc *Document) targetEntry() sectionEntry {
	t := doc.Target
	return sectionEntry{
		id:      t.ID,
		comment: t.Name,
		body: NewObjectWithItems(
			"isa", "PBXNativeTarget",
			"buildConfigurationList", t.ConfigurationList,
			"buildPhases", t.BuildPhases,
			"buildRules", []Ref{},
			"dependencies", []Ref{},
			"name", t.Name,
			"packageProductDependencies", t.ProductDependencies,
			"productName", t.Name,
			"productReference", t.ProductReference,
			"productType", applicationProductType,
		),
	}
}

func (doc *Document) projectEntry() sectionEntry {
	p := doc.Project
	attributes := NewObjectWithItems(
		"BuildIndependentTargetsInParallel", 1,
		"LastSwiftUpdateCheck", lastUpgradeCheck,
		"LastUpgradeCheck", lastUpgradeCheck,
		"TargetAttributes", NewObjectWithItems(
			p.Target.ID, NewObjectWithItems(
				"CreatedOnToolsVersion", createdOnToolsVersion,
			),
		),
	)
	return sectionEntry{
		id:      p.ID,
		comment: "Project object",
		body: NewObjectWithItems(
			"isa", "PBXProject",
			"attributes", attributes,
			"buildConfigurationList", p.ConfigurationList,
			"compatibilityVersion", compatibilityVersion,
			"developmentRegion", "en",
			"hasScannedForEncodings", 0,
			"knownRegions", []string{"en", "Base"},
			"mainGroup", p.MainGroup,
			"packageReferences", p.PackageReferences,
			"productRefGroup", p.ProductsGroup,
			"projectDirPath", `""`,
			"projectRoot", `""`,
			"targets", []Ref{p.Target},
		),
	}
}

func (doc *Document) configurationEntries() []sectionEntry {
	entries := make([]sectionEntry, 0, len(doc.Configurations))
	for _, cfg := range doc.Configurations {
		entries = append(entries, sectionEntry{
			id:      cfg.ID,
			comment: string(cfg.Name),
			body: NewObjectWithItems(
				"isa", "XCBuildConfiguration",
				"buildSettings", cfg.Settings,
				"name", string(cfg.Name),
			),
		})
	}
	return entries
}

func (doc *Document) configurationListEntries() []sectionEntry {
	entries := make([]sectionEntry, 0, len(doc.ConfigurationLists))
	for _, list := range doc.ConfigurationLists {
		entries = append(entries, sectionEntry{
			id:      list.ID,
			comment: list.Comment,
			body: NewObjectWithItems(
				"isa", "XCConfigurationList",
				"buildConfigurations", list.Configurations,
				"defaultConfigurationIsVisible", 0,
				"defaultConfigurationName", string(list.Default),
			),
		})
	}
	return entries
}

func (doc *Document) packageReferenceEntries() []sectionEntry {
	entries := make([]sectionEntry, 0, len(doc.PackageReferences))
	for _, ref := range doc.PackageReferences {
		var requirement *Object
		switch ref.Requirement.Kind {
		case RequirementBranch:
			requirement = NewObjectWithItems(
				"branch", ref.Requirement.Branch,
				"kind", string(RequirementBranch),
			)
		default:
			requirement = NewObjectWithItems(
				"kind", string(RequirementUpToNextMajor),
				"minimumVersion", ref.Requirement.MinimumVersion,
			)
		}
		entries = append(entries, sectionEntry{
			id:      ref.ID,
			comment: packageReferenceComment(ref.Name),
			body: NewObjectWithItems(
				"isa", "XCRemoteSwiftPackageReference",
				"repositoryURL", `"`+ref.RepositoryURL+`"`,
				"requirement", requirement,
			),
		})
	}
	return entries
}

func (doc *Document) productDependencyEntries() []sectionEntry {
	entries := make([]sectionEntry, 0, len(doc.ProductDependencies))
	for _, pd := range doc.ProductDependencies {
		entries = append(entries, sectionEntry{
			id:      pd.ID,
			comment: pd.Name,
			body: NewObjectWithItems(
				"isa", "XCSwiftPackageProductDependency",
				"package", pd.Package,
				"productName", pd.Name,
			),
		})
	}
	return entries
}
