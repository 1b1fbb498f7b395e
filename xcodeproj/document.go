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

import "fmt"

// Variant names one build configuration flavor.
type Variant string

const (
	Debug   Variant = "Debug"
	Release Variant = "Release"
)

// DefaultVariant is marked as the default on every configuration list.
const DefaultVariant = Release

const (
	archiveVersion = 1
	objectVersion  = 60

	lastUpgradeCheck      = "1500"
	createdOnToolsVersion = "15.0"
	compatibilityVersion  = `"Xcode 14.0"`

	applicationProductType = `"com.apple.product-type.application"`
	applicationFileType    = "wrapper.application"
)

// BuildFile links one package product into the frameworks phase.
type BuildFile struct {
	ID      string
	Product Ref // points at a ProductDependency
}

// FileReference describes the built application bundle.
type FileReference struct {
	ID               string
	Path             string
	ExplicitFileType string
	SourceTree       string
}

// BuildPhase is one ordered processing step of the target. Only the
// frameworks phase carries files in this generator; sources and resources
// stay empty until the consuming tool adds files.
type BuildPhase struct {
	ID    string
	Name  string
	Isa   string
	Files []Ref
}

// Group is a structural grouping node.
type Group struct {
	ID       string
	Name     string // empty for the main group
	Children []Ref
}

// NativeTarget is the single application target.
type NativeTarget struct {
	ID                  string
	Name                string
	ConfigurationList   Ref
	BuildPhases         []Ref
	ProductDependencies []Ref
	ProductReference    Ref
}

// Project is the document root object.
type Project struct {
	ID                string
	Name              string
	ConfigurationList Ref
	MainGroup         Ref
	ProductsGroup     Ref
	PackageReferences []Ref
	Target            Ref
}

// BuildConfiguration is one Debug/Release variant at one scope.
type BuildConfiguration struct {
	ID       string
	Name     Variant
	Settings *Object
}

// ConfigurationList enumerates the variants of one scope and names the
// default. Project scope and target scope each own an independent list.
type ConfigurationList struct {
	ID             string
	Comment        string
	Configurations []Ref
	Default        Variant
}

// PackageReference is the single reference entry a dependency contributes,
// carrying its source location and version constraint.
type PackageReference struct {
	ID            string
	Name          string
	RepositoryURL string
	Requirement   Requirement
}

// ProductDependency is one consumable product of a package reference.
type ProductDependency struct {
	ID      string
	Name    string
	Package Ref
}

// Document is the fully wired project descriptor: every identifier is
// allocated and every cross-reference resolved. Rendering it is pure text
// assembly.
type Document struct {
	TargetName string

	BuildFiles          []BuildFile
	AppReference        FileReference
	FrameworksPhase     BuildPhase
	MainGroup           Group
	ProductsGroup       Group
	Target              NativeTarget
	Project             Project
	ResourcesPhase      BuildPhase
	SourcesPhase        BuildPhase
	Configurations      []BuildConfiguration
	ConfigurationLists  []ConfigurationList
	PackageReferences   []PackageReference
	ProductDependencies []ProductDependency
}

// Generate allocates identifiers for every slot the spec requires and wires
// the section tree. It performs no I/O; the same spec with the same
// allocator sequence yields byte-identical documents.
func Generate(spec ProjectSpec, alloc *Allocator) (*Document, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project spec: %w", err)
	}

	ids := identTable{alloc: alloc}
	projectID := ids.next()
	targetID := ids.next()
	projectDebugID := ids.next()
	projectReleaseID := ids.next()
	projectListID := ids.next()
	targetListID := ids.next()
	targetDebugID := ids.next()
	targetReleaseID := ids.next()
	sourcesID := ids.next()
	frameworksID := ids.next()
	resourcesID := ids.next()
	mainGroupID := ids.next()
	productsGroupID := ids.next()
	appRefID := ids.next()

	refIDs := make([]string, len(spec.Dependencies))
	for i := range spec.Dependencies {
		refIDs[i] = ids.next()
	}
	products := spec.products()
	productIDs := make([]string, len(products))
	buildFileIDs := make([]string, len(products))
	for i := range products {
		productIDs[i] = ids.next()
	}
	for i := range products {
		buildFileIDs[i] = ids.next()
	}
	if ids.err != nil {
		return nil, ids.err
	}

	doc := &Document{TargetName: spec.TargetName}

	for i, dep := range spec.Dependencies {
		doc.PackageReferences = append(doc.PackageReferences, PackageReference{
			ID:            refIDs[i],
			Name:          dep.Name,
			RepositoryURL: dep.RepositoryURL,
			Requirement:   dep.Requirement,
		})
	}
	for i, prod := range products {
		owner := doc.PackageReferences[prod.depIndex]
		doc.ProductDependencies = append(doc.ProductDependencies, ProductDependency{
			ID:      productIDs[i],
			Name:    prod.name,
			Package: Ref{ID: owner.ID, Comment: packageReferenceComment(owner.Name)},
		})
		doc.BuildFiles = append(doc.BuildFiles, BuildFile{
			ID:      buildFileIDs[i],
			Product: Ref{ID: productIDs[i], Comment: prod.name},
		})
	}

	appPath := spec.TargetName + ".app"
	doc.AppReference = FileReference{
		ID:               appRefID,
		Path:             appPath,
		ExplicitFileType: applicationFileType,
		SourceTree:       "BUILT_PRODUCTS_DIR",
	}

	frameworkFiles := make([]Ref, len(doc.BuildFiles))
	for i, bf := range doc.BuildFiles {
		frameworkFiles[i] = Ref{ID: bf.ID, Comment: bf.Product.Comment + " in Frameworks"}
	}
	doc.FrameworksPhase = BuildPhase{ID: frameworksID, Name: "Frameworks", Isa: "PBXFrameworksBuildPhase", Files: frameworkFiles}
	doc.SourcesPhase = BuildPhase{ID: sourcesID, Name: "Sources", Isa: "PBXSourcesBuildPhase"}
	doc.ResourcesPhase = BuildPhase{ID: resourcesID, Name: "Resources", Isa: "PBXResourcesBuildPhase"}

	doc.ProductsGroup = Group{
		ID:       productsGroupID,
		Name:     "Products",
		Children: []Ref{{ID: appRefID, Comment: appPath}},
	}
	doc.MainGroup = Group{
		ID:       mainGroupID,
		Children: []Ref{{ID: productsGroupID, Comment: "Products"}},
	}

	doc.Configurations = []BuildConfiguration{
		{ID: projectDebugID, Name: Debug, Settings: projectBuildSettings(spec, Debug)},
		{ID: projectReleaseID, Name: Release, Settings: projectBuildSettings(spec, Release)},
		{ID: targetDebugID, Name: Debug, Settings: targetBuildSettings(spec)},
		{ID: targetReleaseID, Name: Release, Settings: targetBuildSettings(spec)},
	}
	projectListComment := configurationListComment("PBXProject", spec.TargetName)
	targetListComment := configurationListComment("PBXNativeTarget", spec.TargetName)
	doc.ConfigurationLists = []ConfigurationList{
		{
			ID:      projectListID,
			Comment: projectListComment,
			Configurations: []Ref{
				{ID: projectDebugID, Comment: string(Debug)},
				{ID: projectReleaseID, Comment: string(Release)},
			},
			Default: DefaultVariant,
		},
		{
			ID:      targetListID,
			Comment: targetListComment,
			Configurations: []Ref{
				{ID: targetDebugID, Comment: string(Debug)},
				{ID: targetReleaseID, Comment: string(Release)},
			},
			Default: DefaultVariant,
		},
	}

	productRefs := make([]Ref, len(doc.ProductDependencies))
	for i, pd := range doc.ProductDependencies {
		productRefs[i] = Ref{ID: pd.ID, Comment: pd.Name}
	}
	doc.Target = NativeTarget{
		ID:                targetID,
		Name:              spec.TargetName,
		ConfigurationList: Ref{ID: targetListID, Comment: targetListComment},
		BuildPhases: []Ref{
			{ID: sourcesID, Comment: "Sources"},
			{ID: frameworksID, Comment: "Frameworks"},
			{ID: resourcesID, Comment: "Resources"},
		},
		ProductDependencies: productRefs,
		ProductReference:    Ref{ID: appRefID, Comment: appPath},
	}

	packageRefs := make([]Ref, len(doc.PackageReferences))
	for i, pr := range doc.PackageReferences {
		packageRefs[i] = Ref{ID: pr.ID, Comment: packageReferenceComment(pr.Name)}
	}
	doc.Project = Project{
		ID:                projectID,
		Name:              spec.TargetName,
		ConfigurationList: Ref{ID: projectListID, Comment: projectListComment},
		MainGroup:         Ref{ID: mainGroupID},
		ProductsGroup:     Ref{ID: productsGroupID, Comment: "Products"},
		PackageReferences: packageRefs,
		Target:            Ref{ID: targetID, Comment: spec.TargetName},
	}

	return doc, nil
}

func packageReferenceComment(name string) string {
	return `XCRemoteSwiftPackageReference "` + name + `"`
}

func configurationListComment(scope, name string) string {
	return `Build configuration list for ` + scope + ` "` + name + `"`
}

// identTable collects allocation errors so Generate reads linearly.
type identTable struct {
	alloc *Allocator
	err   error
}

func (t *identTable) next() string {
	if t.err != nil {
		return ""
	}
	ident, err := t.alloc.Next()
	if err != nil {
		t.err = err
		return ""
	}
	return ident
}
