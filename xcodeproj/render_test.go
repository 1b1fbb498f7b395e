package xcodeproj

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func renderTestDocument(t *testing.T) string {
	t.Helper()
	doc, _ := generateTestDocument(t)
	return Render(doc)
}

func TestRenderHeaderAndTrailer(t *testing.T) {
	out := renderTestDocument(t)

	require.True(t, strings.HasPrefix(out,
		"// !$*UTF8*$!\n{\n\tarchiveVersion = 1;\n\tclasses = {\n\t};\n\tobjectVersion = 60;\n\tobjects = {\n"))

	doc, _ := generateTestDocument(t)
	require.True(t, strings.HasSuffix(out,
		"\t};\n\trootObject = "+doc.Project.ID+" /* Project object */;\n}\n"))
}

func TestRenderSectionOrder(t *testing.T) {
	out := renderTestDocument(t)

	sections := []string{
		"PBXBuildFile",
		"PBXFileReference",
		"PBXFrameworksBuildPhase",
		"PBXGroup",
		"PBXNativeTarget",
		"PBXProject",
		"PBXResourcesBuildPhase",
		"PBXSourcesBuildPhase",
		"XCBuildConfiguration",
		"XCConfigurationList",
		"XCRemoteSwiftPackageReference",
		"XCSwiftPackageProductDependency",
	}
	last := -1
	for _, name := range sections {
		begin := strings.Index(out, "/* Begin "+name+" section */")
		end := strings.Index(out, "/* End "+name+" section */")
		require.Greater(t, begin, last, "section %s out of order", name)
		require.Greater(t, end, begin, "section %s never closed", name)
		last = end
	}
}

func TestRenderInlineEntries(t *testing.T) {
	out := renderTestDocument(t)

	buildFile := regexp.MustCompile(
		`(?m)^\t\t[0-9A-F]{24} /\* NukeUI in Frameworks \*/ = \{isa = PBXBuildFile; productRef = [0-9A-F]{24} /\* NukeUI \*/; \};$`)
	require.Regexp(t, buildFile, out)

	fileRef := regexp.MustCompile(
		`(?m)^\t\t[0-9A-F]{24} /\* TENEXiOS\.app \*/ = \{isa = PBXFileReference; explicitFileType = wrapper\.application; includeInIndex = 0; path = TENEXiOS\.app; sourceTree = BUILT_PRODUCTS_DIR; \};$`)
	require.Regexp(t, fileRef, out)
}

func TestRenderRequirements(t *testing.T) {
	out := renderTestDocument(t)

	require.Contains(t, out, `repositoryURL = "https://github.com/pablof7z/NDKSwift.git";`)
	require.Contains(t, out, `repositoryURL = "https://github.com/kean/Nuke.git";`)

	// Branch requirements list the branch first, version requirements the
	// kind first.
	require.Contains(t, out,
		"\t\t\trequirement = {\n\t\t\t\tbranch = master;\n\t\t\t\tkind = branch;\n\t\t\t};\n")
	require.Contains(t, out,
		"\t\t\trequirement = {\n\t\t\t\tkind = upToNextMajorVersion;\n\t\t\t\tminimumVersion = 12.0.0;\n\t\t\t};\n")
}

func TestRenderBuildSettings(t *testing.T) {
	out := renderTestDocument(t)

	require.Equal(t, 2, strings.Count(out, "defaultConfigurationName = Release;"))
	require.Equal(t, 2, strings.Count(out, "IPHONEOS_DEPLOYMENT_TARGET = 16.0;"))
	require.Equal(t, 2, strings.Count(out, "PRODUCT_BUNDLE_IDENTIFIER = com.tenex.ios;"))

	require.Contains(t, out,
		"\t\t\t\tGCC_PREPROCESSOR_DEFINITIONS = (\n\t\t\t\t\t\"DEBUG=1\",\n\t\t\t\t\t\"$(inherited)\",\n\t\t\t\t);\n")

	// Keys come out sorted within each buildSettings block.
	debugBlock := out[strings.Index(out, "/* Begin XCBuildConfiguration section */"):]
	first := strings.Index(debugBlock, "ALWAYS_SEARCH_USER_PATHS")
	second := strings.Index(debugBlock, "CLANG_ANALYZER_NONNULL")
	third := strings.Index(debugBlock, "SDKROOT")
	require.True(t, first >= 0 && first < second && second < third)
}

func TestRenderDeterministic(t *testing.T) {
	first := renderTestDocument(t)
	second := renderTestDocument(t)
	require.Equal(t, first, second)
}

func TestRenderStableStructure(t *testing.T) {
	render := func() string {
		doc, err := Generate(validSpec(), NewAllocator())
		require.NoError(t, err)
		return Render(doc)
	}
	ident := regexp.MustCompile(`[0-9A-F]{24}`)
	mask := func(s string) string {
		return ident.ReplaceAllString(s, strings.Repeat("X", 24))
	}

	// Two independent runs differ only in the identifiers they drew.
	require.Equal(t, mask(render()), mask(render()))
}
