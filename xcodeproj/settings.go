package xcodeproj

import "sort"

// The buildSettings tables below reproduce what Xcode 15 writes into a
// freshly created iOS application project. Values carry their pbxproj
// quoting verbatim. Keys are emitted in sorted order, which is also the
// order Xcode itself uses.

var projectCommonSettings = []Setting{
	{"ALWAYS_SEARCH_USER_PATHS", "NO"},
	{"ASSETCATALOG_COMPILER_GENERATE_SWIFT_ASSET_SYMBOL_EXTENSIONS", "YES"},
	{"CLANG_ANALYZER_NONNULL", "YES"},
	{"CLANG_ANALYZER_NUMBER_OBJECT_CONVERSION", "YES_AGGRESSIVE"},
	{"CLANG_CXX_LANGUAGE_STANDARD", `"gnu++20"`},
	{"CLANG_ENABLE_MODULES", "YES"},
	{"CLANG_ENABLE_OBJC_ARC", "YES"},
	{"CLANG_ENABLE_OBJC_WEAK", "YES"},
	{"CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING", "YES"},
	{"CLANG_WARN_BOOL_CONVERSION", "YES"},
	{"CLANG_WARN_COMMA", "YES"},
	{"CLANG_WARN_CONSTANT_CONVERSION", "YES"},
	{"CLANG_WARN_DEPRECATED_OBJC_IMPLEMENTATIONS", "YES"},
	{"CLANG_WARN_DIRECT_OBJC_ISA_USAGE", "YES_ERROR"},
	{"CLANG_WARN_DOCUMENTATION_COMMENTS", "YES"},
	{"CLANG_WARN_EMPTY_BODY", "YES"},
	{"CLANG_WARN_ENUM_CONVERSION", "YES"},
	{"CLANG_WARN_INFINITE_RECURSION", "YES"},
	{"CLANG_WARN_INT_CONVERSION", "YES"},
	{"CLANG_WARN_NON_LITERAL_NULL_CONVERSION", "YES"},
	{"CLANG_WARN_OBJC_IMPLICIT_RETAIN_SELF", "YES"},
	{"CLANG_WARN_OBJC_LITERAL_CONVERSION", "YES"},
	{"CLANG_WARN_OBJC_ROOT_CLASS", "YES_ERROR"},
	{"CLANG_WARN_QUOTED_INCLUDE_IN_FRAMEWORK_HEADER", "YES"},
	{"CLANG_WARN_RANGE_LOOP_ANALYSIS", "YES"},
	{"CLANG_WARN_STRICT_PROTOTYPES", "YES"},
	{"CLANG_WARN_SUSPICIOUS_MOVE", "YES"},
	{"CLANG_WARN_UNGUARDED_AVAILABILITY", "YES_AGGRESSIVE"},
	{"CLANG_WARN_UNREACHABLE_CODE", "YES"},
	{"CLANG_WARN__DUPLICATE_METHOD_MATCH", "YES"},
	{"COPY_PHASE_STRIP", "NO"},
	{"ENABLE_STRICT_OBJC_MSGSEND", "YES"},
	{"ENABLE_USER_SCRIPT_SANDBOXING", "YES"},
	{"GCC_C_LANGUAGE_STANDARD", "gnu17"},
	{"GCC_NO_COMMON_BLOCKS", "YES"},
	{"GCC_WARN_64_TO_32_BIT_CONVERSION", "YES"},
	{"GCC_WARN_ABOUT_RETURN_TYPE", "YES_ERROR"},
	{"GCC_WARN_UNDECLARED_SELECTOR", "YES"},
	{"GCC_WARN_UNINITIALIZED_AUTOS", "YES_AGGRESSIVE"},
	{"GCC_WARN_UNUSED_FUNCTION", "YES"},
	{"GCC_WARN_UNUSED_VARIABLE", "YES"},
	{"LOCALIZATION_PREFERS_STRING_CATALOGS", "YES"},
	{"MTL_FAST_MATH", "YES"},
	{"SDKROOT", "iphoneos"},
}

var projectDebugSettings = []Setting{
	{"DEBUG_INFORMATION_FORMAT", "dwarf"},
	{"ENABLE_TESTABILITY", "YES"},
	{"GCC_DYNAMIC_NO_PIC", "NO"},
	{"GCC_OPTIMIZATION_LEVEL", "0"},
	{"GCC_PREPROCESSOR_DEFINITIONS", []string{`"DEBUG=1"`, `"$(inherited)"`}},
	{"MTL_ENABLE_DEBUG_INFO", "INCLUDE_SOURCE"},
	{"ONLY_ACTIVE_ARCH", "YES"},
	{"SWIFT_ACTIVE_COMPILATION_CONDITIONS", `"DEBUG $(inherited)"`},
	{"SWIFT_OPTIMIZATION_LEVEL", `"-Onone"`},
}

var projectReleaseSettings = []Setting{
	{"DEBUG_INFORMATION_FORMAT", `"dwarf-with-dsym"`},
	{"ENABLE_NS_ASSERTIONS", "NO"},
	{"MTL_ENABLE_DEBUG_INFO", "NO"},
	{"SWIFT_COMPILATION_MODE", "wholemodule"},
	{"VALIDATE_PRODUCT", "YES"},
}

var targetCommonSettings = []Setting{
	{"ASSETCATALOG_COMPILER_APPICON_NAME", "AppIcon"},
	{"ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME", "AccentColor"},
	{"CODE_SIGN_STYLE", "Automatic"},
	{"CURRENT_PROJECT_VERSION", "1"},
	{"DEVELOPMENT_TEAM", `""`},
	{"ENABLE_PREVIEWS", "YES"},
	{"GENERATE_INFOPLIST_FILE", "YES"},
	{"INFOPLIST_KEY_UIApplicationSceneManifest_Generation", "YES"},
	{"INFOPLIST_KEY_UIApplicationSupportsIndirectInputEvents", "YES"},
	{"INFOPLIST_KEY_UILaunchScreen_Generation", "YES"},
	{"INFOPLIST_KEY_UISupportedInterfaceOrientations_iPad", `"UIInterfaceOrientationPortrait UIInterfaceOrientationPortraitUpsideDown UIInterfaceOrientationLandscapeLeft UIInterfaceOrientationLandscapeRight"`},
	{"INFOPLIST_KEY_UISupportedInterfaceOrientations_iPhone", `"UIInterfaceOrientationPortrait UIInterfaceOrientationLandscapeLeft UIInterfaceOrientationLandscapeRight"`},
	{"LD_RUNPATH_SEARCH_PATHS", []string{`"$(inherited)"`, `"@executable_path/Frameworks"`}},
	{"MARKETING_VERSION", "1.0"},
	{"PRODUCT_NAME", `"$(TARGET_NAME)"`},
	{"SWIFT_EMIT_LOC_STRINGS", "YES"},
	{"SWIFT_VERSION", "5.0"},
	{"TARGETED_DEVICE_FAMILY", `"1,2"`},
}

// mergeSettings layers setting groups (later groups win on key clashes) and
// returns them as one Object sorted by key.
func mergeSettings(groups ...[]Setting) *Object {
	merged := NewObject()
	for _, group := range groups {
		for _, s := range group {
			merged.Set(s.Key, s.Value)
		}
	}
	keys := merged.Keys()
	sort.Strings(keys)

	out := NewObject()
	for _, key := range keys {
		v, _ := merged.Get(key)
		out.Set(key, v)
	}
	return out
}

// projectBuildSettings assembles the project-scope table for one variant.
func projectBuildSettings(spec ProjectSpec, variant Variant) *Object {
	perSpec := []Setting{
		{"IPHONEOS_DEPLOYMENT_TARGET", spec.DeploymentTarget},
	}
	switch variant {
	case Debug:
		return mergeSettings(projectCommonSettings, projectDebugSettings, perSpec)
	default:
		return mergeSettings(projectCommonSettings, projectReleaseSettings, perSpec)
	}
}

// targetBuildSettings assembles the target-scope table. Both variants share
// the same values in this generator; Xcode differentiates them only once a
// developer edits the project.
func targetBuildSettings(spec ProjectSpec) *Object {
	perSpec := []Setting{
		{"INFOPLIST_FILE", spec.TargetName + "/Info.plist"},
		{"PRODUCT_BUNDLE_IDENTIFIER", spec.BundleID},
	}
	return mergeSettings(targetCommonSettings, perSpec, spec.ExtraTargetSettings)
}
