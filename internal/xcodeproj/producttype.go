package xcodeproj

// Product types that decide how a target's scheme is configured.
const (
	ProductTypeApplication = "com.apple.product-type.application"
	ProductTypeTool        = "com.apple.product-type.tool"
	ProductTypeUnitTest    = "com.apple.product-type.bundle.unit-test"
	ProductTypeUITest      = "com.apple.product-type.bundle.ui-testing"
	ProductTypeFramework   = "com.apple.product-type.framework"
	ProductTypeLibrary     = "com.apple.product-type.library.static"
)

// Target object types found in the pbxproj object table.
const (
	isaProject         = "PBXProject"
	isaNativeTarget    = "PBXNativeTarget"
	isaAggregateTarget = "PBXAggregateTarget"
	isaLegacyTarget    = "PBXLegacyTarget"
)

// IsLaunchable reports whether a target with this product type can be run
// from a scheme's launch and profile actions.
func IsLaunchable(productType string) bool {
	switch productType {
	case ProductTypeApplication, ProductTypeTool:
		return true
	}
	return false
}

// IsTest reports whether a target with this product type is a test bundle.
func IsTest(productType string) bool {
	switch productType {
	case ProductTypeUnitTest, ProductTypeUITest:
		return true
	}
	return false
}
