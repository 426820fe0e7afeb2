package testdata

// SampleName is the bundle name written by WriteSample.
const SampleName = "Sample"

// Blueprint identifiers of the sample project's targets.
const (
	SampleAppID     = "1A0000000000000000000010"
	SampleTestsID   = "1A0000000000000000000011"
	SampleUITestsID = "1A0000000000000000000012"
	SampleToolID    = "1A0000000000000000000013"
	SampleKitID     = "1A0000000000000000000014"
	SampleLintID    = "1A0000000000000000000015"
)

// SampleTargetNames lists the sample targets sorted by name.
var SampleTargetNames = []string{"App", "AppTests", "AppUITests", "Kit", "Lint", "Tool"}

// SamplePBXProj is a trimmed project.pbxproj as Xcode writes it: an
// application, unit and UI test bundles, a command-line tool, a framework
// and an aggregate target.
const SamplePBXProj = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXFileReference section */
		1A0000000000000000000020 /* App.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = App.app; sourceTree = BUILT_PRODUCTS_DIR; };
		1A0000000000000000000021 /* AppTests.xctest */ = {isa = PBXFileReference; explicitFileType = wrapper.cfbundle; includeInIndex = 0; path = AppTests.xctest; sourceTree = BUILT_PRODUCTS_DIR; };
		1A0000000000000000000022 /* AppUITests.xctest */ = {isa = PBXFileReference; explicitFileType = wrapper.cfbundle; includeInIndex = 0; path = AppUITests.xctest; sourceTree = BUILT_PRODUCTS_DIR; };
		1A0000000000000000000023 /* tool */ = {isa = PBXFileReference; explicitFileType = "compiled.mach-o.executable"; includeInIndex = 0; path = tool; sourceTree = BUILT_PRODUCTS_DIR; };
		1A0000000000000000000024 /* Kit.framework */ = {isa = PBXFileReference; explicitFileType = wrapper.framework; includeInIndex = 0; path = Kit.framework; sourceTree = BUILT_PRODUCTS_DIR; };
		1A0000000000000000000030 /* AppDelegate.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = AppDelegate.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		1A0000000000000000000040 = {
			isa = PBXGroup;
			children = (
				1A0000000000000000000030 /* AppDelegate.swift */,
				1A0000000000000000000041 /* Products */,
			);
			sourceTree = "<group>";
		};
		1A0000000000000000000041 /* Products */ = {
			isa = PBXGroup;
			children = (
				1A0000000000000000000020 /* App.app */,
				1A0000000000000000000021 /* AppTests.xctest */,
				1A0000000000000000000022 /* AppUITests.xctest */,
				1A0000000000000000000023 /* tool */,
				1A0000000000000000000024 /* Kit.framework */,
			);
			name = Products;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXAggregateTarget section */
		1A0000000000000000000015 /* Lint */ = {
			isa = PBXAggregateTarget;
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXAggregateTarget "Lint" */;
			buildPhases = (
			);
			dependencies = (
			);
			name = Lint;
			productName = Lint;
		};
/* End PBXAggregateTarget section */

/* Begin PBXNativeTarget section */
		1A0000000000000000000010 /* App */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXNativeTarget "App" */;
			buildPhases = (
			);
			buildRules = (
			);
			dependencies = (
			);
			name = App;
			productName = App;
			productReference = 1A0000000000000000000020 /* App.app */;
			productType = "com.apple.product-type.application";
		};
		1A0000000000000000000011 /* AppTests */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXNativeTarget "AppTests" */;
			buildPhases = (
			);
			buildRules = (
			);
			dependencies = (
			);
			name = AppTests;
			productName = AppTests;
			productReference = 1A0000000000000000000021 /* AppTests.xctest */;
			productType = "com.apple.product-type.bundle.unit-test";
		};
		1A0000000000000000000012 /* AppUITests */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXNativeTarget "AppUITests" */;
			buildPhases = (
			);
			buildRules = (
			);
			dependencies = (
			);
			name = AppUITests;
			productName = AppUITests;
			productReference = 1A0000000000000000000022 /* AppUITests.xctest */;
			productType = "com.apple.product-type.bundle.ui-testing";
		};
		1A0000000000000000000013 /* Tool */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXNativeTarget "Tool" */;
			buildPhases = (
			);
			buildRules = (
			);
			dependencies = (
			);
			name = Tool;
			productName = tool;
			productReference = 1A0000000000000000000023 /* tool */;
			productType = "com.apple.product-type.tool";
		};
		1A0000000000000000000014 /* Kit */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXNativeTarget "Kit" */;
			buildPhases = (
			);
			buildRules = (
			);
			dependencies = (
			);
			name = Kit;
			productName = Kit;
			productReference = 1A0000000000000000000024 /* Kit.framework */;
			productType = "com.apple.product-type.framework";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		1A0000000000000000000001 /* Project object */ = {
			isa = PBXProject;
			attributes = {
				BuildIndependentTargetsInParallel = 1;
				LastSwiftUpdateCheck = 1500;
				LastUpgradeCheck = 1500;
			};
			buildConfigurationList = 1A0000000000000000000050 /* Build configuration list for PBXProject "Sample" */;
			compatibilityVersion = "Xcode 14.0";
			developmentRegion = en;
			hasScannedForEncodings = 0;
			knownRegions = (
				en,
				Base,
			);
			mainGroup = 1A0000000000000000000040;
			productRefGroup = 1A0000000000000000000041 /* Products */;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				1A0000000000000000000010 /* App */,
				1A0000000000000000000011 /* AppTests */,
				1A0000000000000000000012 /* AppUITests */,
				1A0000000000000000000013 /* Tool */,
				1A0000000000000000000014 /* Kit */,
				1A0000000000000000000015 /* Lint */,
			);
		};
/* End PBXProject section */

/* Begin XCConfigurationList section */
		1A0000000000000000000050 /* Build configuration list */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Release;
		};
/* End XCConfigurationList section */
	};
	rootObject = 1A0000000000000000000001 /* Project object */;
}
`
