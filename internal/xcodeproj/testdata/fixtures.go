// Package testdata provides Xcode project fixtures for tests.
//
// Fixtures are written under a caller-provided directory (normally
// t.TempDir()) so tests can mutate them freely.
package testdata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TargetSpec describes a target for PBXProj.
type TargetSpec struct {
	ID          string
	Name        string
	ISA         string // defaults to PBXNativeTarget
	ProductType string
	// Product is the product file name. Native targets without one get no
	// productReference.
	Product string
}

// PBXProj renders a minimal OpenStep project.pbxproj with the given targets
// listed on the root project in order.
func PBXProj(targets ...TargetSpec) string {
	var b strings.Builder
	b.WriteString("// !$*UTF8*$!\n{\n\tarchiveVersion = 1;\n\tobjectVersion = 56;\n\tobjects = {\n")

	ids := make([]string, 0, len(targets))
	for i, t := range targets {
		isa := t.ISA
		if isa == "" {
			isa = "PBXNativeTarget"
		}

		fmt.Fprintf(&b, "\t\t%s /* %s */ = {\n\t\t\tisa = %s;\n", t.ID, t.Name, isa)
		if t.Name != "" {
			fmt.Fprintf(&b, "\t\t\tname = %q;\n", t.Name)
		}
		if t.ProductType != "" {
			fmt.Fprintf(&b, "\t\t\tproductType = %q;\n", t.ProductType)
		}
		if t.Product != "" {
			ref := fmt.Sprintf("2B%022d", i)
			fmt.Fprintf(&b, "\t\t\tproductReference = %s;\n", ref)
			b.WriteString("\t\t};\n")
			fmt.Fprintf(&b, "\t\t%s = {isa = PBXFileReference; path = %q; sourceTree = BUILT_PRODUCTS_DIR; };\n", ref, t.Product)
		} else {
			b.WriteString("\t\t};\n")
		}
		ids = append(ids, t.ID)
	}

	b.WriteString("\t\t2A0000000000000000000001 = {\n\t\t\tisa = PBXProject;\n\t\t\ttargets = (\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "\t\t\t\t%s,\n", id)
	}
	b.WriteString("\t\t\t);\n\t\t};\n\t};\n\trootObject = 2A0000000000000000000001;\n}\n")
	return b.String()
}

// App returns a native application target.
func App(id, name string) TargetSpec {
	return TargetSpec{ID: id, Name: name, ProductType: "com.apple.product-type.application", Product: name + ".app"}
}

// UnitTests returns a native unit-test bundle target.
func UnitTests(id, name string) TargetSpec {
	return TargetSpec{ID: id, Name: name, ProductType: "com.apple.product-type.bundle.unit-test", Product: name + ".xctest"}
}

// WriteProject writes dir/<name>.xcodeproj/project.pbxproj and returns the
// bundle path.
func WriteProject(tb testing.TB, dir, name, pbxproj string) string {
	tb.Helper()
	bundle := filepath.Join(dir, name+".xcodeproj")
	require.NoError(tb, os.MkdirAll(bundle, 0755))
	require.NoError(tb, os.WriteFile(filepath.Join(bundle, "project.pbxproj"), []byte(pbxproj), 0644))
	return bundle
}

// WriteSample writes the sample project into dir and returns its bundle path.
func WriteSample(tb testing.TB, dir string) string {
	tb.Helper()
	return WriteProject(tb, dir, SampleName, SamplePBXProj)
}

// WriteWorkspace writes dir/<name>.xcworkspace with one FileRef per location
// (for example "group:App/App.xcodeproj") and returns the bundle path.
func WriteWorkspace(tb testing.TB, dir, name string, locations ...string) string {
	tb.Helper()

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Workspace\n   version = \"1.0\">\n")
	for _, loc := range locations {
		fmt.Fprintf(&b, "   <FileRef\n      location = \"%s\">\n   </FileRef>\n", loc)
	}
	b.WriteString("</Workspace>\n")

	return WriteWorkspaceContents(tb, dir, name, b.String())
}

// WriteWorkspaceContents writes a workspace with raw contents.xcworkspacedata.
func WriteWorkspaceContents(tb testing.TB, dir, name, contents string) string {
	tb.Helper()
	bundle := filepath.Join(dir, name+".xcworkspace")
	require.NoError(tb, os.MkdirAll(bundle, 0755))
	require.NoError(tb, os.WriteFile(filepath.Join(bundle, "contents.xcworkspacedata"), []byte(contents), 0644))
	return bundle
}

// WriteUserScheme drops a stale user scheme file into a bundle.
func WriteUserScheme(tb testing.TB, bundle, user, name string) string {
	tb.Helper()
	dir := filepath.Join(bundle, "xcuserdata", user+".xcuserdatad", "xcschemes")
	require.NoError(tb, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name+".xcscheme")
	require.NoError(tb, os.WriteFile(path, []byte("<Scheme version=\"1.3\"></Scheme>\n"), 0644))
	return path
}

// WriteSharedScheme drops a shared scheme file into a bundle.
func WriteSharedScheme(tb testing.TB, bundle, name string) string {
	tb.Helper()
	dir := filepath.Join(bundle, "xcshareddata", "xcschemes")
	require.NoError(tb, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name+".xcscheme")
	require.NoError(tb, os.WriteFile(path, []byte("<Scheme version=\"1.3\"></Scheme>\n"), 0644))
	return path
}

// Snapshot returns every regular file under root keyed by slash-separated
// relative path, with its content.
func Snapshot(tb testing.TB, root string) map[string]string {
	tb.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(tb, err)
	return out
}

// Paths returns the sorted keys of a Snapshot.
func Paths(snapshot map[string]string) []string {
	paths := make([]string, 0, len(snapshot))
	for p := range snapshot {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
