// Package xcodeproj reads Xcode project and workspace bundles and writes
// their scheme files.
//
// It covers what scheme regeneration needs and nothing more: decoding the
// target list from project.pbxproj, building one scheme per target,
// writing user schemes with their xcschememanagement.plist, listing shared
// and user schemes, and resolving the projects referenced by a workspace.
// The pbxproj itself is never written.
package xcodeproj
