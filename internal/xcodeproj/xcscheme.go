package xcodeproj

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

const (
	lastUpgradeVersion = "1500"
	schemeVersion      = "1.3"

	debuggerLLDB = "Xcode.DebuggerFoundation.Debugger.LLDB"
	launcherLLDB = "Xcode.DebuggerFoundation.Launcher.LLDB"

	configDebug   = "Debug"
	configRelease = "Release"
)

// Bool is an Xcode YES/NO attribute.
type Bool bool

// MarshalXMLAttr implements xml.MarshalerAttr.
func (b Bool) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	v := "NO"
	if b {
		v = "YES"
	}
	return xml.Attr{Name: name, Value: v}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (b *Bool) UnmarshalXMLAttr(attr xml.Attr) error {
	switch attr.Value {
	case "YES":
		*b = true
	case "NO":
		*b = false
	default:
		return fmt.Errorf("attribute %s: invalid boolean %q", attr.Name.Local, attr.Value)
	}
	return nil
}

// Scheme is the content of an .xcscheme file.
type Scheme struct {
	XMLName            xml.Name      `xml:"Scheme"`
	Name               string        `xml:"-"`
	LastUpgradeVersion string        `xml:"LastUpgradeVersion,attr"`
	Version            string        `xml:"version,attr"`
	BuildAction        BuildAction   `xml:"BuildAction"`
	TestAction         TestAction    `xml:"TestAction"`
	LaunchAction       LaunchAction  `xml:"LaunchAction"`
	ProfileAction      ProfileAction `xml:"ProfileAction"`
	AnalyzeAction      AnalyzeAction `xml:"AnalyzeAction"`
	ArchiveAction      ArchiveAction `xml:"ArchiveAction"`
}

// BuildableReference points a scheme action at a target.
type BuildableReference struct {
	BuildableIdentifier string `xml:"BuildableIdentifier,attr"`
	BlueprintIdentifier string `xml:"BlueprintIdentifier,attr"`
	BuildableName       string `xml:"BuildableName,attr"`
	BlueprintName       string `xml:"BlueprintName,attr"`
	ReferencedContainer string `xml:"ReferencedContainer,attr"`
}

type BuildAction struct {
	ParallelizeBuildables     Bool               `xml:"parallelizeBuildables,attr"`
	BuildImplicitDependencies Bool               `xml:"buildImplicitDependencies,attr"`
	Entries                   []BuildActionEntry `xml:"BuildActionEntries>BuildActionEntry"`
}

type BuildActionEntry struct {
	BuildForTesting    Bool               `xml:"buildForTesting,attr"`
	BuildForRunning    Bool               `xml:"buildForRunning,attr"`
	BuildForProfiling  Bool               `xml:"buildForProfiling,attr"`
	BuildForArchiving  Bool               `xml:"buildForArchiving,attr"`
	BuildForAnalyzing  Bool               `xml:"buildForAnalyzing,attr"`
	BuildableReference BuildableReference `xml:"BuildableReference"`
}

type TestAction struct {
	BuildConfiguration           string              `xml:"buildConfiguration,attr"`
	SelectedDebuggerIdentifier   string              `xml:"selectedDebuggerIdentifier,attr"`
	SelectedLauncherIdentifier   string              `xml:"selectedLauncherIdentifier,attr"`
	ShouldUseLaunchSchemeArgsEnv Bool                `xml:"shouldUseLaunchSchemeArgsEnv,attr"`
	Testables                    []TestableReference `xml:"Testables>TestableReference"`
}

type TestableReference struct {
	Skipped            Bool               `xml:"skipped,attr"`
	BuildableReference BuildableReference `xml:"BuildableReference"`
}

type BuildableProductRunnable struct {
	RunnableDebuggingMode string             `xml:"runnableDebuggingMode,attr"`
	BuildableReference    BuildableReference `xml:"BuildableReference"`
}

type LaunchAction struct {
	BuildConfiguration             string                    `xml:"buildConfiguration,attr"`
	SelectedDebuggerIdentifier     string                    `xml:"selectedDebuggerIdentifier,attr"`
	SelectedLauncherIdentifier     string                    `xml:"selectedLauncherIdentifier,attr"`
	LaunchStyle                    string                    `xml:"launchStyle,attr"`
	UseCustomWorkingDirectory      Bool                      `xml:"useCustomWorkingDirectory,attr"`
	IgnoresPersistentStateOnLaunch Bool                      `xml:"ignoresPersistentStateOnLaunch,attr"`
	DebugDocumentVersioning        Bool                      `xml:"debugDocumentVersioning,attr"`
	DebugServiceExtension          string                    `xml:"debugServiceExtension,attr"`
	AllowLocationSimulation        Bool                      `xml:"allowLocationSimulation,attr"`
	Runnable                       *BuildableProductRunnable `xml:"BuildableProductRunnable,omitempty"`
}

type ProfileAction struct {
	BuildConfiguration           string                    `xml:"buildConfiguration,attr"`
	ShouldUseLaunchSchemeArgsEnv Bool                      `xml:"shouldUseLaunchSchemeArgsEnv,attr"`
	SavedToolIdentifier          string                    `xml:"savedToolIdentifier,attr"`
	UseCustomWorkingDirectory    Bool                      `xml:"useCustomWorkingDirectory,attr"`
	DebugDocumentVersioning      Bool                      `xml:"debugDocumentVersioning,attr"`
	Runnable                     *BuildableProductRunnable `xml:"BuildableProductRunnable,omitempty"`
}

type AnalyzeAction struct {
	BuildConfiguration string `xml:"buildConfiguration,attr"`
}

type ArchiveAction struct {
	BuildConfiguration       string `xml:"buildConfiguration,attr"`
	RevealArchiveInOrganizer Bool   `xml:"revealArchiveInOrganizer,attr"`
}

// newBuildableReference references target t inside container
// ("container:<Name>.xcodeproj").
func newBuildableReference(t Target, container string) BuildableReference {
	return BuildableReference{
		BuildableIdentifier: "primary",
		BlueprintIdentifier: t.ID,
		BuildableName:       t.ProductName,
		BlueprintName:       t.Name,
		ReferencedContainer: container,
	}
}

// NewScheme builds the scheme Xcode would autocreate for t: the target is
// built for every action, launched and profiled when it is launchable, and
// tested when it is a test bundle.
func NewScheme(t Target, container string) *Scheme {
	s := &Scheme{
		Name:               t.Name,
		LastUpgradeVersion: lastUpgradeVersion,
		Version:            schemeVersion,
		BuildAction: BuildAction{
			ParallelizeBuildables:     true,
			BuildImplicitDependencies: true,
		},
		TestAction: TestAction{
			BuildConfiguration:           configDebug,
			SelectedDebuggerIdentifier:   debuggerLLDB,
			SelectedLauncherIdentifier:   launcherLLDB,
			ShouldUseLaunchSchemeArgsEnv: true,
		},
		LaunchAction: LaunchAction{
			BuildConfiguration:         configDebug,
			SelectedDebuggerIdentifier: debuggerLLDB,
			SelectedLauncherIdentifier: launcherLLDB,
			LaunchStyle:                "0",
			DebugDocumentVersioning:    true,
			DebugServiceExtension:      "internal",
			AllowLocationSimulation:    true,
		},
		ProfileAction: ProfileAction{
			BuildConfiguration:           configRelease,
			ShouldUseLaunchSchemeArgsEnv: true,
			DebugDocumentVersioning:      true,
		},
		AnalyzeAction: AnalyzeAction{BuildConfiguration: configDebug},
		ArchiveAction: ArchiveAction{
			BuildConfiguration:       configRelease,
			RevealArchiveInOrganizer: true,
		},
	}

	ref := newBuildableReference(t, container)
	s.BuildAction.Entries = []BuildActionEntry{{
		BuildForTesting:    true,
		BuildForRunning:    true,
		BuildForProfiling:  true,
		BuildForArchiving:  true,
		BuildForAnalyzing:  true,
		BuildableReference: ref,
	}}

	if t.Launchable() {
		s.LaunchAction.Runnable = &BuildableProductRunnable{RunnableDebuggingMode: "0", BuildableReference: ref}
		s.ProfileAction.Runnable = &BuildableProductRunnable{RunnableDebuggingMode: "0", BuildableReference: ref}
	}

	if t.Testable() {
		s.TestAction.Testables = []TestableReference{{BuildableReference: ref}}
	}

	return s
}

// Encode renders the scheme as an .xcscheme document.
func (s *Scheme) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "   ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DecodeScheme parses an .xcscheme document.
func DecodeScheme(name string, data []byte) (*Scheme, error) {
	var s Scheme
	if err := xml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scheme %s: %w", name, err)
	}
	s.Name = name
	return &s, nil
}

// ReadScheme reads and parses a scheme file found by ListSchemes.
func ReadScheme(f SchemeFile) (*Scheme, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme %s: %w", f.Name, err)
	}
	return DecodeScheme(f.Name, data)
}

// BuildableNames returns the products of the build action, in entry order.
func (s *Scheme) BuildableNames() []string {
	names := make([]string, 0, len(s.BuildAction.Entries))
	for _, e := range s.BuildAction.Entries {
		names = append(names, e.BuildableReference.BuildableName)
	}
	return names
}
