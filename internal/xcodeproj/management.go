package xcodeproj

import "howett.net/plist"

// schemeManagement is the content of xcschememanagement.plist.
type schemeManagement struct {
	SchemeUserState               map[string]schemeUserState `plist:"SchemeUserState"`
	SuppressBuildableAutocreation map[string]interface{}     `plist:"SuppressBuildableAutocreation"`
}

type schemeUserState struct {
	IsShown bool `plist:"isShown"`
}

func newSchemeManagement() *schemeManagement {
	return &schemeManagement{
		SchemeUserState:               map[string]schemeUserState{},
		SuppressBuildableAutocreation: map[string]interface{}{},
	}
}

func (m *schemeManagement) add(scheme string, visible bool) {
	m.SchemeUserState[scheme+schemeExtension] = schemeUserState{IsShown: visible}
}

func (m *schemeManagement) encode() ([]byte, error) {
	return plist.MarshalIndent(m, plist.XMLFormat, "\t")
}
