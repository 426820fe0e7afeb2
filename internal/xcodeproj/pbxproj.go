package xcodeproj

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"howett.net/plist"
)

// pbxproj is the top level of a project.pbxproj file.
type pbxproj struct {
	ArchiveVersion string                 `plist:"archiveVersion"`
	ObjectVersion  string                 `plist:"objectVersion"`
	RootObject     string                 `plist:"rootObject"`
	Objects        map[string]interface{} `plist:"objects"`
}

// object is one entry of the pbxproj object table.
type object map[string]interface{}

func (o object) str(key string) string {
	s, _ := o[key].(string)
	return s
}

func (o object) strs(key string) ([]string, bool) {
	raw, ok := o[key].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// decodePBXProj parses pbxproj content. Any of the plist encodings is
// accepted; Xcode writes the OpenStep one.
func decodePBXProj(data []byte) (*pbxproj, error) {
	var doc pbxproj
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}
	if doc.RootObject == "" {
		return nil, fmt.Errorf("project file has no root object")
	}
	if len(doc.Objects) == 0 {
		return nil, fmt.Errorf("project file has no objects table")
	}
	return &doc, nil
}

func (d *pbxproj) object(id string) (object, bool) {
	raw, ok := d.Objects[id].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return object(raw), true
}

// targets resolves the root project's target list.
func (d *pbxproj) targets() ([]Target, error) {
	root, ok := d.object(d.RootObject)
	if !ok {
		return nil, fmt.Errorf("root object %s not found", d.RootObject)
	}
	if isa := root.str("isa"); isa != isaProject {
		return nil, fmt.Errorf("root object %s is %q, expected %s", d.RootObject, isa, isaProject)
	}

	ids, ok := root.strs("targets")
	if !ok {
		return nil, fmt.Errorf("root object %s has no valid targets list", d.RootObject)
	}

	targets := make([]Target, 0, len(ids))
	seen := make(map[string]string, len(ids))
	for _, id := range ids {
		target, err := d.target(id)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[target.Name]; dup {
			return nil, fmt.Errorf("duplicate target name %q (%s, %s)", target.Name, prev, id)
		}
		seen[target.Name] = id
		targets = append(targets, target)
	}

	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Name < targets[j].Name
	})

	return targets, nil
}

func (d *pbxproj) target(id string) (Target, error) {
	obj, ok := d.object(id)
	if !ok {
		return Target{}, fmt.Errorf("target %s not found in objects table", id)
	}

	t := Target{
		ID:          id,
		ISA:         obj.str("isa"),
		Name:        obj.str("name"),
		ProductType: obj.str("productType"),
	}

	switch t.ISA {
	case isaNativeTarget, isaAggregateTarget, isaLegacyTarget:
	default:
		return Target{}, fmt.Errorf("object %s is %q, not a target", id, t.ISA)
	}

	if t.Name == "" {
		return Target{}, fmt.Errorf("target %s has no name", id)
	}
	if strings.ContainsAny(t.Name, `/\`) {
		return Target{}, fmt.Errorf("target name %q contains a path separator", t.Name)
	}

	t.ProductName = t.Name
	if t.ISA == isaNativeTarget {
		ref := obj.str("productReference")
		if ref == "" {
			return Target{}, fmt.Errorf("target %q has no product reference", t.Name)
		}
		product, ok := d.object(ref)
		if !ok {
			return Target{}, fmt.Errorf("product reference %s of target %q not found", ref, t.Name)
		}
		name := product.str("path")
		if name == "" {
			name = product.str("name")
		}
		if name == "" {
			return Target{}, fmt.Errorf("product reference %s of target %q has no path", ref, t.Name)
		}
		t.ProductName = path.Base(name)
	}

	return t, nil
}
