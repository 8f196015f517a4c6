package mount

import (
	"fmt"
	"strings"
)

// Importance overrides whether a node takes part in accessibility traversal.
type Importance int

const (
	// ImportanceAuto defers to the component's declared capability.
	ImportanceAuto Importance = iota
	// ImportanceYes always makes the node accessible.
	ImportanceYes
	// ImportanceNo always excludes the node.
	ImportanceNo
)

var importanceNames = map[Importance]string{
	ImportanceAuto: "auto",
	ImportanceYes:  "yes",
	ImportanceNo:   "no",
}

func (i Importance) String() string {
	if name, ok := importanceNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Importance(%d)", int(i))
}

// MarshalText implements encoding.TextMarshaler.
func (i Importance) MarshalText() ([]byte, error) {
	if _, ok := importanceNames[i]; !ok {
		return nil, fmt.Errorf("mount: unknown importance %d", int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string is auto.
func (i *Importance) UnmarshalText(text []byte) error {
	parsed, err := ParseImportance(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ParseImportance parses "auto", "yes" or "no".
func ParseImportance(s string) (Importance, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ImportanceAuto, nil
	}
	for imp, name := range importanceNames {
		if name == s {
			return imp, nil
		}
	}
	return ImportanceAuto, fmt.Errorf("mount: unknown importance %q", s)
}

// Orientation is the device orientation a descriptor was laid out for.
type Orientation int

const (
	OrientationUndefined Orientation = iota
	OrientationPortrait
	OrientationLandscape
)

func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	default:
		return "undefined"
	}
}
