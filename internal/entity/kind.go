package entity

import "fmt"

// Kind discriminates what an entity is. Code that special-cases an entity
// switches on its Kind.
type Kind int

const (
	KindPlayer Kind = iota
	KindBot
	KindPaintball
	KindFlag
)

var kindNames = map[Kind]string{
	KindPlayer:    "player",
	KindBot:       "bot",
	KindPaintball: "paintball",
	KindFlag:      "flag",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a catalog name such as "bot" to its Kind
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", name)
}

// Solid reports whether entities of this kind block movement
func (k Kind) Solid() bool {
	return k == KindPlayer || k == KindBot
}
