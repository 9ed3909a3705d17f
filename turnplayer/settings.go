package turnplayer

import (
	"fmt"
	"strings"
)

// PlayerKind is how a seat is played, as named in settings.
type PlayerKind string

const (
	KindHuman PlayerKind = "human"
	KindBot   PlayerKind = "bot"
)

// PlayerSpec is one seat from the players setting.
type PlayerSpec struct {
	Kind PlayerKind
	Name string
}

// ParsePlayerSpecs parses a list like "human:Alice,bot:Botty". A bare name
// is a human.
func ParsePlayerSpecs(s string) ([]PlayerSpec, error) {
	specs := []PlayerSpec{}
	seen := map[string]bool{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		spec := PlayerSpec{Kind: KindHuman, Name: field}
		if kind, name, ok := strings.Cut(field, ":"); ok {
			spec = PlayerSpec{Kind: PlayerKind(strings.ToLower(strings.TrimSpace(kind))), Name: strings.TrimSpace(name)}
		}
		switch spec.Kind {
		case KindHuman, KindBot:
		default:
			return nil, fmt.Errorf("player %q: kind must be human or bot", field)
		}
		if spec.Name == "" {
			return nil, fmt.Errorf("player %q has no name", field)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate player name %q", spec.Name)
		}
		seen[spec.Name] = true
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no players in %q", s)
	}
	return specs, nil
}
