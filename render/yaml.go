package render

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknot/diagram"
)

// ErrBadDocument indicates a YAML document that does not describe a
// crossing or strand.
var ErrBadDocument = errors.New("render: malformed diagram document")

// Document is the serialisable form of a diagram.
type Document struct {
	Crossings []CrossingDoc `yaml:"crossings"`
	Strands   []StrandDoc   `yaml:"strands"`
}

// CrossingDoc describes one crossing. Slots follow the order of
// diagram.Crossing.Strands for the given kind.
type CrossingDoc struct {
	Kind  string `yaml:"kind"`
	Slots []int  `yaml:"slots,flow"`
}

// StrandDoc describes one strand; From and To are omitted for loops.
type StrandDoc struct {
	Loop bool `yaml:"loop,omitempty"`
	From *int `yaml:"from,omitempty"`
	To   *int `yaml:"to,omitempty"`
}

// ToDocument converts d into its Document form.
func ToDocument(d diagram.Diagram) Document {
	doc := Document{
		Crossings: make([]CrossingDoc, d.NumCrossings()),
		Strands:   make([]StrandDoc, d.NumStrands()),
	}
	for i := range doc.Crossings {
		c := d.Crossing(i)
		doc.Crossings[i] = CrossingDoc{Kind: Kind(c), Slots: c.Strands()}
	}
	for i := range doc.Strands {
		s := d.Strand(i)
		if s.IsLoop() {
			doc.Strands[i] = StrandDoc{Loop: true}
			continue
		}
		from, to := s.From, s.To
		doc.Strands[i] = StrandDoc{From: &from, To: &to}
	}

	return doc
}

// YAML marshals d as a Document.
func YAML(d diagram.Diagram) (string, error) {
	out, err := yaml.Marshal(ToDocument(d))
	if err != nil {
		return "", fmt.Errorf("render: marshal diagram: %w", err)
	}

	return string(out), nil
}

// FromDocument rebuilds the diagram described by doc. The result passes
// through diagram.New and is therefore fully validated.
func FromDocument(doc Document) (diagram.Diagram, error) {
	crossings := make([]diagram.Crossing, len(doc.Crossings))
	for i, c := range doc.Crossings {
		want := 4
		if c.Kind == "M" {
			want = 2
		}
		if len(c.Slots) != want {
			return diagram.Diagram{}, fmt.Errorf("%w: crossing %d of kind %q has %d slots, want %d",
				ErrBadDocument, i, c.Kind, len(c.Slots), want)
		}
		s := c.Slots
		switch c.Kind {
		case "X+", "X-":
			crossings[i] = diagram.Transverse{
				OutUnder: s[0], OutOver: s[1], InUnder: s[2], InOver: s[3], Positive: c.Kind == "X+",
			}
		case "O":
			crossings[i] = diagram.Singular{Entering: [2]int{s[0], s[1]}, Exiting: [2]int{s[2], s[3]}}
		case "M":
			crossings[i] = diagram.Midpoint{Entering: s[0], Exiting: s[1]}
		default:
			return diagram.Diagram{}, fmt.Errorf("%w: crossing %d has unknown kind %q", ErrBadDocument, i, c.Kind)
		}
	}

	strands := make([]diagram.Strand, len(doc.Strands))
	for i, s := range doc.Strands {
		switch {
		case s.Loop && s.From == nil && s.To == nil:
			strands[i] = diagram.FreeLoop()
		case !s.Loop && s.From != nil && s.To != nil:
			strands[i] = diagram.Arc(*s.From, *s.To)
		default:
			return diagram.Diagram{}, fmt.Errorf("%w: strand %d needs either loop or both from and to", ErrBadDocument, i)
		}
	}

	return diagram.New(crossings, strands)
}

// ParseYAML decodes a Document and rebuilds its diagram.
func ParseYAML(data []byte) (diagram.Diagram, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return diagram.Diagram{}, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return FromDocument(doc)
}
