package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/plate"
)

var ErrNoMatch = errors.New("no element matches selector")

type StepKind int

const (
	StepSet StepKind = iota
	StepInput
	StepEvent
)

// Step is one scripted interaction:
//
//	set:key=literal
//	input:selector=text
//	event:selector
type Step struct {
	Kind     StepKind
	Key      string
	Selector string
	Event    string
	Value    any
}

func ParseSteps(srcs []string) ([]Step, error) {
	steps := make([]Step, 0, len(srcs))
	for _, src := range srcs {
		s, err := ParseStep(src)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func ParseStep(src string) (Step, error) {
	kind, rest, ok := strings.Cut(strings.TrimSpace(src), ":")
	if !ok || kind == "" || rest == "" {
		return Step{}, fmt.Errorf("invalid step %q", src)
	}
	switch kind {
	case "set":
		key, lit, ok := strings.Cut(rest, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return Step{}, fmt.Errorf("invalid step %q: want set:key=value", src)
		}
		return Step{Kind: StepSet, Key: key, Value: ParseLiteral(strings.TrimSpace(lit))}, nil
	case "input":
		idx := assignIndex(rest)
		if idx < 0 {
			return Step{}, fmt.Errorf("invalid step %q: want input:selector=text", src)
		}
		return Step{
			Kind:     StepInput,
			Selector: strings.TrimSpace(rest[:idx]),
			Value:    rest[idx+1:],
		}, nil
	}
	return Step{Kind: StepEvent, Event: kind, Selector: strings.TrimSpace(rest)}, nil
}

// assignIndex finds the first '=' outside of an attribute selector.
func assignIndex(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '=':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (s Step) String() string {
	switch s.Kind {
	case StepSet:
		return fmt.Sprintf("set:%s=%v", s.Key, s.Value)
	case StepInput:
		return fmt.Sprintf("input:%s=%v", s.Selector, s.Value)
	}
	return s.Event + ":" + s.Selector
}

func (s Step) Run(vm *plate.Plate) error {
	if s.Kind == StepSet {
		vm.Set(s.Key, s.Value)
		return nil
	}

	doc := vm.Document()
	if doc == nil {
		return fmt.Errorf("step %s: instance has no document", s)
	}
	node, err := doc.Query(s.Selector)
	if err != nil {
		return fmt.Errorf("step %s: %w", s, err)
	}
	if node == nil {
		return fmt.Errorf("step %s: %w", s, ErrNoMatch)
	}

	if s.Kind == StepInput {
		text, _ := s.Value.(string)
		doc.Input(node, text)
		return nil
	}
	node.Dispatch(&dom.Event{Type: s.Event})
	return nil
}

func Run(vm *plate.Plate, steps []Step) error {
	for _, s := range steps {
		if err := s.Run(vm); err != nil {
			return err
		}
	}
	return nil
}
