// Package script lets data files declare methods and lets the command line
// drive a mounted instance step by step.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/delaneyj/plate/compiler"
	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/plate"
)

var (
	ErrEmptyAction = errors.New("empty action")
	ErrNotNumeric  = errors.New("value is not numeric")
	ErrOutOfRange  = errors.New("value out of range")
)

type Op int

const (
	OpIncrement Op = iota
	OpDecrement
	OpToggle
	OpAssign
)

func (op Op) String() string {
	switch op {
	case OpIncrement:
		return "++"
	case OpDecrement:
		return "--"
	case OpToggle:
		return "!"
	case OpAssign:
		return "="
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Action is one statement of a declared method: key++, key--, !key or
// key=literal.
type Action struct {
	Op      Op
	Key     string
	Literal any
}

// Target is anything actions can read and write top-level keys on.
type Target interface {
	Get(key string) any
	Set(key string, v any)
}

// ParseActions parses statements separated by ';'.
func ParseActions(src string) ([]Action, error) {
	var actions []Action
	for _, stmt := range strings.Split(src, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		a, err := ParseAction(stmt)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	if len(actions) == 0 {
		return nil, ErrEmptyAction
	}
	return actions, nil
}

func ParseAction(stmt string) (Action, error) {
	stmt = strings.TrimSpace(stmt)
	switch {
	case stmt == "":
		return Action{}, ErrEmptyAction
	case strings.HasSuffix(stmt, "++"):
		return keyed(OpIncrement, strings.TrimSuffix(stmt, "++"), stmt)
	case strings.HasSuffix(stmt, "--"):
		return keyed(OpDecrement, strings.TrimSuffix(stmt, "--"), stmt)
	case strings.HasPrefix(stmt, "!"):
		return keyed(OpToggle, strings.TrimPrefix(stmt, "!"), stmt)
	}
	key, lit, ok := strings.Cut(stmt, "=")
	if !ok {
		return Action{}, fmt.Errorf("invalid action %q", stmt)
	}
	a, err := keyed(OpAssign, key, stmt)
	if err != nil {
		return Action{}, err
	}
	a.Literal = ParseLiteral(strings.TrimSpace(lit))
	return a, nil
}

func keyed(op Op, key, stmt string) (Action, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Action{}, fmt.Errorf("invalid action %q: missing key", stmt)
	}
	return Action{Op: op, Key: key}, nil
}

// ParseLiteral decodes s as JSON and falls back to the raw string.
func ParseLiteral(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func (a Action) Apply(t Target) error {
	switch a.Op {
	case OpIncrement, OpDecrement:
		delta := 1
		if a.Op == OpDecrement {
			delta = -1
		}
		next, err := addNumber(t.Get(a.Key), delta)
		if err != nil {
			return fmt.Errorf("error while applying %s%s: %w", a.Key, a.Op, err)
		}
		t.Set(a.Key, next)
	case OpToggle:
		t.Set(a.Key, !compiler.Truthy(t.Get(a.Key)))
	case OpAssign:
		t.Set(a.Key, a.Literal)
	}
	return nil
}

func addNumber(v any, delta int) (any, error) {
	switch n := v.(type) {
	case int:
		return n + delta, nil
	case int32:
		return n + int32(delta), nil
	case int64:
		return n + int64(delta), nil
	case uint:
		if (delta < 0 && n == 0) || (delta > 0 && n == math.MaxUint) {
			return nil, fmt.Errorf("%w: %d%+d", ErrOutOfRange, n, delta)
		}
		if delta < 0 {
			return n - 1, nil
		}
		return n + 1, nil
	case uint64:
		if (delta < 0 && n == 0) || (delta > 0 && n == math.MaxUint64) {
			return nil, fmt.Errorf("%w: %d%+d", ErrOutOfRange, n, delta)
		}
		if delta < 0 {
			return n - 1, nil
		}
		return n + 1, nil
	case float32:
		return n + float32(delta), nil
	case float64:
		return n + float64(delta), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotNumeric, v)
}

// Method turns actions into a handler. Failures are logged through the
// instance's logger, like any other non-fatal binding problem.
func Method(actions []Action) plate.Method {
	return func(vm *plate.Plate, e *dom.Event) {
		for _, a := range actions {
			if err := a.Apply(vm); err != nil {
				vm.Logger().Printf("%s handler: %v", e.Type, err)
			}
		}
	}
}

// Methods parses a name → source table into handlers.
func Methods(defs map[string]string) (map[string]plate.Method, error) {
	methods := make(map[string]plate.Method, len(defs))
	for name, src := range defs {
		actions, err := ParseActions(src)
		if err != nil {
			return nil, fmt.Errorf("error while parsing method %q: %w", name, err)
		}
		methods[name] = Method(actions)
	}
	return methods, nil
}
