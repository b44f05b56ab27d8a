// Package script drives a store from a YAML list of steps, one store
// operation per step. It lets the list be exercised without a terminal.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

var ErrEmptyScript = errors.New("script has no steps")

// Op names a store operation.
type Op string

const (
	OpOpen     Op = "open"
	OpClose    Op = "close"
	OpName     Op = "name"
	OpQuantity Op = "quantity"
	OpConfirm  Op = "confirm"
	OpEdit     Op = "edit"
	OpSave     Op = "save"
	OpDelete   Op = "delete"
)

// Step is one operation. Which fields matter depends on Op:
// name/quantity use Text, edit/delete use ID, save uses ID, Name and Quantity.
type Step struct {
	Op       Op     `yaml:"op" validate:"required,oneof=open close name quantity confirm edit save delete"`
	Text     string `yaml:"text,omitempty"`
	ID       int    `yaml:"id,omitempty" validate:"gte=0"`
	Name     string `yaml:"name,omitempty"`
	Quantity string `yaml:"quantity,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// Outcome records whether a step changed anything. Ops that cannot be
// rejected (open, close, name, quantity) always report Applied.
type Outcome struct {
	Step    int
	Op      Op
	Applied bool
}

type Result struct {
	Outcomes []Outcome
}

// Applied counts the steps that took effect.
func (r Result) Applied() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Applied {
			n++
		}
	}
	return n
}

var validate = validator.New()

// Parse decodes and validates a script. Every invalid step is reported.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Script
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("unable to unmarshal script: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Script) Validate() error {
	if len(sc.Steps) == 0 {
		return ErrEmptyScript
	}
	var errs error
	for i, st := range sc.Steps {
		if err := validate.Struct(st); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("step %d: %w", i+1, err))
			continue
		}
		switch st.Op {
		case OpEdit, OpSave, OpDelete:
			if st.ID < 1 {
				errs = multierr.Append(errs, fmt.Errorf("step %d: %s needs an id >= 1", i+1, st.Op))
			}
		}
	}
	return errs
}

// Run applies the steps to s in order.
func Run(ctx context.Context, s *store.Store, sc *Script) (Result, error) {
	res := Result{Outcomes: make([]Outcome, 0, len(sc.Steps))}
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		applied, err := apply(s, st)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Outcomes = append(res.Outcomes, Outcome{Step: i + 1, Op: st.Op, Applied: applied})
	}
	return res, nil
}

func apply(s *store.Store, st Step) (bool, error) {
	id := model.ItemID(st.ID)
	switch st.Op {
	case OpOpen:
		s.OpenAddDialog()
	case OpClose:
		s.CloseAddDialog()
	case OpName:
		s.UpdateDraftName(st.Text)
	case OpQuantity:
		s.UpdateDraftQuantity(st.Text)
	case OpConfirm:
		return s.ConfirmAdd(), nil
	case OpEdit:
		return s.BeginEdit(id), nil
	case OpSave:
		return s.CompleteEdit(id, st.Name, st.Quantity), nil
	case OpDelete:
		return s.DeleteItem(id), nil
	default:
		return false, fmt.Errorf("unknown op %q", st.Op)
	}
	return true, nil
}
