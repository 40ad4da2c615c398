// Package services implements the application use cases: compiling
// simplified element requests into canonical element nodes, and mutating
// persisted document trees.
package services

import (
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"pagecompiler/domain/codec"
	"pagecompiler/domain/config"
	"pagecompiler/domain/core/entities"
	"pagecompiler/domain/core/valueobjects"
	"pagecompiler/domain/css"
	"pagecompiler/domain/schema"
	pkgerrors "pagecompiler/pkg/errors"
)

// ElementRequest is the simplified compilation request shape: an element
// type, flat property assignments, optional per-breakpoint overrides, and
// optional hover-state overrides.
type ElementRequest struct {
	Type       string
	Properties map[string]interface{}
	Responsive map[string]map[string]interface{}
	Hover      map[string]interface{}
	Children   []ElementRequest
}

// reserved keys of the request shape; everything else is a simplified
// property assignment.
var reservedRequestKeys = map[string]bool{
	"type":       true,
	"responsive": true,
	"hover":      true,
	"children":   true,
}

// UnmarshalJSON separates the reserved keys from the flat property
// assignments.
func (r *ElementRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["type"]; ok {
		if err := json.Unmarshal(v, &r.Type); err != nil {
			return err
		}
	}
	if v, ok := raw["responsive"]; ok {
		if err := json.Unmarshal(v, &r.Responsive); err != nil {
			return err
		}
	}
	if v, ok := raw["hover"]; ok {
		if err := json.Unmarshal(v, &r.Hover); err != nil {
			return err
		}
	}
	if v, ok := raw["children"]; ok {
		if err := json.Unmarshal(v, &r.Children); err != nil {
			return err
		}
	}

	r.Properties = make(map[string]interface{})
	for key, v := range raw {
		if reservedRequestKeys[key] {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(v, &value); err != nil {
			return err
		}
		r.Properties[key] = value
	}
	return nil
}

// CompileService turns simplified element requests into canonical element
// nodes. It is stateless apart from read-only tables and safe for concurrent
// use.
type CompileService struct {
	cfg    config.DomainConfig
	logger *zap.Logger
}

// NewCompileService creates a compile service.
func NewCompileService(cfg config.DomainConfig, logger *zap.Logger) *CompileService {
	return &CompileService{cfg: cfg, logger: logger}
}

// CompileElement compiles one request (and its children, when the element
// type allows them) into an element node. Optional properties that fail
// validation are dropped and reported as warnings; a failing required
// property fails the whole element.
func (s *CompileService) CompileElement(req ElementRequest) (*entities.Element, []*pkgerrors.DomainError, error) {
	elementSchema, ok := schema.ElementType(req.Type)
	if !ok {
		return nil, nil, pkgerrors.NewUnknownElementTypeError(req.Type)
	}

	required := make(map[string]bool, len(elementSchema.Required))
	failures := pkgerrors.NewValidationErrors()
	for _, name := range elementSchema.Required {
		required[name] = true
		if _, present := req.Properties[name]; !present {
			failures.AddError(pkgerrors.NewDomainError(
				pkgerrors.ErrorTypeValidation,
				pkgerrors.CodeRequiredProperty,
				"required property "+name+" is missing").
				WithDetail("property", name).
				WithDetail("element_type", req.Type))
		}
	}

	el := entities.NewElement(elementSchema.CanonicalType)
	var warnings []*pkgerrors.DomainError

	for _, name := range s.propertyNames(req) {
		spec, found := schema.Resolve(name)
		if !found {
			warn := pkgerrors.NewUnknownPropertyError(name)
			if required[name] {
				failures.AddError(warn)
				continue
			}
			warnings = append(warnings, warn)
			continue
		}

		values, propWarnings, err := s.compileProperty(name, spec, req)
		warnings = append(warnings, propWarnings...)
		if err != nil {
			de := pkgerrors.GetDomainError(err)
			if de == nil {
				return nil, warnings, err
			}
			if required[name] || !s.cfg.DropInvalidOptional {
				failures.AddError(de)
			} else {
				warnings = append(warnings, de)
			}
			continue
		}
		if len(values) == 0 {
			continue
		}

		paths := spec.Paths
		if len(paths) > 1 && !s.cfg.GapFansOut {
			paths = paths[:1]
		}
		for _, path := range paths {
			el.SetPropertyValues(path, values)
		}
	}

	if failures.HasErrors() {
		return nil, warnings, failures
	}

	for _, childReq := range req.Children {
		if !elementSchema.Container {
			warnings = append(warnings, pkgerrors.NewDomainError(
				pkgerrors.ErrorTypeValidation,
				pkgerrors.CodeInvalidValueFormat,
				req.Type+" cannot own children; child dropped").
				WithDetail("element_type", req.Type))
			continue
		}
		child, childWarnings, err := s.CompileElement(childReq)
		warnings = append(warnings, childWarnings...)
		if err != nil {
			return nil, warnings, err
		}
		el.AppendChild(child)
	}

	s.logger.Debug("compiled element",
		zap.String("element_type", elementSchema.CanonicalType),
		zap.String("element_id", el.ID.String()),
		zap.Int("warnings", len(warnings)))
	return el, warnings, nil
}

// ValidateElement runs the compilation pipeline without producing a node,
// reporting every failure at once.
func (s *CompileService) ValidateElement(req ElementRequest) ([]*pkgerrors.DomainError, error) {
	_, warnings, err := s.CompileElement(req)
	return warnings, err
}

// propertyNames returns the union of property names across the base
// assignments and every override block, sorted for deterministic output.
func (s *CompileService) propertyNames(req ElementRequest) []string {
	seen := make(map[string]bool, len(req.Properties))
	for name := range req.Properties {
		seen[name] = true
	}
	for _, overrides := range req.Responsive {
		for name := range overrides {
			seen[name] = true
		}
	}
	for name := range req.Hover {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// compileProperty gathers every breakpoint/state variant of one simplified
// property, validates and lowers each, and returns the keyed canonical
// values ready for tree placement.
func (s *CompileService) compileProperty(name string, spec schema.PathSpec, req ElementRequest) (map[string]valueobjects.CanonicalValue, []*pkgerrors.DomainError, error) {
	values := make(map[string]valueobjects.CanonicalValue)
	var warnings []*pkgerrors.DomainError

	if raw, present := req.Properties[name]; present {
		key := ""
		if spec.Responsive {
			key = schema.StateKey(schema.BreakpointBase, schema.StateBase)
		}
		v, err := s.compileValue(name, spec, raw)
		if err != nil {
			return nil, warnings, err
		}
		values[key] = v
	}

	for bpName, overrides := range req.Responsive {
		raw, present := overrides[name]
		if !present {
			continue
		}
		if !spec.Responsive {
			warnings = append(warnings, pkgerrors.NewDomainError(
				pkgerrors.ErrorTypeValidation,
				pkgerrors.CodeInvalidValueFormat,
				name+" is not responsive; breakpoint override dropped").
				WithDetail("property", name).
				WithDetail("breakpoint", bpName))
			continue
		}
		v, err := s.compileValue(name, spec, raw)
		if err != nil {
			return nil, warnings, err
		}
		bp := schema.BreakpointIDOr(bpName, s.cfg.FallbackBreakpoint)
		values[schema.StateKey(bp, schema.StateBase)] = v
	}

	if raw, present := req.Hover[name]; present {
		if !spec.Responsive {
			warnings = append(warnings, pkgerrors.NewDomainError(
				pkgerrors.ErrorTypeValidation,
				pkgerrors.CodeInvalidValueFormat,
				name+" is not stateful; hover override dropped").
				WithDetail("property", name))
		} else {
			v, err := s.compileValue(name, spec, raw)
			if err != nil {
				return nil, warnings, err
			}
			values[schema.StateKey(schema.BreakpointBase, schema.StateHover)] = v
		}
	}

	ensureBaseValue(spec, values)
	return values, warnings, nil
}

// ensureBaseValue backfills the base/base entry when a responsive property
// was supplied only through overrides. Any placed value implies a base value;
// the widest breakpoint present wins, then hover.
func ensureBaseValue(spec schema.PathSpec, values map[string]valueobjects.CanonicalValue) {
	if !spec.Responsive || len(values) == 0 {
		return
	}
	baseKey := schema.StateKey(schema.BreakpointBase, schema.StateBase)
	if _, ok := values[baseKey]; ok {
		return
	}
	for _, bp := range schema.Breakpoints() {
		if v, ok := values[schema.StateKey(bp, schema.StateBase)]; ok {
			values[baseKey] = v
			return
		}
	}
	if v, ok := values[schema.StateKey(schema.BreakpointBase, schema.StateHover)]; ok {
		values[baseKey] = v
	}
}

// compileValue validates one raw value against the property's grammar
// family, lowers it, applies the default unit, and checks the enum set and
// numeric range.
func (s *CompileService) compileValue(name string, spec schema.PathSpec, raw interface{}) (valueobjects.CanonicalValue, error) {
	in, ok := css.FromRaw(raw)
	if !ok {
		return valueobjects.CanonicalValue{}, pkgerrors.NewInvalidValueError(name, raw)
	}

	if len(spec.Enum) > 0 && in.IsText() {
		r := css.NewReport()
		if !css.ValidateEnum(in.Text(), spec.Enum, r) {
			return valueobjects.CanonicalValue{},
				pkgerrors.NewInvalidValueError(name, raw).
					WithDetail("allowed", spec.Enum)
		}
	}

	v, err := codec.Parse(name, in, spec.Family)
	if err != nil {
		return valueobjects.CanonicalValue{}, err
	}

	if spec.DefaultUnit != "" && v.Kind() == valueobjects.KindNumber {
		v = valueobjects.NewUnit(v.Number(), spec.DefaultUnit)
	}

	if spec.HasRange() {
		switch v.Kind() {
		case valueobjects.KindNumber, valueobjects.KindUnit:
			if !spec.InRange(v.Number()) {
				min, max := rangeBounds(spec)
				return valueobjects.CanonicalValue{},
					pkgerrors.NewOutOfRangeError(name, v.Number(), min, max)
			}
		}
	}
	return v, nil
}

func rangeBounds(spec schema.PathSpec) (float64, float64) {
	var min, max float64
	if spec.Min != nil {
		min = *spec.Min
	}
	if spec.Max != nil {
		max = *spec.Max
	}
	return min, max
}
