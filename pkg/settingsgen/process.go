package settingsgen

import (
	"context"
	"go/token"
	"runtime"

	"github.com/thorn-jmh/errorst"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"gsgen/pkg/logger"
	"gsgen/pkg/schemas"
)

// Options controls one generation pass.
type Options struct {
	SchemaID   string      // schema to generate, may be empty if the file holds one
	TypeName   string      // settings type name, derived from the schema id if empty
	Default    bool        // generate SchemaID, NewT(store) and DefaultT()
	Globals    bool        // emit every enum and flags of the file
	Directives []Directive // user overrides
}

// Generate resolves every key of the selected schema. It fails without a
// partial result on any structural, override or naming error.
func Generate(ctx context.Context, list *schemas.SchemaList, opts Options) (*Unit, error) {
	log := logger.FromContext(ctx)

	// first: select schema and build overrides
	sch, err := list.Select(opts.SchemaID)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to select schema")
	}
	overrides, err := NewOverrides(sch, opts.Directives)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to build overrides of schema <%s>", sch.ID)
	}
	log.Debug("built overrides", "schema", sch.ID, "count", overrides.Len())

	// second: resolve keys, each into its own slot
	results := make([]Resolution, len(sch.Keys))
	errs := make([]error, len(sch.Keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, key := range sch.Keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sig, err := key.Signature()
			if err != nil {
				errs[i] = errorst.Wrap(err, "key <%s>", key.Name)
				return nil
			}
			results[i], errs[i] = Resolve(Context{
				State: State{
					Index:     i,
					Key:       key,
					Signature: sig,
				},
				List:      list,
				Overrides: overrides,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// third: report every failed key together
	var failed error
	for i, key := range sch.Keys {
		switch {
		case errs[i] != nil:
			failed = multierr.Append(failed, errs[i])
		case results[i].Outcome == Unknown:
			sig, _ := key.Signature()
			failed = multierr.Append(failed, errorst.Wrap(ErrUnknownSignature,
				"key <%s> has signature <%s> without a default mapping, add a define or skip override for it", key.Name, sig))
		}
	}
	if failed != nil {
		return nil, errorst.Wrap(failed, "failed to resolve schema <%s>", sch.ID)
	}

	// fourth: assemble the unit
	unit := &Unit{
		SchemaID: sch.ID,
		TypeName: opts.TypeName,
		Default:  opts.Default,
	}
	if unit.TypeName == "" {
		unit.TypeName = PascalStyle(lastSegment(sch.ID)) + "Settings"
	}
	aux := newAuxSet()
	for i, key := range sch.Keys {
		res := results[i]
		log.Debug("resolved key", "key", key.Name, "outcome", res.Outcome, "origin", res.Origin, "arg", res.Arg, "ret", res.Ret)
		if res.Outcome == Skipped {
			continue
		}
		sig, _ := key.Signature()
		acc := &Accessor{
			Key:       key.Name,
			Name:      PascalStyle(key.Name),
			Ident:     SnakeStyle(key.Name),
			Signature: sig,
			Arg:       res.Arg,
			Ret:       res.Ret,
			Doc: Doc{
				Summary:     key.Summary,
				Description: key.Description,
				Default:     key.Default,
				Range:       key.Range,
			},
			Origin: res.Origin,
			Source: key,
		}
		if res.Aux != nil {
			acc.Aux = aux.add(res.Aux)
		}
		unit.Accessors = append(unit.Accessors, acc)
	}

	// fifth: global enums and flags
	if opts.Globals {
		if err := addGlobals(aux, list); err != nil {
			return nil, err
		}
	}
	unit.AuxTypes = aux.list()

	if err := checkNames(unit); err != nil {
		return nil, errorst.Wrap(err, "failed to name generated code of schema <%s>", sch.ID)
	}
	log.Info("generated settings", "schema", unit.SchemaID, "type", unit.TypeName, "accessors", len(unit.Accessors), "aux_types", len(unit.AuxTypes))
	return unit, nil
}

func addGlobals(aux *auxSet, list *schemas.SchemaList) error {
	for _, e := range list.Enums {
		a, err := EnumFromDef(e)
		if err != nil {
			return errorst.Wrap(err, "failed to synthesize enum <%s>", e.ID)
		}
		aux.add(a)
	}
	for _, f := range list.Flags {
		a, err := FlagsFromDef(f)
		if err != nil {
			return errorst.Wrap(err, "failed to synthesize flags <%s>", f.ID)
		}
		aux.add(a)
	}
	return nil
}

// checkNames rejects identifiers that are invalid or declared twice, at
// package level or as methods of the settings type.
func checkNames(unit *Unit) error {
	var errs error
	declare := func(seen map[string]string, name, owner string) {
		if !token.IsIdentifier(name) {
			errs = multierr.Append(errs, errorst.Wrap(ErrInvalidName, "%q of %s", name, owner))
			return
		}
		if prev, ok := seen[name]; ok {
			errs = multierr.Append(errs, errorst.Wrap(ErrNameCollision, "%s is declared by %s and %s", name, prev, owner))
			return
		}
		seen[name] = owner
	}

	pkg := make(map[string]string)
	declare(pkg, unit.TypeName, "the settings type")
	declare(pkg, "New"+unit.TypeName, "the settings type")
	if unit.Default {
		declare(pkg, "SchemaID", "the settings type")
		declare(pkg, "Default"+unit.TypeName, "the settings type")
	}
	for _, a := range unit.AuxTypes {
		for _, ident := range a.Idents() {
			declare(pkg, ident, a.Kind.String()+" <"+a.ID+">")
		}
	}

	methods := map[string]string{"Settings": "the embedded settings field"}
	for _, acc := range unit.Accessors {
		for _, m := range acc.Methods() {
			declare(methods, m, "key <"+acc.Key+">")
		}
	}
	return errs
}
