package protoclass

import (
	"context"
	"fmt"
)

// Instance builds a new object from the descriptor chain. The superclass is
// instantiated first with the arguments the constructor forwards, then this
// level's private scope is created, its public members are layered over the
// inherited ones, and finally the construct initializer runs against the
// private scope.
func (d *Descriptor) Instance(args ...Value) (*Object, error) {
	return d.InstanceContext(context.Background(), args...)
}

// InstanceContext is Instance with cancellation checked before each level.
func (d *Descriptor) InstanceContext(ctx context.Context, args ...Value) (*Object, error) {
	if depth := d.Depth(); depth > d.config.MaxDepth {
		return nil, fmt.Errorf("%s: %w (%d > %d)", d.name, ErrDepthExceeded, depth, d.config.MaxDepth)
	}
	return d.instantiate(ctx, args)
}

func (d *Descriptor) instantiate(ctx context.Context, args []Value) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	depth := d.Depth()
	cfg := d.config

	var rec Construction
	cfg.trace(TraceEvent{Class: d.name, Depth: depth, Phase: PhaseConstructor, Args: args})
	if d.constructor != nil {
		var err error
		rec, err = d.constructor(d, args)
		if err != nil {
			return nil, &InstantiationError{Class: d.name, Phase: PhaseConstructor, Err: err}
		}
	}

	var obj *Object
	if d.super != nil {
		superArgs := rec.SuperArguments
		if superArgs == nil {
			superArgs = []Value{}
		}
		cfg.trace(TraceEvent{Class: d.name, Depth: depth, Phase: PhaseSuper, Args: superArgs})
		base, err := d.super.instantiate(ctx, superArgs)
		if err != nil {
			return nil, &InstantiationError{Class: d.name, Phase: PhaseSuper, Err: err}
		}
		obj = base
	} else {
		obj = newObject()
	}

	scope := newScope(d.name)
	cfg.trace(TraceEvent{Class: d.name, Depth: depth, Phase: PhasePrivate})
	for name, member := range d.private {
		scope.Set(name, member.instantiate(name, scope))
	}

	cfg.trace(TraceEvent{Class: d.name, Depth: depth, Phase: PhasePublic})
	for name, member := range d.public {
		obj.Set(name, member.instantiate(name, scope))
	}

	if rec.Construct != nil {
		cfg.trace(TraceEvent{Class: d.name, Depth: depth, Phase: PhaseConstruct})
		if err := rec.Construct(scope); err != nil {
			return nil, &InstantiationError{Class: d.name, Phase: PhaseConstruct, Err: err}
		}
	}

	return obj, nil
}
