package resolvers

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sap-gg/gqlmerge/internal/merge"
)

// Options configures Merge.
type Options struct {
	// Exclusions are "Type.field", "Type.*" or "Type" entries removed from a
	// merged Map once all inputs have been merged.
	Exclusions []string

	// Logger receives debug output. Defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithExclusions appends exclusions.
func WithExclusions(exclusions ...string) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, exclusions...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = &l
	}
}

func newOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = &log.Logger
	}
	return o
}

// DeepMerge merges maps left to right into a new Map. Nested maps are merged
// key by key, everything else is replaced by the later value.
func DeepMerge(maps ...Map) Map {
	plain := make([]map[string]any, len(maps))
	for i, m := range maps {
		plain[i] = m
	}
	return merge.DeepMergeMaps(plain...)
}

// Merge combines defs into a single Result. Later definitions take
// precedence over earlier ones.
//
// A single Map or Factory is returned as is and a single Group is unwrapped
// by merging its contents without the caller's options; neither path
// applies exclusions. When any input is a Factory the result is a Factory
// and exclusions are not applied to the maps it produces.
func Merge(defs []Definition, opts ...Option) Result {
	o := newOptions(opts)

	switch len(defs) {
	case 0:
		return o.exclude(Map{})
	case 1:
		return single(defs[0])
	}

	var (
		maps      []Map
		factories []Factory
	)
	for i, def := range defs {
		if g, ok := def.(Group); ok {
			def = Merge(g)
		}
		switch d := def.(type) {
		case Map:
			maps = append(maps, d)
		case Factory:
			if d == nil {
				o.Logger.Debug().Int("index", i).Msg("dropping nil resolver factory")
				continue
			}
			factories = append(factories, d)
		default:
			o.Logger.Debug().
				Int("index", i).
				Str("type", fmt.Sprintf("%T", def)).
				Msg("dropping unrecognized resolver definition")
		}
	}

	if len(factories) > 0 {
		o.Logger.Trace().
			Int("maps", len(maps)).
			Int("factories", len(factories)).
			Msg("composing resolver factory")
		if len(o.Exclusions) > 0 {
			o.Logger.Debug().
				Strs("exclusions", o.Exclusions).
				Msg("exclusions are not applied to factory results")
		}
		return compose(maps, factories)
	}

	return o.exclude(DeepMerge(maps...))
}

func single(def Definition) Result {
	switch d := def.(type) {
	case Group:
		return Merge(d)
	case Map:
		return d
	case Factory:
		if d != nil {
			return d
		}
	}
	return Map{}
}

// compose returns a factory that invokes every factory with the same
// arguments and merges the direct maps followed by the produced ones.
func compose(maps []Map, factories []Factory) Factory {
	return func(args ...any) Map {
		all := make([]Map, 0, len(maps)+len(factories))
		all = append(all, maps...)
		for _, f := range factories {
			all = append(all, f(args...))
		}
		return DeepMerge(all...)
	}
}

func (o *Options) exclude(m Map) Map {
	for _, s := range o.Exclusions {
		e := ParseExclusion(s)
		o.Logger.Trace().Str("exclusion", e.String()).Msg("applying exclusion")
		e.apply(m)
	}
	return m
}
