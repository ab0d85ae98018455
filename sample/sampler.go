// Package sample implements the driver that turns a compiled generator
// graph into a finite set of records: it builds one instance of a
// collection's generator, wraps it in gen.Aggregate, and loops Complete on
// that same instance until the target count is reached or growth stalls —
// each round's fresh value comes from the generator rearming itself, not
// from rebuilding it. Grounded directly on
// original_source/synth/src/sampler.rs's NamespaceSampleStrategy and
// CollectionSampleStrategy.
package sample

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/synthkit/synth/compiler"
	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// Sampler drives a compiled namespace. It needs both the compiled
// factories (to build generators) and the original content tree (to tell
// whether a collection's root is an Array, which samples by extending the
// output with each round's elements rather than appending one record per
// round — mirroring the original's Value::Array-extension special case).
type Sampler struct {
	ns       *content.Namespace
	compiled *compiler.Compiled
	log      *logrus.Logger
}

func New(ns *content.Namespace, compiled *compiler.Compiled, log *logrus.Logger) *Sampler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sampler{ns: ns, compiled: compiled, log: log}
}

// SampleCollection drives one collection to target records (or array
// elements, for an Array-rooted collection), seeded deterministically.
func (s *Sampler) SampleCollection(name string, target int, seed int64) ([]value.Value, error) {
	node, ok := s.ns.Collections[name]
	if !ok {
		return nil, &SampleError{Collection: name, Message: "unknown collection"}
	}
	build, ok := s.compiled.Collections[name]
	if !ok {
		return nil, &SampleError{Collection: name, Message: "collection was not compiled"}
	}

	rng := rand.New(rand.NewSource(seed))
	agg := gen.NewAggregate[gen.Never, value.Value](build())
	arrayMode := node.Kind() == content.KindArray

	out := make([]value.Value, 0, target)
	for len(out) < target {
		roundStart := len(out)
		v := agg.Complete(rng)
		if arrayMode {
			items, _ := v.Array()
			out = append(out, items...)
		} else {
			out = append(out, v)
		}
		if len(out) == roundStart {
			s.log.WithField("collection", name).Warn("sample: round produced no new records, stopping")
			break
		}
		s.log.WithFields(logrus.Fields{"collection": name, "generated": len(out)}).Debug("sample: progress")
	}
	if len(out) > target {
		out = out[:target]
	}
	return out, nil
}

// SampleNamespace drives every collection named in targets, in the
// namespace's topological order (same_as producers before observers),
// falling back to declaration order for collections the topology doesn't
// otherwise distinguish. Collections absent from targets are skipped.
func (s *Sampler) SampleNamespace(targets map[string]int, seed int64) (map[string][]value.Value, []string, error) {
	order, err := s.ns.TopologicalOrder()
	if err != nil {
		return nil, nil, err
	}
	out := make(map[string][]value.Value, len(targets))
	var sampledOrder []string
	for _, name := range order {
		target, ok := targets[name]
		if !ok {
			continue
		}
		records, err := s.SampleCollection(name, target, seed)
		if err != nil {
			return nil, nil, err
		}
		out[name] = records
		sampledOrder = append(sampledOrder, name)
	}
	return out, sampledOrder, nil
}
