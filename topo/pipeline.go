package topo

import (
	"fmt"

	"go.uber.org/zap"
)

// ComponentResult is one successfully oriented component. Index is the
// component's position in extraction order and is stable even when other
// components fail to orient, so output file numbering never shifts.
type ComponentResult struct {
	Index int
	Tris  []OrientedTri
}

// Result is the outcome of a pipeline run over one soup.
type Result struct {
	Removed    int // triangles eroded by RemoveDangling
	Regular    int
	Weird      int
	Unassigned int // weird triangles bordering no component on >=2 edges
	Components []ComponentResult
	Failed     []error // per-component orientation contradictions
}

// Run executes the repair pipeline on an ingested soup: adjacency build,
// dangling-triangle erosion, regular/weird classification, component
// extraction, weird reattachment and orientation propagation. Stages run
// strictly in that order over the shared adjacency map, which only the
// erosion stage mutates.
//
// An orientation contradiction fails only the affected component; the
// remaining components still complete and are returned.
func Run(s *Soup, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}

	s.BuildAdjacency()
	log.Info("adjacency built",
		zap.Int("triangles", s.Len()),
		zap.Int("points", len(s.Points)),
		zap.Int("edges", len(s.Adj)))

	removed := RemoveDangling(s)
	log.Info("dangling triangles removed",
		zap.Int("removed", removed),
		zap.Int("surviving", s.Len()))

	regular, weird := Classify(s)
	log.Info("triangles classified",
		zap.Int("regular", len(regular)),
		zap.Int("weird", len(weird)))

	comps := ExtractComponents(regular, s.Adj)
	log.Info("connected components extracted", zap.Int("components", len(comps)))

	unassigned := AttachWeird(comps, weird, s.Adj)
	if len(unassigned) > 0 {
		log.Warn("weird triangles left unassigned", zap.Int("count", len(unassigned)))
	}

	res := &Result{
		Removed:    removed,
		Regular:    len(regular),
		Weird:      len(weird),
		Unassigned: len(unassigned),
	}
	for i, c := range comps {
		tris, err := Orient(c)
		if err != nil {
			err = fmt.Errorf("component %02d: %w", i, err)
			log.Error("orientation failed", zap.Int("component", i), zap.Error(err))
			res.Failed = append(res.Failed, err)
			continue
		}
		log.Info("component oriented",
			zap.Int("component", i),
			zap.Int("triangles", len(tris)))
		res.Components = append(res.Components, ComponentResult{Index: i, Tris: tris})
	}
	return res
}
