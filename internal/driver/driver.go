// Package driver runs a scripted sequence of operations against a
// binary search tree and records what happened.
package driver

import (
	"context"
	"fmt"

	"github.com/npat-efault/bst/bintree"
	"github.com/npat-efault/bst/internal/config"
	"github.com/rs/zerolog"
)

// Phases after which the tree's traversals are recorded.
const (
	PhaseInsert = "after insert"
	PhaseDelete = "after delete"
)

// Traversal is the key sequence of one walk over the tree.
type Traversal struct {
	Phase string
	Order bintree.Order
	Keys  []int
}

// Lookup is the outcome of a search.
type Lookup struct {
	Key   int
	Found bool
}

// Report describes a completed run.
type Report struct {
	Inserted   []int // keys added to the tree
	Duplicates []int // keys ignored because already present
	Lookups    []Lookup
	Deleted    []int // keys removed from the tree
	Absent     []int // keys not removed because not present
	Traversals []Traversal
	Len        int // node count before teardown
	Height     int // height before teardown
	Destroyed  int // nodes destroyed by teardown
}

// Run builds a tree from cfg.Insert, traverses it in cfg.Orders,
// searches it for cfg.Search, deletes cfg.Delete and traverses it
// again, then tears it down. If cfg.Verify is set the tree's
// invariants are checked after every mutating phase. Run stops early
// if ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Report, error) {
	rep := &Report{}
	tree := bintree.New[int]()
	defer func() {
		rep.Destroyed = tree.Clear()
		logger.Debug().Int("nodes", rep.Destroyed).Msg("tree destroyed")
	}()

	for _, k := range cfg.Insert {
		if tree.Insert(k) {
			rep.Inserted = append(rep.Inserted, k)
			logger.Trace().Int("key", k).Msg("inserted")
		} else {
			rep.Duplicates = append(rep.Duplicates, k)
			logger.Debug().Int("key", k).Msg("duplicate key ignored")
		}
	}
	if e := logger.Info(); e.Enabled() {
		e.Int("inserted", len(rep.Inserted)).
			Int("duplicates", len(rep.Duplicates)).
			Int("height", tree.Height()).
			Msg("tree built")
	}
	if err := check(ctx, tree, cfg, PhaseInsert); err != nil {
		return nil, err
	}
	record(rep, tree, cfg.Orders, PhaseInsert)

	for _, k := range cfg.Search {
		n := tree.Search(k)
		rep.Lookups = append(rep.Lookups, Lookup{Key: k, Found: n != nil})
		logger.Debug().Int("key", k).Bool("found", n != nil).Msg("searched")
	}

	if len(cfg.Delete) == 0 {
		rep.Len, rep.Height = tree.Len(), tree.Height()
		return rep, nil
	}
	for _, k := range cfg.Delete {
		if tree.Delete(k) {
			rep.Deleted = append(rep.Deleted, k)
			logger.Trace().Int("key", k).Msg("deleted")
		} else {
			rep.Absent = append(rep.Absent, k)
			logger.Debug().Int("key", k).Msg("key to delete not present")
		}
	}
	if e := logger.Info(); e.Enabled() {
		e.Int("deleted", len(rep.Deleted)).
			Int("absent", len(rep.Absent)).
			Int("height", tree.Height()).
			Msg("keys deleted")
	}
	if err := check(ctx, tree, cfg, PhaseDelete); err != nil {
		return nil, err
	}
	record(rep, tree, cfg.Orders, PhaseDelete)

	rep.Len, rep.Height = tree.Len(), tree.Height()
	return rep, nil
}

func check(ctx context.Context, tree *bintree.Tree[int], cfg *config.Config, phase string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.Verify != nil && *cfg.Verify {
		if err := tree.Verify(); err != nil {
			return fmt.Errorf("%s: %w", phase, err)
		}
	}
	return nil
}

func record(rep *Report, tree *bintree.Tree[int], orders []bintree.Order, phase string) {
	for _, o := range orders {
		rep.Traversals = append(rep.Traversals, Traversal{
			Phase: phase,
			Order: o,
			Keys:  tree.Keys(o),
		})
	}
}
