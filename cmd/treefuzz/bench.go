package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time insert, search and remove of every strategy and of other ordered containers",
	RunE: func(*cobra.Command, []string) error {
		renderBench(os.Stdout, cfg.BenchN, bench(cfg))
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("bench-n", DefaultBenchN, "keys per container")
}

// container is an ordered set of ints under measurement.
type container struct {
	name                   string
	insert, search, remove func(k int)
}

func fromSubject(name string, t subject) container {
	return container{
		name:   name,
		insert: func(k int) { t.insert(k) },
		search: func(k int) { t.has(k) },
		remove: func(k int) { t.remove(k) },
	}
}

func baselines() []container {
	rb := redblacktree.NewWithIntComparator()
	avl := avltree.NewWithIntComparator()
	bt := btree.NewOrderedG[int](32)
	ll := llrb.New()
	return []container{
		{"gods/redblacktree", func(k int) { rb.Put(k, struct{}{}) }, func(k int) { rb.Get(k) }, func(k int) { rb.Remove(k) }},
		{"gods/avltree", func(k int) { avl.Put(k, struct{}{}) }, func(k int) { avl.Get(k) }, func(k int) { avl.Remove(k) }},
		{"google/btree", func(k int) { bt.ReplaceOrInsert(k) }, func(k int) { bt.Has(k) }, func(k int) { bt.Delete(k) }},
		{"GoLLRB", func(k int) { ll.ReplaceOrInsert(llrb.Int(k)) }, func(k int) { ll.Has(llrb.Int(k)) }, func(k int) { ll.Delete(llrb.Int(k)) }},
	}
}

type timing struct {
	name                   string
	insert, search, remove time.Duration // per operation.
}

func measure(keys []int, f func(int)) time.Duration {
	start := time.Now()
	for _, k := range keys {
		f(k)
	}
	return time.Since(start) / time.Duration(len(keys))
}

// bench fills every container with the same shuffled keys, searches them in
// another order and removes them in a third.
func bench(c *Config) []timing {
	rng := rand.New(rand.NewPCG(c.Seed, c.Seed+1))
	keys := rng.Perm(c.BenchN)
	var cs []container
	for _, s := range c.Strategies {
		cs = append(cs, fromSubject(s, newSubject(s, true, c.Seed)))
	}
	cs = append(cs, baselines()...)

	ts := make([]timing, 0, len(cs))
	for _, ct := range cs {
		t := timing{name: ct.name}
		t.insert = measure(keys, ct.insert)
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		t.search = measure(keys, ct.search)
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		t.remove = measure(keys, ct.remove)
		log.Debug().Str("container", ct.name).Dur("insert", t.insert).Dur("search", t.search).Dur("remove", t.remove).Msg("measured")
		ts = append(ts, t)
	}
	return ts
}
