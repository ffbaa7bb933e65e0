package main

import (
	"encoding/binary"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash/v2"
	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/Queues"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run random operation scripts against every strategy",
	RunE: func(*cobra.Command, []string) error {
		results := fuzz(cfg)
		renderRun(os.Stdout, results)
		return verdict(results)
	},
}

func init() {
	f := runCmd.Flags()
	f.Int("ops", DefaultOps, "operations per script")
	f.Int("keyspace", DefaultKeySpace, "keys are drawn from [0, keyspace)")
	f.Int("workers", DefaultWorkers, "scripts run in parallel")
}

type job struct {
	name string
	rank bool
}

func (j job) String() string {
	if j.rank {
		return j.name + "/rank"
	}
	return j.name + "/plain"
}

type result struct {
	job
	ops     int
	size    int
	height  int
	elapsed time.Duration
	digest  uint64
	err     error
}

// fuzz runs one script per strategy and augmentation. All scripts use the
// same seed, so every correct strategy ends with the same key set.
func fuzz(c *Config) []*result {
	var jobs []job
	q := Queues.MakeConcurrentLinkedQueue[job]()
	for _, s := range c.Strategies {
		for _, rank := range []bool{false, true} {
			if (s == "sb" || s == "rand") && !rank {
				continue
			}
			j := job{s, rank}
			jobs = append(jobs, j)
			q.Push(j)
		}
	}

	table := haxmap.New[string, *result]()
	var wg sync.WaitGroup
	for range min(c.Workers, len(jobs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j, err := q.Pop(); err == nil; j, err = q.Pop() {
				r := script(c, j)
				table.Set(j.String(), r)
				if r.err != nil {
					log.Error().Err(r.err).Str("tree", j.String()).Int("op", r.ops).Msg("script failed")
				} else {
					log.Debug().Str("tree", j.String()).Dur("elapsed", r.elapsed).Msg("script passed")
				}
			}
		}()
	}
	wg.Wait()

	results := make([]*result, 0, len(jobs))
	for _, j := range jobs {
		r, _ := table.Get(j.String())
		results = append(results, r)
	}
	return results
}

// script applies c.Ops random operations to a fresh tree, mirroring every
// mutation on a btree.BTreeG and checking the tree after each of them.
func script(c *Config, j job) *result {
	r := &result{job: j}
	start := time.Now()
	defer func() { r.elapsed = time.Since(start) }()

	rng := rand.New(rand.NewPCG(c.Seed, c.Seed+1))
	t := newSubject(j.name, j.rank, c.Seed)
	oracle := btree.NewOrderedG[int](32)
	fail := func(format string, args ...any) *result {
		r.err = errors.Errorf(format, args...)
		return r
	}

	for ; r.ops < c.Ops; r.ops++ {
		k := rng.IntN(c.KeySpace)
		mutated := true
		switch op := rng.IntN(20); {
		case op < 8:
			_, had := oracle.ReplaceOrInsert(k)
			if t.insert(k) == had {
				return fail("insert %d: tree and oracle disagree on presence", k)
			}
		case op < 13:
			_, had := oracle.Delete(k)
			if t.remove(k) != had {
				return fail("remove %d: tree and oracle disagree on presence", k)
			}
		case op < 16:
			mutated = j.name == "splay"
			if t.has(k) != oracle.Has(k) {
				return fail("search %d: tree and oracle disagree", k)
			}
		case op < 18:
			mutated = false
			i := rng.IntN(oracle.Len() + 1)
			want, ok := nth(oracle, i)
			if got, has := t.at(i); has != ok || got != want {
				return fail("select %d: got %d,%v want %d,%v", i, got, has, want, ok)
			} else if ok && t.position(got) != i {
				return fail("position %d: got %d want %d", got, t.position(got), i)
			}
		default:
			if !t.splitJoin(k) {
				return fail("split/join at %d broke a part", k)
			}
		}
		if !mutated {
			continue
		}
		if !t.verify() {
			return fail("invariant broken after op %d", r.ops)
		} else if t.size() != oracle.Len() {
			return fail("size %d, oracle has %d", t.size(), oracle.Len())
		}
	}

	r.size, r.height = t.size(), t.height()
	r.digest = digest(t)
	if want := oracleDigest(oracle); r.digest != want {
		return fail("digest %x, oracle digest %x", r.digest, want)
	}
	return r
}

// nth key of the oracle, in ascending order.
func nth(o *btree.BTreeG[int], i int) (k int, ok bool) {
	o.Ascend(func(item int) bool {
		if i == 0 {
			k, ok = item, true
			return false
		}
		i--
		return true
	})
	return
}

func digestSeq(each func(func(int) bool)) uint64 {
	d := xxhash.New()
	var buf [8]byte
	each(func(k int) bool {
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
		_, _ = d.Write(buf[:])
		return true
	})
	return d.Sum64()
}

func digest(t subject) uint64 {
	return digestSeq(t.keys())
}

func oracleDigest(o *btree.BTreeG[int]) uint64 {
	return digestSeq(func(f func(int) bool) { o.Ascend(f) })
}

// verdict fails if any script failed or the scripts disagree on the final
// key set.
func verdict(results []*result) error {
	var failed []string
	for _, r := range results {
		if r.err != nil {
			failed = append(failed, r.String())
		}
	}
	if len(failed) > 0 {
		return errors.Errorf("%d script(s) failed: %v", len(failed), failed)
	}
	for _, r := range results[1:] {
		if r.digest != results[0].digest {
			return errors.Errorf("%s and %s ended with different keys", results[0], r)
		}
	}
	return nil
}
