package diagtest

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"konf/internal/diagfmt"
)

const (
	// CaseFileName is the file that marks a directory as a golden case.
	CaseFileName = "case.toml"
	// GoldenFileName holds the expected rendered output of a case.
	GoldenFileName = "expected.golden"
)

// Result is the outcome of one golden case.
type Result struct {
	Dir    string
	Passed bool
	Got    string
	Want   string
	Err    error
}

// Runner executes golden cases. Jobs limits concurrency (0 = NumCPU).
// Update rewrites golden files instead of comparing. Cache is optional.
type Runner struct {
	Update bool
	Jobs   int
	Cache  *ResultCache
}

// RunDir walks root for case directories and runs them all. Construction
// and rendering happen concurrently, each case into its own buffer, so no
// write serialization is needed; results come back sorted by directory.
func (r *Runner) RunDir(ctx context.Context, root string) ([]Result, error) {
	dirs, err := findCaseDirs(root)
	if err != nil {
		return nil, err
	}

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]Result, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.runCase(dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Dir < results[j].Dir })
	return results, nil
}

// runCase renders one case and compares it to its golden file.
func (r *Runner) runCase(dir string) Result {
	res := Result{Dir: dir}

	casePath := filepath.Join(dir, CaseFileName)
	raw, err := os.ReadFile(casePath)
	if err != nil {
		res.Err = err
		return res
	}

	got, err := r.renderCase(casePath, raw)
	if err != nil {
		res.Err = err
		return res
	}
	res.Got = got

	goldenPath := filepath.Join(dir, GoldenFileName)
	if r.Update {
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			res.Err = err
			return res
		}
		res.Want = got
		res.Passed = true
		return res
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		res.Err = fmt.Errorf("missing golden file: %w", err)
		return res
	}
	res.Want = string(want)
	res.Passed = res.Got == res.Want
	return res
}

// renderCase produces the rendered text for a case, consulting the result
// cache first. Rendering is deterministic, so cached text keyed by the
// case-file digest is always valid for an unchanged case.
func (r *Runner) renderCase(casePath string, raw []byte) (string, error) {
	key := HashCase(raw)
	if r.Cache != nil {
		var payload ResultPayload
		if ok, err := r.Cache.Get(key, &payload); err == nil && ok {
			return payload.Rendered, nil
		}
	}

	c, err := LoadCase(casePath)
	if err != nil {
		return "", err
	}
	d, err := c.Build()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := diagfmt.Write(&buf, d); err != nil {
		return "", err
	}

	if r.Cache != nil {
		payload := ResultPayload{
			Schema:   resultCacheSchemaVersion,
			KindID:   d.Kind.ID(),
			Rendered: buf.String(),
		}
		// Cache misses are not fatal: the run already has its answer.
		_ = r.Cache.Put(key, &payload)
	}
	return buf.String(), nil
}

func findCaseDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == CaseFileName {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)
	return dirs, nil
}
