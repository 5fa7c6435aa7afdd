package main

import (
	"fmt"
	"io"
	stdmath "math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/jbmath/go-jbm/internal/ref"
	"github.com/jbmath/go-jbm/internal/ulp"
	"github.com/jbmath/go-jbm/jbm"
	"github.com/jbmath/go-jbm/jbm/contrib/math"
	"github.com/jbmath/go-jbm/jbm/contrib/workerpool"
)

type function struct {
	name string
	f    func(float64) float64
	ref  func(float64) float64
	dom  ref.Domain
}

var functions = []function{
	{"Exp2", math.Exp2, stdmath.Exp2, ref.Uniform(-1070, 1023)},
	{"Exp", math.Exp, stdmath.Exp, ref.Uniform(-740, 709)},
	{"Exp10", math.Exp10, ref.Exp10, ref.Uniform(-320, 308)},
	{"Expm1", math.Expm1, stdmath.Expm1, ref.Uniform(-30, 30)},
	{"Log2", math.Log2, ref.Log2, ref.LogUniform(1e-300, 1e300)},
	{"Log", math.Log, stdmath.Log, ref.LogUniform(1e-300, 1e300)},
	{"Log10", math.Log10, stdmath.Log10, ref.LogUniform(1e-300, 1e300)},
	{"Log1p", math.Log1p, stdmath.Log1p, ref.Uniform(-0.9, 3)},
	{"Cbrt", math.Cbrt, stdmath.Cbrt, ref.LogUniform(1e-300, 1e300)},
	{"Sin", math.Sin, stdmath.Sin, ref.Uniform(-10, 10)},
	{"Cos", math.Cos, stdmath.Cos, ref.Uniform(-10, 10)},
	{"Tan", math.Tan, stdmath.Tan, ref.Uniform(-1.5, 1.5)},
	{"Atan", math.Atan, stdmath.Atan, ref.Uniform(-10, 10)},
	{"Asin", math.Asin, ref.Asin, ref.Uniform(-1, 1)},
	{"Acos", math.Acos, ref.Acos, ref.Uniform(-1, 1)},
	{"Sinh", math.Sinh, stdmath.Sinh, ref.Uniform(-700, 700)},
	{"Cosh", math.Cosh, stdmath.Cosh, ref.Uniform(-700, 700)},
	{"Tanh", math.Tanh, stdmath.Tanh, ref.Uniform(-5, 5)},
	{"Asinh", math.Asinh, stdmath.Asinh, ref.Uniform(-10, 10)},
	{"Acosh", math.Acosh, stdmath.Acosh, ref.LogUniform(1, 1e10)},
	{"Atanh", math.Atanh, stdmath.Atanh, ref.Uniform(-0.99, 0.99)},
	{"Erf", math.Erf, stdmath.Erf, ref.Uniform(-4, 4)},
	{"Erfc", math.Erfc, stdmath.Erfc, ref.Uniform(-3, 26)},
}

// selectFunctions returns the functions named in names, matched without
// regard to case, or all of them when names is empty.
func selectFunctions(names []string) ([]function, error) {
	if len(names) == 0 {
		return functions, nil
	}
	out := make([]function, 0, len(names))
	for _, name := range names {
		found := false
		for _, fn := range functions {
			if strings.EqualFold(fn.name, name) {
				out = append(out, fn)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown function %q", name)
		}
	}
	return out, nil
}

type result struct {
	name    string
	samples int
	maxULP  float64
	meanULP float64
	worstX  float64
	jbmNs   float64
	stdNs   float64
}

type chunkStats struct {
	count  int
	max    float64
	worstX float64
	mean   float64
}

// check samples fn over its domain on the pool. Each pool chunk draws from
// its own generator seeded with (seed, chunk start), so a given seed, n and
// pool size always produce the same result. Samples whose reference value is
// zero or infinite are left out.
func check(pool *workerpool.Pool, fn function, n int, seed uint64) result {
	chunks := workerpool.Map(pool, n, func(start, end int) chunkStats {
		r := rand.New(rand.NewPCG(seed, uint64(start)))
		errs := make([]float64, 0, end-start)
		var st chunkStats
		for range end - start {
			x := fn.dom.Sample(r)
			want := fn.ref(x)
			if want == 0 || stdmath.IsInf(want, 0) {
				continue
			}
			e := ulp.Error(fn.f(x), want)
			if e > st.max || len(errs) == 0 {
				st.max, st.worstX = e, x
			}
			errs = append(errs, e)
		}
		st.count = len(errs)
		if st.count > 0 {
			st.mean = stat.Mean(errs, nil)
		}
		return st
	})

	res := result{name: fn.name}
	means := make([]float64, 0, len(chunks))
	weights := make([]float64, 0, len(chunks))
	for _, c := range chunks {
		if c.count == 0 {
			continue
		}
		if c.max > res.maxULP || res.samples == 0 {
			res.maxULP, res.worstX = c.max, c.worstX
		}
		res.samples += c.count
		means = append(means, c.mean)
		weights = append(weights, float64(c.count))
	}
	if len(means) > 0 {
		res.meanULP = stat.Mean(means, weights)
	}
	return res
}

var benchSink float64

// timeFunction returns the mean time per call of f over xs, repeated rounds
// times.
func timeFunction(f func(float64) float64, xs []float64, rounds int) float64 {
	var s float64
	start := time.Now()
	for range rounds {
		for _, x := range xs {
			s += f(x)
		}
	}
	elapsed := time.Since(start)
	benchSink = s
	return float64(elapsed.Nanoseconds()) / float64(rounds*len(xs))
}

func bench(fn function, seed uint64) (jbmNs, stdNs float64) {
	r := rand.New(rand.NewPCG(seed, 0))
	xs := make([]float64, 4096)
	for i := range xs {
		xs[i] = fn.dom.Sample(r)
	}
	const rounds = 64
	return timeFunction(fn.f, xs, rounds), timeFunction(fn.ref, xs, rounds)
}

func report(p *message.Printer, w io.Writer, r result, withBench bool) {
	p.Fprintf(w, "%-6s %12d samples  max %6.2f ULP (x=%.17g)  mean %.3f ULP",
		r.name, r.samples, r.maxULP, r.worstX, r.meanULP)
	if withBench {
		p.Fprintf(w, "  %.1f ns/op (std %.1f ns/op)", r.jbmNs, r.stdNs)
	}
	fmt.Fprintln(w)
}

// run checks the selected functions and prints one line per function to w.
func run(cfg config, w io.Writer) error {
	fns, err := selectFunctions(cfg.funcs)
	if err != nil {
		return fmt.Errorf("selecting functions: %w", err)
	}

	pool := workerpool.New(cfg.threads)
	defer pool.Close()

	log.Info().
		Str("dispatch", jbm.CurrentName()).
		Bool("fma", jbm.HasFMA()).
		Int("threads", pool.NumWorkers()).
		Int("samples", cfg.samples).
		Uint64("seed", cfg.seed).
		Msg("Starting check")

	m := newMetrics()
	p := message.NewPrinter(language.English)
	start := time.Now()
	for _, fn := range fns {
		res := check(pool, fn, cfg.samples, cfg.seed)
		if cfg.bench {
			res.jbmNs, res.stdNs = bench(fn, cfg.seed)
		}
		m.observe(res, cfg.bench)
		report(p, w, res, cfg.bench)
		log.Debug().Str("func", res.name).Float64("max_ulp", res.maxULP).Float64("worst_x", res.worstX).Msg("Checked")
	}
	log.Info().Int("functions", len(fns)).Dur("elapsed", time.Since(start)).Msg("Check complete")

	if cfg.textfile != "" {
		if err := m.write(cfg.textfile); err != nil {
			return fmt.Errorf("writing metrics to %s: %w", cfg.textfile, err)
		}
		log.Info().Str("path", cfg.textfile).Msg("Wrote metrics")
	}
	return nil
}
