// Command quantinfo prints the kernel backends available to the
// quantization packages and runs a transform self-check.
//
// Usage:
//
//	quantinfo [flags]
//
// Examples:
//
//	quantinfo
//	quantinfo -check
//	quantinfo -check -size 1024
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-quant/internal/arch/registry"
	"github.com/cwbudde/algo-quant/quant/hartley"
	"github.com/cwbudde/algo-quant/quant/powerlaw"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	var (
		check = flag.Bool("check", false, "run transform self-checks")
		size  = flag.Int("size", 0, "restrict the Hartley self-check to one block size")
	)

	flag.Parse()

	features := cpu.DetectFeatures()
	fmt.Printf("architecture: %s\n", features.Architecture)
	fmt.Printf("simd: sse2=%v avx=%v avx2=%v neon=%v\n\n",
		features.HasSSE2, features.HasAVX, features.HasAVX2, features.HasNEON)

	printBackends(features)

	if *check {
		if err := runChecks(*size); err != nil {
			fmt.Fprintln(os.Stderr, "self-check failed:", err)
			os.Exit(1)
		}
	}
}

func printBackends(features cpu.Features) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tPRIORITY\tLEVEL\tPOWERLAW\tHARTLEY")

	for _, e := range registry.Global.ListEntries() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%v\t%v\n",
			e.Name, e.Priority, e.SIMDLevel, e.PowerLaw != nil, e.Hartley != nil)
	}

	w.Flush()

	if pl := registry.Global.LookupPowerLaw(features); pl != nil {
		fmt.Printf("\nselected power-law backend: %s\n", pl.Name)
	}
	if ht := registry.Global.LookupHartley(features); ht != nil {
		fmt.Printf("selected Hartley backend: %s\n", ht.Name)
	}
}

func runChecks(size int) error {
	fmt.Println("\nself-checks:")

	if err := checkPowerLaw(); err != nil {
		return err
	}

	for _, n := range []int{16, 64, 256, 1024} {
		if size != 0 && n != size {
			continue
		}
		if err := checkHartley(n); err != nil {
			return err
		}
	}

	return nil
}

// checkPowerLaw verifies the kernel against a per-element math.Pow
// evaluation of a full granule.
func checkPowerLaw() error {
	src := make([]float32, powerlaw.MaxGranule)
	dst := make([]float32, powerlaw.MaxGranule)
	for i := range src {
		src[i] = float32(math.Sin(float64(i)*0.1)) * 2
	}

	powerlaw.Transform(dst, src, len(src)-1)

	worst := 0.0
	for i, v := range src {
		want := math.Pow(math.Abs(float64(v)), 0.75)
		if want == 0 {
			continue
		}
		rel := math.Abs(float64(dst[i])-want) / want
		if rel > worst {
			worst = rel
		}
	}

	fmt.Printf("  powerlaw n=%d worst relative error %.3g\n", len(src), worst)
	if worst > 1e-6 {
		return fmt.Errorf("powerlaw error %g exceeds 1e-6", worst)
	}

	return nil
}

// checkHartley verifies the flat-spectrum impulse response for one block
// size.
func checkHartley(size int) error {
	fz := make([]float32, size)
	fz[0] = 1

	hartley.Transform(fz, size/2)

	worst := 0.0
	for _, v := range fz {
		if d := math.Abs(float64(v) - 1); d > worst {
			worst = d
		}
	}

	fmt.Printf("  hartley n=%d impulse deviation %.3g\n", size, worst)
	if worst > 1e-6 {
		return fmt.Errorf("hartley impulse deviation %g exceeds 1e-6 at size %d", worst, size)
	}

	return nil
}
