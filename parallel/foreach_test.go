package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestForEach(Te *testing.T) {
	out := make([]int, 1000)
	err := ForEach(len(out), 8, func(i int) error {
		out[i] = i * i
		return nil
	})
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range out {
		if v != i*i {
			Te.Fatalf("slot %d holds %d", i, v)
		}
	}
}

func TestForEachBounds(Te *testing.T) {
	//limit<=0 must still run everything, serially
	var n int64
	err := ForEach(50, 0, func(i int) error { atomic.AddInt64(&n, 1); return nil })
	if err != nil {
		Te.Fatal(err)
	}
	if n != 50 {
		Te.Errorf("ran %d bodies, want 50", n)
	}
	ForEach(0, 4, func(i int) error { Te.Error("body called for empty range"); return nil })
	ForEach(-3, 4, func(i int) error { Te.Error("body called for negative range"); return nil })
}

func TestForEachError(Te *testing.T) {
	var n int64
	err := ForEach(20, 4, func(i int) error {
		atomic.AddInt64(&n, 1)
		if i%7 == 3 {
			return fmt.Errorf("body %d failed", i)
		}
		return nil
	})
	if err == nil {
		Te.Error("failure not reported")
	}
	// every index still runs
	if n != 20 {
		Te.Errorf("ran %d bodies, want 20", n)
	}
}
