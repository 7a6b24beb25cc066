package jeod

import (
	"math"
	"os"
	"sync"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	if os.Getenv("JEOD_CONFIG") != "" {
		t.Skip("JEOD_CONFIG is set, defaults not in effect")
	}
	c := jeodConfig()
	if c.gimbalLockThreshold != GimbalLockThreshold {
		t.Fatalf("default gimbal lock threshold = %g", c.gimbalLockThreshold)
	}
	if !c.diagEnabled {
		t.Fatal("diagnostics disabled by default")
	}
}

func TestConcurrentConversions(t *testing.T) {
	// Unsynchronized goroutines may all make their first conversion call at
	// once; the config load underneath must tolerate that (run with -race).
	angles := [3]float64{0.7, math.Pi / 4, -1.1}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, seq := range []EulerSequence{XYZ, ZXZ} {
				m, err := DCMFromEuler(seq, angles)
				if err != nil {
					t.Error(err)
					return
				}
				got, err := EulerFromDCM(m, seq)
				if err != nil {
					t.Error(err)
					return
				}
				for i := 0; i < 3; i++ {
					if math.Abs(got[i]-angles[i]) > 1e-9 {
						t.Errorf("%s: concurrent round trip returned %+v", seq, got)
						return
					}
				}
				if _, err := QuatFromEuler(seq, angles); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
