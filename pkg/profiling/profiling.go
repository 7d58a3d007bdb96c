// Package profiling writes pprof CPU and heap profiles for the --cpuprofile
// and --memprofile flags.
package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/filetug/kupo/pkg/klog"
	"github.com/sirupsen/logrus"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// StartCPU profiles the CPU into path until the returned stop is called.
func StartCPU(path string) (stop func(), err error) {
	f, err := osCreate(path)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}, nil
}

// StartHeap rewrites a heap profile at path every interval, and once more
// when the returned stop is called. Write failures are logged, not fatal.
func StartHeap(path string, interval time.Duration, log logrus.FieldLogger) (stop func()) {
	log = klog.OrDiscard(log)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				writeHeap(path, log)
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			writeHeap(path, log)
		})
	}
}

func writeHeap(path string, log logrus.FieldLogger) {
	if err := WriteHeap(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("heap profile not written")
	}
}

// WriteHeap replaces the file at path with the current heap profile.
func WriteHeap(path string) error {
	f, err := osCreate(path)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	return writeAndClose(f, pprofWriteHeapProfile)
}

func writeAndClose(f *os.File, write func(io.Writer) error) error {
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return f.Close()
}
