// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/cycle"
)

func TestFeedFinite(t *testing.T) {
	skipRace(t)
	f := cycle.NewFeed[int](4)
	done := make(chan error, 1)
	go func() {
		for v := range 100 {
			if err := f.Send(v); err != nil {
				done <- err
				return
			}
		}
		f.Close()
		done <- nil
	}()
	c, err := cycle.Naive(cycle.FromProducers(f.Producer()))
	if err != nil {
		t.Fatalf("Naive: %v", err)
	}
	got, err := cycle.Collect(c)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !slices.Equal(got, ints(0, 99)) {
		t.Fatalf("got %d values, want 100", len(got))
	}
}

func TestFeedOnline(t *testing.T) {
	skipRace(t)
	f := cycle.NewFeed[int](8)
	stop := make(chan struct{})
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		p := rho(20, 7)
		for {
			select {
			case <-stop:
				return
			default:
			}
			v, _ := p()
			err := f.Offer(v)
			for iox.IsWouldBlock(err) {
				select {
				case <-stop:
					return
				default:
				}
				err = f.Offer(v)
			}
		}
	}()
	c, err := cycle.Gosper(cycle.FromProducers(f.Producer()))
	if err != nil {
		t.Fatalf("Gosper: %v", err)
	}
	_, err = cycle.Collect(c)
	close(stop)
	<-sent
	cd, ok := cycle.AsCycle(err)
	if !ok {
		t.Fatalf("expected *CycleDetected, got %v", err)
	}
	if cd.Period != cycle.Known(7) {
		t.Fatalf("period got %v, want 7", cd.Period)
	}
}

func TestFeedWouldBlock(t *testing.T) {
	skipRace(t)
	f := cycle.NewFeed[int](4)
	n := 0
	for ; n < 64; n++ {
		if err := f.Offer(n); err != nil {
			if !errors.Is(err, iox.ErrWouldBlock) {
				t.Fatalf("Offer: %v", err)
			}
			break
		}
	}
	if n == 0 || n == 64 {
		t.Fatalf("queue accepted %d values", n)
	}
	f.Close()
	got := drain(f.Producer(), 128)
	if !slices.Equal(got, ints(0, n-1)) {
		t.Fatalf("got %v, want %v", got, ints(0, n-1))
	}
}

func TestFeedClosed(t *testing.T) {
	skipRace(t)
	f := cycle.NewFeed[string](2)
	if err := f.Offer("a"); err != nil {
		t.Fatalf("Offer: %v", err)
	}
	f.Close()
	if err := f.Offer("b"); !errors.Is(err, cycle.ErrFeedClosed) {
		t.Fatalf("got %v, want ErrFeedClosed", err)
	}
	if err := f.Send("b"); !errors.Is(err, cycle.ErrFeedClosed) {
		t.Fatalf("got %v, want ErrFeedClosed", err)
	}
	p := f.Producer()
	if v, ok := p(); !ok || v != "a" {
		t.Fatalf("got (%q, %v), want (a, true)", v, ok)
	}
	if _, ok := p(); ok {
		t.Fatal("closed feed produced past its values")
	}
}

func TestNewFeedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewFeed(0) did not panic")
		}
	}()
	cycle.NewFeed[int](0)
}
