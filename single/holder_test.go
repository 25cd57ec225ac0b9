package single

import (
	"errors"
	"sync"
	"testing"
)

func TestHolderConstructsOnce(t *testing.T) {
	calls := 0
	h := NewHolder(func() (int, error) {
		calls++
		return 42, nil
	})

	if h.Done() {
		t.Fatalf("factory should not run before Get")
	}

	for i := 0; i < 3; i++ {
		v, err := h.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != 42 {
			t.Fatalf("Get = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Fatalf("factory ran %d times, want 1", calls)
	}
	if !h.Done() {
		t.Fatalf("Done should report true after Get")
	}
}

func TestHolderStickyError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	h := NewHolder(func() (*struct{}, error) {
		calls++
		return nil, boom
	})

	for i := 0; i < 2; i++ {
		if _, err := h.Get(); !errors.Is(err, boom) {
			t.Fatalf("Get err = %v, want %v", err, boom)
		}
	}
	if calls != 1 {
		t.Fatalf("failed construction retried: %d calls", calls)
	}
}

func TestHolderNoFactory(t *testing.T) {
	h := NewHolder[int](nil)
	if _, err := h.Get(); !errors.Is(err, ErrNoFactory) {
		t.Fatalf("Get err = %v, want ErrNoFactory", err)
	}
}

func TestHolderConcurrentGet(t *testing.T) {
	calls := 0
	h := NewHolder(func() (string, error) {
		calls++
		return "one", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := h.Get(); err != nil || v != "one" {
				t.Errorf("Get = %q, %v", v, err)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("factory ran %d times under contention, want 1", calls)
	}
}

func TestHolderDoneConcurrentWithGet(t *testing.T) {
	h := NewHolder(func() (int, error) {
		return 7, nil
	})

	stop := make(chan struct{})
	var pollers sync.WaitGroup
	for i := 0; i < 2; i++ {
		pollers.Add(1)
		go func() {
			defer pollers.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = h.Done()
				}
			}
		}()
	}

	var getters sync.WaitGroup
	for i := 0; i < 8; i++ {
		getters.Add(1)
		go func() {
			defer getters.Done()
			if v, err := h.Get(); err != nil || v != 7 {
				t.Errorf("Get = %d, %v", v, err)
			}
		}()
	}
	getters.Wait()
	close(stop)
	pollers.Wait()

	if !h.Done() {
		t.Fatalf("Done should report true once Get has returned")
	}
}

func TestHolderMustPanicsOnError(t *testing.T) {
	h := NewHolder(func() (int, error) {
		return 0, errors.New("nope")
	})
	defer func() {
		if recover() == nil {
			t.Fatalf("Must should panic when the factory fails")
		}
	}()
	h.Must()
}
