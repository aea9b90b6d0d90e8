package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

func newRawStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apexfuel.db")
	st, err := store.Open(path, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := newRawStore(t)
	if err := service.Initialize(st, nil, time.Now()); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	return st
}
