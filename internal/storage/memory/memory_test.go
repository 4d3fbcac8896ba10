package memory

import (
	"testing"

	"github.com/rawal21/stayfinder/internal/storage/storetest"
)

func TestMemoryStore(t *testing.T) {
	s := New()
	defer s.Close()

	storetest.Run(t, s)
}
