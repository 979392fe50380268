package goroutine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenworks/backoffice/internal/shared/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	SafeGo(logger.NewNopLogger(), "boom", func() {
		defer wg.Done()
		panic("notification transport exploded")
	})

	wg.Wait()
	assert.True(t, true, "process survived the panic")
}
