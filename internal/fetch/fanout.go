package fetch

import (
	"context"
	"sync"

	"github.com/lazyvibe/readmestats/internal/model"
)

// FetchAll loads every locator concurrently and delivers one Result per
// locator, in completion order. The channel is closed once all fetches
// have reported.
func FetchAll(ctx context.Context, f Fetcher, locators []model.ResourceLocator) <-chan Result {
	out := make(chan Result, len(locators))
	var wg sync.WaitGroup
	for _, loc := range locators {
		wg.Add(1)
		go func(loc model.ResourceLocator) {
			defer wg.Done()
			out <- f.Fetch(ctx, loc)
		}(loc)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
