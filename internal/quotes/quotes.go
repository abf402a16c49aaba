// Package quotes provides the motivational quotes shown in the greeting.
package quotes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Quote is a single quote with its author.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

//go:embed quotes.json
var quotesJSON []byte

var (
	loadOnce sync.Once
	all      []Quote
	loadErr  error
)

// All returns every embedded quote.
func All() ([]Quote, error) {
	loadOnce.Do(func() {
		if err := json.Unmarshal(quotesJSON, &all); err != nil {
			loadErr = fmt.Errorf("parse quotes: %w", err)
			return
		}
		if len(all) == 0 {
			loadErr = fmt.Errorf("no quotes embedded")
		}
	})
	return all, loadErr
}

// Random picks a quote using r. A nil r uses the global source.
func Random(r *rand.Rand) (Quote, error) {
	qs, err := All()
	if err != nil {
		return Quote{}, err
	}
	if r == nil {
		return qs[rand.IntN(len(qs))], nil
	}
	return qs[r.IntN(len(qs))], nil
}
