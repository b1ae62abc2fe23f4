package ntext_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muir/ntext"
)

type shared struct {
	ID    int
	Tags  map[string]int
	Grid  [2][2]int
	inner custom
}

func TestConcurrentFormatting(t *testing.T) {
	t.Parallel()
	r := ntext.NewRegistry()
	ntext.Handle(r, func(c custom, b *ntext.Builder) {
		b.AppendString("c" + strconv.Itoa(c.V))
	})
	s := ntext.DefaultSettings()
	s.PrivateFields = true
	f := ntext.NewFormatter(ntext.WithRegistry(r), ntext.WithSettings(s))

	const workers = 16
	results := make([][]string, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				results[w] = append(results[w], f.FormatValue(shared{
					ID:    i,
					Tags:  map[string]int{"b": i, "a": w},
					Grid:  [2][2]int{{i, w}, {w, i}},
					inner: custom{V: w},
				}))
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		for i, got := range results[w] {
			want := "[shared ID=" + strconv.Itoa(i) +
				`,Tags={"a":` + strconv.Itoa(w) + `,"b":` + strconv.Itoa(i) + "}" +
				",Grid={{" + strconv.Itoa(i) + "," + strconv.Itoa(w) + "},{" + strconv.Itoa(w) + "," + strconv.Itoa(i) + "}}" +
				",inner=c" + strconv.Itoa(w) + "]"
			assert.Equal(t, want, got)
		}
	}
}
