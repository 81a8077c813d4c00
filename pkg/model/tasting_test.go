package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ramsvik.no/Olsmak/pkg/model"
)

func TestClampBeerNo(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		delta      int
		totalBeers int
		want       int
	}{
		{name: "steps forward", current: 3, delta: 1, totalBeers: 12, want: 4},
		{name: "steps back", current: 3, delta: -1, totalBeers: 12, want: 2},
		{name: "floors at first beer", current: 1, delta: -1, totalBeers: 12, want: 1},
		{name: "floors from large negative delta", current: 3, delta: -10, totalBeers: 12, want: 1},
		{name: "clamps at last beer", current: 12, delta: 1, totalBeers: 12, want: 12},
		{name: "clamps from large positive delta", current: 3, delta: 100, totalBeers: 12, want: 12},
		{name: "unbounded when total unknown", current: 3, delta: 100, totalBeers: 0, want: 103},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, model.ClampBeerNo(test.current, test.delta, test.totalBeers))
		})
	}
}
