package bake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConnections_ResolvesKnownOOFRows(t *testing.T) {

	lines := []string{
		`Connections:  {`,
		`	C: "OO", 987654321, 123456789`,
		`	C: "OO", 1111, 123456789`, // unknown geometry, ignored
		`	C: "OP", 987654321, 123456789`, // not OO, ignored
		`}`,
	}

	geometries := map[int64]*Geometry{987654321: {ID: 987654321}}
	models := map[int64]*Model{123456789: {ID: 123456789}}

	links := BuildConnections(lines, 1, 3, geometries, models)
	assert.Equal(t, map[int64]int64{987654321: 123456789}, links)
}
