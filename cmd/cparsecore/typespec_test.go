package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/types"
)

func TestParseTypeSpecResolvesAtomicKeywords(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want types.AtomicKind
	}{
		{name: "plain int", spec: "int", want: types.Int},
		{name: "unsigned shorthand", spec: "unsigned", want: types.UInt},
		{name: "long long", spec: "long long", want: types.LongLong},
		{name: "unsigned long long", spec: "unsigned long long", want: types.ULongLong},
		{name: "double", spec: "double", want: types.Double},
	}

	tb := types.NewTable(config.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTypeSpec(tb, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, types.KindAtomic, got.Kind())
			assert.Equal(t, tt.want, got.AtomicKind(), "%q should resolve to %v", tt.spec, tt.want)
		})
	}
}

func TestParseTypeSpecHandlesPointersAndQualifiers(t *testing.T) {
	tb := types.NewTable(config.Default())

	got, err := parseTypeSpec(tb, "const char *")
	require.NoError(t, err)
	require.Equal(t, types.KindPointer, got.Kind())

	pointee := got.PointsTo()
	assert.Equal(t, types.KindAtomic, pointee.Kind())
	assert.Equal(t, types.Char, pointee.AtomicKind())
	assert.True(t, pointee.Qualifiers().Has(types.QualConst))
}

func TestParseTypeSpecStackedStars(t *testing.T) {
	tb := types.NewTable(config.Default())

	got, err := parseTypeSpec(tb, "int **")
	require.NoError(t, err)
	require.Equal(t, types.KindPointer, got.Kind())
	require.Equal(t, types.KindPointer, got.PointsTo().Kind())
	assert.Equal(t, types.Int, got.PointsTo().PointsTo().AtomicKind())
}

func TestParseTypeSpecRejectsUnknownNames(t *testing.T) {
	tb := types.NewTable(config.Default())

	_, err := parseTypeSpec(tb, "struct point")
	assert.Error(t, err)
}

func TestParseTypeSpecRejectsEmptyInput(t *testing.T) {
	tb := types.NewTable(config.Default())

	_, err := parseTypeSpec(tb, "")
	assert.Error(t, err)
}
