// Package pool provides object pools for frequently allocated rendering
// structures to reduce GC pressure on the frame loop.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// stringBuilderPool pools strings.Builder instances for frame assembly.
var stringBuilderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

// GetStringBuilder retrieves a string builder from the pool.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets and returns a string builder to the pool.
func PutStringBuilder(sb *strings.Builder) {
	sb.Reset()
	stringBuilderPool.Put(sb)
}

// layerSlicePool pools layer slices used when compositing window frames.
var layerSlicePool = sync.Pool{
	New: func() interface{} {
		layers := make([]*lipgloss.Layer, 0, 16)
		return &layers
	},
}

// GetLayerSlice retrieves a layer slice from the pool.
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice resets and returns a layer slice to the pool.
func PutLayerSlice(layers *[]*lipgloss.Layer) {
	*layers = (*layers)[:0]
	layerSlicePool.Put(layers)
}

// stylePool pools lipgloss styles for per-window frame decoration.
var stylePool = sync.Pool{
	New: func() interface{} {
		style := lipgloss.NewStyle()
		return &style
	},
}

// GetStyle retrieves a style from the pool.
func GetStyle() *lipgloss.Style {
	return stylePool.Get().(*lipgloss.Style)
}

// PutStyle returns a style to the pool.
func PutStyle(style *lipgloss.Style) {
	stylePool.Put(style)
}
