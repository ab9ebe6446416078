// Package dispatch exposes the ops package through a name-keyed call
// surface: positional arguments plus a keyword map, validated against each
// operation's call shape before any buffer is touched.
//
//	n, err := dispatch.Call("asum", []any{[]int8{1, 2, 3}}, map[string]any{"maxlen": 2})
package dispatch
