// Package widget is a test fixture: its Widget type shares a canonical
// type name with the Widget in the sibling package of the same name.
package widget

import "github.com/vk/assetcore/internal/resource"

type Widget struct{ Count int }

func (w *Widget) Initialize(props resource.Properties) error { return nil }
