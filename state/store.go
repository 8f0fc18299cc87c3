// Package state persists the sidebar expansion state between sessions. The
// Store interface is the injected seam that replaces the browser-local
// storage key of the original UI.
package state

import (
	"context"

	"github.com/foomo/workspace-sidebar/sidebar"
)

// ExpansionKey is the fixed key the expansion set is stored under. The value
// is the JSON-encoded string array, the same wire shape the original kept in
// local storage.
const ExpansionKey = "expanded_items"

// Store loads and saves the expansion set. Load returns the empty set when
// nothing has been persisted yet.
type Store interface {
	Load(ctx context.Context) (sidebar.Expansion, error)
	Save(ctx context.Context, expansion sidebar.Expansion) error
}
