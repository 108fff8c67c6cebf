package tracker

import (
	"context"
	"strconv"
	"strings"
)

// Selection is the presentation layer's context for bulk actions: the tab
// being viewed and the assignments picked in it.
type Selection struct {
	Tab string
	IDs []int64
}

// ParseIDs converts raw row keys into assignment ids.
func ParseIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(r), 10, 64)
		if err != nil || id <= 0 {
			return nil, &InvalidIDError{Raw: r}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// selected resolves the selection to ids that exist in sel.Tab. An empty
// Tab matches any tab.
func (m *Manager) selected(ctx context.Context, sel Selection) ([]int64, error) {
	if len(sel.IDs) == 0 {
		return nil, ErrNothingSelected
	}
	ids := make([]int64, 0, len(sel.IDs))
	for _, id := range sel.IDs {
		a, err := m.store.GetAssignment(ctx, id)
		if err != nil {
			return nil, err
		}
		if a == nil || (sel.Tab != "" && a.TabName != sel.Tab) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MarkCompleted completes every selected assignment and returns how many
// were affected. Ids that no longer exist are ignored.
func (m *Manager) MarkCompleted(ctx context.Context, sel Selection) (int, error) {
	ids, err := m.selected(ctx, sel)
	if err != nil {
		return 0, err
	}
	for i, id := range ids {
		if err := m.store.MarkCompleted(ctx, id); err != nil {
			return i, err
		}
	}
	return len(ids), nil
}

// DeleteAssignments removes every selected assignment and returns how many
// were deleted.
func (m *Manager) DeleteAssignments(ctx context.Context, sel Selection) (int, error) {
	ids, err := m.selected(ctx, sel)
	if err != nil {
		return 0, err
	}
	for i, id := range ids {
		if err := m.store.DeleteAssignment(ctx, id); err != nil {
			return i, err
		}
	}
	return len(ids), nil
}
