// Package graph repairs prerequisite edges and orders the action list for
// emission.
package graph

import (
	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sort returns the actions in an order where every prerequisite precedes its
// dependents and annotates SortIndex on each action. When the input order is
// already valid it is returned unchanged, since emission order drives stanza
// naming and downstream dependency references. Otherwise the order is rebuilt
// by iterative depth-first emission; if a violation remains afterwards the
// input held a true cycle and a fatal error naming the dependent action and
// its unresolved prerequisite is returned.
func Sort(actions []*domain.Action) ([]*domain.Action, error) {
	if _, _, ok := findViolation(actions); !ok {
		annotate(actions)
		return actions, nil
	}

	sorted := rebuild(actions)
	if dep, prereq, ok := findViolation(sorted); ok {
		err := zerr.With(domain.ErrCycleDetected, "action", dep.ID)
		return nil, zerr.With(err, "prerequisite", prereq.ID)
	}
	annotate(sorted)
	return sorted, nil
}

// findViolation reports the first action whose prerequisite appears at the
// same or a later list position.
func findViolation(actions []*domain.Action) (dependent, prereq *domain.Action, found bool) {
	pos := make(map[*domain.Action]int, len(actions))
	for i, a := range actions {
		pos[a] = i
	}
	for i, a := range actions {
		for _, p := range a.Prerequisites {
			if j, ok := pos[p]; ok && j >= i {
				return a, p, true
			}
		}
	}
	return nil, nil, false
}

// rebuild emits actions depth-first using an explicit worklist. Production
// graphs can be deep enough to exhaust the goroutine stack, so recursion is
// out. Prerequisites are pushed in reverse to preserve their left-to-right
// priority in the output. Only actions from the input list are emitted;
// prerequisites outside it cannot constrain the order and must never be
// invented into the output.
func rebuild(actions []*domain.Action) []*domain.Action {
	known := make(map[*domain.Action]bool, len(actions))
	for _, a := range actions {
		known[a] = true
	}
	visited := make(map[*domain.Action]bool, len(actions))
	pending := make(map[*domain.Action]bool, len(actions))
	out := make([]*domain.Action, 0, len(actions))

	var stack []*domain.Action
	for _, root := range actions {
		if visited[root] {
			continue
		}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if visited[top] {
				stack = stack[:len(stack)-1]
				continue
			}

			if !pending[top] {
				pending[top] = true
				for i := len(top.Prerequisites) - 1; i >= 0; i-- {
					p := top.Prerequisites[i]
					if known[p] && !visited[p] && !pending[p] {
						stack = append(stack, p)
					}
				}
				continue
			}

			// All reachable prerequisites handled; emit.
			stack = stack[:len(stack)-1]
			visited[top] = true
			delete(pending, top)
			out = append(out, top)
		}
	}
	return out
}

func annotate(actions []*domain.Action) {
	for i, a := range actions {
		a.SortIndex = i
	}
}
