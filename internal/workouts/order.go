package workouts

import "sort"

// reorderSequence computes the workout's exercises in their new relative
// order: items sorted ascending by the supplied order value (ties keep
// their input position), skipping ids not present in current. The order
// values themselves only rank the items, the final orders come from
// denseRenumber.
func reorderSequence(items []ReorderItem, current map[int]bool) []int {
	sorted := make([]ReorderItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	ids := make([]int, 0, len(sorted))
	for _, item := range sorted {
		if !current[item.WorkoutExerciseID] {
			continue
		}
		ids = append(ids, item.WorkoutExerciseID)
	}
	return ids
}

// denseRenumber assigns contiguous orders 1..N to ids already in their
// desired relative order.
func denseRenumber(ids []int) []ReorderItem {
	renumbered := make([]ReorderItem, len(ids))
	for i, id := range ids {
		renumbered[i] = ReorderItem{WorkoutExerciseID: id, Order: i + 1}
	}
	return renumbered
}
