package Calendar

// ApplyFilter keeps the tasks and bookings whose owner and property both
// match the selection. Each dimension is checked independently: an empty
// id set places no restriction, and a record passes only when both
// dimensions pass. Input order is preserved.
func ApplyFilter(tasks []ScheduledTask, bookings []BookingInterval, selection FilterSelection) ([]ScheduledTask, []BookingInterval) {
	owners := toSet(selection.OwnerIDs)
	properties := toSet(selection.PropertyIDs)

	keep := func(ownerID, propertyID string) bool {
		if len(owners) > 0 {
			if _, ok := owners[ownerID]; !ok {
				return false
			}
		}
		if len(properties) > 0 {
			if _, ok := properties[propertyID]; !ok {
				return false
			}
		}
		return true
	}

	filteredTasks := make([]ScheduledTask, 0, len(tasks))
	for _, t := range tasks {
		if keep(t.OwnerID, t.PropertyID) {
			filteredTasks = append(filteredTasks, t)
		}
	}

	filteredBookings := make([]BookingInterval, 0, len(bookings))
	for _, b := range bookings {
		if keep(b.OwnerID, b.PropertyID) {
			filteredBookings = append(filteredBookings, b)
		}
	}

	return filteredTasks, filteredBookings
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
