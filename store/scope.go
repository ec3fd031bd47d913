package store

import "strconv"

// OwnerColumn tags each row with the user account that created it. Rows
// missing the tag belong to nobody and are excluded from every owner's scope.
const OwnerColumn = "owner_id"

// ScopeToOwner filters a full table down to the rows belonging to one owner.
func ScopeToOwner(rows []Row, ownerID int) []Row {
	want := strconv.Itoa(ownerID)
	scoped := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row[OwnerColumn] == want {
			scoped = append(scoped, row)
		}
	}
	return scoped
}

// MergeOwnerRows replaces one owner's subset within the full table: the
// result is every row of other owners, unchanged, followed by the edited
// subset with the owner tag forced on. If both the full set and the edited
// subset are empty the result is an empty table, clearing any stale legacy
// rows that were never owner-tagged.
func MergeOwnerRows(full, edited []Row, ownerID int) []Row {
	if len(full) == 0 && len(edited) == 0 {
		return []Row{}
	}

	want := strconv.Itoa(ownerID)
	merged := make([]Row, 0, len(full)+len(edited))
	for _, row := range full {
		if row[OwnerColumn] != want {
			merged = append(merged, row)
		}
	}
	for _, row := range edited {
		tagged := row.Clone()
		tagged[OwnerColumn] = want
		merged = append(merged, tagged)
	}
	return merged
}
