package mapper

import "clientfeed/pkg/clientfeed/models"

// nameBearingFields are the fields that distinguish a real client row
// from a blank separator or a mis-parsed header remnant.
var nameBearingFields = []string{"name", "forename", "surname", "companyName"}

// IsSparse reports whether a candidate record should be dropped: it has
// neither an entity type nor any name-bearing field. Mapped fields are
// only ever present when non-empty, so presence is the whole test.
func IsSparse(rec *models.Record) bool {
	if rec.Has("entityType") {
		return false
	}
	for _, field := range nameBearingFields {
		if rec.Has(field) {
			return false
		}
	}
	return true
}
