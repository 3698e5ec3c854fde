// Package mapper implements the row-to-record transformation: one
// spreadsheet row in, one candidate client record out. Mapping is total
// and pure; malformed cells degrade to field omission, never to an error.
package mapper

import (
	"strings"

	"clientfeed/pkg/clientfeed/models"
	"clientfeed/pkg/clientfeed/normalize"
)

// Entity type discriminator values.
const (
	EntityPerson       = "PERSON"
	EntityOrganisation = "ORGANISATION"
)

// identityColumn pairs a source column with the identity-number type it
// produces. Order is significant and differs by entity type.
type identityColumn struct {
	column string
	idType string
}

var organisationIdentityColumns = []identityColumn{
	{"Duns Number", "duns"},
	{"National Tax No.", "tax_no"},
	{"Legal Entity Identifier (LEI)", "lei"},
}

var personIdentityColumns = []identityColumn{
	{"National ID", "national_id"},
	{"Driving Licence No.", "driving_licence"},
	{"Social Security Number", "ssn"},
	{"Passport No.", "passport_no"},
}

// addressColumns maps source columns to address fields, in output order.
// countryCode is handled separately because of its casing rule.
var addressColumns = []struct {
	column string
	field  string
}{
	{"Address line1", "line1"},
	{"Address line2", "line2"},
	{"Address line3", "line3"},
	{"Address line4", "line4"},
	{"poBox", "poBox"},
	{"city", "city"},
	{"state", "state"},
	{"province", "province"},
	{"postcode", "postcode"},
	{"country", "country"},
}

// securityTagColumns maps the three tag columns to their output keys.
var securityTagColumns = []struct {
	column string
	field  string
}{
	{"Tag 1", "orTags1"},
	{"Tag 2", "orTags2"},
	{"Tag 3", "orTags3"},
}

var aliasColumns = []string{"aliases1", "aliases2", "aliases3", "aliases4"}

var aliasNameTypes = []string{"AKA1", "AKA2", "AKA3", "AKA4"}

// addIfPresent is the single gate deciding whether an optional field
// appears: the value is stored only when it is non-empty.
func addIfPresent(rec *models.Record, key string, value interface{}) {
	if normalize.IsEmpty(value) {
		return
	}
	rec.Set(key, value)
}

// Map converts one row into a candidate client record. The steps run in a
// fixed order because later rules read state set earlier (the canonical
// entity type in particular), and because field insertion order must be
// reproducible in the serialized output.
func Map(row models.Row) *models.Record {
	rec := models.NewRecord()
	rec.Set("objectType", "client")

	addIfPresent(rec, "clientId", row.Cell("clientId").Value())
	addIfPresent(rec, "entityType", row.Cell("entityType").Value())
	addIfPresent(rec, "status", row.Cell("status").Value())

	entityType := ""
	if !normalize.IsEmpty(row.Cell("entityType")) {
		entityType = strings.ToUpper(row.Cell("entityType").String())
	}

	mapNames(rec, row, entityType)

	addIfPresent(rec, "titles", row.Cell("titles").Value())
	addIfPresent(rec, "suffixes", row.Cell("suffixes").Value())

	if entityType == EntityPerson {
		mapPersonFields(rec, row)
	}
	if entityType == EntityOrganisation {
		addIfPresent(rec, "incorporationCountryCode", row.Cell("incorporationCountryCode").Value())
		addIfPresent(rec, "dateOfIncorporation", row.Cell("dateOfIncorporation").String())
	}

	assessmentCell := row.Cell("assessmentRequired")
	assessmentRequired := isAssessmentTruthy(assessmentCell)

	// lastReviewed conversion is gated on the computed boolean, not on the
	// cell's own emptiness.
	if assessmentRequired {
		if millis, ok := normalize.EpochMillis(row.Cell("lastReviewed")); ok {
			addIfPresent(rec, "lastReviewed", millis)
		}
	}

	if millis, ok := normalize.EpochMillis(row.Cell("periodicReviewStartDate")); ok {
		addIfPresent(rec, "periodicReviewStartDate", millis)
	}
	addIfPresent(rec, "periodicReviewPeriod", row.Cell("periodicReviewPeriod").String())

	if addr := mapAddress(row); addr.Len() > 0 {
		rec.Set("addresses", []*models.Record{addr})
	}

	addIfPresent(rec, "segment", row.Cell("segment").String())

	if ids := mapIdentityNumbers(row, entityType); len(ids) > 0 {
		rec.Set("identityNumbers", ids)
	}

	if aliases := mapAliases(row, entityType); len(aliases) > 0 {
		rec.Set("aliases", aliases)
	}

	if isSecurityEnabled(row.Cell("securityEnabled")) {
		// An empty security object is meaningful output, distinct from the
		// field's absence, so this attach is unconditional.
		rec.Set("security", mapSecurity(row))
	}

	// assessmentRequired is the final key: presence tracks the raw cell,
	// the value is the normalized boolean.
	if !normalize.IsEmpty(assessmentCell) {
		rec.Set("assessmentRequired", assessmentRequired)
	}

	return rec
}

// mapNames applies the entity-type-dependent name rules. Unknown or
// missing entity types fall back to the person rule deliberately.
func mapNames(rec *models.Record, row models.Row, entityType string) {
	if entityType == EntityOrganisation {
		addIfPresent(rec, "companyName", row.Cell("name").Value())
		return
	}
	addIfPresent(rec, "name", row.Cell("name").Value())
	addIfPresent(rec, "forename", row.Cell("forename").Value())
	addIfPresent(rec, "middlename", row.Cell("middlename").Value())
	addIfPresent(rec, "surname", row.Cell("surname").Value())
}

func mapPersonFields(rec *models.Record, row models.Row) {
	addIfPresent(rec, "gender", strings.ToUpper(row.Cell("gender").String()))
	addIfPresent(rec, "dateOfBirth", row.Cell("dateOfBirth").String())
	addIfPresent(rec, "birthPlaceCountryCode", row.Cell("birthPlaceCountryCode").Value())
	addIfPresent(rec, "deceasedOn", row.Cell("deceasedOn").String())
	addIfPresent(rec, "occupation", row.Cell("occupation").Value())
	addIfPresent(rec, "domicileCodes", normalize.StringList(row.Cell("domicileCodes")))
	addIfPresent(rec, "nationalityCodes", normalize.StringList(row.Cell("nationalityCodes")))
}

// mapAddress builds the single address object from the eleven address
// columns. The caller wraps it in a one-element list only when at least
// one field is present.
func mapAddress(row models.Row) *models.Record {
	addr := models.NewRecord()
	for _, ac := range addressColumns {
		addIfPresent(addr, ac.field, row.Cell(ac.column).String())
	}
	if cc := row.Cell("countryCode"); !normalize.IsEmpty(cc) {
		code := strings.ToUpper(cc.String())
		// First 2 characters, not bytes, so multi-byte runes stay intact.
		if r := []rune(code); len(r) > 2 {
			code = string(r[:2])
		}
		addr.Set("countryCode", code)
	}
	return addr
}

// mapIdentityNumbers collects {type, value} entries from the candidate
// columns for the entity type, in their fixed order.
func mapIdentityNumbers(row models.Row, entityType string) []*models.Record {
	columns := personIdentityColumns
	if entityType == EntityOrganisation {
		columns = organisationIdentityColumns
	}

	var ids []*models.Record
	for _, ic := range columns {
		cell := row.Cell(ic.column)
		if normalize.IsEmpty(cell) {
			continue
		}
		entry := models.NewRecord()
		entry.Set("type", ic.idType)
		entry.Set("value", normalize.IdentifierString(cell))
		ids = append(ids, entry)
	}
	return ids
}

// mapAliases collects up to four alias entries in column order. The name
// key is "name" for persons and "companyName" otherwise.
func mapAliases(row models.Row, entityType string) []*models.Record {
	nameKey := "companyName"
	if entityType == EntityPerson {
		nameKey = "name"
	}

	var aliases []*models.Record
	for i, column := range aliasColumns {
		cell := row.Cell(column)
		if normalize.IsEmpty(cell) {
			continue
		}
		entry := models.NewRecord()
		entry.Set(nameKey, cell.String())
		entry.Set("nameType", aliasNameTypes[i])
		aliases = append(aliases, entry)
	}
	return aliases
}

// mapSecurity builds the security object from the tag columns. Tag values
// are carried raw, not stringified.
func mapSecurity(row models.Row) *models.Record {
	sec := models.NewRecord()
	for _, tc := range securityTagColumns {
		addIfPresent(sec, tc.field, row.Cell(tc.column).Value())
	}
	return sec
}

// isAssessmentTruthy reports whether the assessmentRequired cell reads as
// true: its stringified, lower-cased form is "true", "1", or "1.0". This
// literal set intentionally differs from the security flag's.
func isAssessmentTruthy(c models.Cell) bool {
	switch strings.ToLower(c.String()) {
	case "true", "1", "1.0":
		return true
	}
	return false
}

// isSecurityEnabled reports whether the security flag reads as true: its
// stringified, lower-cased form is "true", "t", or "1".
func isSecurityEnabled(c models.Cell) bool {
	switch strings.ToLower(c.String()) {
	case "true", "t", "1":
		return true
	}
	return false
}
