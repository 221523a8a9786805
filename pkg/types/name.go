package types

import "strings"

// Transport keys for name parts. The hyphenated forms match the CSL JSON
// convention used in the persisted creators column.
const (
	nameKeyFamily              = "family"
	nameKeyGiven               = "given"
	nameKeySuffix              = "suffix"
	nameKeyDroppingParticle    = "dropping-particle"
	nameKeyNonDroppingParticle = "non-dropping-particle"
	nameKeyLiteral             = "literal"
)

// NameData is one contributor identity, either decomposed into name parts
// or held whole in Literal. All parts are optional; a NameData with every
// part blank is empty. Literal and the part fields are exclusive in use but
// not structurally enforced.
type NameData struct {
	Family              string
	Given               string
	Suffix              string
	DroppingParticle    string
	NonDroppingParticle string
	Literal             string
}

// IsEmpty reports whether every part is blank.
func (n NameData) IsEmpty() bool {
	return n.Family == "" &&
		n.Given == "" &&
		n.Suffix == "" &&
		n.DroppingParticle == "" &&
		n.NonDroppingParticle == "" &&
		n.Literal == ""
}

// Render returns the human-readable form used in tables and search. The
// literal wins when present; otherwise the non-empty parts are joined with
// single spaces in the order given, dropping-particle, non-dropping-particle,
// family, suffix.
func (n NameData) Render() string {
	if n.Literal != "" {
		return n.Literal
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{
		n.Given, n.DroppingParticle, n.NonDroppingParticle, n.Family, n.Suffix,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ToTransport converts the name to its persisted mapping form. Blank parts
// are omitted; an empty name serializes to an empty map.
func (n NameData) ToTransport() map[string]string {
	out := make(map[string]string)
	if n.Family != "" {
		out[nameKeyFamily] = n.Family
	}
	if n.Given != "" {
		out[nameKeyGiven] = n.Given
	}
	if n.Suffix != "" {
		out[nameKeySuffix] = n.Suffix
	}
	if n.DroppingParticle != "" {
		out[nameKeyDroppingParticle] = n.DroppingParticle
	}
	if n.NonDroppingParticle != "" {
		out[nameKeyNonDroppingParticle] = n.NonDroppingParticle
	}
	if n.Literal != "" {
		out[nameKeyLiteral] = n.Literal
	}
	return out
}

// NameFromTransport builds a NameData from its persisted mapping form.
// Absent keys default to blank, so ToTransport and NameFromTransport
// round-trip losslessly.
func NameFromTransport(m map[string]string) NameData {
	return NameData{
		Family:              m[nameKeyFamily],
		Given:               m[nameKeyGiven],
		Suffix:              m[nameKeySuffix],
		DroppingParticle:    m[nameKeyDroppingParticle],
		NonDroppingParticle: m[nameKeyNonDroppingParticle],
		Literal:             m[nameKeyLiteral],
	}
}
