package order

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Wilayas is the fixed enumeration of the 58 Algerian first-level
// administrative regions, in official order. The storefront presents these
// as the only selectable delivery regions; the canonical French spellings
// below are what gets persisted to the record store.
var Wilayas = []string{
	"Adrar", "Chlef", "Laghouat", "Oum El Bouaghi", "Batna", "Béjaïa", "Biskra", "Béchar",
	"Blida", "Bouira", "Tamanrasset", "Tébessa", "Tlemcen", "Tiaret", "Tizi Ouzou", "Alger",
	"Djelfa", "Jijel", "Sétif", "Saïda", "Skikda", "Sidi Bel Abbès", "Annaba", "Guelma",
	"Constantine", "Médéa", "Mostaganem", "M'Sila", "Mascara", "Ouargla", "Oran", "El Bayadh",
	"Illizi", "Bordj Bou Arréridj", "Boumerdès", "El Tarf", "Tindouf", "Tissemsilt", "El Oued",
	"Khenchela", "Souk Ahras", "Tipaza", "Mila", "Aïn Defla", "Naâma", "Aïn Témouchent",
	"Ghardaïa", "Relizane", "Ouled Djellal", "Bordj Badji Mokhtar", "Béni Abbès", "Timimoun",
	"Touggourt", "Djanet", "In Salah", "In Guezzam", "Ménéa", "El Meghaier",
}

// wilayaIndex maps folded wilaya names to their canonical spelling
var wilayaIndex = buildWilayaIndex()

func buildWilayaIndex() map[string]string {
	idx := make(map[string]string, len(Wilayas))
	for _, w := range Wilayas {
		idx[foldWilaya(w)] = w
	}
	return idx
}

// diacriticRemover strips combining marks after canonical decomposition,
// so "Béjaïa" and "Bejaia" fold to the same key.
var diacriticRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldWilaya normalizes a wilaya name for lookup: trims, removes diacritics,
// lowercases, and drops apostrophes ("M'Sila" vs "MSila").
func foldWilaya(name string) string {
	folded, _, err := transform.String(diacriticRemover, strings.TrimSpace(name))
	if err != nil {
		folded = strings.TrimSpace(name)
	}
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "'", "")
	folded = strings.ReplaceAll(folded, "’", "")
	return folded
}

// CanonicalWilaya resolves a shopper-supplied region name to its canonical
// spelling. Older storefront clients submit spellings without diacritics
// ("Bejaia", "Setif"); both resolve to the same enumeration entry.
// Returns ("", false) if the name is not one of the 58 wilayas.
func CanonicalWilaya(name string) (string, bool) {
	canonical, ok := wilayaIndex[foldWilaya(name)]
	return canonical, ok
}

// IsValidWilaya reports whether name resolves to one of the 58 wilayas
func IsValidWilaya(name string) bool {
	_, ok := CanonicalWilaya(name)
	return ok
}
