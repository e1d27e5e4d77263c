package config

import "strings"

// FieldKeys maps each custom-field purpose to the opaque remote keys that carry it.
// A purpose may list several keys; the first one present on the payload wins.
type FieldKeys struct {
	DealCAES       StringArray `json:"deal_caes,omitempty"`
	DealDirection  StringArray `json:"deal_direction,omitempty"`
	DealFUNDAE     StringArray `json:"deal_fundae,omitempty"`
	DealHotelNight StringArray `json:"deal_hotel_night,omitempty"`
	DealHours      StringArray `json:"deal_hours,omitempty"`
	DealSite       StringArray `json:"deal_site,omitempty"`
	OrgPhone       StringArray `json:"org_phone,omitempty"`
	OrgTaxID       StringArray `json:"org_tax_id,omitempty"`
}

// DefaultFieldKeys returns the keys of the production CRM account
func DefaultFieldKeys() FieldKeys {
	return FieldKeys{
		DealCAES:       StringArray{"e1971bf3a21d48737b682bf8d864ddc5eb15a351"},
		DealDirection:  StringArray{"8b2a7570f5ba8aa4754f061cd9dc92fd778376a7"},
		DealFUNDAE:     StringArray{"245d60d4d18aec40ba888998ef92e5d00e494583"},
		DealHotelNight: StringArray{"c3a6daf8eb5b4e59c3c07cda7e2f7b8fc9f3b0f4"},
		DealHours:      StringArray{"38f11c8876ecde803a027fbf3c9041fda2ae7eb7"},
		DealSite:       StringArray{"676d6bd51e52999c582c01f67c99a35ed30bf6ae"},
		OrgPhone:       StringArray{"b4379db06dfbe0758d84c2c2dd45ef04fa093b6d"},
		OrgTaxID:       StringArray{"6d39d015a33921753410c1bab0b067ca93b8cf2c"},
	}
}

// fieldEntry pairs the environment suffix of a purpose with its key list
type fieldEntry struct {
	env  string
	keys *StringArray
}

func (f *FieldKeys) entries() []fieldEntry {
	return []fieldEntry{
		{"DEAL_CAES", &f.DealCAES},
		{"DEAL_DIRECTION", &f.DealDirection},
		{"DEAL_FUNDAE", &f.DealFUNDAE},
		{"DEAL_HOTEL_NIGHT", &f.DealHotelNight},
		{"DEAL_HOURS", &f.DealHours},
		{"DEAL_SITE", &f.DealSite},
		{"ORG_PHONE", &f.OrgPhone},
		{"ORG_TAX_ID", &f.OrgTaxID},
	}
}

// Merge returns a copy of f where every purpose configured in other replaces f's keys
func (f FieldKeys) Merge(other FieldKeys) FieldKeys {
	merged := f
	target := merged.entries()
	for i, entry := range other.entries() {
		if len(*entry.keys) > 0 {
			*target[i].keys = append(StringArray(nil), (*entry.keys)...)
		}
	}
	return merged
}

// FieldKeysFromEnv reads DEALSYNC_FIELD_<PURPOSE> variables as comma-separated key lists
func FieldKeysFromEnv(lookupEnv func(string) (string, bool)) FieldKeys {
	var keys FieldKeys
	for _, entry := range keys.entries() {
		if value, ok := lookupEnv("DEALSYNC_FIELD_" + entry.env); ok && strings.TrimSpace(value) != "" {
			*entry.keys = parseCommaSeparated(value)
		}
	}
	return keys
}
