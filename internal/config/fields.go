package config

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldString accepts arbitrary string input.
	FieldString FieldType = "string"
	// FieldPath accepts a path; a leading ~ is expanded when used.
	FieldPath FieldType = "path"
	// FieldStringList accepts a comma-separated list.
	FieldStringList FieldType = "string_list"
	// FieldNonNegativeInt accepts zero or a positive integer.
	FieldNonNegativeInt FieldType = "non_negative_int"
)

// FieldDef describes a single config field.
type FieldDef struct {
	Key         string
	Type        FieldType
	Description string
}

// fields is the canonical ordered registry of config keys.
var fields = []FieldDef{
	{Key: "layout.download_folder", Type: FieldPath, Description: "default download folder"},
	{Key: "layout.channel", Type: FieldString, Description: "default channel name, index or id"},
	{Key: "layout.languages", Type: FieldStringList, Description: "default language keys"},
	{Key: "network.timeout_seconds", Type: FieldNonNegativeInt, Description: "HTTP timeout (0 = 60s)"},
	{Key: "network.max_download_mb", Type: FieldNonNegativeInt, Description: "download size limit (0 = 200 MiB)"},
	{Key: "network.user_agent", Type: FieldString, Description: "HTTP User-Agent header"},
}

// LookupField returns the field definition for key.
func LookupField(key string) (FieldDef, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Fields returns a copy of all field definitions in registry order.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	copy(out, fields)
	return out
}

// FieldKeys returns every config key in registry order.
func FieldKeys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}
