package content

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// historySchemaJSON constrains the persisted history blob to an array of
// objects. Individual record fields stay loose so blobs written by older
// revisions still parse.
const historySchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"previous_text": {"type": "string"},
			"new_text":      {"type": "string"},
			"edited_by":     {"type": "string"},
			"edited_at":     {"type": "string"},
			"notes":         {"type": ["string", "null"]}
		}
	}
}`

var historySchema = mustCompileHistorySchema()

func mustCompileHistorySchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("history.json", bytes.NewReader([]byte(historySchemaJSON))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("history.json")
}

// ParseHistory decodes the stored history blob into edit records. Absent,
// null, or malformed blobs yield an empty slice rather than an error so a
// corrupted column never blocks reads or edits.
func ParseHistory(raw json.RawMessage) []EditHistoryRecord {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []EditHistoryRecord{}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return []EditHistoryRecord{}
	}
	if err := historySchema.Validate(decoded); err != nil {
		return []EditHistoryRecord{}
	}

	var records []EditHistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return []EditHistoryRecord{}
	}
	if records == nil {
		records = []EditHistoryRecord{}
	}
	return records
}

// AppendHistory parses the existing blob, appends the supplied record, and
// re-encodes. Prior entries are preserved unchanged; the new record is always
// last.
func AppendHistory(raw json.RawMessage, record EditHistoryRecord) (json.RawMessage, error) {
	records := append(ParseHistory(raw), record)
	encoded, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	return encoded, nil
}
