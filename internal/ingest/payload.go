package ingest

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadPayload decodes the payload document from disk without imposing any
// shape on it; shape is the schema validator's job.
func LoadPayload(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}

	return payload, nil
}

// Records extracts the raw records from a payload that has already passed
// schema validation. Entries that are not objects yield empty records;
// validation guarantees there are none by the time this runs.
func Records(payload any) []RawRecord {
	root, _ := payload.(map[string]any)
	entries, _ := root["recipes"].([]any)

	records := make([]RawRecord, 0, len(entries))
	for _, entry := range entries {
		m, _ := entry.(map[string]any)
		records = append(records, RawRecord(m))
	}
	return records
}
