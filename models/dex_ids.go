package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DexIDs is a list of dex indexes. The API expects it comma joined in a single value,
// both as a query parameter (enabledDexIds=1,2,3) and inside JSON bodies ("1,2,3").
type DexIDs []int

// ParseDexIDs splits a comma joined list. Blank input yields an empty list.
func ParseDexIDs(s string) (DexIDs, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DexIDs{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make(DexIDs, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid dex id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (ids DexIDs) String() string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// EncodeValues implements query.Encoder.
func (ids DexIDs) EncodeValues(key string, v *url.Values) error {
	v.Set(key, ids.String())
	return nil
}

func (ids DexIDs) MarshalJSON() ([]byte, error) {
	return json.Marshal(ids.String())
}

// UnmarshalJSON accepts the comma joined string form and a plain array of numbers.
func (ids *DexIDs) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []int
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*ids = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dex ids must be a comma joined string or an array: %w", err)
	}
	parsed, err := ParseDexIDs(s)
	if err != nil {
		return err
	}
	*ids = parsed
	return nil
}
