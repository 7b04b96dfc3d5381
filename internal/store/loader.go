package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"places-api/internal/models"
)

// The sentinel upstream uses for a missing value, as opposed to a
// structurally absent field.
const absentSentinel = "N/A"

// Ordered fallback keys for the constituency fields, resolved once at
// ingestion. The source files disagree on casing between snapshots.
var (
	lokSabhaKeys = []string{
		"lokSabhaConstituency", "LokSabhaConstituency", "loksabhaConstituency", "lok_sabha_constituency",
	}
	vidhanSabhaKeys = []string{
		"vidhanSabhaConstituency", "VidhanSabhaConstituency", "vidhansabhaConstituency", "vidhan_sabha_constituency",
	}
)

// LoadItems reads the item catalog from a JSON array of objects.
func LoadItems(path string) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read items file: %w", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("loader: parse items file: %w", err)
	}
	items := make([]models.Item, 0, len(raw))
	for _, m := range raw {
		items = append(items, models.ItemFromMap(m))
	}
	return items, nil
}

// LoadNeighborhoods reads the gazetteer from a JSON array of objects,
// resolving the constituency key aliases and dropping records without
// usable coordinates.
func LoadNeighborhoods(path string) ([]models.Neighborhood, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read neighborhoods file: %w", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("loader: parse neighborhoods file: %w", err)
	}

	records := make([]models.Neighborhood, 0, len(raw))
	skipped := 0
	for _, m := range raw {
		lat, latOK := floatField(m, "latitude")
		lng, lngOK := floatField(m, "longitude")
		if !latOK || !lngOK {
			skipped++
			continue
		}
		records = append(records, models.Neighborhood{
			PlaceName:               stringField(m, "placeName"),
			PlaceType:               stringField(m, "placeType"),
			Country:                 stringField(m, "country"),
			State:                   stringField(m, "state"),
			Region:                  stringField(m, "region"),
			District:                stringField(m, "district"),
			Pincode:                 stringField(m, "pincode"),
			LokSabhaConstituency:    firstPresent(m, lokSabhaKeys),
			VidhanSabhaConstituency: firstPresent(m, vidhanSabhaKeys),
			ImageURLs:               stringSliceField(m, "imageUrls"),
			Latitude:                lat,
			Longitude:               lng,
		})
	}
	if skipped > 0 {
		log.Warn().Int("count", skipped).Msg("skipped neighborhoods without coordinates")
	}
	return records, nil
}

// postalColumns maps normalized CSV header names to the record field they
// populate. Snapshots of the postal directory disagree on header naming.
var postalColumns = map[string]string{
	"pincode":      "pincode",
	"officename":   "office",
	"office":       "office",
	"district":     "district",
	"statename":    "state",
	"state":        "state",
	"divisionname": "division",
	"division":     "division",
	"regionname":   "region",
	"region":       "region",
	"circlename":   "",
	"latitude":     "lat",
	"lat":          "lat",
	"longitude":    "lng",
	"lng":          "lng",
	"long":         "lng",
}

// LoadPostalRecords reads the postal directory from a header-mapped CSV
// file, dropping rows without numeric coordinates.
func LoadPostalRecords(path string) ([]models.PostalRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open postal file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: read postal header: %w", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if field, ok := postalColumns[key]; ok && field != "" {
			cols[field] = i
		}
	}
	for _, required := range []string{"pincode", "lat", "lng"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("loader: postal header missing %s column", required)
		}
	}

	var records []models.PostalRecord
	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read postal row: %w", err)
		}
		lat, latErr := strconv.ParseFloat(cell(row, cols, "lat"), 64)
		lng, lngErr := strconv.ParseFloat(cell(row, cols, "lng"), 64)
		if latErr != nil || lngErr != nil {
			skipped++
			continue
		}
		records = append(records, models.PostalRecord{
			Pincode:    cell(row, cols, "pincode"),
			OfficeName: cell(row, cols, "office"),
			District:   cell(row, cols, "district"),
			StateName:  cell(row, cols, "state"),
			Division:   cell(row, cols, "division"),
			Region:     cell(row, cols, "region"),
			Latitude:   lat,
			Longitude:  lng,
		})
	}
	if skipped > 0 {
		log.Warn().Int("count", skipped).Msg("skipped postal rows without coordinates")
	}
	return records, nil
}

func cell(row []string, cols map[string]int, field string) string {
	i, ok := cols[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	if s == absentSentinel {
		return ""
	}
	return s
}

func stringSliceField(m map[string]any, key string) []string {
	v, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(v))
	for _, e := range v {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func floatField(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// firstPresent resolves an aliased field: the first key that is present
// with a non-empty, non-sentinel value wins.
func firstPresent(m map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" && s != absentSentinel {
			return s
		}
	}
	return ""
}
