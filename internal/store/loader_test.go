package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadItems(t *testing.T) {
	path := writeTempFile(t, "items.json", `[
		{"category-id": "greetings-1", "multiline_text": "Hello\nவணக்கம்", "languages": ["en", "ta"], "author": "upstream"}
	]`)

	items, err := LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "greetings-1", items[0].CategoryID)
	assert.Equal(t, "Hello\nவணக்கம்", items[0].Text)
	assert.Equal(t, []string{"en", "ta"}, items[0].Languages)
	assert.Equal(t, "upstream", items[0].Extra["author"])
}

func TestLoadItems_Missing(t *testing.T) {
	_, err := LoadItems(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadNeighborhoods(t *testing.T) {
	path := writeTempFile(t, "neighborhoods.json", `[
		{
			"placeName": "Banjara Hills",
			"placeType": "Neighborhood",
			"country": "India",
			"state": "Telangana",
			"region": "N/A",
			"district": "Hyderabad",
			"pincode": "500034",
			"LokSabhaConstituency": "Hyderabad",
			"vidhansabhaConstituency": "N/A",
			"imageUrls": ["https://example.org/a.jpg"],
			"latitude": 17.41,
			"longitude": 78.43
		},
		{
			"placeName": "No Coordinates",
			"placeType": "Neighborhood"
		},
		{
			"placeName": "String Coords",
			"pincode": "N/A",
			"latitude": "17.5",
			"longitude": "78.5"
		}
	]`)

	records, err := LoadNeighborhoods(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	banjara := records[0]
	assert.Equal(t, "Banjara Hills", banjara.PlaceName)
	// "N/A" is the upstream absence sentinel, normalized away at ingestion.
	assert.Equal(t, "", banjara.Region)
	// The differently-cased alias resolves; the sentinel-valued one stays empty.
	assert.Equal(t, "Hyderabad", banjara.LokSabhaConstituency)
	assert.Equal(t, "", banjara.VidhanSabhaConstituency)
	assert.Equal(t, []string{"https://example.org/a.jpg"}, banjara.ImageURLs)

	coords := records[1]
	assert.Equal(t, "String Coords", coords.PlaceName)
	assert.Equal(t, "", coords.Pincode)
	assert.Equal(t, 17.5, coords.Latitude)
}

func TestLoadPostalRecords(t *testing.T) {
	path := writeTempFile(t, "pincodes.csv",
		"circlename,regionname,divisionname,officename,pincode,district,statename,latitude,longitude\n"+
			"Telangana,Hyderabad HQ,Hyderabad City,Hyderabad GPO,500001,Hyderabad,Telangana,17.39,78.47\n"+
			"Telangana,Hyderabad HQ,Hyderabad City,Bad Row,500002,Hyderabad,Telangana,NA,NA\n")

	records, err := LoadPostalRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "500001", r.Pincode)
	assert.Equal(t, "Hyderabad GPO", r.OfficeName)
	assert.Equal(t, "Telangana", r.StateName)
	assert.Equal(t, "Hyderabad HQ", r.Region)
	assert.Equal(t, 17.39, r.Latitude)
	assert.Equal(t, 78.47, r.Longitude)
}

func TestLoadPostalRecords_MissingColumns(t *testing.T) {
	path := writeTempFile(t, "pincodes.csv", "officename,district\nHyderabad GPO,Hyderabad\n")
	_, err := LoadPostalRecords(path)
	assert.ErrorContains(t, err, "missing")
}
