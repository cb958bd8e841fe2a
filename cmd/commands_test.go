package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/osm-audit/internal/report"
)

func TestAuditPostcodes(t *testing.T) {
	out, err := execute(t, "audit", "postcodes", sampleFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Postal codes checked: 5")
	assert.Contains(t, out, "Unexpected postal codes: 3")
	assert.Contains(t, out, `"AB"`)
	assert.Contains(t, out, `"T3B0B1"`)
	assert.Contains(t, out, `"t2e2r3"`)
	assert.NotContains(t, out, `"T2P 1J9"`)
}

func TestAuditPostcodes_JSON(t *testing.T) {
	out, err := execute(t, "audit", "postcodes", sampleFile(t), "--format", "json")
	require.NoError(t, err)

	var doc report.PostalDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 7, doc.Records)
	assert.Equal(t, []string{"AB", "T3B0B1", "t2e2r3"}, doc.Exceptions)
	assert.NotEmpty(t, doc.RunID)
}

func TestAuditStreets_YAML(t *testing.T) {
	out, err := execute(t, "audit", "streets", sampleFile(t), "--format", "yaml")
	require.NoError(t, err)

	var doc report.StreetDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, 5, doc.Streets)
	assert.Equal(t, 4, doc.StreetsAudited)
	assert.Equal(t, map[string][]string{
		"Rd.": {"Elbow Rd. SW", "Glenmore Rd. SW"},
		"St":  {"Centre St North"},
	}, doc.StreetTypes)
	assert.Equal(t, map[string][]string{
		"North": {"Centre St North"},
	}, doc.Directions)
}

func TestAuditStreets_RegionOverride(t *testing.T) {
	out, err := execute(t, "audit", "streets", sampleFile(t), "--region", "Airdrie", "--format", "json")
	require.NoError(t, err)

	var doc report.StreetDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc.StreetsAudited)
	assert.Equal(t, []string{"Main St North"}, doc.StreetTypes["St"])
}

func TestAuditStreets_Text(t *testing.T) {
	out, err := execute(t, "audit", "streets", sampleFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Unexpected directions (1):")
	assert.Contains(t, out, "Unexpected street types (2):")
}

func TestAuditPostcodes_RemoteSource(t *testing.T) {
	data, err := os.ReadFile(sampleFile(t))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "osm-audit/1.0", r.Header.Get("User-Agent"))
		w.Write(data)
	}))
	defer srv.Close()

	out, err := execute(t, "audit", "postcodes", srv.URL+"/calgary.osm", "--format", "json")
	require.NoError(t, err)

	var doc report.PostalDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"AB", "T3B0B1", "t2e2r3"}, doc.Exceptions)
}

func TestAudit_MissingFile(t *testing.T) {
	_, err := execute(t, "audit", "postcodes", filepath.Join(t.TempDir(), "missing.osm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetcher: open")
}

func TestAudit_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.osm")
	require.NoError(t, os.WriteFile(path, []byte(`<osm><node id="1"><tag k="a"`), 0o644))

	_, err := execute(t, "audit", "streets", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit")
}

func TestAudit_RequiresFile(t *testing.T) {
	_, err := execute(t, "audit", "postcodes")
	require.Error(t, err)
}

func TestNormalizePostcode(t *testing.T) {
	out, err := execute(t, "normalize", "postcode", "t3bob1")
	require.NoError(t, err)
	assert.Equal(t, "T3B OB1\n", out)
}

func TestNormalizeStreet(t *testing.T) {
	out, err := execute(t, "normalize", "street", "Main St North")
	require.NoError(t, err)
	assert.Equal(t, "Street N\n", out)
}

func TestNormalizeStreet_KeepPrefixFromEnv(t *testing.T) {
	t.Setenv("OSMAUDIT_NORMALIZE_KEEP_PREFIX", "true")
	out, err := execute(t, "normalize", "street", "Main St North", "--format", "json")
	require.NoError(t, err)

	var doc report.NormalizedDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Main Street N", doc.Normalized)
}

func TestNormalizeStreet_CustomRules(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte("street_suffixes:\n  Cres: Crescent\n"), 0o644))

	out, err := execute(t, "normalize", "street", "Hawkwood Cres NW", "--rules", rulesPath)
	require.NoError(t, err)
	assert.Equal(t, "Crescent NW\n", out)
}

func TestCorrect(t *testing.T) {
	t.Setenv("OSMAUDIT_NORMALIZE_KEEP_PREFIX", "true")
	out, err := execute(t, "correct", sampleFile(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"kind,id,field,original,normalized",
		"node,25822016,addr:street,Centre St North,Centre Street N",
		"node,25822016,addr:postcode,t2e2r3,T2E 2R3",
		"node,25822017,addr:postcode,T3B0B1,T3B 0B1",
		"way,4016123,addr:street,Glenmore Rd. SW,Glenmore Road SW",
		"way,4016124,addr:street,Elbow Rd. SW,Elbow Road SW",
	}, lines)
}

func TestCorrect_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "fixes.csv")
	out, err := execute(t, "correct", sampleFile(t), "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "kind,id,field,original,normalized\n"))
	assert.Contains(t, string(data), "node,25822016,addr:street,Centre St North,Street N")
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "Region: Calgary")
	assert.Contains(t, out, "Street suffixes (13):")
}
