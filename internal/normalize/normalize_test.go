package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/osm-audit/internal/model"
	"github.com/sells-group/osm-audit/internal/rules"
)

func testRules(t *testing.T) *rules.Set {
	t.Helper()
	rs, err := rules.Parse([]byte(`
street_suffixes:
  St: Street
directions:
  North: "N"
`))
	require.NoError(t, err)
	return rs
}

func TestStreet_DropsPrefixByDefault(t *testing.T) {
	n := New(testRules(t), Options{})
	assert.Equal(t, "Street N", n.Street("Main St North"))
}

func TestStreet_KeepPrefix(t *testing.T) {
	n := New(testRules(t), Options{KeepPrefix: true})
	assert.Equal(t, "Main Street N", n.Street("Main St North"))
	assert.Equal(t, "17 Avenue Street N", n.Street("17 Avenue St North"))
}

func TestStreet_DefaultTables(t *testing.T) {
	n := New(rules.Default(), Options{KeepPrefix: true})

	tests := []struct {
		in   string
		want string
	}{
		{"Centre St N", "Centre Street N"},
		{"Glenmore Rd. SW", "Glenmore Road SW"},
		{"Crowchild Tr Northwest", "Crowchild Trail NW"},
		{"Macleod Trail South-east", "Macleod Trail SE"},
		{"17 AVE S.W.", "17 Avenue SW"},
		{"Bow Blvd. N.W", "Bow Boulevard NW"},
		{"Memorial Dr NE", "Memorial Drive NE"},
		{"Stephen Ave Mall", "Stephen Avenue Mall"},
		{"Edmonton Trail", "Edmonton Trail"},
		{"Sarcee Way SW", "Sarcee Way SW"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Street(tt.in))
		})
	}
}

func TestStreet_CaseSensitiveLookup(t *testing.T) {
	n := New(rules.Default(), Options{})
	assert.Equal(t, "st north", n.Street("st north"))
}

func TestStreet_FewerThanTwoTokens(t *testing.T) {
	n := New(rules.Default(), Options{})
	assert.Equal(t, "St", n.Street("St"))
	assert.Equal(t, "", n.Street(""))
	assert.Equal(t, "  Stephen ", n.Street("  Stephen "))
}

func TestPostalCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"t3bob1", "T3B OB1"},
		{"T2P 1J9", "T2P 1J9"},
		{"t2p 1j9", "T2P 1J9"},
		{"t2p1j9", "T2P 1J9"},
		{"T2P1J9 extra", "T2P 1J9"},
		{"T2P 1J9 AB", "T2P 1J9 AB"},
		{"AB T2P", "AB T2P"},
		{"12345", "12345"},
		{"t2p-1j9", "T2P-1J9"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PostalCode(tt.in))
		})
	}
}

func TestPostalCode_Idempotent(t *testing.T) {
	inputs := []string{
		"t3bob1", "T2P 1J9", "t2p1j9", "t2p1j9 ", "garbage", "", "t2p\t1j9",
		"t3ſ0b1", "ıa1 b2c", "T3B0B1XYZ", "  t2p 1j9", "\xff\xfe",
	}
	for _, in := range inputs {
		once := PostalCode(in)
		assert.Equal(t, once, PostalCode(once), "input %q", in)
	}
}

func TestPostalCode_AlwaysUppercase(t *testing.T) {
	for _, in := range []string{"t3bob1", "abc", "t2p 1j9", "ümlaut", "mixed Case 123"} {
		out := PostalCode(in)
		assert.Equal(t, strings.ToUpper(out), out, "input %q", in)
	}
}

func TestCorrect(t *testing.T) {
	n := New(rules.Default(), Options{KeepPrefix: true})

	rec := model.NewAddressRecord(model.KindWay, "77")
	rec.Set(model.KeyStreet, "Centre St N")
	rec.Set(model.KeyCity, "Calgary")
	rec.Set(model.KeyPostcode, "t2e2r3")

	got := n.Correct(rec)
	require.Len(t, got, 2)
	assert.Equal(t, Correction{Kind: model.KindWay, ID: "77", Field: model.KeyStreet, Original: "Centre St N", Normalized: "Centre Street N"}, got[0])
	assert.Equal(t, Correction{Kind: model.KindWay, ID: "77", Field: model.KeyPostcode, Original: "t2e2r3", Normalized: "T2E 2R3"}, got[1])
}

func TestCorrect_NothingToChange(t *testing.T) {
	n := New(rules.Default(), Options{KeepPrefix: true})

	rec := model.NewAddressRecord(model.KindNode, "1")
	rec.Set(model.KeyStreet, "Centre Street N")
	rec.Set(model.KeyCity, "Calgary")
	rec.Set(model.KeyPostcode, "T2E 2R3")

	assert.Empty(t, n.Correct(rec))
	assert.Empty(t, n.Correct(model.NewAddressRecord(model.KindNode, "2")))
}

func TestCorrect_OtherCityStreetUntouched(t *testing.T) {
	n := New(rules.Default(), Options{KeepPrefix: true})

	rec := model.NewAddressRecord(model.KindNode, "1")
	rec.Set(model.KeyStreet, "Main St North")
	rec.Set(model.KeyCity, "Airdrie")
	rec.Set(model.KeyPostcode, "t4b3c3")

	got := n.Correct(rec)
	require.Len(t, got, 1)
	assert.Equal(t, model.KeyPostcode, got[0].Field)
}
