package yoruba

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Format string `json:"format"` // cardinal | year | currency
	Want   string `json:"want"`
}

const goldenPath = "../data/golden/yoruba.json"

func goldenConvert(tc goldenCase) (string, error) {
	switch tc.Format {
	case "year":
		return Convert(tc.Input, WithYearFormat())
	case "currency":
		return Convert(tc.Input, WithCurrencyFormat(DefaultCurrency()))
	default:
		return Convert(tc.Input)
	}
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			got, err := goldenConvert(tc)
			require.NoError(t, err)
			require.Equal(t, tc.Want, got)
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "reading golden file for update")

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases))

	for i := range cases {
		got, err := goldenConvert(cases[i])
		require.NoError(t, err, "converting %q", cases[i].Input)
		cases[i].Want = got
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	require.NoError(t, err)
	out = append(out, '\n')

	require.NoError(t, os.WriteFile(goldenPath, out, 0644))
	t.Log("golden file updated, review with: git diff data/golden/yoruba.json")
}
