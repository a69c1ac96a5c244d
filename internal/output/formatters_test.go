package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintText(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			"prime with smaller primes",
			NewReport(37, true, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}),
			"37 is a prime number.\n" +
				"Primes less than 37 (11 total):\n" +
				"2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31\n",
		},
		{
			"composite",
			NewReport(10, false, []int64{2, 3, 5, 7}),
			"10 is not a prime number.\n" +
				"Primes less than 10 (4 total):\n" +
				"2, 3, 5, 7\n",
		},
		{
			"single prime below",
			NewReport(3, true, []int64{2}),
			"3 is a prime number.\n" +
				"Primes less than 3 (1 total):\n" +
				"2\n",
		},
		{
			"no primes below",
			NewReport(1, false, nil),
			"1 is not a prime number.\n" +
				"No primes exist below 1.\n",
		},
		{
			"negative",
			NewReport(-5, false, []int64{}),
			"-5 is not a prime number.\n" +
				"No primes exist below -5.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintText(&buf, tt.report)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, NewReport(10, false, []int64{2, 3, 5, 7})))
	assert.JSONEq(t, `{"n":10,"is_prime":false,"count":4,"primes":[2,3,5,7]}`, buf.String())
}

func TestNewReportEmptyPrimesEncodeAsArray(t *testing.T) {
	data, err := json.Marshal(NewReport(2, true, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2,"is_prime":true,"count":0,"primes":[]}`, string(data))
}

func TestJoinPrimes(t *testing.T) {
	assert.Equal(t, "", JoinPrimes(nil))
	assert.Equal(t, "2", JoinPrimes([]int64{2}))
	assert.Equal(t, "2, 3, 5", JoinPrimes([]int64{2, 3, 5}))
}
