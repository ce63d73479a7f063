package settings_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/brimdata/native/settings"
	"github.com/brimdata/native/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func encode(t *testing.T, f func(*wire.Serializer) error) ([]byte, error) {
	t.Helper()
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	err := f(s)
	require.NoError(t, s.Flush())
	return buf.Bytes(), err
}

func TestEncodeMatchesPrimitiveWriter(t *testing.T) {
	got, err := encode(t, func(s *wire.Serializer) error {
		return settings.Encode(s, "max_threads", 8)
	})
	require.NoError(t, err)
	want, err := encode(t, func(s *wire.Serializer) error {
		return s.WriteVarInt(8)
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeKinds(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  []byte
	}{
		{"max_block_size", int64(300), []byte{0xac, 0x02}},
		{"extremes", true, []byte{1}},
		{"extremes", false, []byte{0}},
		{"count_distinct_implementation", "uniq", []byte{4, 'u', 'n', 'i', 'q'}},
		{"totals_auto_threshold", 0.5, []byte{0, 0, 0, 0x3f}},
		{"connect_timeout", 10 * time.Second, []byte{10}},
		{"connect_timeout", 3, []byte{3}},
		{"queue_max_wait_ms", 1500 * time.Millisecond, []byte{0xdc, 0x0b}},
		{"format_csv_delimiter", ";", []byte{';'}},
		{"format_csv_delimiter", '|', []byte{'|'}},
		{"port", int32(9000), []byte{0xa8, 0x46}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := encode(t, func(s *wire.Serializer) error {
				return settings.Encode(s, c.name, c.value)
			})
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEncodeMismatchWritesNothing(t *testing.T) {
	cases := []struct {
		name  string
		value any
	}{
		{"extremes", 1},
		{"extremes", "true"},
		{"max_threads", "8"},
		{"max_threads", 8.5},
		{"port", int64(1) << 40},
		{"format_csv_delimiter", ";;"},
		{"format_csv_delimiter", 'é'},
		{"count_distinct_implementation", []byte("uniq")},
		{"totals_auto_threshold", 1e300},
	}
	for _, c := range cases {
		got, err := encode(t, func(s *wire.Serializer) error {
			return settings.Encode(s, c.name, c.value)
		})
		var mismatch *settings.TypeMismatchError
		require.ErrorAs(t, err, &mismatch, "%s=%v", c.name, c.value)
		assert.Equal(t, c.name, mismatch.Name)
		assert.Empty(t, got)
	}
}

func TestEncodeUnknown(t *testing.T) {
	got, err := encode(t, func(s *wire.Serializer) error {
		return settings.Encode(s, "max_thread", 8)
	})
	var unknown *settings.UnknownSettingError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "max_thread", unknown.Name)
	assert.EqualError(t, err, `unknown setting: "max_thread" (did you mean "max_threads"?)`)
	assert.Empty(t, got)

	err = settings.Encode(wire.NewSerializer(&bytes.Buffer{}), "completely_unrelated_name", 1)
	assert.EqualError(t, err, `unknown setting: "completely_unrelated_name"`)
}

func TestCatalog(t *testing.T) {
	all := settings.All()
	assert.Len(t, all, 132)
	s, ok := settings.Lookup("max_threads")
	require.True(t, ok)
	assert.Equal(t, settings.Int64, s.Kind)
	assert.False(t, s.ClientOnly)
	s, ok = settings.Lookup("password")
	require.True(t, ok)
	assert.True(t, s.ClientOnly)
	assert.Equal(t, "Milliseconds", settings.Milliseconds.String())

	// All returns a copy.
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", settings.All()[0].Name)
}

func TestValuesSet(t *testing.T) {
	var v settings.Values
	require.NoError(t, v.Set("max_threads", 4))
	require.NoError(t, v.Set("extremes", true))
	require.NoError(t, v.Set("max_threads", 8))
	assert.Equal(t, settings.Values{{"max_threads", 8}, {"extremes", true}}, v)
	got, ok := v.Get("max_threads")
	require.True(t, ok)
	assert.Equal(t, 8, got)

	var mismatch *settings.TypeMismatchError
	assert.ErrorAs(t, v.Set("extremes", "yes"), &mismatch)
	var unknown *settings.UnknownSettingError
	assert.ErrorAs(t, v.Set("nope", 1), &unknown)
	assert.Len(t, v, 2)
}

func TestEncodeAll(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	values := settings.Values{
		{"max_threads", 8},
		{"user", "default"},
		{"extremes", true},
	}
	got, err := encode(t, func(s *wire.Serializer) error {
		return settings.EncodeAll(s, values, zap.New(core))
	})
	require.NoError(t, err)
	want := []byte{11}
	want = append(want, "max_threads"...)
	want = append(want, 8, 8)
	want = append(want, "extremes"...)
	want = append(want, 1, 0)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, logs.FilterField(zap.String("setting", "user")).Len())
}

func TestEncodeAllValidatesFirst(t *testing.T) {
	values := settings.Values{
		{"max_threads", 8},
		{"extremes", "no"},
	}
	got, err := encode(t, func(s *wire.Serializer) error {
		return settings.EncodeAll(s, values, nil)
	})
	var mismatch *settings.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Empty(t, got)

	got, err = encode(t, func(s *wire.Serializer) error {
		return settings.EncodeAll(s, nil, nil)
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)
}

func TestLoad(t *testing.T) {
	const input = `
max_threads: 8
extremes: true
connect_timeout: 10s
queue_max_wait_ms: 250
totals_auto_threshold: 0.25
format_csv_delimiter: ";"
count_distinct_implementation: uniqExact
max_memory_usage: 64MB
`
	values, err := settings.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, settings.Values{
		{"max_threads", int64(8)},
		{"extremes", true},
		{"connect_timeout", 10 * time.Second},
		{"queue_max_wait_ms", int64(250)},
		{"totals_auto_threshold", 0.25},
		{"format_csv_delimiter", ";"},
		{"count_distinct_implementation", "uniqExact"},
		{"max_memory_usage", int64(64 << 20)},
	}, values)

	values, err = settings.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLoadErrors(t *testing.T) {
	_, err := settings.Load(strings.NewReader("max_threads: 8\nbogus: 1\n"))
	var unknown *settings.UnknownSettingError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "line 2")

	_, err = settings.Load(strings.NewReader("extremes: maybe\n"))
	assert.Error(t, err)

	_, err = settings.Load(strings.NewReader("- max_threads\n"))
	assert.ErrorContains(t, err, "mapping")

	_, err = settings.Load(strings.NewReader("port: 99999999999\n"))
	var mismatch *settings.TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}
